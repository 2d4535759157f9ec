//go:build !tinygo

package hal

import (
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"pocket/internal/scenario"
)

const (
	panelWidth  = 128
	panelHeight = 32
)

type hostHAL struct {
	logger  *hostLogger
	menuFB  *hostFramebuffer
	statFB  *hostFramebuffer
	up      *hostButton
	down    *hostButton
	sel     *hostButton
	radio   *hostRadio
	battery *hostBattery
	sys     *hostSystem
	script  []scenario.Press
}

// HostConfig selects the simulated world of a host run.
type HostConfig struct {
	Scenario *scenario.Scenario
	// Log receives log lines. Nil means stdout.
	Log io.Writer
}

func newHost(cfg HostConfig) *hostHAL {
	sc := cfg.Scenario
	if sc == nil {
		sc = scenario.Default()
	}
	w := cfg.Log
	if w == nil {
		w = os.Stdout
	}
	logger := &hostLogger{w: w}
	return &hostHAL{
		logger:  logger,
		menuFB:  newHostFramebuffer(panelWidth, panelHeight),
		statFB:  newHostFramebuffer(panelWidth, panelHeight),
		up:      newHostButton("UP"),
		down:    newHostButton("DOWN"),
		sel:     newHostButton("SELECT"),
		radio:   newHostRadio(sc.Radio),
		battery: newHostBattery(sc.Battery, time.Now),
		sys:     &hostSystem{logger: logger},
		script:  sc.Script,
	}
}

// NewHost returns a host HAL implementation.
func NewHost(cfg HostConfig) HAL { return newHost(cfg) }

func (h *hostHAL) Logger() Logger         { return h.logger }
func (h *hostHAL) MenuDisplay() Display   { return hostDisplay{fb: h.menuFB} }
func (h *hostHAL) StatusDisplay() Display { return hostDisplay{fb: h.statFB} }
func (h *hostHAL) Radio() Radio           { return h.radio }
func (h *hostHAL) Battery() Battery       { return h.battery }
func (h *hostHAL) Clock() Clock           { return hostClock{} }
func (h *hostHAL) System() System         { return h.sys }

func (h *hostHAL) Buttons() Buttons {
	return Buttons{Up: h.up, Down: h.down, Select: h.sel}
}

// button maps a scenario button name to its virtual button.
func (h *hostHAL) button(name string) *hostButton {
	switch name {
	case scenario.ButtonUp:
		return h.up
	case scenario.ButtonDown:
		return h.down
	case scenario.ButtonSelect:
		return h.sel
	}
	return nil
}

type hostDisplay struct {
	fb *hostFramebuffer
}

func (d hostDisplay) Framebuffer() Framebuffer { return d.fb }

type hostLogger struct {
	mu sync.Mutex
	w  io.Writer
}

func (l *hostLogger) WriteLineString(s string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	fmt.Fprintln(l.w, s)
}

func (l *hostLogger) WriteLineBytes(b []byte) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.w.Write(b)
	l.w.Write([]byte{'\n'})
}

type hostClock struct{}

func (hostClock) Now() time.Time { return time.Now() }

// hostBattery drains one percent every DrainSeconds of wall time.
type hostBattery struct {
	start int
	drain time.Duration
	t0    time.Time
	now   func() time.Time
}

func newHostBattery(cfg scenario.BatteryConfig, now func() time.Time) *hostBattery {
	return &hostBattery{
		start: cfg.Start,
		drain: time.Duration(cfg.DrainSeconds) * time.Second,
		t0:    now(),
		now:   now,
	}
}

func (b *hostBattery) Percent() (uint8, error) {
	p := b.start
	if b.drain > 0 {
		p -= int(b.now().Sub(b.t0) / b.drain)
	}
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	return uint8(p), nil
}

// hostSystem ends the process on reset; the simulator has nothing to reboot into.
type hostSystem struct {
	logger Logger
	exit   func(code int)
}

func (s *hostSystem) Reset() error {
	s.logger.WriteLineString("system: reset")
	exit := s.exit
	if exit == nil {
		exit = os.Exit
	}
	exit(0)
	return nil
}
