// Package topbar renders the status panel from the latest published mode.
package topbar

import (
	"context"
	"fmt"
	"time"

	"pocket/gfx"
	"pocket/hal"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/logger"
)

const (
	RenderInterval = 100 * time.Millisecond

	clockX    = 90
	detailY   = gfx.RowHeight
	scrollGap = 10

	selectedMarker = "*"
)

// Config wires the renderer. Wall is read on every frame; without it the
// published time is shown. Arena and Selection mark the network detail when
// it is the selected one. All three are optional.
type Config struct {
	Status    *kernel.Latest[proto.TopBarMode]
	Screen    gfx.Surface
	Clock     kernel.Clock
	Wall      hal.Clock
	Arena     *menu.Arena
	Selection *menu.Selection
	Log       logger.Client
}

type Service struct {
	cfg Config

	mode  proto.TopBarMode
	seen  uint32
	tick  uint32
	flush logger.Throttle
}

func New(cfg Config) *Service {
	if cfg.Clock == nil {
		cfg.Clock = kernel.SystemClock{}
	}
	return &Service{
		cfg:   cfg,
		mode:  proto.Normal(100, proto.Clock{}),
		flush: logger.Throttle{N: 100},
	}
}

// Mode returns the mode drawn by the last Render.
func (s *Service) Mode() proto.TopBarMode { return s.mode }

func (s *Service) Run(ctx context.Context) {
	for {
		s.Render()
		if !s.cfg.Clock.Sleep(ctx, RenderInterval) {
			return
		}
	}
}

// Render picks up a newer mode if one was published and redraws the panel.
// It flushes every time so the panel stays live without new events.
func (s *Service) Render() {
	s.tick++
	if m, seq, ok := s.cfg.Status.Since(s.seen); ok {
		s.mode, s.seen = m, seq
	}

	scr := s.cfg.Screen
	scr.Clear()
	switch s.mode.Kind {
	case proto.TopBarNormal:
		scr.DrawText(0, 0, fmt.Sprintf("BAT:%d%%", s.mode.Battery), gfx.Normal)
		scr.DrawText(clockX, 0, s.now().String(), gfx.Normal)
	case proto.TopBarWirelessNetwork:
		n := s.mode.Network
		gfx.ScrollLabel(scr, 0, n.SSID, s.tick, scrollGap)
		scr.DrawText(0, detailY, fmt.Sprintf("%ddBm  CH%d", n.RSSI, n.Channel), gfx.Normal)
		if s.selected(n) {
			scr.DrawText(int16(scr.Width()-gfx.CharWidth), detailY, selectedMarker, gfx.Normal)
		}
	}

	if err := scr.Flush(); err != nil && s.flush.Allow() {
		s.cfg.Log.Logf("flush failed (%d): %v", s.flush.Count(), err)
	}
}

func (s *Service) now() proto.Clock {
	if s.cfg.Wall == nil {
		return s.mode.Time
	}
	t := s.cfg.Wall.Now()
	return proto.Clock{Hours: uint8(t.Hour()), Minutes: uint8(t.Minute())}
}

// selected reports whether n is the network in the selection slot.
func (s *Service) selected(n proto.WirelessNetworkInfo) bool {
	if s.cfg.Selection == nil || s.cfg.Arena == nil {
		return false
	}
	cur, ok := s.cfg.Selection.Resolve(s.cfg.Arena)
	return ok && cur == n
}
