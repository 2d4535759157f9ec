//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// App runs the firmware against a HAL until ctx is done.
type App func(ctx context.Context, h HAL) error

// HeadlessConfig controls the no-window host runner.
type HeadlessConfig struct {
	Hz    int
	Ticks uint64
	Host  HostConfig
}

// RunHeadless runs the firmware without opening a window. With Ticks set it
// stops after Ticks/Hz seconds and prints the last frame of both panels.
func RunHeadless(ctx context.Context, app App, cfg HeadlessConfig) error {
	if cfg.Hz <= 0 {
		cfg.Hz = 60
	}
	d := time.Second / time.Duration(cfg.Hz)
	if d <= 0 {
		return fmt.Errorf("invalid headless hz: %d", cfg.Hz)
	}

	h := newHost(cfg.Host)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- app(ctx, h) }()
	go playScript(ctx, h, h.script)

	var stop <-chan time.Time
	if cfg.Ticks > 0 {
		t := time.NewTimer(time.Duration(cfg.Ticks) * d)
		defer t.Stop()
		stop = t.C
	}

	select {
	case err := <-errc:
		return err
	case <-stop:
		cancel()
		<-errc
		h.logger.WriteLineString(h.statFB.ascii())
		h.logger.WriteLineString(h.menuFB.ascii())
		return nil
	case <-ctx.Done():
		<-errc
		return ctx.Err()
	}
}

// ascii renders the visible frame with '#' for lit pixels.
func (f *hostFramebuffer) ascii() string {
	snap := make([]byte, len(f.buf))
	f.snapshot(snap)
	var b strings.Builder
	b.WriteString("+" + strings.Repeat("-", f.width) + "+\n")
	for y := 0; y < f.height; y++ {
		b.WriteByte('|')
		for x := 0; x < f.width; x++ {
			if f.lit(snap, x, y) {
				b.WriteByte('#')
			} else {
				b.WriteByte(' ')
			}
		}
		b.WriteString("|\n")
	}
	b.WriteString("+" + strings.Repeat("-", f.width) + "+")
	return b.String()
}
