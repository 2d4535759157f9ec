//go:build !tinygo

package hal

import (
	"context"
	"time"

	"pocket/internal/scenario"
)

// playScript presses the scripted buttons relative to start. It returns when
// the script is exhausted or ctx is done.
func playScript(ctx context.Context, h *hostHAL, script []scenario.Press) {
	start := time.Now()
	for _, p := range script {
		b := h.button(p.Button)
		if b == nil {
			continue
		}
		if !sleepUntil(ctx, start.Add(time.Duration(p.AtMs)*time.Millisecond)) {
			return
		}
		b.set(true)
		ok := sleepUntil(ctx, time.Now().Add(time.Duration(p.HoldMs)*time.Millisecond))
		b.set(false)
		if !ok {
			return
		}
	}
}

func sleepUntil(ctx context.Context, t time.Time) bool {
	d := time.Until(t)
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
