//go:build !tinygo

package hal

import (
	"context"
	"fmt"
	"sync"
	"time"

	"pocket/internal/scenario"
	"pocket/proto"
)

// hostRadio replays the networks of a scenario after a fixed scan delay.
type hostRadio struct {
	mu    sync.Mutex
	nets  []proto.WirelessNetworkInfo
	delay time.Duration
	fail  bool
	bt    bool
	scans int
}

func newHostRadio(cfg scenario.RadioConfig) *hostRadio {
	nets := make([]proto.WirelessNetworkInfo, 0, len(cfg.Networks))
	for _, n := range cfg.Networks {
		nets = append(nets, n.Info())
	}
	return &hostRadio{
		nets:  nets,
		delay: time.Duration(cfg.ScanDelayMs) * time.Millisecond,
		fail:  cfg.Fail,
	}
}

func (r *hostRadio) ScanWireless(ctx context.Context) ([]proto.WirelessNetworkInfo, error) {
	r.mu.Lock()
	r.scans++
	n := r.scans
	delay := r.delay
	fail := r.fail
	r.mu.Unlock()

	if delay > 0 {
		t := time.NewTimer(delay)
		defer t.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-t.C:
		}
	}
	if fail {
		return nil, fmt.Errorf("host radio: scan %d: %w", n, proto.ErrScanFailed)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]proto.WirelessNetworkInfo, len(r.nets))
	copy(out, r.nets)
	return out, nil
}

func (r *hostRadio) SetBluetooth(on bool) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.bt = on
	return nil
}

func (r *hostRadio) bluetooth() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.bt
}
