// Package radio holds the background producers behind the radio menu: the
// wireless scan task and the command handler.
package radio

import (
	"context"
	"fmt"

	"pocket/hal"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/logger"
)

// Scanner waits for scan requests, scans, and hands the resulting menu to
// the menu engine.
type Scanner struct {
	radio   hal.Radio
	arena   *menu.Arena
	request *kernel.Signal
	control *kernel.Mailbox[proto.Control]
	log     logger.Client
}

func NewScanner(radio hal.Radio, arena *menu.Arena, request *kernel.Signal, control *kernel.Mailbox[proto.Control], log logger.Client) *Scanner {
	return &Scanner{radio: radio, arena: arena, request: request, control: control, log: log}
}

func (s *Scanner) Run(ctx context.Context) {
	for s.request.Wait(ctx) {
		s.Scan(ctx)
	}
}

// Scan runs one scan. On success with results it builds the network menu
// and queues a mount; it reports false when nothing was mounted.
func (s *Scanner) Scan(ctx context.Context) (proto.MenuRef, bool) {
	s.log.Logf("starting wireless scan")
	nets, err := s.radio.ScanWireless(ctx)
	if err != nil {
		s.log.Logf("%v", fmt.Errorf("wireless scan: %w", err))
		return proto.MenuRef{}, false
	}

	s.log.Logf("found %d access points", len(nets))
	for _, n := range nets {
		s.log.Logf("%v", n)
	}

	if len(nets) == 0 {
		return proto.MenuRef{}, false
	}
	// Building retires the oldest dynamic menu, so only build what can be queued.
	if s.control.Len() >= s.control.Cap() {
		s.log.Logf("mount dropped: %v", kernel.SendErrQueueFull)
		return proto.MenuRef{}, false
	}
	ref, ok := menu.BuildWireless(s.arena, nets)
	if !ok {
		return proto.MenuRef{}, false
	}
	if res := s.control.TrySend(proto.Mount(ref)); res != kernel.SendOK {
		s.log.Logf("mount %v dropped: %v", ref, res)
		return proto.MenuRef{}, false
	}
	return ref, true
}
