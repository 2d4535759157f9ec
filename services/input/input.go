// Package input turns raw button levels into ButtonEvents.
package input

import (
	"context"
	"time"

	"pocket/hal"
	"pocket/kernel"
	"pocket/proto"
	"pocket/services/logger"
)

const (
	PollInterval = 10 * time.Millisecond
	// Refractory is the pause after an Up or Down event. Holding the button
	// repeats the event once per Refractory.
	Refractory = 200 * time.Millisecond
	Debounce   = 30 * time.Millisecond
	LongPress  = 600 * time.Millisecond
)

// Service polls the buttons. Up and Down fire on level with time-based
// suppression; Select fires once per press, on release, unless the press was
// held past LongPress, which fires a single Back instead.
type Service struct {
	buttons hal.Buttons
	clock   kernel.Clock
	out     *kernel.Mailbox[proto.ButtonEvent]
	log     logger.Client
}

func New(buttons hal.Buttons, clock kernel.Clock, out *kernel.Mailbox[proto.ButtonEvent], log logger.Client) *Service {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &Service{buttons: buttons, clock: clock, out: out, log: log}
}

func (s *Service) Run(ctx context.Context) {
	for s.step(ctx) {
	}
}

// step runs one polling pass. It reports false once ctx is done.
func (s *Service) step(ctx context.Context) bool {
	if s.buttons.Up.IsPressed() {
		s.emit(proto.ButtonUp)
		if !s.clock.Sleep(ctx, Refractory) {
			return false
		}
	}
	if s.buttons.Down.IsPressed() {
		s.emit(proto.ButtonDown)
		if !s.clock.Sleep(ctx, Refractory) {
			return false
		}
	}
	if s.buttons.Select.IsPressed() {
		if !s.clock.Sleep(ctx, Debounce) {
			return false
		}
		if s.buttons.Select.IsPressed() && !s.selectPress(ctx) {
			return false
		}
	}
	return s.clock.Sleep(ctx, PollInterval)
}

// selectPress follows one held Select until release.
func (s *Service) selectPress(ctx context.Context) bool {
	var held time.Duration
	long := false
	for s.buttons.Select.IsPressed() {
		if !s.clock.Sleep(ctx, PollInterval) {
			return false
		}
		held += PollInterval
		if held >= LongPress && !long {
			s.emit(proto.ButtonBack)
			long = true
		}
	}
	if !long {
		s.emit(proto.ButtonSelect)
	}
	return true
}

func (s *Service) emit(ev proto.ButtonEvent) {
	if res := s.out.TrySend(ev); res != kernel.SendOK {
		s.log.Logf("dropped %v: %v", ev, res)
	}
}
