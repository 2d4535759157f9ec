package kernel

import "context"

// Signal is a coalescing wakeup: raising it while already raised is a no-op.
type Signal struct {
	ch chan struct{}
}

func NewSignal() *Signal {
	return &Signal{ch: make(chan struct{}, 1)}
}

// Raise marks the signal pending. It reports false if one was already pending.
func (s *Signal) Raise() bool {
	select {
	case s.ch <- struct{}{}:
		return true
	default:
		return false
	}
}

// Wait suspends until the signal is raised (consuming it) or ctx ends.
func (s *Signal) Wait(ctx context.Context) bool {
	select {
	case <-s.ch:
		return true
	case <-ctx.Done():
		return false
	}
}

// C exposes the wakeup channel for use in select statements.
func (s *Signal) C() <-chan struct{} { return s.ch }
