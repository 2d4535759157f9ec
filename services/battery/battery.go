// Package battery publishes the charge level and wall clock to the top bar.
package battery

import (
	"context"
	"errors"
	"time"

	"pocket/hal"
	"pocket/kernel"
	"pocket/proto"
	"pocket/services/logger"
)

const SampleInterval = 30 * time.Second

type Service struct {
	gauge  hal.Battery
	wall   hal.Clock
	clock  kernel.Clock
	status *kernel.Latest[proto.TopBarMode]
	log    logger.Client

	percent  uint8
	estimate bool
}

func New(gauge hal.Battery, wall hal.Clock, clock kernel.Clock, status *kernel.Latest[proto.TopBarMode], log logger.Client) *Service {
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &Service{gauge: gauge, wall: wall, clock: clock, status: status, log: log, percent: 100}
}

func (s *Service) Run(ctx context.Context) {
	for {
		s.Sample()
		if !s.clock.Sleep(ctx, SampleInterval) {
			return
		}
	}
}

// Sample reads the gauge and publishes a Normal status. The level never
// rises; without a gauge it drops one percent per sample, stopping at zero.
func (s *Service) Sample() proto.TopBarMode {
	s.percent = s.next()
	m := proto.Normal(s.percent, s.now())
	s.status.Publish(m)
	return m
}

func (s *Service) next() uint8 {
	if s.gauge != nil {
		p, err := s.gauge.Percent()
		if err == nil {
			return min(p, s.percent)
		}
		if !s.estimate {
			s.estimate = true
			if errors.Is(err, hal.ErrNotImplemented) {
				s.log.Logf("no gauge, estimating")
			} else {
				s.log.Logf("gauge: %v, estimating", err)
			}
		}
	}
	if s.percent == 0 {
		return 0
	}
	return s.percent - 1
}

func (s *Service) now() proto.Clock {
	if s.wall == nil {
		return proto.Clock{}
	}
	t := s.wall.Now()
	return proto.Clock{Hours: uint8(t.Hour()), Minutes: uint8(t.Minute())}
}
