// Package logger is the log sink task and the client producers log through.
package logger

import (
	"context"
	"fmt"

	"pocket/hal"
	"pocket/kernel"
)

// Service writes queued lines to the HAL logger.
type Service struct {
	log hal.Logger
	in  *kernel.Mailbox[string]
}

func New(log hal.Logger, in *kernel.Mailbox[string]) *Service {
	return &Service{log: log, in: in}
}

func (s *Service) Run(ctx context.Context) {
	for {
		line, ok := s.in.Recv(ctx)
		if !ok {
			s.drain()
			return
		}
		s.write(line)
	}
}

// drain writes whatever is still queued without waiting.
func (s *Service) drain() {
	for {
		line, ok := s.in.TryRecv()
		if !ok {
			return
		}
		s.write(line)
	}
}

func (s *Service) write(line string) {
	if s.log == nil {
		return
	}
	s.log.WriteLineString(line)
}

// Client sends prefixed log lines to the logger service.
//
// The zero Client discards everything.
type Client struct {
	out    *kernel.Mailbox[string]
	prefix string
}

func NewClient(out *kernel.Mailbox[string], prefix string) Client {
	return Client{out: out, prefix: prefix}
}

// With returns a client for another component on the same sink.
func (c Client) With(prefix string) Client {
	return Client{out: c.out, prefix: prefix}
}

// Logf formats and queues one line.
//
// The call is best-effort: it drops on queue full and never blocks.
func (c Client) Logf(format string, args ...any) kernel.SendResult {
	if c.out == nil {
		return kernel.SendOK
	}
	line := fmt.Sprintf(format, args...)
	if c.prefix != "" {
		line = c.prefix + ": " + line
	}
	return c.out.TrySend(line)
}

// Throttle lets the first of a run of repeated failures through, then every
// Nth. It is not safe for concurrent use.
type Throttle struct {
	N     uint32
	count uint32
}

// Allow counts one occurrence and reports whether to log it.
func (t *Throttle) Allow() bool {
	n := t.N
	if n == 0 {
		n = 1
	}
	allow := t.count%n == 0
	t.count++
	return allow
}

// Count is the number of occurrences seen.
func (t *Throttle) Count() uint32 { return t.count }
