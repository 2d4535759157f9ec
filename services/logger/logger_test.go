package logger

import (
	"context"
	"sync"
	"testing"
	"time"

	"pocket/kernel"
)

type lineSink struct {
	mu    sync.Mutex
	lines []string
}

func (s *lineSink) WriteLineString(line string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines = append(s.lines, line)
}

func (s *lineSink) WriteLineBytes(b []byte) { s.WriteLineString(string(b)) }

func (s *lineSink) snapshot() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.lines...)
}

func TestClientPrefixes(t *testing.T) {
	mb := kernel.NewMailbox[string](4)
	c := NewClient(mb, "scan")
	if res := c.Logf("found %d", 3); res != kernel.SendOK {
		t.Fatalf("Logf() = %v, want %v", res, kernel.SendOK)
	}
	c.With("menu").Logf("mounted")

	first, _ := mb.TryRecv()
	second, _ := mb.TryRecv()
	if first != "scan: found 3" || second != "menu: mounted" {
		t.Fatalf("lines: %q, %q", first, second)
	}
}

func TestClientDropsWhenFull(t *testing.T) {
	mb := kernel.NewMailbox[string](1)
	c := NewClient(mb, "")
	c.Logf("a")
	if res := c.Logf("b"); res != kernel.SendErrQueueFull {
		t.Fatalf("Logf() = %v, want %v", res, kernel.SendErrQueueFull)
	}
	if line, _ := mb.TryRecv(); line != "a" {
		t.Fatalf("kept %q, want the first line", line)
	}
}

func TestZeroClient(t *testing.T) {
	var c Client
	if res := c.Logf("nowhere"); res != kernel.SendOK {
		t.Fatalf("Logf() = %v", res)
	}
}

func TestServiceWritesAndDrains(t *testing.T) {
	mb := kernel.NewMailbox[string](8)
	sink := &lineSink{}
	s := New(sink, mb)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		s.Run(ctx)
		close(done)
	}()

	mb.TrySend("one")
	deadline := time.Now().Add(time.Second)
	for len(sink.snapshot()) == 0 {
		if time.Now().After(deadline) {
			t.Fatal("line never written")
		}
		time.Sleep(time.Millisecond)
	}

	cancel()
	<-done
	mb.TrySend("two")
	s.drain()

	got := sink.snapshot()
	if len(got) != 2 || got[0] != "one" || got[1] != "two" {
		t.Fatalf("lines: %q", got)
	}
}

func TestThrottle(t *testing.T) {
	th := Throttle{N: 100}
	var allowed []int
	for i := 1; i <= 250; i++ {
		if th.Allow() {
			allowed = append(allowed, i)
		}
	}
	if len(allowed) != 3 || allowed[0] != 1 || allowed[1] != 101 || allowed[2] != 201 {
		t.Fatalf("allowed = %v, want [1 101 201]", allowed)
	}
	if th.Count() != 250 {
		t.Fatalf("Count() = %d, want 250", th.Count())
	}
}
