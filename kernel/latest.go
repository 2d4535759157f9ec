package kernel

import "sync/atomic"

type latestEntry[T any] struct {
	seq uint32
	v   T
}

// Latest is a single-slot cell with overwrite semantics.
//
// Publish replaces any unread value. Readers never consume: reading twice
// without an intervening publish yields the same value and sequence number.
// Each publish swaps one pointer, so a reader sees either the old or the new
// value, never a mix.
type Latest[T any] struct {
	p atomic.Pointer[latestEntry[T]]
}

// Publish stores v and returns its sequence number (starting at 1).
func (l *Latest[T]) Publish(v T) uint32 {
	for {
		old := l.p.Load()
		seq := uint32(1)
		if old != nil {
			seq = old.seq + 1
			if seq == 0 {
				seq = 1
			}
		}
		if l.p.CompareAndSwap(old, &latestEntry[T]{seq: seq, v: v}) {
			return seq
		}
	}
}

// Load returns the newest value. ok is false if nothing was published yet.
func (l *Latest[T]) Load() (v T, seq uint32, ok bool) {
	e := l.p.Load()
	if e == nil {
		return v, 0, false
	}
	return e.v, e.seq, true
}

// Since returns the newest value if its sequence differs from seen.
func (l *Latest[T]) Since(seen uint32) (v T, seq uint32, ok bool) {
	e := l.p.Load()
	if e == nil || e.seq == seen {
		return v, seen, false
	}
	return e.v, e.seq, true
}
