package kernel

import "context"

// SendResult describes the outcome of a send attempt.
type SendResult uint8

const (
	SendOK SendResult = iota
	SendErrQueueFull
	SendErrCanceled
)

func (r SendResult) String() string {
	switch r {
	case SendOK:
		return "ok"
	case SendErrQueueFull:
		return "queue full"
	case SendErrCanceled:
		return "canceled"
	default:
		return "unknown"
	}
}

// Mailbox is a fixed-capacity FIFO shared between tasks.
//
// Any number of producers may send; one consumer is expected. Ordering is
// FIFO per mailbox only. TrySend never blocks: a full mailbox drops the
// message and reports SendErrQueueFull.
type Mailbox[T any] struct {
	_  [0]func() // not comparable.
	ch chan T
}

// NewMailbox allocates a mailbox with the given number of slots (at least one).
func NewMailbox[T any](slots int) *Mailbox[T] {
	if slots < 1 {
		slots = 1
	}
	return &Mailbox[T]{ch: make(chan T, slots)}
}

// Cap returns the number of slots.
func (mb *Mailbox[T]) Cap() int { return cap(mb.ch) }

// Len returns the number of queued messages.
func (mb *Mailbox[T]) Len() int { return len(mb.ch) }

// TrySend attempts to enqueue a message without blocking.
func (mb *Mailbox[T]) TrySend(msg T) SendResult {
	select {
	case mb.ch <- msg:
		return SendOK
	default:
		return SendErrQueueFull
	}
}

// Send enqueues a message, suspending until a slot frees up or ctx ends.
func (mb *Mailbox[T]) Send(ctx context.Context, msg T) SendResult {
	select {
	case mb.ch <- msg:
		return SendOK
	case <-ctx.Done():
		return SendErrCanceled
	}
}

// TryRecv attempts to dequeue one message, returning false if empty.
func (mb *Mailbox[T]) TryRecv() (T, bool) {
	select {
	case msg := <-mb.ch:
		return msg, true
	default:
		var zero T
		return zero, false
	}
}

// Recv suspends until one message is available or ctx ends.
func (mb *Mailbox[T]) Recv(ctx context.Context) (T, bool) {
	select {
	case msg := <-mb.ch:
		return msg, true
	case <-ctx.Done():
		var zero T
		return zero, false
	}
}

// C exposes the receive side for use in select statements.
func (mb *Mailbox[T]) C() <-chan T { return mb.ch }
