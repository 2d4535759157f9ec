package kernel

import "context"

// Task is a long-running loop that suspends through its Clock, a Mailbox or
// a Signal on every iteration.
type Task interface {
	Run(ctx context.Context)
}

// TaskFunc adapts a function to Task.
type TaskFunc func(ctx context.Context)

func (f TaskFunc) Run(ctx context.Context) { f(ctx) }

// Go starts t on its own goroutine. A panic is recovered and reported once
// through the panic handler; the task is not restarted.
func Go(ctx context.Context, name string, t Task) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				triggerPanic(PanicInfo{Task: name, Value: r})
			}
		}()
		t.Run(ctx)
	}()
}
