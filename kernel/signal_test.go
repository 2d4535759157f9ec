package kernel

import (
	"context"
	"testing"
	"time"
)

func TestSignalCoalesces(t *testing.T) {
	s := NewSignal()
	if !s.Raise() {
		t.Fatal("first Raise() = false, want true")
	}
	if s.Raise() {
		t.Fatal("second Raise() = true, want false (coalesced)")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	if !s.Wait(ctx) {
		t.Fatal("Wait() = false, want true")
	}

	short, cancelShort := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancelShort()
	if s.Wait(short) {
		t.Fatal("Wait() = true after single consumption of coalesced raises")
	}
}

func TestSystemClockSleepCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if (SystemClock{}).Sleep(ctx, time.Hour) {
		t.Fatal("Sleep() = true on canceled context")
	}
}
