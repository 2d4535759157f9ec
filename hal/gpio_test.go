package hal

import "testing"

func TestVirtualPinConfigure(t *testing.T) {
	pin := newVirtualPin("BTN", GPIOCapInput)
	if err := pin.Configure(GPIOModeOutput, GPIOPullNone); err == nil {
		t.Fatal("expected output to be rejected")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err == nil {
		t.Fatal("expected pull-up to be rejected")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullNone); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := pin.Write(true); err == nil {
		t.Fatal("expected write on input to fail")
	}
}

func TestActiveLowButton(t *testing.T) {
	pin := newVirtualPin("UP", GPIOCapInput|GPIOCapPullUp)
	b, err := NewActiveLowButton(pin)
	if err != nil {
		t.Fatalf("NewActiveLowButton: %v", err)
	}
	if b.IsPressed() {
		t.Fatal("pulled-up pin reads as pressed")
	}

	pin.drive(false)
	if !b.IsPressed() {
		t.Fatal("grounded pin reads as released")
	}

	pin.drive(true)
	if b.IsPressed() {
		t.Fatal("released pin reads as pressed")
	}
}

func TestActiveLowButtonRejectsPinWithoutPullUp(t *testing.T) {
	if _, err := NewActiveLowButton(newVirtualPin("X", GPIOCapInput)); err == nil {
		t.Fatal("expected error")
	}
	if _, err := NewActiveLowButton(nil); err == nil {
		t.Fatal("expected error for nil pin")
	}
}

func TestHostButton(t *testing.T) {
	b := newHostButton("SELECT")
	if b.IsPressed() {
		t.Fatal("new button pressed")
	}
	b.set(true)
	if !b.IsPressed() {
		t.Fatal("expected pressed")
	}
	b.set(false)
	if b.IsPressed() {
		t.Fatal("expected released")
	}
}
