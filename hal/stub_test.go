package hal

import (
	"context"
	"errors"
	"testing"
)

func TestNullDevices(t *testing.T) {
	if _, err := (nullRadio{}).ScanWireless(context.Background()); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("ScanWireless: %v", err)
	}
	if err := (nullRadio{}).SetBluetooth(true); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("SetBluetooth: %v", err)
	}
	if _, err := (nullBattery{}).Percent(); !errors.Is(err, ErrNotImplemented) {
		t.Fatalf("Percent: %v", err)
	}
}
