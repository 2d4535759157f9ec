package hal

import (
	"context"

	"pocket/proto"
)

// nullRadio is the radio of a board without one.
type nullRadio struct{}

func (nullRadio) ScanWireless(context.Context) ([]proto.WirelessNetworkInfo, error) {
	return nil, ErrNotImplemented
}

func (nullRadio) SetBluetooth(bool) error { return ErrNotImplemented }

// nullBattery reports no gauge; callers fall back to an estimate.
type nullBattery struct{}

func (nullBattery) Percent() (uint8, error) { return 0, ErrNotImplemented }
