package proto

import (
	"errors"
	"fmt"
)

// ErrScanFailed is returned by radios that could not complete a scan.
var ErrScanFailed = errors.New("scan failed")

// WirelessNetworkInfo is one access point seen by a scan.
type WirelessNetworkInfo struct {
	SSID    string
	RSSI    int8
	Channel uint8
}

func (n WirelessNetworkInfo) String() string {
	return fmt.Sprintf("SSID: %s | RSSI: %d dBm | CH: %d", n.SSID, n.RSSI, n.Channel)
}
