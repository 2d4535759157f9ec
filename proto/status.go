package proto

import "fmt"

// TopBarKind selects what the secondary display shows.
type TopBarKind uint8

const (
	TopBarNormal TopBarKind = iota
	TopBarWirelessNetwork
)

func (k TopBarKind) String() string {
	switch k {
	case TopBarNormal:
		return "normal"
	case TopBarWirelessNetwork:
		return "wireless_network"
	default:
		return "unknown"
	}
}

// Clock is a wall-clock reading in hours and minutes.
type Clock struct {
	Hours   uint8
	Minutes uint8
}

func (c Clock) String() string { return fmt.Sprintf("%02d:%02d", c.Hours, c.Minutes) }

// TopBarMode is the latest state of the status display.
//
// Battery and Time are set for TopBarNormal; Network for
// TopBarWirelessNetwork.
type TopBarMode struct {
	Kind    TopBarKind
	Battery uint8
	Time    Clock
	Network WirelessNetworkInfo
}

func Normal(battery uint8, t Clock) TopBarMode {
	return TopBarMode{Kind: TopBarNormal, Battery: battery, Time: t}
}

func NetworkDetail(n WirelessNetworkInfo) TopBarMode {
	return TopBarMode{Kind: TopBarWirelessNetwork, Network: n}
}
