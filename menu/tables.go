package menu

import "pocket/proto"

// Tables are the menus that exist from boot.
type Tables struct {
	Root     proto.MenuRef
	Settings proto.MenuRef
	Radio    proto.MenuRef
}

// RegisterStatic builds the boot-time menu tree in a.
func RegisterStatic(a *Arena) Tables {
	var t Tables
	t.Settings = a.AddStatic("Settings", []Item{
		{Label: "Bluetooth", Action: Trigger(proto.Command(proto.CmdToggleBluetooth))},
	})
	t.Radio = a.AddStatic("Radio Test", []Item{
		{Label: "BLE Scan", Action: Trigger(proto.Command(proto.CmdScanBluetooth))},
		{Label: "WiFi Scan", Action: Trigger(proto.Command(proto.CmdScanWireless))},
		{Label: "Deauth Test", Action: Trigger(proto.Command(proto.CmdDeauthTest))},
		{Label: "Clear Selection", Action: Trigger(proto.Command(proto.CmdClearSelection))},
	})
	t.Root = a.AddStatic("Main Menu", []Item{
		{Label: "Settings", Action: Enter(t.Settings)},
		{Label: "Radio Test", Action: Enter(t.Radio)},
		{Label: "Reboot", Action: Trigger(proto.Command(proto.CmdReboot))},
	})
	return t
}

// WirelessTitle is the title of menus built from scan results.
const WirelessTitle = "Wireless Networks"

// BuildWireless stores nets in the arena and mounts a menu with one
// select-network item per record. It reports false for an empty scan; no
// empty menu is ever mounted.
func BuildWireless(a *Arena, nets []proto.WirelessNetworkInfo) (proto.MenuRef, bool) {
	if len(nets) == 0 {
		return proto.MenuRef{}, false
	}
	b := a.AddBatch(nets)
	items := make([]Item, len(nets))
	for i, n := range nets {
		label := n.SSID
		if label == "" {
			label = "<hidden>"
		}
		items[i] = Item{Label: label, Action: SelectNetwork(b.Network(i))}
	}
	return a.Mount(WirelessTitle, items), true
}
