package proto

import "testing"

func TestStrings(t *testing.T) {
	for _, tc := range []struct {
		got, want string
	}{
		{WirelessNetworkInfo{SSID: "Lab", RSSI: -42, Channel: 6}.String(), "SSID: Lab | RSSI: -42 dBm | CH: 6"},
		{Clock{Hours: 9, Minutes: 5}.String(), "09:05"},
		{Command(CmdDeauthTest).String(), "deauth_test"},
		{CommandKind(0).String(), "unknown"},
		{MenuRef{Slot: 3, Gen: 1}.String(), "menu#3.1"},
		{NetworkRef{Batch: 1, Gen: 2, Index: 4}.String(), "net#1.2[4]"},
		{Mount(MenuRef{}).Kind.String(), "mount"},
		{NetworkDetail(WirelessNetworkInfo{}).Kind.String(), "wireless_network"},
	} {
		if tc.got != tc.want {
			t.Fatalf("String() = %q, want %q", tc.got, tc.want)
		}
	}
}

func TestRefValidity(t *testing.T) {
	if (MenuRef{}).Valid() || (NetworkRef{}).Valid() {
		t.Fatal("zero refs report valid")
	}
	if !EnterDynamic(MenuRef{Slot: 1, Gen: 1}).Menu.Valid() {
		t.Fatal("EnterDynamic lost its menu")
	}
}
