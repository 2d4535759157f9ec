package proto

// CommandKind identifies a side-effecting menu action.
type CommandKind uint8

const (
	CmdScanWireless CommandKind = iota + 1
	CmdScanBluetooth
	CmdToggleBluetooth
	CmdReboot
	CmdDeauthTest
	CmdClearSelection
	CmdEnterDynamic
)

func (k CommandKind) String() string {
	switch k {
	case CmdScanWireless:
		return "scan_wireless"
	case CmdScanBluetooth:
		return "scan_bluetooth"
	case CmdToggleBluetooth:
		return "toggle_bluetooth"
	case CmdReboot:
		return "reboot"
	case CmdDeauthTest:
		return "deauth_test"
	case CmdClearSelection:
		return "clear_selection"
	case CmdEnterDynamic:
		return "enter_dynamic"
	default:
		return "unknown"
	}
}

// MenuCommand is sent from the menu engine to the command handler.
//
// Menu is only meaningful for CmdEnterDynamic.
type MenuCommand struct {
	Kind CommandKind
	Menu MenuRef
}

func Command(k CommandKind) MenuCommand { return MenuCommand{Kind: k} }

func EnterDynamic(m MenuRef) MenuCommand {
	return MenuCommand{Kind: CmdEnterDynamic, Menu: m}
}

func (c MenuCommand) String() string { return c.Kind.String() }
