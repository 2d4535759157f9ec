package proto

// ControlKind identifies a menu-to-menu control message.
type ControlKind uint8

const (
	// CtlMount pushes a (dynamic) menu onto the navigation stack.
	CtlMount ControlKind = iota + 1
	// CtlTopBar forwards a status to the top bar cell.
	CtlTopBar
)

func (k ControlKind) String() string {
	switch k {
	case CtlMount:
		return "mount"
	case CtlTopBar:
		return "top_bar"
	default:
		return "unknown"
	}
}

// Control is delivered to the menu engine by producer tasks.
type Control struct {
	Kind   ControlKind
	Menu   MenuRef
	TopBar TopBarMode
}

func Mount(m MenuRef) Control { return Control{Kind: CtlMount, Menu: m} }

func PublishTopBar(s TopBarMode) Control { return Control{Kind: CtlTopBar, TopBar: s} }
