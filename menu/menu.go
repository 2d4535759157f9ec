// Package menu holds the navigation model: an arena of immutable menus,
// the menu stack state machine, and the selected-network slot.
package menu

import "pocket/proto"

// ActionKind tags the union carried by Action.
type ActionKind uint8

const (
	ActionEnter ActionKind = iota + 1
	ActionCommand
	ActionSelectNetwork
)

func (k ActionKind) String() string {
	switch k {
	case ActionEnter:
		return "enter"
	case ActionCommand:
		return "command"
	case ActionSelectNetwork:
		return "select_network"
	default:
		return "unknown"
	}
}

// Action is what happens when an item is selected. Only the field matching
// Kind is meaningful.
type Action struct {
	Kind    ActionKind
	Menu    proto.MenuRef
	Command proto.MenuCommand
	Network proto.NetworkRef
}

func Enter(m proto.MenuRef) Action { return Action{Kind: ActionEnter, Menu: m} }

func Trigger(c proto.MenuCommand) Action { return Action{Kind: ActionCommand, Command: c} }

func SelectNetwork(n proto.NetworkRef) Action {
	return Action{Kind: ActionSelectNetwork, Network: n}
}

// Item is one row of a menu.
type Item struct {
	Label  string
	Action Action
}

// Menu is never mutated once it is in the arena.
type Menu struct {
	Title string
	Items []Item
}

// Len returns the number of items.
func (m *Menu) Len() int {
	if m == nil {
		return 0
	}
	return len(m.Items)
}

// Item returns the i-th item, or false when out of range.
func (m *Menu) Item(i int) (Item, bool) {
	if m == nil || i < 0 || i >= len(m.Items) {
		return Item{}, false
	}
	return m.Items[i], true
}
