package proto

// ButtonEvent is a classified, debounced button press.
type ButtonEvent uint8

const (
	ButtonUp ButtonEvent = iota + 1
	ButtonDown
	ButtonSelect
	// ButtonBack is produced by a long press of Select.
	ButtonBack
)

func (e ButtonEvent) String() string {
	switch e {
	case ButtonUp:
		return "up"
	case ButtonDown:
		return "down"
	case ButtonSelect:
		return "select"
	case ButtonBack:
		return "back"
	default:
		return "unknown"
	}
}
