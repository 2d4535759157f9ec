package menu

import "pocket/proto"

// MaxDepth is the deepest the menu stack can grow.
const MaxDepth = 4

// State is the navigation state: a bounded stack of menus plus the
// highlighted row and the first visible row of the top menu.
//
// Invariants after Normalize: 1 <= depth <= MaxDepth; Selected < n when the
// menu has n > 0 items, else Selected == 0; Scroll <= Selected <
// Scroll+visible.
type State struct {
	stack [MaxDepth]proto.MenuRef
	depth int

	Selected int
	Scroll   int
}

func NewState(root proto.MenuRef) State {
	s := State{depth: 1}
	s.stack[0] = root
	return s
}

func (s State) Depth() int { return s.depth }

// Current returns the top of the stack.
func (s State) Current() proto.MenuRef { return s.stack[s.depth-1] }

// Enter pushes m and resets the cursor. A full stack ignores the push.
func (s *State) Enter(m proto.MenuRef) bool {
	if s.depth >= MaxDepth {
		return false
	}
	s.stack[s.depth] = m
	s.depth++
	s.Selected = 0
	s.Scroll = 0
	return true
}

// Back pops one level and resets the cursor. The root is never popped.
func (s *State) Back() bool {
	if s.depth <= 1 {
		return false
	}
	s.depth--
	s.stack[s.depth] = proto.MenuRef{}
	s.Selected = 0
	s.Scroll = 0
	return true
}

// Up moves the highlight up in a menu of n items, wrapping to the last row.
func (s *State) Up(n int) {
	if n <= 0 {
		s.Selected = 0
		return
	}
	if s.Selected > 0 {
		s.Selected--
		return
	}
	s.Selected = n - 1
}

// Down moves the highlight down in a menu of n items, wrapping to the top.
func (s *State) Down(n int) {
	if n <= 0 {
		s.Selected = 0
		return
	}
	if s.Selected+1 < n {
		s.Selected++
		return
	}
	s.Selected = 0
}

// Normalize clamps the cursor into a menu of n items with visible rows.
func (s *State) Normalize(n, visible int) {
	if visible < 1 {
		visible = 1
	}
	if n <= 0 {
		s.Selected = 0
	} else if s.Selected >= n {
		s.Selected = n - 1
	}
	if s.Selected < 0 {
		s.Selected = 0
	}

	if s.Selected < s.Scroll {
		s.Scroll = s.Selected
	} else if s.Selected >= s.Scroll+visible {
		s.Scroll = s.Selected - (visible - 1)
	}
	if n <= visible {
		s.Scroll = 0
	}
}
