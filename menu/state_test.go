package menu

import (
	"math/rand"
	"testing"

	"pocket/proto"
)

const visible = 3

func checkInvariants(t *testing.T, s *State, n int) {
	t.Helper()
	if s.Depth() < 1 || s.Depth() > MaxDepth {
		t.Fatalf("depth = %d, want in [1, %d]", s.Depth(), MaxDepth)
	}
	if n > 0 && (s.Selected < 0 || s.Selected >= n) {
		t.Fatalf("selected = %d, want in [0, %d)", s.Selected, n)
	}
	if n == 0 && s.Selected != 0 {
		t.Fatalf("selected = %d on empty menu, want 0", s.Selected)
	}
	if s.Scroll > s.Selected || s.Selected >= s.Scroll+visible {
		t.Fatalf("scroll = %d, selected = %d: want scroll <= selected < scroll+%d", s.Scroll, s.Selected, visible)
	}
}

func TestStateUpDownWrap(t *testing.T) {
	root := proto.MenuRef{Slot: 0, Gen: 1}
	s := NewState(root)
	const n = 5

	s.Up(n)
	if s.Selected != n-1 {
		t.Fatalf("Up() from 0 = %d, want %d", s.Selected, n-1)
	}
	s.Down(n)
	if s.Selected != 0 {
		t.Fatalf("Down() from last = %d, want 0", s.Selected)
	}
	s.Down(n)
	if s.Selected != 1 {
		t.Fatalf("Down() = %d, want 1", s.Selected)
	}
}

func TestStateEmptyMenu(t *testing.T) {
	s := NewState(proto.MenuRef{Gen: 1})
	s.Up(0)
	s.Down(0)
	s.Normalize(0, visible)
	checkInvariants(t, &s, 0)
}

func TestStateRandomWalkInvariants(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for n := 1; n <= 9; n++ {
		s := NewState(proto.MenuRef{Gen: 1})
		for i := 0; i < 500; i++ {
			if rng.Intn(2) == 0 {
				s.Up(n)
			} else {
				s.Down(n)
			}
			s.Normalize(n, visible)
			checkInvariants(t, &s, n)
		}
	}
}

func TestStateEnterDepthLimit(t *testing.T) {
	s := NewState(proto.MenuRef{Slot: 0, Gen: 1})
	for d := 2; d <= MaxDepth; d++ {
		if !s.Enter(proto.MenuRef{Slot: uint16(d), Gen: 1}) {
			t.Fatalf("Enter() at depth %d = false, want true", d-1)
		}
		if s.Depth() != d {
			t.Fatalf("Depth() = %d, want %d", s.Depth(), d)
		}
	}
	top := s.Current()
	if s.Enter(proto.MenuRef{Slot: 99, Gen: 1}) {
		t.Fatal("Enter() at max depth = true, want false")
	}
	if s.Depth() != MaxDepth || s.Current() != top {
		t.Fatalf("stack changed on overflow: depth %d, top %s", s.Depth(), s.Current())
	}
}

func TestStateBack(t *testing.T) {
	root := proto.MenuRef{Slot: 0, Gen: 1}
	s := NewState(root)
	if s.Back() {
		t.Fatal("Back() at root = true, want false")
	}
	if s.Depth() != 1 {
		t.Fatalf("Depth() = %d after Back at root, want 1", s.Depth())
	}

	s.Enter(proto.MenuRef{Slot: 1, Gen: 1})
	s.Selected, s.Scroll = 2, 1
	if !s.Back() {
		t.Fatal("Back() = false, want true")
	}
	if s.Depth() != 1 || s.Current() != root {
		t.Fatalf("after Back: depth %d top %s, want 1 %s", s.Depth(), s.Current(), root)
	}
	if s.Selected != 0 || s.Scroll != 0 {
		t.Fatalf("after Back: selected %d scroll %d, want 0 0", s.Selected, s.Scroll)
	}
}

func TestStateScrollFollowsSelection(t *testing.T) {
	s := NewState(proto.MenuRef{Gen: 1})
	const n = 5
	for i := 0; i < 4; i++ {
		s.Down(n)
		s.Normalize(n, visible)
	}
	if s.Selected != 4 || s.Scroll != 2 {
		t.Fatalf("after 4x Down: selected %d scroll %d, want 4 2", s.Selected, s.Scroll)
	}

	s.Down(n)
	s.Normalize(n, visible)
	if s.Selected != 0 || s.Scroll != 0 {
		t.Fatalf("after wrap: selected %d scroll %d, want 0 0", s.Selected, s.Scroll)
	}
}

func TestStateNormalizeShrunkMenu(t *testing.T) {
	s := NewState(proto.MenuRef{Gen: 1})
	s.Selected, s.Scroll = 7, 5
	s.Normalize(2, visible)
	if s.Selected != 1 || s.Scroll != 0 {
		t.Fatalf("Normalize(2) = selected %d scroll %d, want 1 0", s.Selected, s.Scroll)
	}
}

func TestStateReadableByValue(t *testing.T) {
	root := proto.MenuRef{Slot: 2, Gen: 1}
	if NewState(root).Depth() != 1 || NewState(root).Current() != root {
		t.Fatalf("NewState(%v) = depth %d current %v", root, NewState(root).Depth(), NewState(root).Current())
	}
}
