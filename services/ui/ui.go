// Package ui is the menu engine: it owns the navigation state, reacts to
// buttons and control messages, and draws the menu panel.
package ui

import (
	"context"

	"pocket/gfx"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/logger"
)

const (
	titleHeight  = gfx.RowHeight
	rowHeight    = gfx.RowHeight
	panelHeight  = 32
	VisibleLines = (panelHeight - titleHeight) / rowHeight

	selectedMarker = "*"
)

// Config wires the engine to the bus.
type Config struct {
	Arena     *menu.Arena
	Root      proto.MenuRef
	Selection *menu.Selection

	Buttons  *kernel.Mailbox[proto.ButtonEvent]
	Control  *kernel.Mailbox[proto.Control]
	Commands *kernel.Mailbox[proto.MenuCommand]
	Scan     *kernel.Signal
	Status   *kernel.Latest[proto.TopBarMode]

	Screen gfx.Surface
	Log    logger.Client
}

type Service struct {
	cfg   Config
	state menu.State
	flush logger.Throttle
}

func New(cfg Config) *Service {
	return &Service{
		cfg:   cfg,
		state: menu.NewState(cfg.Root),
		flush: logger.Throttle{N: 100},
	}
}

// State returns a copy of the navigation state.
func (s *Service) State() menu.State { return s.state }

func (s *Service) Run(ctx context.Context) {
	s.Render()
	for {
		select {
		case <-ctx.Done():
			return
		case ev := <-s.cfg.Buttons.C():
			s.HandleButton(ev)
		case c := <-s.cfg.Control.C():
			s.HandleControl(c)
		}
		s.Render()
	}
}

// HandleButton applies one button event, then drains at most one pending
// control message and previews a highlighted network on the top bar.
func (s *Service) HandleButton(ev proto.ButtonEvent) {
	cur, _ := s.cfg.Arena.Menu(s.state.Current())
	n := cur.Len()

	switch ev {
	case proto.ButtonUp:
		s.state.Up(n)
	case proto.ButtonDown:
		s.state.Down(n)
	case proto.ButtonSelect:
		if it, ok := cur.Item(s.state.Selected); ok {
			s.dispatch(it.Action)
		}
	case proto.ButtonBack:
		s.state.Back()
	}
	s.normalize()

	if c, ok := s.cfg.Control.TryRecv(); ok {
		s.apply(c)
		s.normalize()
	}
	s.preview()
}

// HandleControl applies a control message that arrived while no button was
// pending.
func (s *Service) HandleControl(c proto.Control) {
	s.apply(c)
	s.normalize()
	s.preview()
}

func (s *Service) dispatch(a menu.Action) {
	switch a.Kind {
	case menu.ActionEnter:
		s.enter(a.Menu)
	case menu.ActionCommand:
		switch a.Command.Kind {
		case proto.CmdEnterDynamic:
			s.enter(a.Command.Menu)
		case proto.CmdScanWireless:
			s.cfg.Scan.Raise()
		default:
			if res := s.cfg.Commands.TrySend(a.Command); res != kernel.SendOK {
				s.cfg.Log.Logf("command %v dropped: %v", a.Command, res)
			}
		}
	case menu.ActionSelectNetwork:
		s.cfg.Selection.Store(a.Network)
		s.cfg.Log.Logf("selected %v", a.Network)
	}
}

func (s *Service) apply(c proto.Control) {
	switch c.Kind {
	case proto.CtlMount:
		s.enter(c.Menu)
	case proto.CtlTopBar:
		s.cfg.Status.Publish(c.TopBar)
	}
}

// enter pushes m. A full stack or a retired menu leaves the state alone.
func (s *Service) enter(m proto.MenuRef) {
	if _, ok := s.cfg.Arena.Menu(m); !ok {
		s.cfg.Log.Logf("enter %v: no such menu", m)
		return
	}
	if !s.state.Enter(m) {
		s.cfg.Log.Logf("enter %v: stack full", m)
	}
}

func (s *Service) normalize() {
	cur, _ := s.cfg.Arena.Menu(s.state.Current())
	s.state.Normalize(cur.Len(), VisibleLines)
}

func (s *Service) preview() {
	cur, _ := s.cfg.Arena.Menu(s.state.Current())
	it, ok := cur.Item(s.state.Selected)
	if !ok || it.Action.Kind != menu.ActionSelectNetwork {
		return
	}
	if info, ok := s.cfg.Arena.Network(it.Action.Network); ok {
		s.cfg.Status.Publish(proto.NetworkDetail(info))
	}
}

// Render draws the current menu: title on top, then up to VisibleLines
// items with the highlighted one inverted.
func (s *Service) Render() {
	// The panic screen owns the menu display from then on.
	if kernel.InPanicMode() {
		return
	}
	scr := s.cfg.Screen
	scr.Clear()

	cur, ok := s.cfg.Arena.Menu(s.state.Current())
	if ok {
		scr.DrawText(0, 0, cur.Title, gfx.Normal)
		for i := 0; i < VisibleLines; i++ {
			idx := s.state.Scroll + i
			it, ok := cur.Item(idx)
			if !ok {
				break
			}
			label := it.Label
			if it.Action.Kind == menu.ActionSelectNetwork && s.cfg.Selection.Is(it.Action.Network) {
				label = selectedMarker + label
			}
			y := int16(titleHeight + i*rowHeight)
			if idx == s.state.Selected {
				scr.FillRect(0, y, uint16(scr.Width()), rowHeight)
				scr.DrawText(0, y, label, gfx.Inverted)
			} else {
				scr.DrawText(0, y, label, gfx.Normal)
			}
		}
	}

	if err := scr.Flush(); err != nil && s.flush.Allow() {
		s.cfg.Log.Logf("flush failed (%d): %v", s.flush.Count(), err)
	}
}
