package app

import (
	"context"
	"errors"

	"pocket/gfx"
	"pocket/hal"
	"pocket/internal/buildinfo"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/battery"
	"pocket/services/input"
	"pocket/services/logger"
	"pocket/services/radio"
	"pocket/services/topbar"
	"pocket/services/ui"
)

const (
	busSlots = 4
	logSlots = 64
)

var errNoDisplay = errors.New("app: display unavailable")

// bus is every queue and cell the tasks share.
type bus struct {
	logs     *kernel.Mailbox[string]
	buttons  *kernel.Mailbox[proto.ButtonEvent]
	commands *kernel.Mailbox[proto.MenuCommand]
	control  *kernel.Mailbox[proto.Control]
	scan     *kernel.Signal
	status   *kernel.Latest[proto.TopBarMode]
}

func newBus() *bus {
	return &bus{
		logs:     kernel.NewMailbox[string](logSlots),
		buttons:  kernel.NewMailbox[proto.ButtonEvent](busSlots),
		commands: kernel.NewMailbox[proto.MenuCommand](busSlots),
		control:  kernel.NewMailbox[proto.Control](busSlots),
		scan:     kernel.NewSignal(),
		status:   &kernel.Latest[proto.TopBarMode]{},
	}
}

// Run starts every task against h and blocks until ctx is done.
func Run(ctx context.Context, h hal.HAL) error {
	menuFB, statFB, err := framebuffers(h)
	if err != nil {
		return err
	}
	installPanicHandler(h)

	b := newBus()
	log := logger.NewClient(b.logs, "boot")
	clock := kernel.SystemClock{}

	arena := menu.NewArena()
	tables := menu.RegisterStatic(arena)
	sel := &menu.Selection{}

	menuScreen, statScreen := gfx.NewScreen(menuFB), gfx.NewScreen(statFB)
	if err := bootScreen(menuScreen, "starting tasks"); err != nil {
		log.Logf("boot screen: %v", err)
	}

	kernel.Go(ctx, "logger", logger.New(h.Logger(), b.logs))
	log.Logf("pocket %s booting", buildinfo.Short())

	kernel.Go(ctx, "input", input.New(h.Buttons(), clock, b.buttons, log.With("input")))
	kernel.Go(ctx, "menu", ui.New(ui.Config{
		Arena:     arena,
		Root:      tables.Root,
		Selection: sel,
		Buttons:   b.buttons,
		Control:   b.control,
		Commands:  b.commands,
		Scan:      b.scan,
		Status:    b.status,
		Screen:    menuScreen,
		Log:       log.With("menu"),
	}))
	kernel.Go(ctx, "topbar", topbar.New(topbar.Config{
		Status:    b.status,
		Screen:    statScreen,
		Clock:     clock,
		Wall:      h.Clock(),
		Arena:     arena,
		Selection: sel,
		Log:       log.With("topbar"),
	}))
	kernel.Go(ctx, "battery", battery.New(h.Battery(), h.Clock(), clock, b.status, log.With("battery")))
	kernel.Go(ctx, "scan", radio.NewScanner(h.Radio(), arena, b.scan, b.control, log.With("scan")))
	kernel.Go(ctx, "cmd", radio.NewCommands(radio.CommandsConfig{
		Radio:     h.Radio(),
		System:    h.System(),
		Arena:     arena,
		Selection: sel,
		In:        b.commands,
		Clock:     clock,
		Log:       log.With("cmd"),
	}))

	<-ctx.Done()
	return nil
}

func framebuffers(h hal.HAL) (menuFB, statFB hal.Framebuffer, err error) {
	md, sd := h.MenuDisplay(), h.StatusDisplay()
	if md == nil || sd == nil {
		return nil, nil, errNoDisplay
	}
	menuFB, statFB = md.Framebuffer(), sd.Framebuffer()
	if menuFB == nil || statFB == nil {
		return nil, nil, errNoDisplay
	}
	return menuFB, statFB, nil
}
