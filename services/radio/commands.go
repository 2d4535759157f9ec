package radio

import (
	"context"
	"time"

	"pocket/hal"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/logger"
)

const (
	DeauthSteps     = 5
	DeauthStepDelay = 500 * time.Millisecond
)

// Commands executes the menu commands that are not handled by the engine.
type Commands struct {
	radio hal.Radio
	sys   hal.System
	arena *menu.Arena
	sel   *menu.Selection
	in    *kernel.Mailbox[proto.MenuCommand]
	clock kernel.Clock
	log   logger.Client

	bluetooth bool
}

type CommandsConfig struct {
	Radio     hal.Radio
	System    hal.System
	Arena     *menu.Arena
	Selection *menu.Selection
	In        *kernel.Mailbox[proto.MenuCommand]
	Clock     kernel.Clock
	Log       logger.Client
}

func NewCommands(cfg CommandsConfig) *Commands {
	clock := cfg.Clock
	if clock == nil {
		clock = kernel.SystemClock{}
	}
	return &Commands{
		radio: cfg.Radio,
		sys:   cfg.System,
		arena: cfg.Arena,
		sel:   cfg.Selection,
		in:    cfg.In,
		clock: clock,
		log:   cfg.Log,
	}
}

func (c *Commands) Run(ctx context.Context) {
	for {
		cmd, ok := c.in.Recv(ctx)
		if !ok {
			return
		}
		c.Handle(ctx, cmd)
	}
}

// Bluetooth reports the last state the radio accepted.
func (c *Commands) Bluetooth() bool { return c.bluetooth }

func (c *Commands) Handle(ctx context.Context, cmd proto.MenuCommand) {
	switch cmd.Kind {
	case proto.CmdToggleBluetooth:
		c.toggleBluetooth()
	case proto.CmdReboot:
		c.log.Logf("rebooting")
		if err := c.sys.Reset(); err != nil {
			c.log.Logf("reboot: %v", err)
		}
	case proto.CmdDeauthTest:
		c.deauthTest(ctx)
	case proto.CmdClearSelection:
		c.sel.Clear()
		c.log.Logf("selection cleared")
	case proto.CmdScanBluetooth:
		c.log.Logf("bluetooth scan: %v", hal.ErrNotImplemented)
	default:
		c.log.Logf("ignored %v", cmd)
	}
}

func (c *Commands) toggleBluetooth() {
	on := !c.bluetooth
	if err := c.radio.SetBluetooth(on); err != nil {
		c.log.Logf("bluetooth: %v", err)
		return
	}
	c.bluetooth = on
	if on {
		c.log.Logf("bluetooth on")
	} else {
		c.log.Logf("bluetooth off")
	}
}

// deauthTest is a diagnostic dry run against the selected network: it only
// logs a fixed number of steps.
func (c *Commands) deauthTest(ctx context.Context) {
	n, ok := c.sel.Resolve(c.arena)
	if !ok {
		c.log.Logf("deauth test: no network selected")
		return
	}
	c.log.Logf("deauth test: %v", n)
	for i := 1; i <= DeauthSteps; i++ {
		if !c.clock.Sleep(ctx, DeauthStepDelay) {
			return
		}
		c.log.Logf("deauth test: %s step %d/%d", n.SSID, i, DeauthSteps)
	}
	c.log.Logf("deauth test: done")
}
