package hal

import (
	"context"
	"errors"
	"time"

	"pocket/proto"
)

// Logger writes newline-delimited log lines.
type Logger interface {
	WriteLineString(s string)
	WriteLineBytes(b []byte)
}

var ErrNotImplemented = errors.New("not implemented")

// PixelFormat defines the framebuffer pixel encoding.
type PixelFormat uint8

const (
	// PixelFormatMono1 is 1bpp, row-major, most significant bit leftmost.
	PixelFormatMono1 PixelFormat = iota + 1
)

// Framebuffer is a simple pixel buffer plus a "present" hook.
type Framebuffer interface {
	Width() int
	Height() int
	Format() PixelFormat
	StrideBytes() int
	Buffer() []byte
	Clear()
	Present() error
}

// Display provides access to one panel's framebuffer.
type Display interface {
	Framebuffer() Framebuffer
}

// Button is a momentary push button.
type Button interface {
	IsPressed() bool
}

// Buttons groups the three physical buttons.
type Buttons struct {
	Up     Button
	Down   Button
	Select Button
}

// Radio provides wireless scanning and the Bluetooth switch.
type Radio interface {
	ScanWireless(ctx context.Context) ([]proto.WirelessNetworkInfo, error)
	SetBluetooth(on bool) error
}

// Battery samples the remaining charge.
type Battery interface {
	Percent() (uint8, error)
}

// Clock is the wall clock shown in the status bar.
type Clock interface {
	Now() time.Time
}

// System controls the device itself.
type System interface {
	// Reset restarts the device. It does not return on success.
	Reset() error
}

// HAL provides the only contact point between the firmware and the outside world.
type HAL interface {
	Logger() Logger
	MenuDisplay() Display
	StatusDisplay() Display
	Buttons() Buttons
	Radio() Radio
	Battery() Battery
	Clock() Clock
	System() System
}
