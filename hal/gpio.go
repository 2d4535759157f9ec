package hal

import (
	"fmt"
	"sync"
)

// GPIOMode selects whether a pin is an input or output.
type GPIOMode uint8

const (
	GPIOModeInput GPIOMode = iota
	GPIOModeOutput
)

// GPIOPull selects the pull resistor configuration.
type GPIOPull uint8

const (
	GPIOPullNone GPIOPull = iota
	GPIOPullUp
	GPIOPullDown
)

// GPIOCaps declares what operations a pin supports.
type GPIOCaps uint8

const (
	GPIOCapInput GPIOCaps = 1 << iota
	GPIOCapOutput
	GPIOCapPullUp
	GPIOCapPullDown
)

// GPIOPin is a single digital IO pin.
type GPIOPin interface {
	Name() string
	Caps() GPIOCaps
	Configure(mode GPIOMode, pull GPIOPull) error
	Read() (level bool, err error)
	Write(level bool) error
}

// virtualPin is a host pin. Inputs are driven from the outside through drive,
// the way a finger pulls a real pin to ground.
type virtualPin struct {
	mu    sync.Mutex
	name  string
	caps  GPIOCaps
	mode  GPIOMode
	pull  GPIOPull
	level bool
}

func newVirtualPin(name string, caps GPIOCaps) *virtualPin {
	return &virtualPin{
		name: name,
		caps: caps,
		mode: GPIOModeInput,
		pull: GPIOPullNone,
	}
}

func (p *virtualPin) Name() string   { return p.name }
func (p *virtualPin) Caps() GPIOCaps { return p.caps }

func (p *virtualPin) Configure(mode GPIOMode, pull GPIOPull) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch mode {
	case GPIOModeInput:
		if p.caps&GPIOCapInput == 0 {
			return fmt.Errorf("gpio: pin %s: input unsupported", p.name)
		}
	case GPIOModeOutput:
		if p.caps&GPIOCapOutput == 0 {
			return fmt.Errorf("gpio: pin %s: output unsupported", p.name)
		}
	default:
		return fmt.Errorf("gpio: pin %s: invalid mode", p.name)
	}

	switch pull {
	case GPIOPullNone:
	case GPIOPullUp:
		if p.caps&GPIOCapPullUp == 0 {
			return fmt.Errorf("gpio: pin %s: pull-up unsupported", p.name)
		}
		p.level = true
	case GPIOPullDown:
		if p.caps&GPIOCapPullDown == 0 {
			return fmt.Errorf("gpio: pin %s: pull-down unsupported", p.name)
		}
		p.level = false
	default:
		return fmt.Errorf("gpio: pin %s: invalid pull", p.name)
	}

	p.mode = mode
	p.pull = pull
	return nil
}

func (p *virtualPin) Read() (bool, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeInput && p.mode != GPIOModeOutput {
		return false, fmt.Errorf("gpio: pin %s: not configured", p.name)
	}
	return p.level, nil
}

func (p *virtualPin) Write(level bool) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.mode != GPIOModeOutput {
		return fmt.Errorf("gpio: pin %s: not in output mode", p.name)
	}
	p.level = level
	return nil
}

// drive sets the externally applied level of an input pin.
func (p *virtualPin) drive(level bool) {
	p.mu.Lock()
	p.level = level
	p.mu.Unlock()
}

// activeLowButton reads a pulled-up pin that the switch shorts to ground.
type activeLowButton struct {
	pin GPIOPin
}

// NewActiveLowButton configures pin as a pulled-up input and returns a Button
// that reports pressed while the pin reads low.
func NewActiveLowButton(pin GPIOPin) (Button, error) {
	if pin == nil {
		return nil, fmt.Errorf("gpio: nil pin")
	}
	if err := pin.Configure(GPIOModeInput, GPIOPullUp); err != nil {
		return nil, err
	}
	return activeLowButton{pin: pin}, nil
}

func (b activeLowButton) IsPressed() bool {
	level, err := b.pin.Read()
	if err != nil {
		return false
	}
	return !level
}

// hostButton is a virtual active-low button the host frontends press.
type hostButton struct {
	pin *virtualPin
	activeLowButton
}

func newHostButton(name string) *hostButton {
	pin := newVirtualPin(name, GPIOCapInput|GPIOCapPullUp)
	// Configure cannot fail: the caps above allow input with pull-up.
	_ = pin.Configure(GPIOModeInput, GPIOPullUp)
	return &hostButton{pin: pin, activeLowButton: activeLowButton{pin: pin}}
}

func (b *hostButton) set(pressed bool) { b.pin.drive(!pressed) }
