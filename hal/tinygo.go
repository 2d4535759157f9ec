//go:build tinygo && baremetal

package hal

import (
	"image/color"
	"machine"
	"time"

	"tinygo.org/x/drivers/ssd1306"
)

const (
	// Both panels share I2C0; the status panel has its address jumper set.
	menuPanelAddr   = 0x3C
	statusPanelAddr = 0x3D
	panelWidth      = 128
	panelHeight     = 32

	i2cSDA = machine.GP4
	i2cSCL = machine.GP5

	pinUp     = machine.GP10
	pinDown   = machine.GP11
	pinSelect = machine.GP12
)

type tinyGoHAL struct {
	logger  *uartLogger
	menu    Framebuffer
	status  Framebuffer
	buttons Buttons
	boot    time.Time
}

// New returns a Raspberry Pi Pico HAL implementation.
//
// UART: UART0 on GP0 (TX) / GP1 (RX), 115200 8N1.
// Panels: two SSD1306 128x32 on I2C0 (GP4 SDA, GP5 SCL).
// Buttons: GP10 up, GP11 down, GP12 select, active low.
func New() HAL {
	uart := machine.UART0
	uart.Configure(machine.UARTConfig{
		BaudRate: 115200,
		TX:       machine.GP0,
		RX:       machine.GP1,
	})
	logger := &uartLogger{uart: uart}

	h := &tinyGoHAL{logger: logger, boot: time.Now()}
	h.menu, h.status = newPanels(logger)
	h.buttons = Buttons{
		Up:     newPinButton(pinUp, "UP"),
		Down:   newPinButton(pinDown, "DOWN"),
		Select: newPinButton(pinSelect, "SELECT"),
	}
	return h
}

func (h *tinyGoHAL) Logger() Logger         { return h.logger }
func (h *tinyGoHAL) MenuDisplay() Display   { return tinyGoDisplay{fb: h.menu} }
func (h *tinyGoHAL) StatusDisplay() Display { return tinyGoDisplay{fb: h.status} }
func (h *tinyGoHAL) Buttons() Buttons       { return h.buttons }
func (h *tinyGoHAL) Radio() Radio           { return nullRadio{} }
func (h *tinyGoHAL) Battery() Battery       { return nullBattery{} }
func (h *tinyGoHAL) Clock() Clock           { return uptimeClock{boot: h.boot} }
func (h *tinyGoHAL) System() System         { return cpuReset{} }

type tinyGoDisplay struct {
	fb Framebuffer
}

func (d tinyGoDisplay) Framebuffer() Framebuffer { return d.fb }

// newPanels brings up both SSD1306 panels. If the I2C bus cannot be
// configured, both are replaced by buffers whose Present reports the failure.
// A single unresponsive panel is not detected here; its Present errors instead.
func newPanels(l Logger) (menu, status Framebuffer) {
	i2c := machine.I2C0
	if err := i2c.Configure(machine.I2CConfig{
		Frequency: 400 * machine.KHz,
		SDA:       i2cSDA,
		SCL:       i2cSCL,
	}); err != nil {
		l.WriteLineString("hal: i2c: " + err.Error())
		return newStubFramebuffer(panelWidth, panelHeight), newStubFramebuffer(panelWidth, panelHeight)
	}
	time.Sleep(10 * time.Millisecond)
	return newSSD1306Framebuffer(i2c, menuPanelAddr), newSSD1306Framebuffer(i2c, statusPanelAddr)
}

var (
	panelOn  = color.RGBA{255, 255, 255, 255}
	panelOff = color.RGBA{0, 0, 0, 255}
)

// ssd1306Framebuffer keeps a mono buffer and pushes it to the panel on Present.
type ssd1306Framebuffer struct {
	dev    *ssd1306.Device
	stride int
	buf    []byte
}

func newSSD1306Framebuffer(i2c *machine.I2C, addr uint16) *ssd1306Framebuffer {
	dev := ssd1306.NewI2C(i2c)
	dev.Configure(ssd1306.Config{
		Address: addr,
		Width:   panelWidth,
		Height:  panelHeight,
	})
	dev.ClearDisplay()
	stride := monoStride(panelWidth)
	return &ssd1306Framebuffer{dev: dev, stride: stride, buf: make([]byte, stride*panelHeight)}
}

func (f *ssd1306Framebuffer) Width() int          { return panelWidth }
func (f *ssd1306Framebuffer) Height() int         { return panelHeight }
func (f *ssd1306Framebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *ssd1306Framebuffer) StrideBytes() int    { return f.stride }
func (f *ssd1306Framebuffer) Buffer() []byte      { return f.buf }
func (f *ssd1306Framebuffer) Clear()              { clear(f.buf) }

func (f *ssd1306Framebuffer) Present() error {
	for y := 0; y < panelHeight; y++ {
		for x := 0; x < panelWidth; x++ {
			i, mask := monoIndex(f.stride, x, y)
			c := panelOff
			if f.buf[i]&mask != 0 {
				c = panelOn
			}
			f.dev.SetPixel(int16(x), int16(y), c)
		}
	}
	return f.dev.Display()
}

type stubFramebuffer struct {
	w, h int
	buf  []byte
}

func newStubFramebuffer(w, h int) *stubFramebuffer {
	return &stubFramebuffer{w: w, h: h, buf: make([]byte, monoStride(w)*h)}
}

func (f *stubFramebuffer) Width() int          { return f.w }
func (f *stubFramebuffer) Height() int         { return f.h }
func (f *stubFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *stubFramebuffer) StrideBytes() int    { return monoStride(f.w) }
func (f *stubFramebuffer) Buffer() []byte      { return f.buf }
func (f *stubFramebuffer) Clear()              { clear(f.buf) }
func (f *stubFramebuffer) Present() error      { return ErrNotImplemented }

type uartLogger struct {
	uart *machine.UART
}

func (l *uartLogger) WriteLineString(s string) {
	for i := 0; i < len(s); i++ {
		l.uart.WriteByte(s[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

func (l *uartLogger) WriteLineBytes(b []byte) {
	for i := 0; i < len(b); i++ {
		l.uart.WriteByte(b[i])
	}
	l.uart.WriteByte('\r')
	l.uart.WriteByte('\n')
}

// pinGPIO adapts a machine pin to GPIOPin.
type pinGPIO struct {
	pin  machine.Pin
	name string
}

func (p pinGPIO) Name() string { return p.name }
func (p pinGPIO) Caps() GPIOCaps {
	return GPIOCapInput | GPIOCapOutput | GPIOCapPullUp | GPIOCapPullDown
}

func (p pinGPIO) Configure(mode GPIOMode, pull GPIOPull) error {
	m := machine.PinInput
	switch {
	case mode == GPIOModeOutput:
		m = machine.PinOutput
	case pull == GPIOPullUp:
		m = machine.PinInputPullup
	case pull == GPIOPullDown:
		m = machine.PinInputPulldown
	}
	p.pin.Configure(machine.PinConfig{Mode: m})
	return nil
}

func (p pinGPIO) Read() (bool, error) { return p.pin.Get(), nil }

func (p pinGPIO) Write(level bool) error {
	p.pin.Set(level)
	return nil
}

func newPinButton(pin machine.Pin, name string) Button {
	// pinGPIO.Configure cannot fail.
	b, _ := NewActiveLowButton(pinGPIO{pin: pin, name: name})
	return b
}

// uptimeClock shows time since boot; the board has no RTC.
type uptimeClock struct {
	boot time.Time
}

func (c uptimeClock) Now() time.Time {
	return time.Time{}.Add(time.Since(c.boot))
}

type cpuReset struct{}

func (cpuReset) Reset() error {
	machine.CPUReset()
	return nil
}
