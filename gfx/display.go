package gfx

import (
	"image/color"

	"pocket/hal"
)

// fbDisplay adapts a mono framebuffer to drivers.Displayer for tinyfont.
// Any non-black color lights the pixel.
type fbDisplay struct {
	fb hal.Framebuffer
}

func (d *fbDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.fb.Height())
}

func (d *fbDisplay) SetPixel(x, y int16, c color.RGBA) {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatMono1 {
		return
	}
	hal.SetMono(d.fb, int(x), int(y), lit(c))
}

func (d *fbDisplay) Display() error {
	if d.fb == nil {
		return nil
	}
	return d.fb.Present()
}

func (d *fbDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	if d.fb == nil || d.fb.Format() != hal.PixelFormatMono1 {
		return nil
	}
	w := d.fb.Width()
	h := d.fb.Height()

	x0 := clampInt(int(x), 0, w)
	y0 := clampInt(int(y), 0, h)
	x1 := clampInt(int(x)+int(width), 0, w)
	y1 := clampInt(int(y)+int(height), 0, h)
	on := lit(c)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			hal.SetMono(d.fb, px, py, on)
		}
	}
	return nil
}

func lit(c color.RGBA) bool { return c.R|c.G|c.B != 0 }

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
