// Package gfx draws text and boxes on a monochrome panel.
package gfx

import (
	"image/color"
	"unicode/utf8"

	"pocket/fonts/font6x8"
	"pocket/hal"

	"tinygo.org/x/tinyfont"
)

const (
	// CharWidth is the horizontal advance of one character.
	CharWidth = font6x8.Width
	// RowHeight is the height of one text row.
	RowHeight = font6x8.Height
)

// Style selects how text is drawn.
type Style uint8

const (
	// Normal draws lit glyphs on whatever is underneath.
	Normal Style = iota
	// Inverted draws dark glyphs, for text on a filled bar.
	Inverted
)

var (
	white = color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	black = color.RGBA{A: 0xff}
)

// Surface is what renderers draw on.
type Surface interface {
	Width() int
	Clear()
	DrawText(x, y int16, s string, style Style)
	FillRect(x, y int16, w, h uint16)
	Flush() error
}

// Screen is a Surface over one panel framebuffer.
type Screen struct {
	d    fbDisplay
	font tinyfont.Fonter
}

func NewScreen(fb hal.Framebuffer) *Screen {
	return &Screen{d: fbDisplay{fb: fb}, font: font6x8.Font}
}

func (s *Screen) Width() int {
	w, _ := s.d.Size()
	return int(w)
}

func (s *Screen) Clear() {
	if s.d.fb != nil {
		s.d.fb.Clear()
	}
}

// DrawText draws s with the top of its row at y. Text past the right edge is clipped.
func (s *Screen) DrawText(x, y int16, str string, style Style) {
	c := white
	if style == Inverted {
		c = black
	}
	tinyfont.WriteLine(&s.d, s.font, x, y+font6x8.Ascent, str, c)
}

// FillRect lights a w by h box with its top-left corner at (x, y).
func (s *Screen) FillRect(x, y int16, w, h uint16) {
	s.d.FillRectangle(x, y, int16(w), int16(h), white)
}

// Flush pushes the drawn frame to the panel.
func (s *Screen) Flush() error { return s.d.Display() }

// TextWidth is the pixel width of s.
func TextWidth(s string) int {
	return utf8.RuneCountInString(s) * CharWidth
}

// ScrollOffset is how far a label of textWidth pixels has scrolled left after
// tick frames. It advances one pixel every two ticks and wraps after the label
// plus gap has passed.
func ScrollOffset(textWidth int, tick uint32, gap int) int {
	period := textWidth + gap
	if period <= 0 {
		return 0
	}
	return int((tick / 2) % uint32(period))
}

// ScrollLabel draws text on row y. Text wider than the surface loops leftward,
// followed by a gap, at the offset for tick.
func ScrollLabel(s Surface, y int16, text string, tick uint32, gap int) {
	w := TextWidth(text)
	if w <= s.Width() {
		s.DrawText(0, y, text, Normal)
		return
	}
	x := -ScrollOffset(w, tick, gap)
	s.DrawText(int16(x), y, text, Normal)
	s.DrawText(int16(x+w+gap), y, text, Normal)
}
