package gfx

import (
	"errors"
	"testing"

	"pocket/hal"
)

type memFramebuffer struct {
	w, h     int
	buf      []byte
	presents int
	err      error
}

func newMemFramebuffer(w, h int) *memFramebuffer {
	return &memFramebuffer{w: w, h: h, buf: make([]byte, (w+7)/8*h)}
}

func (f *memFramebuffer) Width() int              { return f.w }
func (f *memFramebuffer) Height() int             { return f.h }
func (f *memFramebuffer) Format() hal.PixelFormat { return hal.PixelFormatMono1 }
func (f *memFramebuffer) StrideBytes() int        { return (f.w + 7) / 8 }
func (f *memFramebuffer) Buffer() []byte          { return f.buf }
func (f *memFramebuffer) Clear()                  { clear(f.buf) }
func (f *memFramebuffer) Present() error {
	f.presents++
	return f.err
}

func countLit(fb hal.Framebuffer, x0, y0, x1, y1 int) int {
	n := 0
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			if hal.MonoAt(fb, x, y) {
				n++
			}
		}
	}
	return n
}

func TestDrawTextRow(t *testing.T) {
	fb := newMemFramebuffer(128, 32)
	s := NewScreen(fb)

	s.DrawText(0, 8, "Hi", Normal)
	if countLit(fb, 0, 8, 12, 16) == 0 {
		t.Fatal("no pixels in row 1")
	}
	if n := countLit(fb, 0, 0, 128, 8) + countLit(fb, 0, 16, 128, 32); n != 0 {
		t.Fatalf("%d pixels outside row 1", n)
	}
	if n := countLit(fb, 12, 8, 128, 16); n != 0 {
		t.Fatalf("%d pixels past the text", n)
	}
}

func TestInvertedTextOnBar(t *testing.T) {
	fb := newMemFramebuffer(128, 32)
	s := NewScreen(fb)

	s.FillRect(0, 0, 128, 8)
	full := countLit(fb, 0, 0, 128, 8)
	if full != 128*8 {
		t.Fatalf("bar: %d lit, want %d", full, 128*8)
	}
	s.DrawText(0, 0, "A", Inverted)
	if got := countLit(fb, 0, 0, 128, 8); got >= full {
		t.Fatal("inverted text did not clear any pixels")
	}
}

func TestFillRectClips(t *testing.T) {
	fb := newMemFramebuffer(16, 8)
	s := NewScreen(fb)
	s.FillRect(-4, -4, 8, 8)
	if got := countLit(fb, 0, 0, 16, 8); got != 16 {
		t.Fatalf("lit: %d, want 16", got)
	}
}

func TestClearAndFlush(t *testing.T) {
	fb := newMemFramebuffer(128, 32)
	s := NewScreen(fb)
	s.DrawText(0, 0, "X", Normal)
	s.Clear()
	if countLit(fb, 0, 0, 128, 32) != 0 {
		t.Fatal("Clear left pixels")
	}

	if err := s.Flush(); err != nil || fb.presents != 1 {
		t.Fatalf("Flush: err=%v presents=%d", err, fb.presents)
	}
	fb.err = errors.New("bus")
	if err := s.Flush(); err == nil {
		t.Fatal("expected flush error")
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("BAT:99%"); got != 42 {
		t.Fatalf("TextWidth: %d", got)
	}
	if got := TextWidth(""); got != 0 {
		t.Fatalf("TextWidth empty: %d", got)
	}
}

func TestScrollOffset(t *testing.T) {
	cases := []struct {
		width int
		tick  uint32
		gap   int
		want  int
	}{
		{200, 0, 10, 0},
		{200, 1, 10, 0},
		{200, 2, 10, 1},
		{200, 419, 10, 209},
		{200, 420, 10, 0},
		{0, 5, 0, 0},
	}
	for _, tc := range cases {
		if got := ScrollOffset(tc.width, tc.tick, tc.gap); got != tc.want {
			t.Fatalf("ScrollOffset(%d, %d, %d) = %d, want %d", tc.width, tc.tick, tc.gap, got, tc.want)
		}
	}
}

type textCall struct {
	x, y int16
	s    string
}

type recordingSurface struct {
	w     int
	texts []textCall
}

func (r *recordingSurface) Width() int { return r.w }
func (r *recordingSurface) Clear()     {}
func (r *recordingSurface) DrawText(x, y int16, s string, style Style) {
	r.texts = append(r.texts, textCall{x, y, s})
}
func (r *recordingSurface) FillRect(x, y int16, w, h uint16) {}
func (r *recordingSurface) Flush() error                     { return nil }

func TestScrollLabelShortTextIsStatic(t *testing.T) {
	r := &recordingSurface{w: 128}
	ScrollLabel(r, 0, "HomeNet", 99, 10)
	if len(r.texts) != 1 || r.texts[0].x != 0 {
		t.Fatalf("calls: %+v", r.texts)
	}
}

func TestScrollLabelLongTextLoops(t *testing.T) {
	r := &recordingSurface{w: 128}
	long := "ThisNetworkNameIsMuchTooLong" // 28 chars, 168px
	ScrollLabel(r, 0, long, 10, 10)
	if len(r.texts) != 2 {
		t.Fatalf("calls: %+v", r.texts)
	}
	if r.texts[0].x != -5 || r.texts[1].x != -5+168+10 {
		t.Fatalf("positions: %+v", r.texts)
	}
}
