package hal

import "testing"

type testFramebuffer struct {
	w, h int
	buf  []byte
}

func newTestFramebuffer(w, h int) *testFramebuffer {
	return &testFramebuffer{w: w, h: h, buf: make([]byte, monoStride(w)*h)}
}

func (f *testFramebuffer) Width() int          { return f.w }
func (f *testFramebuffer) Height() int         { return f.h }
func (f *testFramebuffer) Format() PixelFormat { return PixelFormatMono1 }
func (f *testFramebuffer) StrideBytes() int    { return monoStride(f.w) }
func (f *testFramebuffer) Buffer() []byte      { return f.buf }
func (f *testFramebuffer) Clear()              { clear(f.buf) }
func (f *testFramebuffer) Present() error      { return nil }

func TestSetMono(t *testing.T) {
	fb := newTestFramebuffer(10, 2)

	SetMono(fb, 0, 0, true)
	SetMono(fb, 9, 1, true)
	if fb.buf[0] != 0x80 {
		t.Fatalf("byte 0: got %#x want 0x80", fb.buf[0])
	}
	if fb.buf[3] != 0x40 {
		t.Fatalf("byte 3: got %#x want 0x40", fb.buf[3])
	}
	if !MonoAt(fb, 9, 1) || MonoAt(fb, 8, 1) {
		t.Fatal("unexpected MonoAt result")
	}

	SetMono(fb, 0, 0, false)
	if fb.buf[0] != 0 {
		t.Fatalf("byte 0 after clear: %#x", fb.buf[0])
	}
}

func TestSetMonoOutOfRange(t *testing.T) {
	fb := newTestFramebuffer(8, 1)
	SetMono(fb, -1, 0, true)
	SetMono(fb, 8, 0, true)
	SetMono(fb, 0, 1, true)
	if fb.buf[0] != 0 {
		t.Fatalf("out-of-range writes landed: %#x", fb.buf[0])
	}
	if MonoAt(fb, 100, 100) {
		t.Fatal("out-of-range read lit")
	}
}
