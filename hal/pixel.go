package hal

// monoIndex returns the byte offset and bit mask of pixel (x, y) in a
// PixelFormatMono1 buffer.
func monoIndex(stride, x, y int) (int, byte) {
	return y*stride + x/8, 0x80 >> uint(x%8)
}

// SetMono sets or clears pixel (x, y). Out-of-range coordinates are ignored.
func SetMono(fb Framebuffer, x, y int, on bool) {
	if fb == nil || x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return
	}
	buf := fb.Buffer()
	i, mask := monoIndex(fb.StrideBytes(), x, y)
	if i >= len(buf) {
		return
	}
	if on {
		buf[i] |= mask
	} else {
		buf[i] &^= mask
	}
}

// MonoAt reports whether pixel (x, y) is lit.
func MonoAt(fb Framebuffer, x, y int) bool {
	if fb == nil || x < 0 || y < 0 || x >= fb.Width() || y >= fb.Height() {
		return false
	}
	buf := fb.Buffer()
	i, mask := monoIndex(fb.StrideBytes(), x, y)
	if i >= len(buf) {
		return false
	}
	return buf[i]&mask != 0
}

func monoStride(width int) int { return (width + 7) / 8 }
