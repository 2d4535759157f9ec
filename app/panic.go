package app

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"pocket/gfx"
	"pocket/hal"
	"pocket/kernel"
)

func installPanicHandler(h hal.HAL) {
	kernel.SetPanicHandler(func(info kernel.PanicInfo) {
		// The logger task may be the one that died, so write straight to the sink.
		if l := h.Logger(); l != nil {
			l.WriteLineString(fmt.Sprintf("panic: task=%s value=%v", info.Task, info.Value))
			for _, line := range stackLines(info.Stack) {
				l.WriteLineString(line)
			}
		}

		disp := h.MenuDisplay()
		if disp == nil {
			return
		}
		fb := disp.Framebuffer()
		if fb == nil {
			return
		}
		if err := paintPanic(gfx.NewScreen(fb), fb.Height()/gfx.RowHeight, info); err != nil {
			if l := h.Logger(); l != nil {
				l.WriteLineString("panic: flush: " + err.Error())
			}
		}
	})
}

// paintPanic fills up to rows text rows of s with the panic summary, wrapped
// to the panel width, and flushes it.
func paintPanic(s gfx.Surface, rows int, info kernel.PanicInfo) error {
	lines := []string{
		"PANIC",
		"task: " + info.Task,
		fmt.Sprintf("%v", info.Value),
	}
	lines = append(lines, stackLines(info.Stack)...)

	cols := s.Width() / gfx.CharWidth
	if cols <= 0 {
		cols = 1
	}

	s.Clear()
	row := 0
	for _, line := range lines {
		for len(line) > 0 && row < rows {
			chunk, rest := takeRunes(line, cols)
			s.DrawText(0, int16(row*gfx.RowHeight), chunk, gfx.Normal)
			row++
			line = strings.TrimLeft(rest, " ")
		}
		if row >= rows {
			break
		}
	}
	return s.Flush()
}

func stackLines(stack []byte) []string {
	var out []string
	for _, line := range strings.Split(string(stack), "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}

func takeRunes(s string, n int) (prefix, rest string) {
	if n <= 0 || s == "" {
		return "", s
	}
	if len(s) <= n {
		return s, ""
	}
	i, count := 0, 0
	for i < len(s) && count < n {
		_, size := utf8.DecodeRuneInString(s[i:])
		i += size
		count++
	}
	return s[:i], s[i:]
}
