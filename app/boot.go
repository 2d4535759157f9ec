package app

import (
	"pocket/gfx"
	"pocket/internal/buildinfo"
)

// bootScreen shows the build on a panel until its render task takes over.
func bootScreen(s gfx.Surface, msg string) error {
	s.Clear()
	s.DrawText(0, 0, "pocket "+buildinfo.Short(), gfx.Normal)
	s.DrawText(0, gfx.RowHeight, msg, gfx.Normal)
	return s.Flush()
}
