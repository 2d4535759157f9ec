//go:build !tinygo && cgo

package hal

import (
	"context"
	"errors"
	"image"

	"pocket/internal/buildinfo"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// WindowConfig controls the desktop window runner.
type WindowConfig struct {
	Scale int
	Host  HostConfig
}

const panelGap = 4

var errWindowClosed = errors.New("window closed")

// RunWindow shows both panels in a desktop window and maps the arrow keys
// and Enter onto the buttons. It blocks until the window closes.
func RunWindow(ctx context.Context, app App, cfg WindowConfig) error {
	if cfg.Scale <= 0 {
		cfg.Scale = 4
	}
	h := newHost(cfg.Host)
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- app(ctx, h) }()
	go playScript(ctx, h, h.script)

	g := &hostGame{ctx: ctx, h: h, errc: errc}
	ebiten.SetWindowTitle("Pocket (" + buildinfo.Short() + ")")
	ebiten.SetWindowSize(panelWidth*cfg.Scale, (2*panelHeight+panelGap)*cfg.Scale)
	ebiten.SetTPS(60)
	err := ebiten.RunGame(g)
	cancel()
	if errors.Is(err, errWindowClosed) {
		return nil
	}
	return err
}

type hostGame struct {
	ctx  context.Context
	h    *hostHAL
	errc <-chan error

	img     *image.RGBA
	screen  *ebiten.Image
	scratch []byte
}

var windowKeys = []struct {
	keys []ebiten.Key
	name string
}{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyK}, "up"},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyJ}, "down"},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeySpace}, "select"},
}

func (g *hostGame) Update() error {
	select {
	case err := <-g.errc:
		if err == nil {
			return errWindowClosed
		}
		return err
	case <-g.ctx.Done():
		return errWindowClosed
	default:
	}

	for _, k := range windowKeys {
		b := g.h.button(k.name)
		for _, key := range k.keys {
			if inpututil.IsKeyJustPressed(key) {
				b.set(true)
			}
			if inpututil.IsKeyJustReleased(key) {
				b.set(false)
			}
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return errWindowClosed
	}
	return nil
}

var (
	pixelOn  = [4]byte{0x9F, 0xE8, 0xFF, 0xFF}
	pixelOff = [4]byte{0x00, 0x00, 0x00, 0xFF}
)

func (g *hostGame) Draw(screen *ebiten.Image) {
	w, h := panelWidth, 2*panelHeight+panelGap
	if g.img == nil {
		g.img = image.NewRGBA(image.Rect(0, 0, w, h))
		g.screen = ebiten.NewImage(w, h)
		g.scratch = make([]byte, len(g.h.statFB.buf))
	}

	g.paint(g.h.statFB, 0)
	g.paint(g.h.menuFB, panelHeight+panelGap)

	g.screen.WritePixels(g.img.Pix)
	screen.DrawImage(g.screen, nil)
}

func (g *hostGame) paint(fb *hostFramebuffer, top int) {
	fb.snapshot(g.scratch)
	for y := 0; y < fb.height; y++ {
		row := g.img.Pix[(top+y)*g.img.Stride:]
		for x := 0; x < fb.width; x++ {
			px := pixelOff
			if fb.lit(g.scratch, x, y) {
				px = pixelOn
			}
			copy(row[x*4:x*4+4], px[:])
		}
	}
}

func (g *hostGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return panelWidth, 2*panelHeight + panelGap
}
