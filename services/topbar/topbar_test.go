package topbar

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"pocket/gfx"
	"pocket/kernel"
	"pocket/menu"
	"pocket/proto"
	"pocket/services/logger"
)

type drawCall struct {
	x, y int16
	text string
}

type fakeSurface struct {
	texts   []drawCall
	flushes int
	err     error
}

func (f *fakeSurface) Width() int { return 128 }
func (f *fakeSurface) Clear()     { f.texts = f.texts[:0] }
func (f *fakeSurface) DrawText(x, y int16, s string, style gfx.Style) {
	f.texts = append(f.texts, drawCall{x, y, s})
}
func (f *fakeSurface) FillRect(x, y int16, w, h uint16) {}
func (f *fakeSurface) Flush() error {
	f.flushes++
	return f.err
}

func newService() (*Service, *kernel.Latest[proto.TopBarMode], *fakeSurface, *kernel.Mailbox[string]) {
	status := &kernel.Latest[proto.TopBarMode]{}
	scr := &fakeSurface{}
	logs := kernel.NewMailbox[string](16)
	return New(Config{Status: status, Screen: scr, Log: logger.NewClient(logs, "topbar")}), status, scr, logs
}

func TestDefaultModeBeforeAnyPublish(t *testing.T) {
	s, _, scr, _ := newService()
	s.Render()
	if len(scr.texts) != 2 || scr.texts[0].text != "BAT:100%" || scr.texts[1] != (drawCall{90, 0, "00:00"}) {
		t.Fatalf("texts = %+v", scr.texts)
	}
}

func TestNormalLayout(t *testing.T) {
	s, status, scr, _ := newService()
	status.Publish(proto.Normal(42, proto.Clock{Hours: 1, Minutes: 5}))
	s.Render()
	want := []drawCall{{0, 0, "BAT:42%"}, {90, 0, "01:05"}}
	if len(scr.texts) != 2 || scr.texts[0] != want[0] || scr.texts[1] != want[1] {
		t.Fatalf("texts = %+v, want %+v", scr.texts, want)
	}
}

func TestLatestPublishWins(t *testing.T) {
	s, status, scr, _ := newService()
	status.Publish(proto.Normal(42, proto.Clock{Hours: 1, Minutes: 5}))
	status.Publish(proto.Normal(10, proto.Clock{Hours: 1, Minutes: 6}))
	s.Render()
	if s.Mode().Battery != 10 || scr.texts[0].text != "BAT:10%" {
		t.Fatalf("mode = %+v, texts = %+v", s.Mode(), scr.texts)
	}
}

func TestModeKeptWithoutNewPublish(t *testing.T) {
	s, status, scr, _ := newService()
	status.Publish(proto.Normal(77, proto.Clock{}))
	s.Render()
	s.Render()
	if scr.texts[0].text != "BAT:77%" || scr.flushes != 2 {
		t.Fatalf("texts = %+v flushes = %d", scr.texts, scr.flushes)
	}
}

func TestNetworkDetail(t *testing.T) {
	s, status, scr, _ := newService()
	status.Publish(proto.NetworkDetail(proto.WirelessNetworkInfo{SSID: "HomeNet", RSSI: -61, Channel: 11}))
	s.Render()
	want := []drawCall{{0, 0, "HomeNet"}, {0, 8, "-61dBm  CH11"}}
	if len(scr.texts) != 2 || scr.texts[0] != want[0] || scr.texts[1] != want[1] {
		t.Fatalf("texts = %+v, want %+v", scr.texts, want)
	}
}

func TestLongNetworkNameScrolls(t *testing.T) {
	s, status, scr, _ := newService()
	long := strings.Repeat("W", 30) // 180px
	status.Publish(proto.NetworkDetail(proto.WirelessNetworkInfo{SSID: long}))

	var xs []int16
	for i := 0; i < 6; i++ {
		s.Render()
		xs = append(xs, scr.texts[0].x)
	}
	// tick runs 1..6, offset is tick/2.
	want := []int16{0, -1, -1, -2, -2, -3}
	for i := range want {
		if xs[i] != want[i] {
			t.Fatalf("x positions = %v, want %v", xs, want)
		}
	}
}

func TestFlushFailureKeepsRendering(t *testing.T) {
	s, _, scr, logs := newService()
	scr.err = errors.New("bus")
	s.Render()
	s.Render()
	if scr.flushes != 2 {
		t.Fatalf("flushes = %d", scr.flushes)
	}
	if logs.Len() != 1 {
		t.Fatalf("logged %d lines, want 1", logs.Len())
	}
}

type countingClock struct {
	sleeps int
	stop   int
	cancel context.CancelFunc
}

func (c *countingClock) Now() time.Time { return time.Time{} }
func (c *countingClock) Sleep(ctx context.Context, d time.Duration) bool {
	c.sleeps++
	if d != RenderInterval {
		panic("unexpected interval")
	}
	if c.sleeps >= c.stop {
		c.cancel()
	}
	return ctx.Err() == nil
}

func TestRunRendersEveryInterval(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	clock := &countingClock{stop: 5, cancel: cancel}
	status := &kernel.Latest[proto.TopBarMode]{}
	scr := &fakeSurface{}

	New(Config{Status: status, Screen: scr, Clock: clock}).Run(ctx)
	if scr.flushes != 5 {
		t.Fatalf("flushes = %d, want 5", scr.flushes)
	}
}

type wallClock struct{ t time.Time }

func (w *wallClock) Now() time.Time { return w.t }

func TestWallClockReadEveryFrame(t *testing.T) {
	status := &kernel.Latest[proto.TopBarMode]{}
	scr := &fakeSurface{}
	wall := &wallClock{t: time.Date(2024, 5, 1, 13, 7, 0, 0, time.UTC)}
	s := New(Config{Status: status, Screen: scr, Wall: wall})

	status.Publish(proto.Normal(60, proto.Clock{Hours: 9}))
	s.Render()
	if scr.texts[1] != (drawCall{90, 0, "13:07"}) {
		t.Fatalf("clock = %+v, want 13:07", scr.texts[1])
	}

	wall.t = wall.t.Add(time.Minute)
	s.Render()
	if scr.texts[1].text != "13:08" {
		t.Fatalf("clock = %q after a minute without a publish, want 13:08", scr.texts[1].text)
	}
}

func TestSelectedNetworkMarked(t *testing.T) {
	arena := menu.NewArena()
	nets := []proto.WirelessNetworkInfo{
		{SSID: "Lab", RSSI: -40, Channel: 6},
		{SSID: "Guest", RSSI: -70, Channel: 11},
	}
	b := arena.AddBatch(nets)
	sel := &menu.Selection{}
	sel.Store(b.Network(1))

	status := &kernel.Latest[proto.TopBarMode]{}
	scr := &fakeSurface{}
	s := New(Config{Status: status, Screen: scr, Arena: arena, Selection: sel})

	status.Publish(proto.NetworkDetail(nets[1]))
	s.Render()
	if len(scr.texts) != 3 || scr.texts[2] != (drawCall{122, 8, "*"}) {
		t.Fatalf("texts = %+v, want marker at 122,8", scr.texts)
	}

	status.Publish(proto.NetworkDetail(nets[0]))
	s.Render()
	if len(scr.texts) != 2 {
		t.Fatalf("texts = %+v, want no marker for an unselected network", scr.texts)
	}
}
