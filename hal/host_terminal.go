//go:build !tinygo

package hal

import (
	"bytes"
	"context"
	"strings"
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// TerminalConfig controls the terminal runner.
type TerminalConfig struct {
	Host HostConfig
}

const (
	tapHold     = 80 * time.Millisecond
	longHold    = 700 * time.Millisecond
	frameRate   = 50 * time.Millisecond
	logTailSize = 6
)

// RunTerminal draws both panels with half-block characters and maps keys
// onto the buttons. Log lines are shown below the panels.
func RunTerminal(ctx context.Context, app App, cfg TerminalConfig) error {
	tail := &logTail{max: logTailSize}
	cfg.Host.Log = tail
	h := newHost(cfg.Host)

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	errc := make(chan error, 1)
	go func() { errc <- app(ctx, h) }()
	go playScript(ctx, h, h.script)

	m := terminalModel{ctx: ctx, h: h, tail: tail, errc: errc}
	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	cancel()
	if fm, ok := final.(terminalModel); ok && fm.err != nil {
		return fm.err
	}
	if err != nil && ctx.Err() == nil {
		return err
	}
	return nil
}

type frameMsg time.Time

type appDoneMsg struct{ err error }

type terminalModel struct {
	ctx  context.Context
	h    *hostHAL
	tail *logTail
	errc <-chan error
	err  error
}

var (
	panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Foreground(lipgloss.Color("123"))
	logStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true)
)

func frame() tea.Cmd {
	return tea.Tick(frameRate, func(t time.Time) tea.Msg { return frameMsg(t) })
}

func (m terminalModel) waitApp() tea.Cmd {
	return func() tea.Msg { return appDoneMsg{err: <-m.errc} }
}

func (m terminalModel) Init() tea.Cmd {
	return tea.Batch(frame(), m.waitApp())
}

func (m terminalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case frameMsg:
		return m, frame()
	case appDoneMsg:
		m.err = msg.err
		return m, tea.Quit
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "up", "k":
			m.tap(m.h.up, tapHold)
		case "down", "j":
			m.tap(m.h.down, tapHold)
		case "enter", " ":
			m.tap(m.h.sel, tapHold)
		case "esc", "b", "backspace":
			m.tap(m.h.sel, longHold)
		}
	}
	return m, nil
}

// tap holds b for d. Terminals report key presses only, so every press is
// turned into a fixed-length hold.
func (m terminalModel) tap(b *hostButton, d time.Duration) {
	go func() {
		b.set(true)
		sleepUntil(m.ctx, time.Now().Add(d))
		b.set(false)
	}()
}

func (m terminalModel) View() string {
	panels := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(m.h.statFB.halfBlocks()),
		panelStyle.Render(m.h.menuFB.halfBlocks()),
	)
	return lipgloss.JoinVertical(lipgloss.Left,
		panels,
		helpStyle.Render("↑/k up  ↓/j down  enter select  esc/b back  q quit"),
		logStyle.Render(m.tail.String()),
	)
}

// halfBlocks renders two pixel rows per text line.
func (f *hostFramebuffer) halfBlocks() string {
	snap := make([]byte, len(f.buf))
	f.snapshot(snap)
	var b strings.Builder
	for y := 0; y < f.height; y += 2 {
		if y > 0 {
			b.WriteByte('\n')
		}
		for x := 0; x < f.width; x++ {
			top := f.lit(snap, x, y)
			bottom := y+1 < f.height && f.lit(snap, x, y+1)
			switch {
			case top && bottom:
				b.WriteRune('█')
			case top:
				b.WriteRune('▀')
			case bottom:
				b.WriteRune('▄')
			default:
				b.WriteByte(' ')
			}
		}
	}
	return b.String()
}

// logTail keeps the last few log lines for display.
type logTail struct {
	mu    sync.Mutex
	max   int
	lines []string
	part  []byte
}

func (t *logTail) Write(p []byte) (int, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.part = append(t.part, p...)
	for {
		i := bytes.IndexByte(t.part, '\n')
		if i < 0 {
			break
		}
		t.lines = append(t.lines, string(t.part[:i]))
		t.part = t.part[i+1:]
	}
	if over := len(t.lines) - t.max; over > 0 {
		t.lines = append(t.lines[:0], t.lines[over:]...)
	}
	return len(p), nil
}

func (t *logTail) String() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return strings.Join(t.lines, "\n")
}
