// Package term runs a marquee in a single terminal row with bubbletea.
//
// Widths are measured in terminal cells, so one "pixel" of marquee speed is
// one cell per second.
package term

import (
	"fmt"
	"math"
	"strings"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/mattn/go-runewidth"

	"github.com/phanxgames/marquee"
)

const (
	defaultFPS       = 30
	defaultSeparator = "   •   "
	speedStep        = 4
	factorStep       = 1.25
)

var (
	colorText   = lipgloss.Color("#a9b1d6")
	colorMuted  = lipgloss.Color("#565f89")
	colorAccent = lipgloss.Color("#7aa2f7")
)

// Options configures a Model.
type Options struct {
	// Config is the engine configuration. The zero value means
	// marquee.DefaultConfig.
	Config marquee.Config
	// FPS is the tick rate driving the scene. Defaults to 30.
	FPS int
	// Separator is appended to the content so copies do not run together.
	Separator string
	// ShowStatus renders a status line with the engine state below the row.
	ShowStatus bool
	Script     *marquee.Script
}

// ContentMsg replaces the scrolling text.
type ContentMsg struct {
	Text string
}

type tickMsg time.Time

// Model is a bubbletea model hosting one marquee. It creates the engine on
// construction, initializes it once the terminal width is known and destroys
// it when the program quits.
type Model struct {
	scene    *marquee.Scene
	viewport *marquee.Node
	strip    *marquee.Node
	content  *marquee.Node
	engine   *marquee.Engine

	separator  string
	interval   time.Duration
	showStatus bool
	last       time.Time

	width, height int
	quitting      bool

	textStyle   lipgloss.Style
	statusStyle lipgloss.Style
	accentStyle lipgloss.Style
}

// New builds a model scrolling text.
func New(text string, opts Options) *Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = defaultFPS
	}
	sep := opts.Separator
	if sep == "" {
		sep = defaultSeparator
	}

	scene := marquee.NewScene()
	viewport := marquee.NewContainer("viewport")
	viewport.Clip = true
	scene.Root().AddChild(viewport)

	strip := marquee.NewContainer("strip")
	viewport.AddChild(strip)

	content := marquee.NewText("content", "", 0, 1)
	content.Key = "content"
	strip.AddChild(content)

	cfg := opts.Config
	if cfg == (marquee.Config{}) {
		cfg = marquee.DefaultConfig()
	}
	m := &Model{
		scene:       scene,
		viewport:    viewport,
		strip:       strip,
		content:     content,
		engine:      scene.NewMarquee(strip, &cfg),
		separator:   sep,
		interval:    time.Second / time.Duration(fps),
		showStatus:  opts.ShowStatus,
		textStyle:   lipgloss.NewStyle().Foreground(colorText),
		statusStyle: lipgloss.NewStyle().Foreground(colorMuted),
		accentStyle: lipgloss.NewStyle().Foreground(colorAccent).Bold(true),
	}
	m.SetContent(text)
	if opts.Script != nil {
		scene.SetScript(opts.Script)
	}
	return m
}

// Engine returns the hosted engine.
func (m *Model) Engine() *marquee.Engine {
	return m.engine
}

// SetContent replaces the scrolling text. The engine re-tiles on the next
// tick if the width changed; existing copies get the new text right away.
func (m *Model) SetContent(text string) {
	text = strings.ReplaceAll(strings.TrimRight(text, "\r\n"), "\n", " ")
	full := text + m.separator
	m.content.Text = full
	m.content.SetSize(float64(runewidth.StringWidth(full)), 1)
	for _, c := range m.strip.Children() {
		if c != m.content {
			c.Text = full
		}
	}
}

func (m *Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop.
func (m *Model) Init() tea.Cmd {
	return m.tick()
}

// Update handles ticks, resizes, content updates and key presses.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
	case tickMsg:
		if m.quitting {
			return m, nil
		}
		t := time.Time(msg)
		dt := m.interval.Seconds()
		if !m.last.IsZero() {
			dt = t.Sub(m.last).Seconds()
		}
		m.last = t
		if err := m.scene.Update(dt); err != nil {
			return m, tea.Quit
		}
		return m, m.tick()
	case ContentMsg:
		m.SetContent(msg.Text)
	case tea.KeyPressMsg:
		return m, m.handleKey(msg)
	}
	return m, nil
}

func (m *Model) resize(w, h int) {
	m.width, m.height = w, h
	m.viewport.SetSize(float64(w), 1)
	if !m.engine.State().IsInitialized {
		m.engine.Initialize(m.content)
	}
}

func (m *Model) handleKey(msg tea.KeyPressMsg) tea.Cmd {
	e := m.engine
	st := e.State()
	switch msg.String() {
	case "q", "esc", "ctrl+c":
		m.quitting = true
		m.scene.Destroy()
		return tea.Quit
	case "space":
		e.Toggle()
	case "r":
		e.Reverse()
	case "left":
		e.SetDirection(marquee.DirectionLeft)
	case "right":
		e.SetDirection(marquee.DirectionRight)
	case "up":
		e.SetSpeed(st.Speed + speedStep)
	case "down":
		e.SetSpeed(math.Max(0, st.Speed-speedStep))
	case "+", "=":
		e.SetSpeedFactor(st.SpeedFactor * factorStep * float64(st.Direction))
	case "-":
		e.SetSpeedFactor(st.SpeedFactor / factorStep * float64(st.Direction))
	}
	return nil
}

// View renders the marquee row and the optional status line.
func (m *Model) View() tea.View {
	view := tea.View{AltScreen: true}
	if m.quitting {
		view.SetContent("")
		return view
	}
	var b strings.Builder
	b.WriteString(m.textStyle.Render(m.Row()))
	if m.showStatus {
		b.WriteString("\n")
		b.WriteString(m.status())
	}
	view.SetContent(b.String())
	return view
}

// Row rasterises the strip into exactly width cells.
func (m *Model) Row() string {
	width := m.width
	if width <= 0 {
		return ""
	}
	cells := make([]string, width)
	for i := range cells {
		cells[i] = " "
	}
	vx, _ := m.viewport.WorldPosition()
	for _, n := range m.strip.Children() {
		if !n.Visible || n.Text == "" {
			continue
		}
		x, _ := n.WorldPosition()
		placeText(cells, int(math.Floor(x-vx)), n.Text)
	}
	return strings.Join(cells, "")
}

// placeText writes s into cells starting at col. Wide runes take two cells;
// a wide rune cut by either edge is replaced by spaces.
func placeText(cells []string, col int, s string) {
	width := len(cells)
	for _, r := range s {
		if col >= width {
			return
		}
		w := runewidth.RuneWidth(r)
		if w == 0 {
			continue
		}
		switch {
		case col >= 0 && col+w <= width:
			cells[col] = string(r)
			for k := 1; k < w; k++ {
				cells[col+k] = ""
			}
		default:
			for k := 0; k < w; k++ {
				if c := col + k; c >= 0 && c < width {
					cells[c] = " "
				}
			}
		}
		col += w
	}
}

func (m *Model) status() string {
	st := m.engine.State()
	mode := "paused"
	if st.IsPlaying {
		mode = "playing"
	}
	line := fmt.Sprintf(" %.0f cells/s  x%.2f  %s  (space toggle, r reverse, ←/→ direction, ↑/↓ speed, +/- factor, q quit)",
		st.Speed, st.SpeedFactor, st.Direction)
	return m.accentStyle.Render(" "+mode) + m.statusStyle.Render(line)
}
