package tui

import (
	"fmt"
	"image"
	"image/gif"
	"math"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"

	"github.com/san-kum/logmap/internal/analysis"
	"github.com/san-kum/logmap/internal/config"
	"github.com/san-kum/logmap/internal/logistic"
	"github.com/san-kum/logmap/internal/term"
)

const (
	canvasWidth  = 46
	canvasHeight = 20

	tickInterval = 60 * time.Millisecond
	// pause on the finished staircase before replaying
	holdTicks = 50

	rStep  = 0.005
	x0Step = 0.01

	statsBurn   = 2000
	statsWindow = 128
	statsIters  = 1000
	graphPoints = 60

	gifFile = "cobweb.gif"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).Width(50)
	graphStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
)

type TickMsg time.Time

// Model drives the interactive cobweb explorer. Each tick grows the
// staircase by one step until the full orbit is on screen, holds,
// then replays.
type Model struct {
	r     float64
	x0    float64
	steps int

	frame   int
	running bool
	canvas  *term.Canvas

	presets   []string
	presetIdx int

	// derived orbit diagnostics, refreshed when r or x0 change
	period int
	lambda float64
	regime analysis.Regime
	tail   []float64

	recording bool
	frames    []*image.Paletted
	showHelp  bool
}

// NewModel sets up the explorer at the given parameter point.
func NewModel(r, x0 float64, steps int, themeName string) Model {
	if themeName != "" {
		term.SetTheme(themeName)
	}
	m := Model{
		r:         clampR(r),
		x0:        clampX0(x0),
		steps:     clampSteps(steps),
		running:   true,
		canvas:    term.NewCanvas(canvasWidth, canvasHeight),
		presets:   config.ListPresets(),
		presetIdx: -1,
	}
	m.refresh()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and advances the staircase animation.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ":
			m.running = !m.running
		case "r":
			m.frame = 0
		case "right", "l":
			m.r = clampR(m.r + rStep)
			m.refresh()
		case "left", "h":
			m.r = clampR(m.r - rStep)
			m.refresh()
		case "up", "k":
			m.x0 = clampX0(m.x0 + x0Step)
			m.refresh()
		case "down", "j":
			m.x0 = clampX0(m.x0 - x0Step)
			m.refresh()
		case "]":
			m.steps = clampSteps(m.steps + 10)
			m.refresh()
		case "[":
			m.steps = clampSteps(m.steps - 10)
			m.refresh()
		case "p":
			m.cyclePreset()
		case "t":
			names := term.ThemeNames()
			for i, name := range names {
				if name == term.CurrentTheme.Name {
					term.SetTheme(names[(i+1)%len(names)])
					break
				}
			}
		case "g":
			if m.recording {
				m.saveGIF()
				m.recording = false
				m.frames = nil
			} else {
				m.recording = true
				m.frames = make([]*image.Paletted, 0)
			}
		case "?":
			m.showHelp = !m.showHelp
		}
	case TickMsg:
		if m.running {
			m.frame++
			if m.frame > m.steps+holdTicks {
				m.frame = 0
			}
		}
		m.draw()
		if m.recording {
			m.captureFrame()
		}
		return m, tea.Tick(tickInterval, func(t time.Time) tea.Msg { return TickMsg(t) })
	}
	return m, nil
}

func clampR(r float64) float64 {
	if r < rStep {
		return rStep
	}
	if r > 4 {
		return 4
	}
	return r
}

func clampX0(x0 float64) float64 {
	if x0 < 0.001 {
		return 0.001
	}
	if x0 > 0.999 {
		return 0.999
	}
	return x0
}

func clampSteps(steps int) int {
	if steps < 10 {
		return 10
	}
	if steps > 500 {
		return 500
	}
	return steps
}

func (m *Model) cyclePreset() {
	if len(m.presets) == 0 {
		return
	}
	m.presetIdx = (m.presetIdx + 1) % len(m.presets)
	p, ok := config.GetPreset(m.presets[m.presetIdx])
	if !ok {
		return
	}
	m.r = clampR(p.R)
	m.x0 = clampX0(p.X0)
	m.steps = clampSteps(p.Steps)
	m.refresh()
}

// refresh recomputes the orbit diagnostics and restarts the staircase.
func (m *Model) refresh() {
	settled := logistic.Advance(m.x0, m.r, statsBurn)
	window := logistic.Iterate(m.r, settled, statsWindow)[1:]
	m.period = analysis.DetectPeriod(window, 64, 1e-6)
	m.lambda = logistic.Exponent(m.r, m.x0, statsIters)
	m.regime = analysis.Classify(m.lambda, 1e-3)
	m.tail = logistic.Iterate(m.r, m.x0, m.steps).Tail(graphPoints)
	m.frame = 0
}

func (m *Model) draw() {
	m.canvas.Clear()
	visible := m.frame
	if visible > m.steps {
		visible = m.steps
	}
	term.DrawCobweb(m.canvas, m.r, m.x0, visible)
}

// View renders the explorer interface.
func (m Model) View() string {
	m.draw()
	canvasView := canvasStyle.Render(term.Panel.Render(m.canvas.String()))

	var s strings.Builder
	title := term.GradientText("LOGISTIC MAP EXPLORER", term.CurrentTheme.Primary, term.CurrentTheme.Secondary)
	s.WriteString(title + "\n")

	status := term.StatusRunning.Render("RUNNING " + term.AnimatedSpinner(m.frame))
	if !m.running {
		status = term.StatusPaused.Render("PAUSED")
	}
	if m.recording {
		status += "  " + term.StatusRecording.Render(fmt.Sprintf("REC %d", len(m.frames)))
	}
	s.WriteString(status + "\n\n")

	s.WriteString(term.MetricLabel.Render("r     ") +
		term.MetricValue.Render(fmt.Sprintf("%.3f  ", m.r)) +
		term.ParamBar(m.r/4, 20) + "\n")
	s.WriteString(term.MetricLabel.Render("x0    ") +
		term.MetricValue.Render(fmt.Sprintf("%.3f", m.x0)) + "\n")
	s.WriteString(term.MetricLabel.Render("steps ") +
		term.MetricValue.Render(fmt.Sprintf("%d", m.steps)) + "\n\n")

	s.WriteString(term.MetricLabel.Render("regime  ") + term.RegimeBadge(m.regime) + "\n")
	if m.period > 0 {
		s.WriteString(term.MetricLabel.Render("period  ") +
			term.MetricValue.Render(fmt.Sprintf("%d", m.period)) + "\n")
	} else {
		s.WriteString(term.MetricLabel.Render("period  ") + term.Subtle.Render("aperiodic") + "\n")
	}
	lambda := "-inf"
	if !math.IsInf(m.lambda, 0) && !math.IsNaN(m.lambda) {
		lambda = fmt.Sprintf("%+.4f", m.lambda)
	}
	s.WriteString(term.MetricLabel.Render("lambda  ") + term.MetricValue.Render(lambda) + "\n")

	if len(m.tail) > 1 {
		chart := asciigraph.Plot(m.tail,
			asciigraph.Height(8), asciigraph.Width(40), asciigraph.Caption("orbit"))
		s.WriteString(graphStyle.Render(chart) + "\n")
	}

	if m.presetIdx >= 0 && m.presetIdx < len(m.presets) {
		s.WriteString("\n" + term.MetricLabel.Render("preset  ") +
			term.Highlight.Render(" "+m.presets[m.presetIdx]+" ") + "\n")
	}

	s.WriteString("\n" + term.Separator(44) + "\n")
	s.WriteString(term.KeyHint.Render("←→:r  ↑↓:x0  [ ]:steps  SP:pause  P:preset\nT:theme  G:record  R:replay  ?:help  Q:quit"))

	statsView := statsStyle.Render(s.String())
	mainView := lipgloss.JoinHorizontal(lipgloss.Top, canvasView, statsView)

	if m.showHelp {
		help := strings.Join([]string{
			"Left/H    - Decrease growth parameter r",
			"Right/L   - Increase growth parameter r",
			"Up/K      - Increase initial state x0",
			"Down/J    - Decrease initial state x0",
			"[         - Fewer staircase steps",
			"]         - More staircase steps",
			"Space     - Pause/Resume animation",
			"P         - Cycle through presets",
			"R         - Replay staircase",
			"T         - Cycle themes",
			"G         - Toggle GIF recording",
			"?         - Toggle this help",
			"Q         - Quit",
		}, "\n")
		return term.TitledBox("KEYBOARD SHORTCUTS", help, 44) + "\n\n" + mainView
	}
	return mainView
}

func (m *Model) captureFrame() {
	fg := term.HexRGBA(string(term.CurrentTheme.Primary))
	bg := term.HexRGBA(string(term.CurrentTheme.Background))
	m.frames = append(m.frames, term.CanvasImage(m.canvas, 3, fg, bg))
}

func (m *Model) saveGIF() {
	if len(m.frames) == 0 {
		return
	}
	anim := gif.GIF{LoopCount: 0}
	for _, frame := range m.frames {
		anim.Image = append(anim.Image, frame)
		anim.Delay = append(anim.Delay, 6)
	}
	f, err := os.Create(gifFile)
	if err != nil {
		return
	}
	defer f.Close()
	gif.EncodeAll(f, &anim)
}

// Run starts the explorer program.
func Run(r, x0 float64, steps int, themeName string) error {
	p := tea.NewProgram(NewModel(r, x0, steps, themeName))
	_, err := p.Run()
	return err
}
