package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/logmap/internal/analysis"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case " ":
		return tea.KeyMsg{Type: tea.KeySpace}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	updated, _ := m.Update(msg)
	next, ok := updated.(Model)
	if !ok {
		t.Fatalf("Update returned %T", updated)
	}
	return next
}

func TestNewModelClamps(t *testing.T) {
	m := NewModel(9.0, 2.0, 5, "")
	if m.r != 4 {
		t.Errorf("r = %v, want clamp to 4", m.r)
	}
	if m.x0 != 0.999 {
		t.Errorf("x0 = %v, want clamp to 0.999", m.x0)
	}
	if m.steps != 10 {
		t.Errorf("steps = %v, want clamp to 10", m.steps)
	}
}

func TestParameterKeys(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")

	m = update(t, m, key("right"))
	if got := m.r; got != 3.205 {
		t.Errorf("r after right = %v, want 3.205", got)
	}
	m = update(t, m, key("left"))
	if got := m.r; got != 3.2 {
		t.Errorf("r after left = %v, want 3.2", got)
	}

	m = update(t, m, key("up"))
	if got := m.x0; got != 0.31 {
		t.Errorf("x0 after up = %v, want 0.31", got)
	}

	m = update(t, m, key("]"))
	if got := m.steps; got != 110 {
		t.Errorf("steps after ] = %v, want 110", got)
	}

	// clamping at the top of the parameter range
	m = NewModel(4.0, 0.3, 100, "")
	m = update(t, m, key("right"))
	if got := m.r; got != 4 {
		t.Errorf("r must not exceed 4, got %v", got)
	}
}

func TestPauseToggle(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	if !m.running {
		t.Fatal("model should start running")
	}
	m = update(t, m, key(" "))
	if m.running {
		t.Error("space should pause")
	}
	m = update(t, m, key(" "))
	if !m.running {
		t.Error("space should resume")
	}
}

func TestQuitKey(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	_, cmd := m.Update(key("q"))
	if cmd == nil {
		t.Fatal("q should produce a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("q produced %T, want tea.QuitMsg", cmd())
	}
}

func TestTickAdvancesAndWraps(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	m = update(t, m, TickMsg(time.Now()))
	if m.frame != 1 {
		t.Errorf("frame = %d after one tick, want 1", m.frame)
	}

	m.frame = m.steps + holdTicks
	m = update(t, m, TickMsg(time.Now()))
	if m.frame != 0 {
		t.Errorf("frame = %d after wrap tick, want 0", m.frame)
	}

	// a paused model holds its frame
	m = update(t, m, key(" "))
	m = update(t, m, TickMsg(time.Now()))
	if m.frame != 0 {
		t.Errorf("paused frame = %d, want 0", m.frame)
	}
}

func TestDiagnostics(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	if m.period != 2 {
		t.Errorf("period at r=3.2 is %d, want 2", m.period)
	}
	if m.regime != analysis.Periodic {
		t.Errorf("regime at r=3.2 is %q, want periodic", m.regime)
	}
	if m.lambda >= 0 {
		t.Errorf("lambda at r=3.2 is %v, want negative", m.lambda)
	}

	m = NewModel(3.9, 0.3, 100, "")
	if m.regime != analysis.Chaotic {
		t.Errorf("regime at r=3.9 is %q, want chaotic", m.regime)
	}
	if m.period != 0 {
		t.Errorf("period at r=3.9 is %d, want 0", m.period)
	}
}

func TestPresetCycle(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	m = update(t, m, key("p"))
	if m.presetIdx != 0 {
		t.Fatalf("presetIdx = %d, want 0", m.presetIdx)
	}
	// first preset in sorted order is chaos at r=3.9
	if m.presets[0] != "chaos" || m.r != 3.9 {
		t.Errorf("after p: preset %q with r=%v", m.presets[m.presetIdx], m.r)
	}
	if m.regime != analysis.Chaotic {
		t.Errorf("chaos preset classified %q", m.regime)
	}
}

func TestRecordingCapturesFrames(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	m = update(t, m, key("g"))
	if !m.recording {
		t.Fatal("g should start recording")
	}
	m = update(t, m, TickMsg(time.Now()))
	m = update(t, m, TickMsg(time.Now()))
	if len(m.frames) != 2 {
		t.Errorf("captured %d frames, want 2", len(m.frames))
	}
	if b := m.frames[0].Bounds(); b.Dx() == 0 || b.Dy() == 0 {
		t.Error("captured frame is empty")
	}
}

func TestViewRenders(t *testing.T) {
	m := NewModel(3.2, 0.3, 100, "")
	m = update(t, m, TickMsg(time.Now()))
	view := m.View()
	if view == "" {
		t.Fatal("View() returned nothing")
	}

	m = update(t, m, key("?"))
	if help := m.View(); len(help) <= len(view) {
		t.Error("help overlay should grow the view")
	}
}
