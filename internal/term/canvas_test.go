package term

import (
	"image/color"
	"strings"
	"testing"

	"github.com/san-kum/logmap/internal/logistic"
)

func TestCanvasSet(t *testing.T) {
	c := NewCanvas(4, 2)

	c.Set(0, 0)
	if c.Grid[0][0] != 0x2801 {
		t.Errorf("Grid[0][0] = %#x, want 0x2801", c.Grid[0][0])
	}
	if !c.DotAt(0, 0) {
		t.Error("DotAt(0,0) should be set")
	}

	// second dot in the same cell accumulates
	c.Set(1, 3)
	if c.Grid[0][0] != 0x2881 {
		t.Errorf("Grid[0][0] = %#x, want 0x2881", c.Grid[0][0])
	}

	// out of range is a no-op
	c.Set(-1, 0)
	c.Set(0, -1)
	c.Set(8, 0)
	c.Set(0, 8)
	if c.DotAt(-1, 0) || c.DotAt(8, 0) {
		t.Error("out-of-range dots must read as unset")
	}
}

func TestCanvasUnset(t *testing.T) {
	c := NewCanvas(2, 2)
	c.Set(0, 0)
	c.Set(1, 0)
	c.Unset(0, 0)
	if c.DotAt(0, 0) {
		t.Error("dot (0,0) should be cleared")
	}
	if !c.DotAt(1, 0) {
		t.Error("dot (1,0) should survive clearing its neighbor")
	}

	c.Unset(1, 0)
	if c.Grid[0][0] != 0x2800 {
		t.Errorf("empty cell = %#x, want 0x2800", c.Grid[0][0])
	}
}

func TestCanvasClear(t *testing.T) {
	c := NewCanvas(3, 3)
	c.DrawLine(0, 0, 5, 11)
	c.Clear()
	for y := 0; y < 12; y++ {
		for x := 0; x < 6; x++ {
			if c.DotAt(x, y) {
				t.Fatalf("dot (%d,%d) still set after Clear", x, y)
			}
		}
	}
}

func TestDrawLineHorizontal(t *testing.T) {
	c := NewCanvas(4, 1)
	c.DrawLine(0, 2, 7, 2)
	for x := 0; x <= 7; x++ {
		if !c.DotAt(x, 2) {
			t.Errorf("dot (%d,2) missing from horizontal line", x)
		}
	}
}

func TestDrawLineEndpoints(t *testing.T) {
	c := NewCanvas(10, 5)
	c.DrawLine(3, 1, 15, 18)
	if !c.DotAt(3, 1) || !c.DotAt(15, 18) {
		t.Error("line must include both endpoints")
	}
}

func TestCanvasString(t *testing.T) {
	c := NewCanvas(5, 3)
	s := c.String()
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("String() has %d lines, want 3", len(lines))
	}
	for i, line := range lines {
		if n := len([]rune(line)); n != 5 {
			t.Errorf("line %d has %d runes, want 5", i, n)
		}
	}
}

func TestToDotCorners(t *testing.T) {
	c := NewCanvas(10, 5)
	w, h := c.dotSpan()

	x, y := c.toDot(0, 0)
	if x != 0 || y != h-1 {
		t.Errorf("toDot(0,0) = (%d,%d), want (0,%d)", x, y, h-1)
	}
	x, y = c.toDot(1, 1)
	if x != w-1 || y != 0 {
		t.Errorf("toDot(1,1) = (%d,%d), want (%d,0)", x, y, w-1)
	}

	// out-of-range values clamp onto the grid
	x, y = c.toDot(-0.5, 1.5)
	if x != 0 || y != 0 {
		t.Errorf("toDot(-0.5,1.5) = (%d,%d), want (0,0)", x, y)
	}
}

func countDots(c *Canvas) int {
	n := 0
	w, h := c.dotSpan()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if c.DotAt(x, y) {
				n++
			}
		}
	}
	return n
}

func TestCobwebSketch(t *testing.T) {
	s := CobwebSketch(3.9, 0.1, 30, 40, 16)
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 16 {
		t.Fatalf("sketch has %d lines, want 16", len(lines))
	}

	c := NewCanvas(40, 16)
	DrawCobweb(c, 3.9, 0.1, 30)
	// diagonal plus curve plus staircase covers far more dots than the
	// diagonal alone
	if n := countDots(c); n < 200 {
		t.Errorf("cobweb set only %d dots", n)
	}
}

func TestDrawBifurcation(t *testing.T) {
	c := NewCanvas(10, 5)
	w, h := c.dotSpan()
	points := []logistic.Point{
		{R: 2.5, X: 0},   // lower left corner
		{R: 4.0, X: 1},   // upper right corner
		{R: 9.0, X: 0.5}, // outside, skipped
	}
	DrawBifurcation(c, points, 2.5, 4.0)

	if !c.DotAt(0, h-1) {
		t.Error("lower-left point not drawn")
	}
	if !c.DotAt(w-1, 0) {
		t.Error("upper-right point not drawn")
	}
	if n := countDots(c); n != 2 {
		t.Errorf("drew %d dots, want 2", n)
	}

	// inverted range draws nothing
	c.Clear()
	DrawBifurcation(c, points, 4.0, 2.5)
	if n := countDots(c); n != 0 {
		t.Errorf("inverted range drew %d dots", n)
	}
}

func TestBifurcationSketch(t *testing.T) {
	s, err := BifurcationSketch(2.5, 4.0, 30, 10)
	if err != nil {
		t.Fatalf("BifurcationSketch: %v", err)
	}
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) != 10 {
		t.Fatalf("sketch has %d lines, want 10", len(lines))
	}
}

func TestCanvasImage(t *testing.T) {
	c := NewCanvas(2, 1)
	c.Set(0, 0)

	fg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	bg := color.RGBA{A: 255}
	img := CanvasImage(c, 2, fg, bg)

	if got := img.Bounds(); got.Dx() != 8 || got.Dy() != 8 {
		t.Fatalf("image bounds = %v, want 8x8", got)
	}
	if img.ColorIndexAt(0, 0) != 1 || img.ColorIndexAt(1, 1) != 1 {
		t.Error("set dot should rasterize to foreground block")
	}
	if img.ColorIndexAt(2, 0) != 0 {
		t.Error("unset dot should stay background")
	}
}

func TestHexRGBA(t *testing.T) {
	if got := HexRGBA("#ff0080"); got != (color.RGBA{R: 255, B: 128, A: 255}) {
		t.Errorf("HexRGBA(#ff0080) = %v", got)
	}
	white := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	if got := HexRGBA("nope"); got != white {
		t.Errorf("malformed input = %v, want white", got)
	}
}

func TestGetTheme(t *testing.T) {
	if got := GetTheme("ocean"); got.Name != "ocean" {
		t.Errorf("GetTheme(ocean) = %q", got.Name)
	}
	if got := GetTheme("no-such-theme"); got.Name != "classic" {
		t.Errorf("unknown theme should fall back to classic, got %q", got.Name)
	}
	if names := ThemeNames(); len(names) != 5 {
		t.Errorf("ThemeNames() = %v", names)
	}
}

func TestParamBar(t *testing.T) {
	bar := ParamBar(0.5, 10)
	if got := strings.Count(bar, "█"); got != 5 {
		t.Errorf("half bar has %d filled cells, want 5", got)
	}
	if got := strings.Count(ParamBar(2.0, 10), "█"); got != 10 {
		t.Errorf("overfull bar has %d filled cells, want 10", got)
	}
	if got := strings.Count(ParamBar(-1, 10), "░"); got != 10 {
		t.Errorf("negative bar has %d empty cells, want 10", got)
	}
}

func TestRegimeBadge(t *testing.T) {
	if !strings.Contains(RegimeBadge("chaotic"), "CHAOTIC") {
		t.Error("chaotic badge missing label")
	}
	if !strings.Contains(RegimeBadge("periodic"), "PERIODIC") {
		t.Error("periodic badge missing label")
	}
	if !strings.Contains(RegimeBadge("marginal"), "MARGINAL") {
		t.Error("marginal badge missing label")
	}
}
