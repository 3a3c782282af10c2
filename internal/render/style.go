package render

import (
	"image/color"

	"gonum.org/v1/plot/palette"
	"gonum.org/v1/plot/vg"
)

// Style carries every visual knob a figure needs. Callers build one,
// usually from the plot configuration block, and pass it explicitly
// into each render call. There is no package-level style state.
type Style struct {
	Width    vg.Length
	Height   vg.Length
	DPI      int
	Grid     bool
	Annotate bool
	Density  bool

	LineWidth  vg.Length
	MarkerSize vg.Length

	Curve    color.Color // map curve and primary series
	Diagonal color.Color // identity line in cobweb plots
	Start    color.Color // initial-state marker
	Guide    color.Color // annotation guide lines
	Faint    color.Color // scatter clouds

	Ramp   Gradient // per-iteration strokes
	Accent Gradient // series point shading
	Heat   Gradient // density shading
}

// Options mirrors the plot configuration block in primitive form.
type Options struct {
	WidthIn  float64
	HeightIn float64
	DPI      int
	Palette  string
	Grid     bool
	Annotate bool
	Density  bool
}

func DefaultStyle() Style {
	return Style{
		Width:      12 * vg.Inch,
		Height:     8 * vg.Inch,
		DPI:        300,
		Grid:       true,
		Annotate:   true,
		Density:    true,
		LineWidth:  vg.Points(1.5),
		MarkerSize: vg.Points(2),
		Curve:      color.RGBA{R: 31, G: 119, B: 180, A: 255},
		Diagonal:   color.RGBA{A: 200},
		Start:      color.RGBA{R: 214, G: 39, B: 40, A: 255},
		Guide:      color.RGBA{R: 110, G: 110, B: 110, A: 255},
		Faint:      color.RGBA{R: 31, G: 119, B: 180, A: 36},
		Ramp:       Viridis,
		Accent:     Plasma,
		Heat:       Inferno,
	}
}

// NewStyle builds a Style from options. Zero sizes fall back to the
// defaults; the boolean switches are taken as given.
func NewStyle(o Options) Style {
	st := DefaultStyle()
	if o.WidthIn > 0 {
		st.Width = vg.Length(o.WidthIn) * vg.Inch
	}
	if o.HeightIn > 0 {
		st.Height = vg.Length(o.HeightIn) * vg.Inch
	}
	if o.DPI > 0 {
		st.DPI = o.DPI
	}
	if o.Palette != "" {
		st.Ramp = ByName(o.Palette)
	}
	st.Grid = o.Grid
	st.Annotate = o.Annotate
	st.Density = o.Density
	return st
}

// Gradient interpolates linearly between anchor colors for t in [0, 1].
type Gradient []color.RGBA

// At samples the gradient. Out-of-range t clamps to the ends.
func (g Gradient) At(t float64) color.RGBA {
	if len(g) == 0 {
		return color.RGBA{A: 255}
	}
	if t <= 0 || len(g) == 1 {
		return g[0]
	}
	if t >= 1 {
		return g[len(g)-1]
	}
	pos := t * float64(len(g)-1)
	i := int(pos)
	frac := pos - float64(i)
	a, b := g[i], g[i+1]
	lerp := func(x, y uint8) uint8 {
		return uint8(float64(x) + frac*(float64(y)-float64(x)) + 0.5)
	}
	return color.RGBA{R: lerp(a.R, b.R), G: lerp(a.G, b.G), B: lerp(a.B, b.B), A: lerp(a.A, b.A)}
}

// Colors samples n evenly spaced colors along the gradient.
func (g Gradient) Colors(n int) []color.Color {
	if n < 1 {
		return nil
	}
	out := make([]color.Color, n)
	if n == 1 {
		out[0] = g.At(0)
		return out
	}
	for i := range out {
		out[i] = g.At(float64(i) / float64(n-1))
	}
	return out
}

// Palette adapts the gradient to the palette interface heat maps
// consume.
func (g Gradient) Palette(n int) palette.Palette {
	return sampled(g.Colors(n))
}

type sampled []color.Color

func (s sampled) Colors() []color.Color { return s }

// Anchor stops for the usual matplotlib-style colormaps.
var (
	Viridis = Gradient{
		{R: 68, G: 1, B: 84, A: 255},
		{R: 59, G: 82, B: 139, A: 255},
		{R: 33, G: 145, B: 140, A: 255},
		{R: 94, G: 201, B: 98, A: 255},
		{R: 253, G: 231, B: 37, A: 255},
	}
	Plasma = Gradient{
		{R: 13, G: 8, B: 135, A: 255},
		{R: 126, G: 3, B: 168, A: 255},
		{R: 204, G: 71, B: 120, A: 255},
		{R: 248, G: 149, B: 64, A: 255},
		{R: 240, G: 249, B: 33, A: 255},
	}
	Inferno = Gradient{
		{R: 0, G: 0, B: 4, A: 255},
		{R: 87, G: 16, B: 110, A: 255},
		{R: 188, G: 55, B: 84, A: 255},
		{R: 249, G: 142, B: 9, A: 255},
		{R: 252, G: 255, B: 164, A: 255},
	}
)

// ByName maps a configured palette name to its gradient, falling back
// to viridis.
func ByName(name string) Gradient {
	switch name {
	case "plasma":
		return Plasma
	case "inferno":
		return Inferno
	default:
		return Viridis
	}
}
