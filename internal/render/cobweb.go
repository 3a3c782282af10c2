package render

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/logmap/internal/logistic"
)

const curveSamples = 1000

// Cobweb builds the staircase construction at parameter r: the map
// curve, the identity diagonal, and one vertical plus horizontal pair
// per iteration, colored along the ramp so time reads as color.
func Cobweb(st Style, r, x0 float64, steps int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cobweb Plot for r = %.3f", r)
	p.X.Label.Text = "x(n)"
	p.Y.Label.Text = "x(n+1)"
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1
	if st.Grid {
		p.Add(plotter.NewGrid())
	}

	curve, err := mapCurve(r)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = st.LineWidth + vg.Points(1)
	curve.LineStyle.Color = st.Curve
	p.Add(curve)
	p.Legend.Add(fmt.Sprintf("f(x) = %.3g x (1-x)", r), curve)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = st.Diagonal
	diag.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(diag)
	p.Legend.Add("y = x", diag)

	orbit := logistic.Iterate(r, x0, steps)
	for i := 0; i < steps; i++ {
		xn, next := orbit[i], orbit[i+1]
		seg, err := plotter.NewLine(plotter.XYs{
			{X: xn, Y: xn},
			{X: xn, Y: next},
			{X: next, Y: next},
		})
		if err != nil {
			return nil, err
		}
		t := 0.2
		if steps > 1 {
			t += 0.7 * float64(i) / float64(steps-1)
		}
		seg.LineStyle.Color = st.Ramp.At(t)
		seg.LineStyle.Width = st.LineWidth
		p.Add(seg)
	}

	start, err := plotter.NewScatter(plotter.XYs{{X: x0, Y: logistic.Map(x0, r)}})
	if err != nil {
		return nil, err
	}
	start.GlyphStyle.Color = st.Start
	start.GlyphStyle.Radius = st.MarkerSize + vg.Points(2)
	start.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(start)
	p.Legend.Add(fmt.Sprintf("start x0 = %.3f", x0), start)

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// SaveCobweb renders the figure square and writes it under dir,
// returning the written path.
func SaveCobweb(st Style, r, x0 float64, steps int, dir string) (string, error) {
	p, err := Cobweb(st, r, x0, steps)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, CobwebFilename(r))
	side := st.Height
	if err := writePNG(p, side, side, st.DPI, path); err != nil {
		return "", err
	}
	return path, nil
}

func mapCurve(r float64) (*plotter.Line, error) {
	xs := floats.Span(make([]float64, curveSamples), 0, 1)
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: logistic.Map(x, r)}
	}
	return plotter.NewLine(pts)
}

// cobwebPanel is the compact variant tiled into multi-panel figures:
// shorter curve, no legend, fewer iterations expected.
func cobwebPanel(st Style, r, x0 float64, steps int) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = fmt.Sprintf("Cobweb r = %.2f", r)
	p.X.Min, p.X.Max = 0, 1
	p.Y.Min, p.Y.Max = 0, 1

	xs := floats.Span(make([]float64, 500), 0, 1)
	pts := make(plotter.XYs, len(xs))
	for i, x := range xs {
		pts[i] = plotter.XY{X: x, Y: logistic.Map(x, r)}
	}
	curve, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	curve.LineStyle.Width = st.LineWidth
	curve.LineStyle.Color = st.Curve
	p.Add(curve)

	diag, err := plotter.NewLine(plotter.XYs{{X: 0, Y: 0}, {X: 1, Y: 1}})
	if err != nil {
		return nil, err
	}
	diag.LineStyle.Color = st.Diagonal
	diag.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(diag)

	orbit := logistic.Iterate(r, x0, steps)
	for i := 0; i < steps; i++ {
		xn, next := orbit[i], orbit[i+1]
		seg, err := plotter.NewLine(plotter.XYs{
			{X: xn, Y: xn},
			{X: xn, Y: next},
			{X: next, Y: next},
		})
		if err != nil {
			return nil, err
		}
		seg.LineStyle.Color = st.Ramp.At(0.3 + 0.6*float64(i)/float64(steps))
		seg.LineStyle.Width = st.LineWidth * 0.7
		p.Add(seg)
	}
	return p, nil
}
