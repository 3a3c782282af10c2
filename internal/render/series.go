package render

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/logmap/internal/analysis"
	"github.com/san-kum/logmap/internal/logistic"
)

// TimeSeries plots the orbit against iteration index, points shaded
// along the accent ramp, with the summary statistics box the figures
// have always carried.
func TimeSeries(st Style, r, x0 float64, steps int) (*plot.Plot, error) {
	orbit := logistic.Iterate(r, x0, steps)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Time Series for r = %.3f", r)
	p.X.Label.Text = "iteration n"
	p.Y.Label.Text = "x(n)"
	p.Y.Min, p.Y.Max = 0, 1
	if st.Grid {
		p.Add(plotter.NewGrid())
	}

	pts := make(plotter.XYs, len(orbit))
	for i, x := range orbit {
		pts[i] = plotter.XY{X: float64(i), Y: x}
	}

	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = st.LineWidth
	line.LineStyle.Color = st.Curve
	p.Add(line)
	p.Legend.Add(fmt.Sprintf("x0 = %.3f", x0), line)

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	dots.GlyphStyle.Radius = st.MarkerSize
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	n := len(pts)
	dots.GlyphStyleFunc = func(i int) draw.GlyphStyle {
		t := 0.0
		if n > 1 {
			t = float64(i) / float64(n-1)
		}
		return draw.GlyphStyle{
			Color:  st.Accent.At(t),
			Radius: st.MarkerSize,
			Shape:  draw.CircleGlyph{},
		}
	}
	p.Add(dots)

	if st.Annotate {
		s := analysis.Summarize(orbit)
		note, err := plotter.NewLabels(plotter.XYLabels{
			XYs: plotter.XYs{{X: float64(steps) * 0.02, Y: 0.96}},
			Labels: []string{fmt.Sprintf("mean %.4f   std %.4f   min %.4f   max %.4f",
				s.Mean, s.Std, s.Min, s.Max)},
		})
		if err != nil {
			return nil, err
		}
		p.Add(note)
	}

	p.Legend.Top = true
	return p, nil
}

// SaveTimeSeries renders and writes the figure under dir, returning the
// written path.
func SaveTimeSeries(st Style, r, x0 float64, steps int, dir string) (string, error) {
	p, err := TimeSeries(st, r, x0, steps)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, SeriesFilename(r))
	if err := writePNG(p, st.Width, st.Height, st.DPI, path); err != nil {
		return "", err
	}
	return path, nil
}

// seriesPanel is the compact variant tiled into multi-panel figures.
func seriesPanel(st Style, r, x0 float64, steps, skip int) (*plot.Plot, error) {
	orbit := logistic.Iterate(r, x0, steps)
	tail := orbit.Tail(steps + 1 - skip)

	p := plot.New()
	p.Title.Text = fmt.Sprintf("r = %.2f", r)
	p.Y.Min, p.Y.Max = 0, 1

	pts := make(plotter.XYs, len(tail))
	for i, x := range tail {
		pts[i] = plotter.XY{X: float64(skip + i), Y: x}
	}
	line, err := plotter.NewLine(pts)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = st.LineWidth * 0.8
	line.LineStyle.Color = st.Curve
	p.Add(line)

	dots, err := plotter.NewScatter(pts)
	if err != nil {
		return nil, err
	}
	dots.GlyphStyle.Radius = st.MarkerSize * 0.7
	dots.GlyphStyle.Color = st.Accent.At(0.6)
	dots.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(dots)
	return p, nil
}
