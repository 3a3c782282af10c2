package render

import (
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/logmap/internal/logistic"
)

// Lyapunov renders the exponent spectrum: the estimate curve, the zero
// line separating order from chaos, and the point cloud split by sign.
// Superstable -Inf estimates are left off the figure; they would
// collapse the axis scale.
func Lyapunov(st Style, spec *logistic.Spectrum) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Lyapunov Exponent Spectrum"
	p.X.Label.Text = "r"
	p.Y.Label.Text = "lambda"
	p.X.Min, p.X.Max = spec.R[0], spec.R[len(spec.R)-1]
	p.Y.Min, p.Y.Max = -2, 1
	if st.Grid {
		p.Add(plotter.NewGrid())
	}

	curve := make(plotter.XYs, 0, len(spec.R))
	var chaotic, periodic plotter.XYs
	for i, r := range spec.R {
		l := spec.Lambda[i]
		if math.IsInf(l, 0) || math.IsNaN(l) {
			continue
		}
		xy := plotter.XY{X: r, Y: l}
		curve = append(curve, xy)
		if l > 0 {
			chaotic = append(chaotic, xy)
		} else {
			periodic = append(periodic, xy)
		}
	}

	line, err := plotter.NewLine(curve)
	if err != nil {
		return nil, err
	}
	line.LineStyle.Width = st.LineWidth * 0.7
	line.LineStyle.Color = st.Guide
	p.Add(line)

	zero, err := plotter.NewLine(plotter.XYs{{X: p.X.Min, Y: 0}, {X: p.X.Max, Y: 0}})
	if err != nil {
		return nil, err
	}
	zero.LineStyle.Color = st.Diagonal
	zero.LineStyle.Dashes = []vg.Length{vg.Points(4), vg.Points(3)}
	p.Add(zero)
	p.Legend.Add("lambda = 0", zero)

	if len(periodic) > 0 {
		dots, err := plotter.NewScatter(periodic)
		if err != nil {
			return nil, err
		}
		dots.GlyphStyle.Radius = vg.Points(1)
		dots.GlyphStyle.Color = st.Curve
		dots.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(dots)
		p.Legend.Add("periodic, lambda < 0", dots)
	}
	if len(chaotic) > 0 {
		dots, err := plotter.NewScatter(chaotic)
		if err != nil {
			return nil, err
		}
		dots.GlyphStyle.Radius = vg.Points(1)
		dots.GlyphStyle.Color = st.Start
		dots.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(dots)
		p.Legend.Add("chaotic, lambda > 0", dots)
	}

	p.Legend.Top = true
	p.Legend.Left = true
	return p, nil
}

// SaveLyapunov writes the spectrum figure. With reference set, a coarse
// bifurcation diagram over the same parameter range is stacked beneath
// it so band structure can be read against the exponent sign.
func SaveLyapunov(st Style, spec *logistic.Spectrum, reference bool, workers int, dir string) (string, error) {
	top, err := Lyapunov(st, spec)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, LyapunovFilename)

	if !reference {
		if err := writePNG(top, st.Width, st.Height, st.DPI, path); err != nil {
			return "", err
		}
		return path, nil
	}

	rMin, rMax := spec.R[0], spec.R[len(spec.R)-1]
	sweep := logistic.Sweep{
		RMin: rMin, RMax: rMax, Steps: 2000,
		X0: 0.1, BurnIn: 500, Samples: 100,
		Workers: workers,
	}
	points, err := sweep.Run()
	if err != nil {
		return "", err
	}
	bottom, err := Bifurcation(st, points, rMin, rMax)
	if err != nil {
		return "", err
	}
	bottom.Title.Text = "Bifurcation Diagram (reference)"

	if err := writeColumn(st, path, top, bottom); err != nil {
		return "", err
	}
	return path, nil
}
