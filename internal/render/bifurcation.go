package render

import (
	"math"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/san-kum/logmap/internal/analysis"
	"github.com/san-kum/logmap/internal/logistic"
)

// guide lines marked on every annotated bifurcation diagram.
var guides = []struct {
	r    float64
	text string
}{
	{analysis.PeriodDoublingOnset, "period doubling starts"},
	{analysis.OnsetOfChaos, "onset of chaos"},
	{analysis.PeriodThreeWindow, "period 3 window"},
}

// Bifurcation renders the attractor sample cloud over [rMin, rMax].
// Density mode bins the cloud into a log-shaded grid, which keeps
// sparse periodic windows visible next to the dense chaotic bands;
// otherwise every sample becomes a faint dot.
func Bifurcation(st Style, points []logistic.Point, rMin, rMax float64) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = "Bifurcation Diagram of the Logistic Map"
	p.X.Label.Text = "r"
	p.Y.Label.Text = "x"
	p.X.Min, p.X.Max = rMin, rMax
	p.Y.Min, p.Y.Max = 0, 1

	if st.Density {
		grid := newDensityGrid(points, 500, 400, rMin, rMax, 0, 1)
		p.Add(plotter.NewHeatMap(grid, st.Heat.Palette(96)))
	} else {
		pts := make(plotter.XYs, len(points))
		for i, pt := range points {
			pts[i] = plotter.XY{X: pt.R, Y: pt.X}
		}
		dots, err := plotter.NewScatter(pts)
		if err != nil {
			return nil, err
		}
		dots.GlyphStyle.Radius = vg.Points(0.5)
		dots.GlyphStyle.Color = st.Faint
		dots.GlyphStyle.Shape = draw.CircleGlyph{}
		p.Add(dots)
	}

	if st.Annotate {
		if err := addGuides(p, st, rMin, rMax); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// SaveBifurcation renders and writes the diagram under dir, returning
// the written path.
func SaveBifurcation(st Style, points []logistic.Point, rMin, rMax float64, dir string) (string, error) {
	p, err := Bifurcation(st, points, rMin, rMax)
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, BifurcationFilename)
	if err := writePNG(p, st.Width, st.Height, st.DPI, path); err != nil {
		return "", err
	}
	return path, nil
}

func addGuides(p *plot.Plot, st Style, rMin, rMax float64) error {
	slot := 0
	for _, g := range guides {
		if g.r < rMin || g.r > rMax {
			continue
		}
		line, err := plotter.NewLine(plotter.XYs{{X: g.r, Y: 0}, {X: g.r, Y: 1}})
		if err != nil {
			return err
		}
		line.LineStyle.Color = st.Guide
		line.LineStyle.Width = vg.Points(1)
		line.LineStyle.Dashes = []vg.Length{vg.Points(2), vg.Points(2)}
		p.Add(line)

		// stagger the labels so neighbors do not collide
		label, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    plotter.XYs{{X: g.r + 0.005, Y: 0.03 + 0.05*float64(slot)}},
			Labels: []string{g.text},
		})
		if err != nil {
			return err
		}
		p.Add(label)
		slot++
	}
	return nil
}

// densityGrid bins samples onto a uniform grid. Cell values are
// log-scaled counts so sparse structure is not washed out by the
// densest bands.
type densityGrid struct {
	cols, rows int
	xmin, xmax float64
	ymin, ymax float64
	cells      []float64
}

func newDensityGrid(points []logistic.Point, cols, rows int, xmin, xmax, ymin, ymax float64) *densityGrid {
	g := &densityGrid{
		cols: cols, rows: rows,
		xmin: xmin, xmax: xmax,
		ymin: ymin, ymax: ymax,
		cells: make([]float64, cols*rows),
	}
	dx := (xmax - xmin) / float64(cols)
	dy := (ymax - ymin) / float64(rows)
	for _, pt := range points {
		c := int((pt.R - xmin) / dx)
		r := int((pt.X - ymin) / dy)
		if c == cols && pt.R == xmax {
			c = cols - 1
		}
		if r == rows && pt.X == ymax {
			r = rows - 1
		}
		if c < 0 || c >= cols || r < 0 || r >= rows {
			continue
		}
		g.cells[r*cols+c]++
	}
	for i, v := range g.cells {
		if v > 0 {
			g.cells[i] = math.Log1p(v)
		}
	}
	return g
}

func (g *densityGrid) Dims() (c, r int) { return g.cols, g.rows }

func (g *densityGrid) Z(c, r int) float64 { return g.cells[r*g.cols+c] }

func (g *densityGrid) X(c int) float64 {
	return g.xmin + (float64(c)+0.5)*(g.xmax-g.xmin)/float64(g.cols)
}

func (g *densityGrid) Y(r int) float64 {
	return g.ymin + (float64(r)+0.5)*(g.ymax-g.ymin)/float64(g.rows)
}
