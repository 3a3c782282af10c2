package render

import (
	"fmt"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"

	"github.com/san-kum/logmap/internal/logistic"
)

// cascadeStops are the landmark parameters walked by the
// period-doubling figure, in cascade order.
var cascadeStops = []struct {
	r     float64
	title string
}{
	{2.8, "Period 1"},
	{3.2, "Period 2"},
	{3.5, "Period 4"},
	{3.55, "Period 8"},
	{3.57, "Chaos"},
	{3.83, "Period 3 Window"},
}

// SaveCascade renders the period-doubling route: the settled window of
// one orbit per landmark parameter, tiled two rows by three columns.
func SaveCascade(st Style, x0 float64, dir string) (string, error) {
	plots := [][]*plot.Plot{
		make([]*plot.Plot, 3),
		make([]*plot.Plot, 3),
	}
	for k, stop := range cascadeStops {
		p, err := seriesPanel(st, stop.r, x0, 200, 150)
		if err != nil {
			return "", err
		}
		p.Title.Text = fmt.Sprintf("%s (r = %.2f)", stop.title, stop.r)
		p.X.Label.Text = "n"
		p.Y.Label.Text = "x"
		plots[k/3][k%3] = p
	}

	path := filepath.Join(dir, CascadeFilename)
	if err := writeGrid(st, path, plots); err != nil {
		return "", err
	}
	return path, nil
}

// SaveOverview renders the combined figure: a bifurcation diagram
// across the top band, then one time-series and one cobweb column per
// landmark parameter underneath.
func SaveOverview(st Style, rValues []float64, x0 float64, steps, workers int, dir string) (string, error) {
	if len(rValues) == 0 {
		rValues = []float64{2.8, 3.2, 3.5, 3.83}
	}

	sweep := logistic.Sweep{
		RMin: 2.5, RMax: 4.0, Steps: 4000,
		X0: 0.1, BurnIn: 800, Samples: 200,
		Workers: workers,
	}
	points, err := sweep.Run()
	if err != nil {
		return "", err
	}
	bif, err := Bifurcation(st, points, 2.5, 4.0)
	if err != nil {
		return "", err
	}
	bif.Title.Text = "Logistic Map: Comprehensive Analysis"

	img := vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(st.DPI))
	dc := draw.New(img)
	h := dc.Max.Y - dc.Min.Y

	top := draw.Crop(dc, vg.Points(4), vg.Points(-4), h*0.55, vg.Points(-4))
	bif.Draw(top)

	rows := [][]*plot.Plot{
		make([]*plot.Plot, len(rValues)),
		make([]*plot.Plot, len(rValues)),
	}
	for i, r := range rValues {
		sp, err := seriesPanel(st, r, x0, steps, 0)
		if err != nil {
			return "", err
		}
		cw, err := cobwebPanel(st, r, x0, 20)
		if err != nil {
			return "", err
		}
		rows[0][i] = sp
		rows[1][i] = cw
	}

	bottom := draw.Crop(dc, 0, 0, 0, -h*0.47)
	tiles := draw.Tiles{
		Rows: 2, Cols: len(rValues),
		PadX: vg.Points(8), PadY: vg.Points(8),
		PadTop: vg.Points(4), PadBottom: vg.Points(4),
		PadLeft: vg.Points(4), PadRight: vg.Points(4),
	}
	canvases := plot.Align(rows, tiles, bottom)
	for ri := range rows {
		for ci := range rows[ri] {
			rows[ri][ci].Draw(canvases[ri][ci])
		}
	}

	path := filepath.Join(dir, OverviewFilename)
	if err := writeCanvas(img, path); err != nil {
		return "", err
	}
	return path, nil
}
