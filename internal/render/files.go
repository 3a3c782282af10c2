package render

import (
	"fmt"
	"os"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
)

// Figure files follow the naming the plots have always used:
// single-parameter figures embed r to three decimals.
func CobwebFilename(r float64) string { return fmt.Sprintf("cobweb_r_%.3f.png", r) }

func SeriesFilename(r float64) string { return fmt.Sprintf("timeseries_r_%.3f.png", r) }

const (
	BifurcationFilename = "bifurcation_diagram.png"
	LyapunovFilename    = "lyapunov_spectrum.png"
	OverviewFilename    = "comprehensive_analysis.png"
	CascadeFilename     = "period_doubling.png"
)

// writePNG rasterizes one plot at the requested size and DPI.
func writePNG(p *plot.Plot, w, h vg.Length, dpi int, path string) error {
	img := vgimg.NewWith(vgimg.UseWH(w, h), vgimg.UseDPI(dpi))
	dc := draw.New(img)
	dc = draw.Crop(dc, vg.Points(5), vg.Points(-5), vg.Points(5), vg.Points(-5))
	p.Draw(dc)
	return writeCanvas(img, path)
}

// writeGrid tiles plots onto one canvas, row major. Nil entries leave
// their cell blank.
func writeGrid(st Style, path string, plots [][]*plot.Plot) error {
	img := vgimg.NewWith(vgimg.UseWH(st.Width, st.Height), vgimg.UseDPI(st.DPI))
	dc := draw.New(img)

	tiles := draw.Tiles{
		Rows: len(plots), Cols: len(plots[0]),
		PadX: vg.Points(10), PadY: vg.Points(10),
		PadTop: vg.Points(6), PadBottom: vg.Points(6),
		PadLeft: vg.Points(6), PadRight: vg.Points(6),
	}
	canvases := plot.Align(plots, tiles, dc)
	for r := range plots {
		for c := range plots[r] {
			if plots[r][c] != nil {
				plots[r][c].Draw(canvases[r][c])
			}
		}
	}
	return writeCanvas(img, path)
}

// writeColumn stacks plots vertically on one canvas.
func writeColumn(st Style, path string, plots ...*plot.Plot) error {
	grid := make([][]*plot.Plot, len(plots))
	for i, p := range plots {
		grid[i] = []*plot.Plot{p}
	}
	return writeGrid(st, path, grid)
}

func writeCanvas(img *vgimg.Canvas, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	c := vgimg.PngCanvas{Canvas: img}
	if _, err := c.WriteTo(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
