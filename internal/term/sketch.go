package term

import (
	"github.com/san-kum/logmap/internal/logistic"
)

// dotSpan returns the canvas extent in dot coordinates.
func (c *Canvas) dotSpan() (w, h int) {
	return c.Width * 2, c.Height * 4
}

// toDot maps unit-interval coordinates onto the dot grid, with y
// growing upward the way the plots orient it.
func (c *Canvas) toDot(u, v float64) (int, int) {
	w, h := c.dotSpan()
	x := int(u*float64(w-1) + 0.5)
	y := int((1-v)*float64(h-1) + 0.5)
	if x < 0 {
		x = 0
	}
	if x >= w {
		x = w - 1
	}
	if y < 0 {
		y = 0
	}
	if y >= h {
		y = h - 1
	}
	return x, y
}

// DrawCobweb renders the staircase construction for one orbit: the map
// curve, the identity diagonal, and steps alternating vertical and
// horizontal segments.
func DrawCobweb(c *Canvas, r, x0 float64, steps int) {
	w, _ := c.dotSpan()

	// identity diagonal
	dx0, dy0 := c.toDot(0, 0)
	dx1, dy1 := c.toDot(1, 1)
	c.DrawLine(dx0, dy0, dx1, dy1)

	// map curve, one sample per dot column
	px, py := c.toDot(0, 0)
	for i := 1; i < w; i++ {
		u := float64(i) / float64(w-1)
		qx, qy := c.toDot(u, logistic.Map(u, r))
		c.DrawLine(px, py, qx, qy)
		px, py = qx, qy
	}

	x := x0
	for i := 0; i < steps; i++ {
		fx := logistic.Map(x, r)
		vx0, vy0 := c.toDot(x, x)
		vx1, vy1 := c.toDot(x, fx)
		c.DrawLine(vx0, vy0, vx1, vy1)
		hx, hy := c.toDot(fx, fx)
		c.DrawLine(vx1, vy1, hx, hy)
		x = fx
	}
}

// CobwebSketch renders a cobweb diagram into a w x h character string.
func CobwebSketch(r, x0 float64, steps, w, h int) string {
	c := NewCanvas(w, h)
	DrawCobweb(c, r, x0, steps)
	return c.String()
}

// DrawBifurcation scatters attractor samples over the dot grid.
// Points outside [rMin, rMax] are skipped.
func DrawBifurcation(c *Canvas, points []logistic.Point, rMin, rMax float64) {
	span := rMax - rMin
	if span <= 0 {
		return
	}
	for _, pt := range points {
		if pt.R < rMin || pt.R > rMax {
			continue
		}
		x, y := c.toDot((pt.R-rMin)/span, pt.X)
		c.Set(x, y)
	}
}

// BifurcationSketch runs a parameter sweep and renders the diagram
// into a w x h character string.
func BifurcationSketch(rMin, rMax float64, w, h int) (string, error) {
	sweep := logistic.Sweep{
		RMin: rMin, RMax: rMax, Steps: w * 2,
		X0: 0.5, BurnIn: 300, Samples: 40,
	}
	points, err := sweep.Run()
	if err != nil {
		return "", err
	}
	c := NewCanvas(w, h)
	DrawBifurcation(c, points, rMin, rMax)
	return c.String(), nil
}
