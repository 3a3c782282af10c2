package render

import (
	"fmt"

	"github.com/san-kum/logmap/internal/logistic"
)

// Request bundles everything a registered figure may need. Each figure
// reads the fields relevant to it and ignores the rest.
type Request struct {
	Style  Style
	OutDir string

	// single-orbit figures
	R     float64
	X0    float64
	Steps int

	// sweep figures
	RMin       float64
	RMax       float64
	RSteps     int
	BurnIn     int
	Samples    int
	Iterations int
	Workers    int
	Reference  bool
}

// Figure is a named renderer the demo and figure listing dispatch on.
type Figure struct {
	Name string
	Note string
	Make func(Request) (string, error)
}

// Registry maps figure names to their renderers, preserving
// registration order for listings.
type Registry struct {
	figures map[string]Figure
	order   []string
}

func NewRegistry() *Registry {
	g := &Registry{figures: make(map[string]Figure)}

	g.register(Figure{
		Name: "cobweb",
		Note: "staircase construction of one orbit",
		Make: func(q Request) (string, error) {
			return SaveCobweb(q.Style, q.R, q.X0, q.Steps, q.OutDir)
		},
	})
	g.register(Figure{
		Name: "series",
		Note: "orbit against iteration index",
		Make: func(q Request) (string, error) {
			return SaveTimeSeries(q.Style, q.R, q.X0, q.Steps, q.OutDir)
		},
	})
	g.register(Figure{
		Name: "bifurcation",
		Note: "attractor samples across the parameter range",
		Make: func(q Request) (string, error) {
			sweep := logistic.Sweep{
				RMin: q.RMin, RMax: q.RMax, Steps: q.RSteps,
				X0: q.X0, BurnIn: q.BurnIn, Samples: q.Samples,
				Workers: q.Workers,
			}
			points, err := sweep.Run()
			if err != nil {
				return "", err
			}
			return SaveBifurcation(q.Style, points, q.RMin, q.RMax, q.OutDir)
		},
	})
	g.register(Figure{
		Name: "lyapunov",
		Note: "exponent spectrum across the parameter range",
		Make: func(q Request) (string, error) {
			sweep := logistic.SpectrumSweep{
				RMin: q.RMin, RMax: q.RMax, Steps: q.RSteps,
				X0: q.X0, Iterations: q.Iterations,
				Workers: q.Workers,
			}
			spec, err := sweep.Run()
			if err != nil {
				return "", err
			}
			return SaveLyapunov(q.Style, spec, q.Reference, q.Workers, q.OutDir)
		},
	})
	g.register(Figure{
		Name: "cascade",
		Note: "period-doubling route, one panel per landmark",
		Make: func(q Request) (string, error) {
			return SaveCascade(q.Style, q.X0, q.OutDir)
		},
	})
	g.register(Figure{
		Name: "overview",
		Note: "bifurcation diagram with series and cobweb panels",
		Make: func(q Request) (string, error) {
			return SaveOverview(q.Style, nil, q.X0, q.Steps, q.Workers, q.OutDir)
		},
	})

	return g
}

func (g *Registry) register(f Figure) {
	g.figures[f.Name] = f
	g.order = append(g.order, f.Name)
}

// Get returns the named figure.
func (g *Registry) Get(name string) (Figure, error) {
	f, ok := g.figures[name]
	if !ok {
		return Figure{}, fmt.Errorf("unknown figure: %s", name)
	}
	return f, nil
}

// List returns the figures in registration order.
func (g *Registry) List() []Figure {
	out := make([]Figure, 0, len(g.order))
	for _, name := range g.order {
		out = append(out, g.figures[name])
	}
	return out
}
