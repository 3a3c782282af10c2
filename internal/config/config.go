package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

const (
	DefaultR          = 3.2
	DefaultX0         = 0.2
	DefaultSteps      = 100
	DefaultRMin       = 2.5
	DefaultRMax       = 4.0
	DefaultRSteps     = 5000
	DefaultBurnIn     = 1500
	DefaultKeep       = 500
	DefaultIterations = 1000
)

type Config struct {
	OutDir  string      `yaml:"out_dir"`
	DataDir string      `yaml:"data_dir"`
	Workers int         `yaml:"workers"`
	Theme   string      `yaml:"theme"`
	Orbit   OrbitConfig `yaml:"orbit"`
	Sweep   SweepConfig `yaml:"sweep"`
	Plot    PlotConfig  `yaml:"plot"`
}

// OrbitConfig seeds the single-trajectory commands.
type OrbitConfig struct {
	R     float64 `yaml:"r"`
	X0    float64 `yaml:"x0"`
	Steps int     `yaml:"steps"`
}

// SweepConfig seeds the parameter-grid commands. BurnIn and Keep apply
// to bifurcation sweeps, Iterations to Lyapunov sweeps.
type SweepConfig struct {
	RMin       float64 `yaml:"r_min"`
	RMax       float64 `yaml:"r_max"`
	RSteps     int     `yaml:"r_steps"`
	X0         float64 `yaml:"x0"`
	BurnIn     int     `yaml:"burn_in"`
	Keep       int     `yaml:"keep"`
	Iterations int     `yaml:"iterations"`
}

// PlotConfig is the explicit styling surface for rendered figures.
// Commands convert it to a render style and pass that into every call;
// there is no process-wide style state to mutate.
type PlotConfig struct {
	WidthIn  float64 `yaml:"width_in"`
	HeightIn float64 `yaml:"height_in"`
	DPI      int     `yaml:"dpi"`
	Palette  string  `yaml:"palette"`
	Grid     bool    `yaml:"grid"`
	Annotate bool    `yaml:"annotate"`
	Density  bool    `yaml:"density"`
}

func DefaultConfig() *Config {
	return &Config{
		OutDir:  "plots",
		DataDir: "data",
		Theme:   "classic",
		Orbit: OrbitConfig{
			R:     DefaultR,
			X0:    DefaultX0,
			Steps: DefaultSteps,
		},
		Sweep: SweepConfig{
			RMin:       DefaultRMin,
			RMax:       DefaultRMax,
			RSteps:     DefaultRSteps,
			X0:         0.1,
			BurnIn:     DefaultBurnIn,
			Keep:       DefaultKeep,
			Iterations: DefaultIterations,
		},
		Plot: PlotConfig{
			WidthIn:  12,
			HeightIn: 8,
			DPI:      300,
			Palette:  "viridis",
			Grid:     true,
			Annotate: true,
			Density:  true,
		},
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
