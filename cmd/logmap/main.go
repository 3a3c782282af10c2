package main

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"math"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/guptarohit/asciigraph"
	"github.com/lmittmann/tint"
	"github.com/spf13/cobra"

	"github.com/san-kum/logmap/internal/analysis"
	"github.com/san-kum/logmap/internal/config"
	"github.com/san-kum/logmap/internal/export"
	"github.com/san-kum/logmap/internal/logistic"
	"github.com/san-kum/logmap/internal/render"
	"github.com/san-kum/logmap/internal/storage"
	"github.com/san-kum/logmap/internal/term"
	"github.com/san-kum/logmap/internal/tui"
)

var (
	dataDir    string
	configFile string
	outDir     string
	workers    int
	themeName  string
	verbosity  int

	r      float64
	x0     float64
	steps  int
	preset string

	rMin       float64
	rMax       float64
	rSteps     int
	burnIn     int
	keep       int
	iterations int

	asciiOut  bool
	svgOut    string
	density   bool
	saveRun   bool
	reference bool
	doublings int
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "logmap",
		Short: "logistic map analysis and visualization lab",
		// Default to the interactive explorer when no command given
		RunE: runExplore,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			setupLogging(verbosity)
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", "", "run data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&outDir, "out", "", "figure output directory")
	rootCmd.PersistentFlags().IntVar(&workers, "workers", 0, "sweep workers (0 = all cores)")
	rootCmd.PersistentFlags().StringVar(&themeName, "theme", "", "terminal color theme")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "log detail (-v info, -vv debug)")

	cobwebCmd := &cobra.Command{
		Use:   "cobweb",
		Short: "cobweb plot of one orbit",
		RunE:  runCobweb,
	}
	cobwebCmd.Flags().Float64Var(&r, "r", config.DefaultR, "growth parameter")
	cobwebCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial state")
	cobwebCmd.Flags().IntVar(&steps, "steps", 50, "staircase steps")
	cobwebCmd.Flags().StringVar(&preset, "preset", "", "parameter preset")
	cobwebCmd.Flags().BoolVar(&asciiOut, "ascii", false, "print a braille sketch instead of a PNG")
	cobwebCmd.Flags().StringVar(&svgOut, "svg", "", "also write an SVG to this path")

	seriesCmd := &cobra.Command{
		Use:   "series",
		Short: "time series of one orbit",
		RunE:  runSeries,
	}
	seriesCmd.Flags().Float64Var(&r, "r", config.DefaultR, "growth parameter")
	seriesCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial state")
	seriesCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iterations")
	seriesCmd.Flags().StringVar(&preset, "preset", "", "parameter preset")
	seriesCmd.Flags().BoolVar(&asciiOut, "ascii", false, "print an asciigraph preview instead of a PNG")
	seriesCmd.Flags().StringVar(&svgOut, "svg", "", "also write an SVG to this path")

	bifurcationCmd := &cobra.Command{
		Use:   "bifurcation",
		Short: "bifurcation diagram over a parameter range",
		RunE:  runBifurcation,
	}
	bifurcationCmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "range start")
	bifurcationCmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "range end")
	bifurcationCmd.Flags().IntVar(&rSteps, "r-steps", config.DefaultRSteps, "parameter grid size")
	bifurcationCmd.Flags().Float64Var(&x0, "x0", 0.1, "initial state")
	bifurcationCmd.Flags().IntVar(&burnIn, "burn-in", config.DefaultBurnIn, "discarded iterations per r")
	bifurcationCmd.Flags().IntVar(&keep, "keep", config.DefaultKeep, "sampled iterations per r")
	bifurcationCmd.Flags().BoolVar(&density, "density", true, "shade by sample density")
	bifurcationCmd.Flags().BoolVar(&asciiOut, "ascii", false, "print a braille sketch instead of a PNG")
	bifurcationCmd.Flags().BoolVar(&saveRun, "save", false, "persist the sweep to the data directory")

	lyapunovCmd := &cobra.Command{
		Use:   "lyapunov",
		Short: "Lyapunov exponent spectrum over a parameter range",
		RunE:  runLyapunov,
	}
	lyapunovCmd.Flags().Float64Var(&rMin, "r-min", config.DefaultRMin, "range start")
	lyapunovCmd.Flags().Float64Var(&rMax, "r-max", config.DefaultRMax, "range end")
	lyapunovCmd.Flags().IntVar(&rSteps, "r-steps", 2000, "parameter grid size")
	lyapunovCmd.Flags().Float64Var(&x0, "x0", 0.1, "initial state")
	lyapunovCmd.Flags().IntVar(&iterations, "iterations", config.DefaultIterations, "iterations per exponent")
	lyapunovCmd.Flags().BoolVar(&reference, "reference", false, "stack a reference bifurcation diagram below")
	lyapunovCmd.Flags().BoolVar(&asciiOut, "ascii", false, "print an asciigraph preview instead of a PNG")
	lyapunovCmd.Flags().BoolVar(&saveRun, "save", false, "persist the sweep to the data directory")

	analyzeCmd := &cobra.Command{
		Use:   "analyze [r]",
		Short: "orbit diagnostics at one parameter value",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runAnalyze,
	}
	analyzeCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial state")
	analyzeCmd.Flags().StringVar(&preset, "preset", "", "parameter preset")
	analyzeCmd.Flags().BoolVar(&asciiOut, "ascii", false, "append an orbit graph")

	cascadeCmd := &cobra.Command{
		Use:   "cascade",
		Short: "locate period-doubling onsets and estimate Feigenbaum delta",
		RunE:  runCascade,
	}
	cascadeCmd.Flags().IntVar(&doublings, "doublings", 4, "onsets to locate")
	cascadeCmd.Flags().Float64Var(&x0, "x0", config.DefaultX0, "initial state for the figure panels")

	overviewCmd := &cobra.Command{
		Use:   "overview",
		Short: "comprehensive analysis figure",
		RunE:  runOverview,
	}
	overviewCmd.Flags().Float64Var(&x0, "x0", 0.1, "initial state")
	overviewCmd.Flags().IntVar(&steps, "steps", config.DefaultSteps, "iterations per panel")

	demoCmd := &cobra.Command{
		Use:   "demo",
		Short: "generate the full example figure set",
		RunE:  runDemo,
	}

	exploreCmd := &cobra.Command{
		Use:   "explore",
		Short: "interactive cobweb explorer",
		RunE:  runExplore,
	}
	exploreCmd.Flags().Float64Var(&r, "r", config.DefaultR, "growth parameter")
	exploreCmd.Flags().Float64Var(&x0, "x0", 0.3, "initial state")
	exploreCmd.Flags().IntVar(&steps, "steps", 60, "staircase steps")
	exploreCmd.Flags().StringVar(&preset, "preset", "", "parameter preset")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list parameter presets",
		RunE:  listPresets,
	}

	figuresCmd := &cobra.Command{
		Use:   "figures",
		Short: "list renderable figures",
		RunE:  listFigures,
	}

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "work with persisted sweeps",
	}
	runsListCmd := &cobra.Command{
		Use:   "list",
		Short: "list persisted sweeps",
		RunE:  listRuns,
	}
	runsShowCmd := &cobra.Command{
		Use:   "show [run_id]",
		Short: "print sweep metadata",
		Args:  cobra.ExactArgs(1),
		RunE:  showRun,
	}
	runsRenderCmd := &cobra.Command{
		Use:   "render [run_id]",
		Short: "re-render a persisted sweep without recomputation",
		Args:  cobra.ExactArgs(1),
		RunE:  renderRun,
	}
	runsExportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export a persisted sweep as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}
	runsCmd.AddCommand(runsListCmd, runsShowCmd, runsRenderCmd, runsExportCmd)

	configCmd := &cobra.Command{
		Use:   "config",
		Short: "configuration helpers",
	}
	configInitCmd := &cobra.Command{
		Use:   "init [path]",
		Short: "write a default config file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "logmap.yaml"
			if len(args) > 0 {
				path = args[0]
			}
			if err := config.Save(path, config.DefaultConfig()); err != nil {
				return err
			}
			fmt.Printf("wrote %s\n", path)
			return nil
		},
	}
	configCmd.AddCommand(configInitCmd)

	rootCmd.AddCommand(cobwebCmd, seriesCmd, bifurcationCmd, lyapunovCmd,
		analyzeCmd, cascadeCmd, overviewCmd, demoCmd, exploreCmd,
		presetsCmd, figuresCmd, runsCmd, configCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func setupLogging(v int) {
	level := slog.LevelWarn
	switch {
	case v >= 2:
		level = slog.LevelDebug
	case v == 1:
		level = slog.LevelInfo
	}
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      level,
		TimeFormat: time.Kitchen,
	})))
}

func loadConfig() (*config.Config, error) {
	if configFile == "" {
		return config.DefaultConfig(), nil
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

// applyGlobals resolves the persistent flags against the config and
// switches the terminal theme. Explicit flags win.
func applyGlobals(cfg *config.Config) {
	if dataDir == "" {
		dataDir = cfg.DataDir
	}
	if outDir == "" {
		outDir = cfg.OutDir
	}
	if workers == 0 {
		workers = cfg.Workers
	}
	if themeName == "" {
		themeName = cfg.Theme
	}
	term.SetTheme(themeName)
}

// applyOrbitParams fills r, x0 and steps from the preset when one is
// named, otherwise from the config file when one is in use. Flags the
// user set explicitly always win, and commands without the flag at all
// take the resolved value.
func applyOrbitParams(cmd *cobra.Command, cfg *config.Config) error {
	if preset != "" {
		p, ok := config.GetPreset(preset)
		if !ok {
			return fmt.Errorf("unknown preset: %s (available: %s)",
				preset, strings.Join(config.ListPresets(), ", "))
		}
		if !cmd.Flags().Changed("r") {
			r = p.R
		}
		if !cmd.Flags().Changed("x0") {
			x0 = p.X0
		}
		if f := cmd.Flags().Lookup("steps"); f == nil || !f.Changed {
			steps = p.Steps
		}
		return nil
	}
	fromFile := configFile != ""
	if f := cmd.Flags().Lookup("r"); f == nil || (fromFile && !f.Changed) {
		r = cfg.Orbit.R
	}
	if f := cmd.Flags().Lookup("x0"); f == nil || (fromFile && !f.Changed) {
		x0 = cfg.Orbit.X0
	}
	if f := cmd.Flags().Lookup("steps"); f == nil || (fromFile && !f.Changed) {
		steps = cfg.Orbit.Steps
	}
	return nil
}

func applySweepParams(cmd *cobra.Command, cfg *config.Config) {
	if configFile == "" {
		return
	}
	if !cmd.Flags().Changed("r-min") {
		rMin = cfg.Sweep.RMin
	}
	if !cmd.Flags().Changed("r-max") {
		rMax = cfg.Sweep.RMax
	}
	if !cmd.Flags().Changed("x0") {
		x0 = cfg.Sweep.X0
	}
	if f := cmd.Flags().Lookup("burn-in"); f != nil && !f.Changed {
		burnIn = cfg.Sweep.BurnIn
	}
	if f := cmd.Flags().Lookup("keep"); f != nil && !f.Changed {
		keep = cfg.Sweep.Keep
	}
	if f := cmd.Flags().Lookup("iterations"); f != nil && !f.Changed {
		iterations = cfg.Sweep.Iterations
	}
}

func styleFrom(cmd *cobra.Command, cfg *config.Config) render.Style {
	st := render.NewStyle(render.Options{
		WidthIn:  cfg.Plot.WidthIn,
		HeightIn: cfg.Plot.HeightIn,
		DPI:      cfg.Plot.DPI,
		Palette:  cfg.Plot.Palette,
		Grid:     cfg.Plot.Grid,
		Annotate: cfg.Plot.Annotate,
		Density:  cfg.Plot.Density,
	})
	if cmd.Flags().Changed("density") {
		st.Density = density
	}
	return st
}

func ensureOutDir() error {
	return os.MkdirAll(outDir, 0755)
}

func runCobweb(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if err := applyOrbitParams(cmd, cfg); err != nil {
		return err
	}

	if svgOut != "" {
		c := term.NewCanvas(70, 28)
		term.DrawCobweb(c, r, x0, steps)
		svg := export.CanvasSVG(c, 4, string(term.CurrentTheme.Primary))
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	if asciiOut {
		fmt.Print(term.CobwebSketch(r, x0, steps, 60, 24))
		fmt.Printf("cobweb  r = %.3f  x0 = %.3f  steps = %d\n", r, x0, steps)
		return nil
	}

	if err := ensureOutDir(); err != nil {
		return err
	}
	path, err := render.SaveCobweb(styleFrom(cmd, cfg), r, x0, steps, outDir)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runSeries(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if err := applyOrbitParams(cmd, cfg); err != nil {
		return err
	}

	orbit := logistic.Iterate(r, x0, steps)

	if svgOut != "" {
		svg := export.OrbitSVG(orbit, 800, 400, string(term.CurrentTheme.Primary))
		if err := os.WriteFile(svgOut, []byte(svg), 0644); err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", svgOut)
	}

	if asciiOut {
		graph := asciigraph.Plot(orbit,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("x(n) for r = %.3f, x0 = %.3f", r, x0)),
		)
		fmt.Println(graph)
	} else {
		if err := ensureOutDir(); err != nil {
			return err
		}
		path, err := render.SaveTimeSeries(styleFrom(cmd, cfg), r, x0, steps, outDir)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	sum := analysis.Summarize(orbit)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "MEAN\tSTD\tMIN\tMAX")
	fmt.Fprintf(w, "%.6f\t%.6f\t%.6f\t%.6f\n", sum.Mean, sum.Std, sum.Min, sum.Max)
	return w.Flush()
}

func runBifurcation(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	applySweepParams(cmd, cfg)
	if configFile != "" && !cmd.Flags().Changed("r-steps") {
		rSteps = cfg.Sweep.RSteps
	}

	sweep := logistic.Sweep{
		RMin: rMin, RMax: rMax, Steps: rSteps,
		X0: x0, BurnIn: burnIn, Samples: keep,
		Workers: workers,
	}

	start := time.Now()
	points, err := sweep.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	slog.Info("sweep complete", "kind", storage.KindBifurcation,
		"points", len(points), "elapsed", elapsed)

	if asciiOut {
		c := term.NewCanvas(70, 22)
		term.DrawBifurcation(c, points, rMin, rMax)
		fmt.Print(c.String())
		fmt.Printf("bifurcation  r in [%.3f, %.3f]  %d points\n", rMin, rMax, len(points))
	} else {
		if err := ensureOutDir(); err != nil {
			return err
		}
		path, err := render.SaveBifurcation(styleFrom(cmd, cfg), points, rMin, rMax, outDir)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveBifurcation(sweep, points, elapsed)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runLyapunov(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	applySweepParams(cmd, cfg)

	sweep := logistic.SpectrumSweep{
		RMin: rMin, RMax: rMax, Steps: rSteps,
		X0: x0, Iterations: iterations,
		Workers: workers,
	}

	start := time.Now()
	spec, err := sweep.Run()
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	slog.Info("sweep complete", "kind", storage.KindLyapunov,
		"points", len(spec.R), "elapsed", elapsed)

	if asciiOut {
		finite := make([]float64, 0, len(spec.Lambda))
		for _, l := range spec.Lambda {
			if !math.IsInf(l, 0) && !math.IsNaN(l) {
				finite = append(finite, l)
			}
		}
		graph := asciigraph.Plot(finite,
			asciigraph.Height(12),
			asciigraph.Width(70),
			asciigraph.Caption(fmt.Sprintf("lambda(r) for r in [%.3f, %.3f]", rMin, rMax)),
		)
		fmt.Println(graph)
	} else {
		if err := ensureOutDir(); err != nil {
			return err
		}
		path, err := render.SaveLyapunov(styleFrom(cmd, cfg), spec, reference, workers, outDir)
		if err != nil {
			return err
		}
		fmt.Printf("wrote %s\n", path)
	}

	if saveRun {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.SaveSpectrum(sweep, spec, elapsed)
		if err != nil {
			return err
		}
		fmt.Printf("run id: %s\n", runID)
	}
	return nil
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if err := applyOrbitParams(cmd, cfg); err != nil {
		return err
	}
	if len(args) == 1 {
		v, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid parameter %q: %w", args[0], err)
		}
		r = v
	}

	const (
		settleBurn   = 2000
		settleWindow = 256
		exponentN    = 5000
	)

	settled := logistic.Advance(x0, r, settleBurn)
	window := logistic.Iterate(r, settled, settleWindow)[1:]
	period := analysis.DetectPeriod(window, 64, 1e-6)
	lambda := logistic.Exponent(r, x0, exponentN)
	regime := analysis.Classify(lambda, 1e-3)
	spectral := analysis.DominantPeriod(window)
	sum := analysis.Summarize(window)

	fmt.Printf("orbit analysis  r = %.6f  x0 = %.6f\n\n", r, x0)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "regime\t%s\n", term.RegimeBadge(regime))
	if math.IsInf(lambda, -1) {
		fmt.Fprintf(w, "lyapunov\t-Inf (superstable)\n")
	} else {
		fmt.Fprintf(w, "lyapunov\t%+.6f\n", lambda)
	}
	if period > 0 {
		fmt.Fprintf(w, "period\t%d\n", period)
		cycle := analysis.CycleValues(window, period)
		parts := make([]string, len(cycle))
		for i, v := range cycle {
			parts[i] = fmt.Sprintf("%.6f", v)
		}
		fmt.Fprintf(w, "cycle\t%s\n", strings.Join(parts, "  "))
	} else {
		fmt.Fprintf(w, "period\tnone detected (aperiodic)\n")
	}
	if spectral > 0 {
		fmt.Fprintf(w, "spectral period\t%d\n", spectral)
	} else {
		fmt.Fprintf(w, "spectral period\tbroadband\n")
	}
	fmt.Fprintf(w, "mean\t%.6f\n", sum.Mean)
	fmt.Fprintf(w, "std\t%.6f\n", sum.Std)
	fmt.Fprintf(w, "range\t[%.6f, %.6f]\n", sum.Min, sum.Max)
	if err := w.Flush(); err != nil {
		return err
	}

	if asciiOut {
		fmt.Println()
		graph := asciigraph.Plot(logistic.Iterate(r, x0, 80),
			asciigraph.Height(10),
			asciigraph.Width(70),
			asciigraph.Caption("orbit from x0"),
		)
		fmt.Println(graph)
	}
	return nil
}

func runCascade(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if !cmd.Flags().Changed("x0") {
		x0 = cfg.Orbit.X0
	}

	fmt.Printf("locating %d period-doubling onsets...\n\n", doublings)
	start := time.Now()
	onsets := analysis.BifurcationPoints(doublings)
	slog.Info("cascade bisection complete", "onsets", len(onsets), "elapsed", time.Since(start))

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TRANSITION\tONSET R")
	for k, onset := range onsets {
		fmt.Fprintf(w, "period %d to %d\t%.6f\n", 1<<k, 1<<(k+1), onset)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	deltas := analysis.FeigenbaumDeltas(onsets)
	if len(deltas) > 0 {
		fmt.Println()
		w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintln(w, "K\tDELTA ESTIMATE")
		for i, d := range deltas {
			fmt.Fprintf(w, "%d\t%.4f\n", i+1, d)
		}
		fmt.Fprintf(w, "limit\t%.4f\n", analysis.FeigenbaumDelta)
		if err := w.Flush(); err != nil {
			return err
		}
	}

	if err := ensureOutDir(); err != nil {
		return err
	}
	path, err := render.SaveCascade(styleFrom(cmd, cfg), x0, outDir)
	if err != nil {
		return err
	}
	fmt.Printf("\nwrote %s\n", path)
	return nil
}

func runOverview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if !cmd.Flags().Changed("x0") {
		x0 = cfg.Sweep.X0
	}
	if !cmd.Flags().Changed("steps") {
		steps = cfg.Orbit.Steps
	}

	if err := ensureOutDir(); err != nil {
		return err
	}
	path, err := render.SaveOverview(styleFrom(cmd, cfg), nil, x0, steps, workers, outDir)
	if err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if err := ensureOutDir(); err != nil {
		return err
	}

	st := styleFrom(cmd, cfg)
	reg := render.NewRegistry()

	sequence := []struct {
		message string
		figure  string
		request render.Request
	}{
		{"1. Generating Cobweb Plot (r=3.2, periodic)...", "cobweb",
			render.Request{R: 3.2, X0: 0.2, Steps: 50}},
		{"2. Generating Cobweb Plot (r=3.9, chaotic)...", "cobweb",
			render.Request{R: 3.9, X0: 0.2, Steps: 100}},
		{"3. Generating Time Series (periodic)...", "series",
			render.Request{R: 3.2, X0: 0.2, Steps: 100}},
		{"4. Generating Time Series (chaotic)...", "series",
			render.Request{R: 3.9, X0: 0.2, Steps: 100}},
		{"5. Generating Bifurcation Diagram (this may take a moment)...", "bifurcation",
			render.Request{RMin: cfg.Sweep.RMin, RMax: cfg.Sweep.RMax, RSteps: cfg.Sweep.RSteps,
				X0: cfg.Sweep.X0, BurnIn: cfg.Sweep.BurnIn, Samples: cfg.Sweep.Keep}},
		{"6. Generating Lyapunov Exponent Plot...", "lyapunov",
			render.Request{RMin: cfg.Sweep.RMin, RMax: cfg.Sweep.RMax, RSteps: 2000,
				X0: cfg.Sweep.X0, Iterations: cfg.Sweep.Iterations, Reference: true}},
	}

	for _, step := range sequence {
		fmt.Println()
		fmt.Println(step.message)
		fig, err := reg.Get(step.figure)
		if err != nil {
			return err
		}
		req := step.request
		req.Style = st
		req.OutDir = outDir
		req.Workers = workers
		path, err := fig.Make(req)
		if err != nil {
			return err
		}
		fmt.Printf("   wrote %s\n", path)
	}

	fmt.Println("\nAll plots generated successfully!")
	return nil
}

func runExplore(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)
	if err := applyOrbitParams(cmd, cfg); err != nil {
		return err
	}
	return tui.Run(r, x0, steps, themeName)
}

func listPresets(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tR\tX0\tSTEPS\tNOTE")
	for _, name := range config.ListPresets() {
		p, _ := config.GetPreset(name)
		fmt.Fprintf(w, "%s\t%.7g\t%.2f\t%d\t%s\n", name, p.R, p.X0, p.Steps, p.Note)
	}
	return w.Flush()
}

func listFigures(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tNOTE")
	for _, f := range render.NewRegistry().List() {
		fmt.Fprintf(w, "%s\t%s\n", f.Name, f.Note)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)

	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tKIND\tTIME\tRANGE\tPOINTS\tELAPSED")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t[%.3f, %.3f]\t%d\t%dms\n",
			run.ID,
			run.Kind,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.RMin, run.RMax,
			run.Points,
			run.ElapsedMS,
		)
	}
	return w.Flush()
}

func showRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func renderRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)

	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	if err := ensureOutDir(); err != nil {
		return err
	}
	style := styleFrom(cmd, cfg)

	var path string
	switch meta.Kind {
	case storage.KindBifurcation:
		points, err := st.LoadPoints(args[0])
		if err != nil {
			return err
		}
		path, err = render.SaveBifurcation(style, points, meta.RMin, meta.RMax, outDir)
		if err != nil {
			return err
		}
	case storage.KindLyapunov:
		spec, err := st.LoadSpectrum(args[0])
		if err != nil {
			return err
		}
		path, err = render.SaveLyapunov(style, spec, false, workers, outDir)
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}

	fmt.Printf("wrote %s\n", path)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	applyGlobals(cfg)

	st := storage.New(dataDir)
	return st.ExportJSON(os.Stdout, args[0])
}
