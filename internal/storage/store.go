package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/logmap/internal/logistic"
)

// Sweep kinds, also the run directory prefix and the data file schema.
const (
	KindBifurcation = "bifurcation"
	KindLyapunov    = "lyapunov"
)

type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

// SweepMetadata describes one stored sweep run.
type SweepMetadata struct {
	ID         string    `json:"id"`
	Kind       string    `json:"kind"`
	Timestamp  time.Time `json:"timestamp"`
	RMin       float64   `json:"r_min"`
	RMax       float64   `json:"r_max"`
	RSteps     int       `json:"r_steps"`
	X0         float64   `json:"x0"`
	BurnIn     int       `json:"burn_in,omitempty"`
	Samples    int       `json:"samples,omitempty"`
	Iterations int       `json:"iterations,omitempty"`
	Points     int       `json:"points"`
	ElapsedMS  int64     `json:"elapsed_ms"`
}

// SaveBifurcation stores the attractor samples of one sweep run and
// returns the new run ID.
func (s *Store) SaveBifurcation(sweep logistic.Sweep, points []logistic.Point, elapsed time.Duration) (string, error) {
	meta := SweepMetadata{
		Kind:      KindBifurcation,
		Timestamp: time.Now(),
		RMin:      sweep.RMin,
		RMax:      sweep.RMax,
		RSteps:    sweep.Steps,
		X0:        sweep.X0,
		BurnIn:    sweep.BurnIn,
		Samples:   sweep.Samples,
		Points:    len(points),
		ElapsedMS: elapsed.Milliseconds(),
	}

	rows := make([][]string, 0, len(points))
	for _, pt := range points {
		rows = append(rows, []string{formatFloat(pt.R), formatFloat(pt.X)})
	}
	return s.saveRun(meta, "samples.csv", []string{"r", "x"}, rows)
}

// SaveSpectrum stores a Lyapunov spectrum run and returns the new run
// ID. Non-finite exponents round-trip through the CSV as Inf tokens.
func (s *Store) SaveSpectrum(sweep logistic.SpectrumSweep, spec *logistic.Spectrum, elapsed time.Duration) (string, error) {
	meta := SweepMetadata{
		Kind:       KindLyapunov,
		Timestamp:  time.Now(),
		RMin:       sweep.RMin,
		RMax:       sweep.RMax,
		RSteps:     sweep.Steps,
		X0:         sweep.X0,
		Iterations: sweep.Iterations,
		Points:     len(spec.R),
		ElapsedMS:  elapsed.Milliseconds(),
	}

	rows := make([][]string, 0, len(spec.R))
	for i := range spec.R {
		rows = append(rows, []string{formatFloat(spec.R[i]), formatFloat(spec.Lambda[i])})
	}
	return s.saveRun(meta, "spectrum.csv", []string{"r", "lambda"}, rows)
}

func (s *Store) saveRun(meta SweepMetadata, dataFile string, header []string, rows [][]string) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Kind, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}
	meta.ID = runID

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	csvFile, err := os.Create(filepath.Join(runDir, dataFile))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write(header); err != nil {
		return "", err
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	return runID, nil
}

// formatFloat keeps full round-trip precision so loaded runs replot
// bit for bit.
func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// List returns metadata for every readable run, skipping entries that
// are not run directories.
func (s *Store) List() ([]SweepMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []SweepMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]SweepMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
		if err != nil {
			continue
		}

		var meta SweepMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}

		runs = append(runs, meta)
	}

	return runs, nil
}

func (s *Store) Load(runID string) (*SweepMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta SweepMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadPoints reads back the attractor samples of a bifurcation run.
func (s *Store) LoadPoints(runID string) ([]logistic.Point, error) {
	records, err := s.readCSV(runID, "samples.csv")
	if err != nil {
		return nil, err
	}

	points := make([]logistic.Point, 0, len(records))
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		x, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		points = append(points, logistic.Point{R: r, X: x})
	}
	return points, nil
}

// LoadSpectrum reads back the exponents of a Lyapunov run.
func (s *Store) LoadSpectrum(runID string) (*logistic.Spectrum, error) {
	records, err := s.readCSV(runID, "spectrum.csv")
	if err != nil {
		return nil, err
	}

	spec := &logistic.Spectrum{
		R:      make([]float64, 0, len(records)),
		Lambda: make([]float64, 0, len(records)),
	}
	for _, record := range records {
		if len(record) < 2 {
			continue
		}
		r, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		lambda, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		spec.R = append(spec.R, r)
		spec.Lambda = append(spec.Lambda, lambda)
	}
	return spec, nil
}

// readCSV returns the data rows of a run file, header stripped.
func (s *Store) readCSV(runID, name string) ([][]string, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, name))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return [][]string{}, nil
	}
	return records[1:], nil
}
