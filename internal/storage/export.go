package storage

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
)

// ExportData is the flattened JSON form of one run. Lambda uses
// pointers because encoding/json rejects non-finite values; a
// superstable -Inf exponent exports as null.
type ExportData struct {
	SweepMetadata
	R      []float64  `json:"r"`
	X      []float64  `json:"x,omitempty"`
	Lambda []*float64 `json:"lambda,omitempty"`
}

// ExportJSON writes one stored run as a single JSON document.
func (s *Store) ExportJSON(w io.Writer, runID string) error {
	meta, err := s.Load(runID)
	if err != nil {
		return err
	}

	data := ExportData{SweepMetadata: *meta}

	switch meta.Kind {
	case KindBifurcation:
		points, err := s.LoadPoints(runID)
		if err != nil {
			return err
		}
		data.R = make([]float64, len(points))
		data.X = make([]float64, len(points))
		for i, pt := range points {
			data.R[i] = pt.R
			data.X[i] = pt.X
		}
	case KindLyapunov:
		spec, err := s.LoadSpectrum(runID)
		if err != nil {
			return err
		}
		data.R = spec.R
		data.Lambda = make([]*float64, len(spec.Lambda))
		for i := range spec.Lambda {
			if math.IsInf(spec.Lambda[i], 0) || math.IsNaN(spec.Lambda[i]) {
				continue
			}
			data.Lambda[i] = &spec.Lambda[i]
		}
	default:
		return fmt.Errorf("unknown run kind: %s", meta.Kind)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(data)
}
