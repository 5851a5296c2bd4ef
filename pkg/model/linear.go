package model

import (
	"encoding/json"
	"fmt"
)

type linearFile struct {
	Classes   []int       `json:"classes"`
	Coef      [][]float64 `json:"coef"`
	Intercept []float64   `json:"intercept"`
}

// Linear is a one-vs-rest linear model: the predicted class is the one with
// the highest decision score. A binary model stores a single row whose
// positive side is classes[1].
type Linear struct {
	classes   []int
	coef      [][]float64
	intercept []float64
	features  int
}

func decodeLinear(data []byte) (*Linear, error) {
	var f linearFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode linear classifier: %w", err)
	}
	if len(f.Classes) < 2 {
		return nil, fmt.Errorf("linear: %w: need at least 2 classes, got %d", ErrInvalidArtifact, len(f.Classes))
	}
	rows := len(f.Classes)
	if rows == 2 && len(f.Coef) == 1 {
		rows = 1
	}
	if len(f.Coef) != rows {
		return nil, fmt.Errorf("linear: %w: %d coefficient rows for %d classes", ErrInvalidArtifact, len(f.Coef), len(f.Classes))
	}
	features := len(f.Coef[0])
	for i, row := range f.Coef {
		if len(row) != features {
			return nil, fmt.Errorf("linear: %w: row %d has %d weights, want %d", ErrInvalidArtifact, i, len(row), features)
		}
	}
	intercept := f.Intercept
	if len(intercept) == 0 {
		intercept = make([]float64, rows)
	}
	if len(intercept) != rows {
		return nil, fmt.Errorf("linear: %w: %d intercepts for %d rows", ErrInvalidArtifact, len(intercept), rows)
	}
	return &Linear{classes: f.Classes, coef: f.Coef, intercept: intercept, features: features}, nil
}

func (m *Linear) NumFeatures() int { return m.features }

func (m *Linear) Classes() []int { return m.classes }

// Predict returns the class with the highest score; ties go to the lower index.
func (m *Linear) Predict(x SparseVector) int {
	if len(m.coef) == 1 {
		if x.Dot(m.coef[0])+m.intercept[0] > 0 {
			return m.classes[1]
		}
		return m.classes[0]
	}
	best := 0
	bestScore := x.Dot(m.coef[0]) + m.intercept[0]
	for k := 1; k < len(m.coef); k++ {
		if s := x.Dot(m.coef[k]) + m.intercept[k]; s > bestScore {
			best, bestScore = k, s
		}
	}
	return m.classes[best]
}
