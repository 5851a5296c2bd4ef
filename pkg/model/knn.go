package model

import (
	"encoding/json"
	"fmt"
	"math"
	"sort"
)

// KNN weighting schemes.
const (
	WeightsUniform  = "uniform"
	WeightsDistance = "distance"
)

type knnFile struct {
	Classes    []int          `json:"classes"`
	NNeighbors int            `json:"n_neighbors"`
	Weights    string         `json:"weights"`
	NFeatures  int            `json:"n_features"`
	FitX       []SparseVector `json:"fit_x"`
	FitY       []int          `json:"fit_y"`
}

// KNN is a k-nearest-neighbours classifier over stored training rows
// using euclidean distance.
type KNN struct {
	classes  []int
	k        int
	weights  string
	features int
	fitX     []SparseVector
	fitY     []int
}

func decodeKNN(data []byte) (*KNN, error) {
	var f knnFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode knn classifier: %w", err)
	}
	if len(f.Classes) == 0 {
		return nil, fmt.Errorf("knn: %w: no classes", ErrInvalidArtifact)
	}
	if f.NFeatures <= 0 {
		return nil, fmt.Errorf("knn: %w: n_features must be positive", ErrInvalidArtifact)
	}
	if len(f.FitX) == 0 || len(f.FitX) != len(f.FitY) {
		return nil, fmt.Errorf("knn: %w: %d training rows, %d targets", ErrInvalidArtifact, len(f.FitX), len(f.FitY))
	}
	for i, row := range f.FitX {
		if err := row.validate(f.NFeatures); err != nil {
			return nil, fmt.Errorf("knn: %w: row %d: %v", ErrInvalidArtifact, i, err)
		}
		if y := f.FitY[i]; y < 0 || y >= len(f.Classes) {
			return nil, fmt.Errorf("knn: %w: target %d of row %d is not a class index", ErrInvalidArtifact, y, i)
		}
	}
	k := f.NNeighbors
	if k <= 0 {
		k = 5
	}
	if k > len(f.FitX) {
		k = len(f.FitX)
	}
	w := f.Weights
	if w == "" {
		w = WeightsUniform
	}
	if w != WeightsUniform && w != WeightsDistance {
		return nil, fmt.Errorf("knn: %w: unknown weights %q", ErrInvalidArtifact, f.Weights)
	}
	return &KNN{classes: f.Classes, k: k, weights: w, features: f.NFeatures, fitX: f.FitX, fitY: f.FitY}, nil
}

func (m *KNN) NumFeatures() int { return m.features }

func (m *KNN) Classes() []int { return m.classes }

type neighbor struct {
	row  int
	dist float64
}

// Predict votes among the k nearest rows. Equal distances keep training
// order; a tied vote goes to the lowest class index.
func (m *KNN) Predict(x SparseVector) int {
	nb := make([]neighbor, len(m.fitX))
	for i, row := range m.fitX {
		nb[i] = neighbor{row: i, dist: x.SquaredDistance(row)}
	}
	sort.SliceStable(nb, func(i, j int) bool { return nb[i].dist < nb[j].dist })
	nb = nb[:m.k]

	votes := make([]float64, len(m.classes))
	exact := m.weights == WeightsDistance && nb[0].dist == 0
	for _, n := range nb {
		switch {
		case m.weights == WeightsUniform:
			votes[m.fitY[n.row]]++
		case exact:
			// identical rows take the whole vote
			if n.dist == 0 {
				votes[m.fitY[n.row]]++
			}
		default:
			votes[m.fitY[n.row]] += 1 / math.Sqrt(n.dist)
		}
	}
	best := 0
	for c := 1; c < len(votes); c++ {
		if votes[c] > votes[best] {
			best = c
		}
	}
	return m.classes[best]
}
