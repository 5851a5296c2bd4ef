package model

import (
	"fmt"
	"sort"
)

// SparseVector is a feature row with strictly increasing indices.
type SparseVector struct {
	Indices []int     `json:"indices"`
	Values  []float64 `json:"values"`
}

// Len returns the number of stored (non-zero) entries.
func (v SparseVector) Len() int { return len(v.Indices) }

func (v SparseVector) validate(dim int) error {
	if len(v.Indices) != len(v.Values) {
		return fmt.Errorf("indices/values length mismatch: %d != %d", len(v.Indices), len(v.Values))
	}
	prev := -1
	for _, idx := range v.Indices {
		if idx <= prev || idx >= dim {
			return fmt.Errorf("index %d out of order or outside [0,%d)", idx, dim)
		}
		prev = idx
	}
	return nil
}

// Dot returns the inner product of v with a dense row.
func (v SparseVector) Dot(dense []float64) float64 {
	var sum float64
	for i, idx := range v.Indices {
		sum += v.Values[i] * dense[idx]
	}
	return sum
}

// SquaredDistance returns the squared euclidean distance between two sparse rows.
func (v SparseVector) SquaredDistance(o SparseVector) float64 {
	var sum float64
	i, j := 0, 0
	for i < len(v.Indices) && j < len(o.Indices) {
		switch {
		case v.Indices[i] == o.Indices[j]:
			d := v.Values[i] - o.Values[j]
			sum += d * d
			i++
			j++
		case v.Indices[i] < o.Indices[j]:
			sum += v.Values[i] * v.Values[i]
			i++
		default:
			sum += o.Values[j] * o.Values[j]
			j++
		}
	}
	for ; i < len(v.Indices); i++ {
		sum += v.Values[i] * v.Values[i]
	}
	for ; j < len(o.Indices); j++ {
		sum += o.Values[j] * o.Values[j]
	}
	return sum
}

func sparseFromCounts(counts map[int]float64) SparseVector {
	idx := make([]int, 0, len(counts))
	for k := range counts {
		idx = append(idx, k)
	}
	sort.Ints(idx)
	vals := make([]float64, len(idx))
	for i, k := range idx {
		vals[i] = counts[k]
	}
	return SparseVector{Indices: idx, Values: vals}
}
