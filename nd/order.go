package nd

import (
	"errors"

	"gonum.org/v1/gonum/floats"
)

// Order-statistics errors.
var (
	ErrEmptyValues = errors.New("nd: empty values")
	ErrBadK        = errors.New("nd: k out of range")
)

// ArgMin returns the index of the smallest element in values.
// Equivalently, it is the index of the minimum of the k smallest values for
// any k >= 1. Ties resolve to the first occurrence.
func ArgMin(values []float64) (int, error) {
	if len(values) == 0 {
		return 0, ErrEmptyValues
	}
	return floats.MinIdx(values), nil
}

// KSmallestIndices returns the indices of the k smallest elements of values
// in ascending value order. Ties resolve in index order.
//
// The selection is O(n*k), which is the right trade for the small k this
// accessor is used with; it avoids sorting the full slice.
func KSmallestIndices(values []float64, k int) ([]int, error) {
	if len(values) == 0 {
		return nil, ErrEmptyValues
	}
	if k < 1 || k > len(values) {
		return nil, ErrBadK
	}

	out := make([]int, k)
	taken := make([]bool, len(values))
	for i := 0; i < k; i++ {
		best := -1
		for j, v := range values {
			if taken[j] {
				continue
			}
			if best < 0 || v < values[best] {
				best = j
			}
		}
		out[i] = best
		taken[best] = true
	}
	return out, nil
}
