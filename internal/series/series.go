// Package series holds the slice math behind the diamond chart: cleanup,
// normalization into a shared band, percentiles and notability cutoffs.
package series

import (
	"errors"
	"math"

	"github.com/aclements/go-moremath/stats"
	"gonum.org/v1/gonum/floats"
)

// DefaultFactor is the upper bound of a normalized series. Keeping it under
// 1 leaves a small margin between the largest point and the frame edge.
const DefaultFactor = 0.99

// NotableQuantile is the percentile a value must exceed to get a label.
const NotableQuantile = 0.9

var (
	ErrEmpty   = errors.New("series: empty series")
	ErrZeroMax = errors.New("series: maximum is zero")
)

// Clean returns a copy of xs with every NaN replaced by 0.
func Clean(xs []float64) []float64 {
	out := make([]float64, len(xs))
	for i, x := range xs {
		if math.IsNaN(x) {
			continue
		}
		out[i] = x
	}
	return out
}

// Normalize rescales xs so that its maximum maps to factor.
func Normalize(
	xs []float64, factor float64,
) (
	[]float64, error,
) {

	if len(xs) == 0 {
		return nil, ErrEmpty
	}

	max := floats.Max(xs)
	if max == 0 {
		return nil, ErrZeroMax
	}

	out := make([]float64, len(xs))
	floats.ScaleTo(out, factor/max, xs)
	return out, nil
}

// Quantile returns the p-th quantile of xs, interpolating linearly between
// the closest order statistics (rank h = (n-1)p). It returns NaN for an
// empty series.
func Quantile(xs []float64, p float64) float64 {
	if len(xs) == 0 {
		return math.NaN()
	}

	s := stats.Sample{Xs: xs}.Copy().Sort()
	sorted := s.Xs

	switch {
	case p <= 0:
		return sorted[0]
	case p >= 1:
		return sorted[len(sorted)-1]
	}

	h := float64(len(sorted)-1) * p
	lo := math.Floor(h)
	i := int(lo)
	if i+1 >= len(sorted) {
		return sorted[i]
	}
	return sorted[i] + (h-lo)*(sorted[i+1]-sorted[i])
}

// Quantiles returns the 0th, 50th and 90th percentiles of xs.
func Quantiles(xs []float64) []float64 {
	return []float64{
		Quantile(xs, 0),
		Quantile(xs, 0.5),
		Quantile(xs, NotableQuantile),
	}
}

// Notable returns, in order, the indices whose left value exceeds leftCut or
// whose right value exceeds rightCut. Indices past the shorter series are
// not considered.
func Notable(
	left, right []float64,
	leftCut, rightCut float64,
) (
	[]int,
) {

	n := len(left)
	if len(right) < n {
		n = len(right)
	}

	var idx []int
	for i := 0; i < n; i++ {
		if left[i] > leftCut || right[i] > rightCut {
			idx = append(idx, i)
		}
	}
	return idx
}

// Sum returns the element-wise sum of a and b.
func Sum(a, b []float64) []float64 {
	out := make([]float64, len(a))
	copy(out, a)
	floats.Add(out, b)
	return out
}

// Bounds returns the minimum and maximum of xs.
func Bounds(xs []float64) (min, max float64) {
	return stats.Bounds(xs)
}
