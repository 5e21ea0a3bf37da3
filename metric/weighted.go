package metric

import "github.com/pkg/errors"

// Weighted is the axis-weighted squared Euclidean metric: each component
// is multiplied by a per-dimension weight before squaring.
type Weighted struct {
	// Weights has length D, matching the tree's declared dimensionality.
	Weights []float64
}

// NewWeighted returns a Weighted metric for the given per-dimension
// weights. Returns ErrInvalidDimensionality if weights is empty. The
// length is not checked against any tree's dimensionality, here or in
// kdtree; Distance and DistanceToBox index Weights by every coordinate
// of their arguments.
func NewWeighted(weights []float64) (*Weighted, error) {
	if len(weights) == 0 {
		return nil, errors.WithMessagef(ErrInvalidDimensionality, "weights length %d", len(weights))
	}
	return &Weighted{Weights: append([]float64(nil), weights...)}, nil
}

// Distance returns the weighted squared Euclidean distance between a and b.
func (w *Weighted) Distance(a, b []float64) float64 {
	var sum float64
	for i := range a {
		d := w.Weights[i] * (a[i] - b[i])
		sum += d * d
	}
	return sum
}

// DistanceToBox returns the weighted squared Euclidean lower bound from p
// to the axis-aligned box [min, max].
func (w *Weighted) DistanceToBox(p, min, max []float64) float64 {
	var sum float64
	for i := range p {
		excess := sqExcess(p[i], min[i], max[i])
		if excess == 0 {
			continue
		}
		wi := w.Weights[i]
		sum += wi * wi * excess
	}
	return sum
}
