package metric

import "github.com/pkg/errors"

// WeightedTranslated composes Translated and Weighted: positions are
// translated to the query time first, then each resulting axis is scaled
// by its weight before squaring.
type WeightedTranslated struct {
	PosDim  int
	Now     TimeSource
	// Weights has length PosDim, applied to the translated position axes.
	Weights []float64
}

// NewWeightedTranslated returns a WeightedTranslated metric. Panics if
// now is nil. Returns ErrInvalidDimensionality if posDim < 1 or
// len(weights) != posDim.
func NewWeightedTranslated(posDim int, now TimeSource, weights []float64) (*WeightedTranslated, error) {
	if now == nil {
		panic("metric: NewWeightedTranslated(nil TimeSource)")
	}
	if posDim < 1 || len(weights) != posDim {
		return nil, errors.WithMessagef(ErrInvalidDimensionality, "posDim %d, weights length %d", posDim, len(weights))
	}
	return &WeightedTranslated{
		PosDim:  posDim,
		Now:     now,
		Weights: append([]float64(nil), weights...),
	}, nil
}

func (m *WeightedTranslated) effectivePosition(vec []float64, t float64, dst []float64) {
	k := m.PosDim
	t0 := vec[2*k]
	dt := t - t0
	for i := 0; i < k; i++ {
		dst[i] = vec[i] + vec[k+i]*dt
	}
}

// Distance returns the weighted squared Euclidean distance between a's
// and b's effective positions at the current time.
func (m *WeightedTranslated) Distance(a, b []float64) float64 {
	k := m.PosDim
	t := m.Now()
	aEff := make([]float64, k)
	bEff := make([]float64, k)
	m.effectivePosition(a, t, aEff)
	m.effectivePosition(b, t, bEff)

	var sum float64
	for i := 0; i < k; i++ {
		d := m.Weights[i] * (aEff[i] - bEff[i])
		sum += d * d
	}
	return sum
}

// DistanceToBox composes Translated's corner-translation approximation
// with per-axis weighting.
func (m *WeightedTranslated) DistanceToBox(p, min, max []float64) float64 {
	k := m.PosDim
	t := m.Now()
	pEff := make([]float64, k)
	minEff := make([]float64, k)
	maxEff := make([]float64, k)
	m.effectivePosition(p, t, pEff)
	m.effectivePosition(min, t, minEff)
	m.effectivePosition(max, t, maxEff)

	var sum float64
	for i := 0; i < k; i++ {
		excess := sqExcess(pEff[i], minEff[i], maxEff[i])
		if excess == 0 {
			continue
		}
		wi := m.Weights[i]
		sum += wi * wi * excess
	}
	return sum
}
