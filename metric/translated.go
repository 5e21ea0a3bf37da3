package metric

import "github.com/pkg/errors"

// Translated is the translation-augmented squared Euclidean metric.
// A point vector has layout [pos(k), vel(k), t0]: positions in [0,k),
// velocities in [k,2k), and a start time at index 2k, so the tree's
// declared dimensionality is D = 2k+1. The effective position at query
// time T is pos + vel*(T - t0); Distance computes squared Euclidean
// between two points' effective positions at the time the TimeSource
// reports when Distance is called.
//
// DistanceToBox translates the box's min and max corners as points,
// independently, by their own stored t0 (min[2k] and max[2k]
// respectively) rather than by the query point's t0. This is an unusual
// choice — a box does not naturally have its own birth time — but it is
// preserved verbatim: search correctness depends on whatever lower-bound
// semantics a caller has already calibrated against, so it is not
// "fixed" here. The result is an approximation
// that can under-prune (a weaker bound than the true reachable region)
// but never over-prune, provided the corner translation is conservative.
type Translated struct {
	// PosDim is k: the number of position (and velocity) dimensions.
	PosDim int
	// Now is queried exactly once per Distance/DistanceToBox call.
	Now TimeSource
}

// NewTranslated returns a Translated metric over posDim position
// dimensions. Panics if now is nil (programmer error, mirroring the
// functional-option convention of panicking on a nil callback rather
// than returning a data-dependent error). Returns
// ErrInvalidDimensionality if posDim < 1.
func NewTranslated(posDim int, now TimeSource) (*Translated, error) {
	if now == nil {
		panic("metric: NewTranslated(nil TimeSource)")
	}
	if posDim < 1 {
		return nil, errors.WithMessagef(ErrInvalidDimensionality, "posDim %d", posDim)
	}
	return &Translated{PosDim: posDim, Now: now}, nil
}

// effectivePosition writes vec's effective position at time t into dst
// (len(dst) == PosDim): dst[i] = vec[i] + vec[k+i]*(t - vec[2k]).
func (m *Translated) effectivePosition(vec []float64, t float64, dst []float64) {
	k := m.PosDim
	t0 := vec[2*k]
	dt := t - t0
	for i := 0; i < k; i++ {
		dst[i] = vec[i] + vec[k+i]*dt
	}
}

// Distance returns the squared Euclidean distance between a's and b's
// effective positions at the current time.
func (m *Translated) Distance(a, b []float64) float64 {
	k := m.PosDim
	t := m.Now()
	aEff := make([]float64, k)
	bEff := make([]float64, k)
	m.effectivePosition(a, t, aEff)
	m.effectivePosition(b, t, bEff)

	var sum float64
	for i := 0; i < k; i++ {
		d := aEff[i] - bEff[i]
		sum += d * d
	}
	return sum
}

// DistanceToBox returns the approximate lower bound described in the
// type doc: p, min, and max are each translated independently by their
// own stored t0, then the standard per-axis excess is summed.
func (m *Translated) DistanceToBox(p, min, max []float64) float64 {
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
		sum += sqExcess(pEff[i], minEff[i], maxEff[i])
	}
	return sum
}
