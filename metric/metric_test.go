package metric_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdspace/metric"
)

func TestSquaredEuclidean_Distance(t *testing.T) {
	m := metric.SquaredEuclidean{}
	got := m.Distance([]float64{0, 0, 0}, []float64{1, 2, 2})
	assert.Equal(t, 9.0, got) // 1+4+4
}

func TestSquaredEuclidean_DistanceToBox(t *testing.T) {
	m := metric.SquaredEuclidean{}
	min := []float64{0, 0}
	max := []float64{10, 10}

	// Inside the box: zero.
	assert.Equal(t, 0.0, m.DistanceToBox([]float64{5, 5}, min, max))

	// Outside on one axis.
	assert.Equal(t, 4.0, m.DistanceToBox([]float64{12, 5}, min, max))

	// Outside on both axes.
	assert.Equal(t, 8.0, m.DistanceToBox([]float64{-2, 12}, min, max))
}

func TestSquaredEuclidean_MonotoneLowerBound(t *testing.T) {
	m := metric.SquaredEuclidean{}
	min := []float64{0, 0}
	max := []float64{10, 10}
	p := []float64{-3, 15}
	inside := []float64{2, 9}

	bound := m.DistanceToBox(p, min, max)
	actual := m.Distance(p, inside)
	assert.LessOrEqual(t, bound, actual)
}

func TestSquaredEuclidean_NaNExcludesDimension(t *testing.T) {
	m := metric.SquaredEuclidean{}
	min := []float64{0, math.NaN()}
	max := []float64{10, math.NaN()}
	got := m.DistanceToBox([]float64{20, 999}, min, max)
	assert.Equal(t, 100.0, got) // only axis 0 contributes: (20-10)^2
}

func TestWeighted_NewRejectsEmpty(t *testing.T) {
	_, err := metric.NewWeighted(nil)
	require.ErrorIs(t, err, metric.ErrInvalidDimensionality)
}

func TestWeighted_Distance(t *testing.T) {
	w, err := metric.NewWeighted([]float64{2, 1})
	require.NoError(t, err)
	got := w.Distance([]float64{0, 0}, []float64{1, 1})
	assert.Equal(t, 5.0, got) // (2*1)^2 + (1*1)^2 = 4+1
}

func TestWeighted_DistanceToBox(t *testing.T) {
	w, err := metric.NewWeighted([]float64{2, 1})
	require.NoError(t, err)
	min := []float64{0, 0}
	max := []float64{10, 10}
	got := w.DistanceToBox([]float64{12, 5}, min, max)
	assert.Equal(t, 16.0, got) // excess=2, weighted: (2*2)^2 = 16
}

func TestTranslated_PullsMovingPointIn(t *testing.T) {
	now := func() float64 { return 20 }
	m, err := metric.NewTranslated(3, now)
	require.NoError(t, err)

	// stationary point at (10,10,10), moving point with velocity
	// (-0.5,-0.5,-0.5) starting at t0=0.
	stationary := []float64{10, 10, 10, 0, 0, 0, 0}
	moving := []float64{10, 10, 10, -0.5, -0.5, -0.5, 0}

	// at T=20, moving's effective position is (0,0,0).
	d := m.Distance(moving, []float64{0, 0, 0, 0, 0, 0, 0})
	assert.InDelta(t, 0.0, d, 1e-9)

	// distance between the two original points ignores velocity at T=0.
	now0 := func() float64 { return 0 }
	m0, err := metric.NewTranslated(3, now0)
	require.NoError(t, err)
	d0 := m0.Distance(stationary, moving)
	assert.InDelta(t, 0.0, d0, 1e-9)
}

func TestTranslated_NewRejectsBadDim(t *testing.T) {
	_, err := metric.NewTranslated(0, func() float64 { return 0 })
	require.ErrorIs(t, err, metric.ErrInvalidDimensionality)
}

func TestTranslated_NewPanicsOnNilTimeSource(t *testing.T) {
	assert.Panics(t, func() {
		_, _ = metric.NewTranslated(2, nil)
	})
}

func TestWeightedTranslated_NewValidatesWeightsLength(t *testing.T) {
	now := func() float64 { return 0 }
	_, err := metric.NewWeightedTranslated(2, now, []float64{1})
	require.ErrorIs(t, err, metric.ErrInvalidDimensionality)
}

func TestWeightedTranslated_Distance(t *testing.T) {
	now := func() float64 { return 0 }
	m, err := metric.NewWeightedTranslated(1, now, []float64{2})
	require.NoError(t, err)
	got := m.Distance([]float64{0, 0, 0}, []float64{1, 0, 0})
	assert.Equal(t, 4.0, got) // (2*1)^2
}
