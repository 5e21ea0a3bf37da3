package kdtree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/kdspace/kdtree"
)

func TestNew_RejectsInvalidDimensionAndCapacity(t *testing.T) {
	_, err := kdtree.New(0, 4)
	require.ErrorIs(t, err, kdtree.ErrInvalidDimensionality)

	_, err = kdtree.New(3, 0)
	require.ErrorIs(t, err, kdtree.ErrInvalidCapacity)
}

func TestAdd_RejectsDimensionMismatch(t *testing.T) {
	tr, err := kdtree.New(3, 4)
	require.NoError(t, err)

	_, err = tr.Add([]float64{1, 2}, "x")
	require.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
}

func TestAdd_AssignsStableIndices(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)

	i0, err := tr.Add([]float64{0, 0}, "a")
	require.NoError(t, err)
	i1, err := tr.Add([]float64{1, 1}, "b")
	require.NoError(t, err)
	assert.Equal(t, 0, i0)
	assert.Equal(t, 1, i1)
	assert.Equal(t, 2, tr.Len())
}

func TestRemoveAt_ReusesHoleOnNextAdd(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := tr.Add([]float64{float64(i), float64(i)}, i)
		require.NoError(t, err)
	}
	require.NoError(t, tr.RemoveAt(1))
	assert.Equal(t, 2, tr.Len())

	idx, err := tr.Add([]float64{9, 9}, "reused")
	require.NoError(t, err)
	assert.Equal(t, 1, idx, "the hole at index 1 should be reused")
}

func TestRemoveAt_LastIndexContractsTrailingHoles(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	for i := 0; i < 4; i++ {
		_, err := tr.Add([]float64{float64(i), float64(i)}, i)
		require.NoError(t, err)
	}
	require.NoError(t, tr.RemoveAt(2))
	require.NoError(t, tr.RemoveAt(3))

	// Index 2 is now a hole, but removing the last live slot (3) should
	// contract the used range and absorb hole 2 too.
	idx, err := tr.Add([]float64{9, 9}, "fresh")
	require.NoError(t, err)
	assert.Equal(t, 2, idx)
}

func TestRemoveAt_OutOfRangeAndHole(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	_, err = tr.Add([]float64{0, 0}, "a")
	require.NoError(t, err)

	err = tr.RemoveAt(5)
	require.ErrorIs(t, err, kdtree.ErrOutOfRange)

	require.NoError(t, tr.RemoveAt(0))
	err = tr.RemoveAt(0)
	require.ErrorIs(t, err, kdtree.ErrOutOfRange)
}

func TestRemove_ByPayload(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	_, err = tr.Add([]float64{0, 0}, "a")
	require.NoError(t, err)
	_, err = tr.Add([]float64{1, 1}, "b")
	require.NoError(t, err)

	ok, err := tr.Remove("a")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1, tr.Len())

	ok, err = tr.Remove("not-present")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestGetPointAt_DefensiveCopy(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	_, err = tr.Add([]float64{3, 4}, "a")
	require.NoError(t, err)

	p, err := tr.GetPointAt(0)
	require.NoError(t, err)
	p[0] = 999

	p2, err := tr.GetPointAt(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, p2[0], "mutating a returned copy must not affect the tree")
}

func TestGetPoint_ByPayload(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	_, err = tr.Add([]float64{3, 4}, "a")
	require.NoError(t, err)

	p, ok := tr.GetPoint("a")
	require.True(t, ok)
	assert.Equal(t, []float64{3, 4}, p)

	_, ok = tr.GetPoint("missing")
	assert.False(t, ok)
}

func TestMovePoint_IncrementsRemovalCountOnCrossLeafRelocation(t *testing.T) {
	tr, err := kdtree.New(2, 1)
	require.NoError(t, err)
	_, err = tr.Add([]float64{0, 0}, "a")
	require.NoError(t, err)
	_, err = tr.Add([]float64{1, 0}, "b")
	require.NoError(t, err)
	_, err = tr.Add([]float64{100, 0}, "c")
	require.NoError(t, err)

	before := tr.RemovalCount()
	moved, err := tr.MovePoint([]float64{200, 0}, "a")
	require.NoError(t, err)
	assert.False(t, moved, "moving (0,0) to (200,0) crosses out of its original leaf")
	assert.Equal(t, before+1, tr.RemovalCount())
	assert.Equal(t, 3, tr.Len())
}

func TestMovePoint_RejectsDimensionMismatch(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	_, err = tr.Add([]float64{0, 0}, "a")
	require.NoError(t, err)

	_, err = tr.MovePoint([]float64{1, 1, 1}, "a")
	require.ErrorIs(t, err, kdtree.ErrDimensionMismatch)
}

func TestMovePoint_UnknownPayloadIsNoop(t *testing.T) {
	tr, err := kdtree.New(2, 4)
	require.NoError(t, err)
	moved, err := tr.MovePoint([]float64{1, 1}, "ghost")
	require.NoError(t, err)
	assert.False(t, moved)
}

func TestRegen_ResetsRemovalCountAndPreservesLivePoints(t *testing.T) {
	tr, err := kdtree.New(3, 2)
	require.NoError(t, err)
	for i := 0; i < 10; i++ {
		_, err := tr.Add([]float64{0, 0, 0}, i)
		require.NoError(t, err)
	}
	require.NoError(t, tr.RemoveAt(0))
	require.NoError(t, tr.RemoveAt(9))
	assert.Equal(t, 2, tr.RemovalCount())

	tr.Regen()
	assert.Equal(t, 0, tr.RemovalCount())
	assert.Equal(t, 8, tr.Len())
}
