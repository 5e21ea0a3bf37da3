package kdtree

import (
	"sort"

	"github.com/pkg/errors"
)

// Tree is a mutable, bucketed k-dimensional spatial index. The zero
// value is not usable; construct with New. Not safe for concurrent
// mutation — see doc.go.
type Tree struct {
	dimension      int
	bucketCapacity int

	root *node

	points   [][]float64
	payloads []any
	holes    []int // sorted ascending; a hole index's slot is vacant

	removalCount int
	generation   int
}

// New returns an empty Tree over the given fixed dimensionality, whose
// leaves split once they hold bucketCapacity points.
func New(dimension, bucketCapacity int) (*Tree, error) {
	if dimension < 1 {
		return nil, errors.WithMessagef(ErrInvalidDimensionality, "dimension %d", dimension)
	}
	if bucketCapacity < 1 {
		return nil, errors.WithMessagef(ErrInvalidCapacity, "bucketCapacity %d", bucketCapacity)
	}
	return &Tree{
		dimension:      dimension,
		bucketCapacity: bucketCapacity,
		root:           newLeaf(bucketCapacity),
	}, nil
}

func (t *Tree) isHole(index int) bool {
	pos := sort.SearchInts(t.holes, index)
	return pos < len(t.holes) && t.holes[pos] == index
}

func equalPayload(a, b any) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = false
		}
	}()
	return a == b
}

func (t *Tree) findIndex(payload any) (int, bool) {
	for i := range t.points {
		if t.isHole(i) {
			continue
		}
		if equalPayload(t.payloads[i], payload) {
			return i, true
		}
	}
	return 0, false
}

// Add inserts point with its associated payload and returns the stable
// index assigned to it.
func (t *Tree) Add(point []float64, payload any) (int, error) {
	if len(point) != t.dimension {
		return 0, errors.WithMessagef(ErrDimensionMismatch, "point has length %d, want %d", len(point), t.dimension)
	}
	stored := append([]float64(nil), point...)

	var index int
	if n := len(t.holes); n > 0 {
		index = t.holes[n-1]
		t.holes = t.holes[:n-1]
		t.points[index] = stored
		t.payloads[index] = payload
	} else {
		index = len(t.points)
		t.points = append(t.points, stored)
		t.payloads = append(t.payloads, payload)
	}

	if t.root.min == nil {
		t.root.firstPoint(stored)
	}
	t.root.addPoint(index, t.points, t.bucketCapacity)
	t.generation++
	return index, nil
}

// Remove locates the first live point whose payload equals payload and
// removes it, reporting whether a match was found.
func (t *Tree) Remove(payload any) (bool, error) {
	index, found := t.findIndex(payload)
	if !found {
		return false, nil
	}
	if err := t.RemoveAt(index); err != nil {
		return false, err
	}
	return true, nil
}

// RemoveAt removes the point at the given stable index.
func (t *Tree) RemoveAt(index int) error {
	if index < 0 || index >= len(t.points) || t.isHole(index) {
		return errors.WithMessagef(ErrOutOfRange, "index %d", index)
	}
	oldPoint := t.points[index]
	t.root.removePoint(index, oldPoint)
	t.points[index] = nil
	t.payloads[index] = nil
	t.releaseIndex(index)
	t.removalCount++
	t.generation++
	return nil
}

// releaseIndex either contracts the used range (when index was the last
// live slot, absorbing any trailing holes) or records index as a new
// hole in sorted position.
func (t *Tree) releaseIndex(index int) {
	if index == len(t.points)-1 {
		t.points = t.points[:index]
		t.payloads = t.payloads[:index]
		for len(t.points) > 0 {
			last := len(t.points) - 1
			pos := sort.SearchInts(t.holes, last)
			if pos == len(t.holes) || t.holes[pos] != last {
				break
			}
			t.holes = append(t.holes[:pos], t.holes[pos+1:]...)
			t.points = t.points[:last]
			t.payloads = t.payloads[:last]
		}
		return
	}

	pos := sort.SearchInts(t.holes, index)
	t.holes = append(t.holes, 0)
	copy(t.holes[pos+1:], t.holes[pos:])
	t.holes[pos] = index
}

// MovePoint relocates the payload's point to newPoint in place, reusing
// its stable index. The bool result is true if the point stayed within
// the leaf it already occupied, false if it was relocated across leaves
// (which also increments RemovalCount, per the cross-leaf rebuild
// heuristic).
func (t *Tree) MovePoint(newPoint []float64, payload any) (bool, error) {
	if len(newPoint) != t.dimension {
		return false, errors.WithMessagef(ErrDimensionMismatch, "point has length %d, want %d", len(newPoint), t.dimension)
	}
	index, found := t.findIndex(payload)
	if !found {
		return false, nil
	}

	oldPoint := append([]float64(nil), t.points[index]...)
	t.points[index] = append([]float64(nil), newPoint...)

	stayed := t.root.movePoint(oldPoint, index, t.points, t.bucketCapacity)
	if !stayed {
		t.removalCount++
	}
	t.generation++
	return stayed, nil
}

// GetPoint returns a defensive copy of the point associated with
// payload, if a live match exists.
func (t *Tree) GetPoint(payload any) ([]float64, bool) {
	index, found := t.findIndex(payload)
	if !found {
		return nil, false
	}
	return append([]float64(nil), t.points[index]...), true
}

// GetPointAt returns a defensive copy of the point stored at index.
func (t *Tree) GetPointAt(index int) ([]float64, error) {
	if index < 0 || index >= len(t.points) || t.isHole(index) {
		return nil, errors.WithMessagef(ErrOutOfRange, "index %d", index)
	}
	return append([]float64(nil), t.points[index]...), nil
}

// Regen rebuilds the tree from scratch: the root is reset to an empty
// leaf, the removal count is zeroed, and every live point is reinserted
// in ascending stable-index order. This is the caller's lever against
// imbalance accumulated by MovePoint and RemoveAt churn.
func (t *Tree) Regen() {
	t.root.clear(t.bucketCapacity)
	for i := range t.points {
		if t.isHole(i) {
			continue
		}
		if t.root.min == nil {
			t.root.firstPoint(t.points[i])
		}
		t.root.addPoint(i, t.points, t.bucketCapacity)
	}
	t.removalCount = 0
	t.generation++
}

// RemovalCount returns the number of removals and cross-leaf relocations
// since construction or the last Regen, exposed so a caller can
// implement its own rebuild heuristic.
func (t *Tree) RemovalCount() int { return t.removalCount }

// Len returns the number of live points in the tree.
func (t *Tree) Len() int { return t.root.size }
