package kdtree

import "math"

// extendBounds grows min/max in place to cover p. A dimension that has
// already gone NaN (contaminated by an earlier NaN point) stays NaN:
// bounds are never shrunk and NaN contamination is permanent, matching
// the "bounds only ever grow" invariant. A dimension that sees its
// first NaN point goes NaN on this call.
func extendBounds(min, max, p []float64) {
	for d := range p {
		if math.IsNaN(min[d]) {
			continue
		}
		if math.IsNaN(p[d]) {
			min[d] = math.NaN()
			max[d] = math.NaN()
			continue
		}
		if p[d] < min[d] {
			min[d] = p[d]
		}
		if p[d] > max[d] {
			max[d] = p[d]
		}
	}
}

// recomputeSinglePoint reports whether min and max agree on every
// dimension that isn't NaN-contaminated. Recomputing from scratch after
// every extension (rather than tracking the flag incrementally) means
// it can never drift from the bounding box it describes.
func recomputeSinglePoint(min, max []float64) bool {
	for d := range min {
		if math.IsNaN(min[d]) {
			continue
		}
		if min[d] != max[d] {
			return false
		}
	}
	return true
}

// widestDimension returns the axis with the largest max-min spread,
// treating a NaN-contaminated dimension as zero width, and breaking
// ties in favor of the lowest-index axis.
func widestDimension(min, max []float64) (dim int, width float64) {
	width = -1
	for d := range min {
		w := 0.0
		if !math.IsNaN(min[d]) {
			w = max[d] - min[d]
		}
		if w > width {
			width = w
			dim = d
		}
	}
	return dim, width
}

// computeSplitValue returns the midpoint of [lo, hi], clamped away from
// infinity and nudged to lo if rounding drove it exactly to hi — a split
// value equal to hi would route every point (including hi itself) left,
// defeating the split.
func computeSplitValue(lo, hi float64) float64 {
	sv := (lo + hi) / 2
	switch {
	case math.IsInf(sv, 1):
		sv = math.MaxFloat64
	case math.IsInf(sv, -1):
		sv = -math.MaxFloat64
	}
	if sv == hi {
		sv = lo
	}
	return sv
}

// addPoint descends from n by the split rule for points[index], extending
// every visited node's bounding box and incrementing its size, and
// appends the index to the destination leaf before checking whether
// that leaf must split.
func (n *node) addPoint(index int, points [][]float64, bucketCapacity int) {
	p := points[index]
	extendBounds(n.min, n.max, p)
	n.singlePoint = recomputeSinglePoint(n.min, n.max)
	n.size++

	if n.isLeaf {
		n.slots = append(n.slots, index)
		n.maybeSplit(points, bucketCapacity)
		return
	}
	if p[n.splitDim] > n.splitValue {
		n.right.addPoint(index, points, bucketCapacity)
	} else {
		n.left.addPoint(index, points, bucketCapacity)
	}
}

// firstPoint initializes an empty leaf's bounding box from its first
// point; addPoint's generic extendBounds call requires min/max to
// already have len(p) entries, so the container calls this once before
// the very first addPoint on a brand new root.
func (n *node) firstPoint(p []float64) {
	n.min = append([]float64(nil), p...)
	n.max = append([]float64(nil), p...)
}

// removePoint descends from n by the split rule for oldPoint, searching
// the destination leaf for index. On success it is removed from the
// leaf's slots and every visited node's size (including the leaf's) is
// decremented as the recursion unwinds. Bounding boxes are left
// untouched: they are a conservative superset, not a tight hull, and
// shrinking them on removal is not required for correctness.
func (n *node) removePoint(index int, oldPoint []float64) bool {
	if n.isLeaf {
		for i, s := range n.slots {
			if s == index {
				n.slots = append(n.slots[:i], n.slots[i+1:]...)
				n.size--
				return true
			}
		}
		return false
	}

	var ok bool
	if oldPoint[n.splitDim] > n.splitValue {
		ok = n.right.removePoint(index, oldPoint)
	} else {
		ok = n.left.removePoint(index, oldPoint)
	}
	if ok {
		n.size--
	}
	return ok
}

// containsInLeafAlong reports whether the leaf reached by descending
// from n via p's split rule currently holds index, without mutating
// anything.
func (n *node) containsInLeafAlong(p []float64, index int) bool {
	if n.isLeaf {
		for _, s := range n.slots {
			if s == index {
				return true
			}
		}
		return false
	}
	if p[n.splitDim] > n.splitValue {
		return n.right.containsInLeafAlong(p, index)
	}
	return n.left.containsInLeafAlong(p, index)
}

// extendAlong extends the bounding box of every node visited while
// descending via p's split rule, without touching size or slots. Used
// for the same-leaf fast path of movePoint, where the point's storage
// slot does not change.
func (n *node) extendAlong(p []float64) {
	extendBounds(n.min, n.max, p)
	n.singlePoint = recomputeSinglePoint(n.min, n.max)
	if n.isLeaf {
		return
	}
	if p[n.splitDim] > n.splitValue {
		n.right.extendAlong(p)
	} else {
		n.left.extendAlong(p)
	}
}

// movePoint relocates index, whose point has already been overwritten
// in points to its new value, and whose prior coordinates are oldPoint.
// It must be called on the root: a cross-leaf move detaches the point
// by descending via oldPoint from the root, which may take a path
// unrelated to the one a deeper call would have walked.
//
// Returns true if the point stayed within the leaf it already occupied
// (only bounds were extended), false if it was relocated to a different
// leaf (size adjusted along both the old and new paths, and a removal
// was recorded for the container's removal-count bookkeeping).
func (n *node) movePoint(oldPoint []float64, index int, points [][]float64, bucketCapacity int) bool {
	newPoint := points[index]
	if n.containsInLeafAlong(newPoint, index) {
		n.extendAlong(newPoint)
		return true
	}
	n.removePoint(index, oldPoint)
	n.addPoint(index, points, bucketCapacity)
	return false
}

// maybeSplit checks whether a leaf that was just appended to has
// reached its capacity and, if so, either splits it on its widest
// dimension or, when the leaf cannot be usefully split (all points
// coincide, or every dimension has zero width), grows its capacity
// threshold instead.
func (n *node) maybeSplit(points [][]float64, bucketCapacity int) {
	if len(n.slots) < n.capacity {
		return
	}
	if n.singlePoint {
		n.capacity += bucketCapacity
		return
	}

	dim, width := widestDimension(n.min, n.max)
	if width == 0 {
		n.capacity += bucketCapacity
		return
	}
	splitValue := computeSplitValue(n.min[dim], n.max[dim])

	left := newLeaf(bucketCapacity)
	right := newLeaf(bucketCapacity)

	for _, idx := range n.slots {
		p := points[idx]
		var dst *node
		if p[dim] > splitValue {
			dst = right
		} else {
			dst = left
		}
		if dst.min == nil {
			dst.firstPoint(p)
		}
		dst.addPoint(idx, points, bucketCapacity)
	}

	n.isLeaf = false
	n.splitDim = dim
	n.splitValue = splitValue
	n.left = left
	n.right = right
	n.slots = nil
	n.capacity = 0
}

// clear resets n to an empty leaf in place, discarding its children.
func (n *node) clear(bucketCapacity int) {
	n.isLeaf = true
	n.min = nil
	n.max = nil
	n.size = 0
	n.singlePoint = true
	n.slots = make([]int, 0, bucketCapacity)
	n.capacity = bucketCapacity
	n.splitDim = 0
	n.splitValue = 0
	n.left = nil
	n.right = nil
}
