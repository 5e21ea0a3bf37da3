package kdtree

import (
	"github.com/pkg/errors"

	"github.com/katalvlaran/kdspace/ivheap"
	"github.com/katalvlaran/kdspace/metric"
	"github.com/katalvlaran/kdspace/pqueue"
)

// NearestNeighbors returns an Iterator over the k payloads nearest to
// searchPoint, in non-decreasing distance order, under the given
// options. With no options, distances are squared Euclidean and results
// are unbounded by threshold. A non-positive k yields an Iterator that
// emits nothing.
func (t *Tree) NearestNeighbors(searchPoint []float64, k int, opts ...SearchOption) (*Iterator, error) {
	if len(searchPoint) != t.dimension {
		return nil, errors.WithMessagef(ErrDimensionMismatch, "point has length %d, want %d", len(searchPoint), t.dimension)
	}

	cfg := searchConfig{threshold: -1, metric: metric.SquaredEuclidean{}}
	for _, opt := range opts {
		opt(&cfg)
	}

	bound := k
	if bound < 0 {
		bound = 0
	}
	if bound > t.Len() {
		bound = t.Len()
	}

	it := &Iterator{
		tree:        t,
		generation:  t.generation,
		searchPoint: append([]float64(nil), searchPoint...),
		metric:      cfg.metric,
		threshold:   cfg.threshold,
		k:           k,
		remaining:   bound,
		pending:     pqueue.New(8),
		evaluated:   ivheap.New(bound),
	}
	it.seed()
	return it, nil
}

// seed pushes the root, with its lower bound, onto pending — the single
// starting point of every best-first descent.
func (it *Iterator) seed() {
	if it.remaining <= 0 || it.tree.root.size == 0 {
		return
	}
	lb := it.metric.DistanceToBox(it.searchPoint, it.tree.root.MinimumBound(), it.tree.root.MaximumBound())
	it.pending.Insert(lb, it.tree.root)
}

// Reset returns the iterator to its initial state: pending and
// evaluated are rebuilt from the tree's current contents, and Err is
// cleared. The distance function and search point copy are preserved,
// not reallocated.
func (it *Iterator) Reset() {
	it.generation = it.tree.generation
	it.err = nil
	it.currentPayload = nil
	it.currentDistance = 0

	bound := it.k
	if bound < 0 {
		bound = 0
	}
	if bound > it.tree.Len() {
		bound = it.tree.Len()
	}
	it.remaining = bound
	it.pending = pqueue.New(8)
	it.evaluated = ivheap.New(bound)
	it.seed()
}

// Next advances the iterator, reporting whether a payload was produced.
// On false, either the iterator is exhausted (Err() == nil) or it
// halted because the backing tree was mutated mid-iteration
// (Err() == ErrUnsupportedOperation).
func (it *Iterator) Next() bool {
	if it.err != nil {
		return false
	}
	if it.generation != it.tree.generation {
		it.err = errors.WithMessage(ErrUnsupportedOperation, "kdtree: iterator used after tree mutation")
		return false
	}
	if it.remaining <= 0 {
		return false
	}

	for it.pending.Len() > 0 {
		if it.evaluated.Len() > 0 {
			pendingKey, _ := it.pending.MinKey()
			evalKey, _ := it.evaluated.MinKey()
			if pendingKey >= evalKey {
				break
			}
		}
		nv, _ := it.pending.RemoveMin()
		it.descend(nv.(*node))
	}

	if it.evaluated.Len() == 0 {
		return false
	}

	payload, _ := it.evaluated.Min()
	dist, _ := it.evaluated.MinKey()
	_, _ = it.evaluated.RemoveMin()

	it.currentPayload = payload
	it.currentDistance = dist
	it.remaining--
	return true
}

// descend walks from n down to a leaf, following the child nearer to
// the search point at every internal node and enqueueing the farther
// child (subject to threshold and frontier pruning) without waiting for
// it to resurface from pending — the classic best-first shortcut that
// avoids re-heapifying the node already known to be on the winning path.
func (it *Iterator) descend(n *node) {
	cur := n
	for !cur.IsLeaf() {
		near, far := cur.left, cur.right
		if it.searchPoint[cur.SplitDimension()] > cur.SplitValue() {
			near, far = cur.right, cur.left
		}

		farBound := it.metric.DistanceToBox(it.searchPoint, far.MinimumBound(), far.MaximumBound())
		if it.threshold < 0 || farBound <= it.threshold {
			if it.shouldEnqueue(farBound) {
				it.pending.Insert(farBound, far)
			}
		}
		cur = near
	}
	it.evaluateLeaf(cur)
}

// shouldEnqueue reports whether a candidate subtree with lower bound lb
// is worth keeping around: either the frontier still has open slots, or
// lb could still beat the current worst admitted candidate.
func (it *Iterator) shouldEnqueue(lb float64) bool {
	if it.evaluated.Len() < it.remaining {
		return true
	}
	if it.evaluated.Len() == 0 {
		return false
	}
	maxKey, _ := it.evaluated.MaxKey()
	return lb <= maxKey
}

// evaluateLeaf scores every point in a leaf against the search point
// and offers each as a candidate. A single-point leaf computes its
// shared distance once and, if it clears the threshold, offers every
// index it holds at that distance — ties among them are resolved by
// offerCandidate like any other candidate.
func (it *Iterator) evaluateLeaf(n *node) {
	if n.Size() == 0 {
		return
	}
	if n.SinglePoint() {
		dist := it.metric.Distance(it.searchPoint, it.tree.points[n.SlotAt(0)])
		if it.threshold >= 0 && !(dist <= it.threshold) {
			return
		}
		for i := 0; i < n.Size(); i++ {
			idx := n.SlotAt(i)
			it.offerCandidate(dist, it.tree.payloads[idx])
		}
		return
	}

	for i := 0; i < n.Size(); i++ {
		idx := n.SlotAt(i)
		dist := it.metric.Distance(it.searchPoint, it.tree.points[idx])
		if it.threshold >= 0 && !(dist <= it.threshold) {
			continue
		}
		it.offerCandidate(dist, it.tree.payloads[idx])
	}
}

// offerCandidate admits (dist, payload) into evaluated if there is open
// frontier room, or displaces the current worst candidate if dist beats
// it. Otherwise the candidate is discarded.
func (it *Iterator) offerCandidate(dist float64, payload any) {
	if it.evaluated.Len() < it.remaining {
		it.evaluated.Insert(dist, payload)
		return
	}
	if it.evaluated.Len() == 0 {
		return
	}
	maxKey, _ := it.evaluated.MaxKey()
	if dist < maxKey {
		_ = it.evaluated.ReplaceMax(dist, payload)
	}
}
