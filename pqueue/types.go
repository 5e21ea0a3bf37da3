package pqueue

// item is a single (key, value) slot of the heap.
type item struct {
	key   float64
	value any
}

// innerHeap implements container/heap.Interface over a slice of *item,
// ordered smallest-key-first. It is the same shape as dijkstra's internal
// nodePQ/nodeItem lazy-decrease-key queue, generalized from (vertex id,
// int64 distance) to (any value, float64 key).
type innerHeap []*item

func (h innerHeap) Len() int            { return len(h) }
func (h innerHeap) Less(i, j int) bool  { return h[i].key < h[j].key }
func (h innerHeap) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *innerHeap) Push(x interface{}) { *h = append(*h, x.(*item)) }
func (h *innerHeap) Pop() interface{} {
	old := *h
	n := len(old)
	it := old[n-1]
	old[n-1] = nil // drop the reference so the backing array can be GC'd
	*h = old[:n-1]
	return it
}

// MinHeap is a binary min-heap keyed by a real number, carrying an
// associated value. See the package doc for the contract.
type MinHeap struct {
	h innerHeap
}

// New returns an empty MinHeap. capacityHint pre-sizes the backing slice;
// a non-positive hint falls back to a small default. Capacity grows
// geometrically thereafter via append, so there is no hard limit.
func New(capacityHint int) *MinHeap {
	if capacityHint <= 0 {
		capacityHint = 8
	}
	return &MinHeap{h: make(innerHeap, 0, capacityHint)}
}

// Len reports the number of entries currently queued.
func (m *MinHeap) Len() int { return len(m.h) }
