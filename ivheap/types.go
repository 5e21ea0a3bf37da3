package ivheap

// entry is a single (key, value) slot of the heap.
type entry struct {
	key   float64
	value any
}

// Heap is a double-ended priority queue. The zero value is not usable;
// construct with New.
type Heap struct {
	a []entry
}

// New returns an empty Heap. capacityHint pre-sizes the backing slice; a
// non-positive hint falls back to a small default.
func New(capacityHint int) *Heap {
	if capacityHint <= 0 {
		capacityHint = 8
	}
	return &Heap{a: make([]entry, 0, capacityHint)}
}

// Len reports the number of entries currently queued.
func (h *Heap) Len() int { return len(h.a) }

// pairMin reports the index of pair p's min slot; callers must check it
// against len(h.a) before using it.
func (h *Heap) pairMin(p int) int { return 2 * p }

// pairMax reports the index of pair p's max slot; callers must check it
// against len(h.a) before using it.
func (h *Heap) pairMax(p int) int { return 2*p + 1 }

// maxKeyOf returns the key used for max-side comparisons of pair p: the
// max slot's key if present, otherwise the lone min slot's key.
func (h *Heap) maxKeyOf(p int) float64 {
	mi, xi := h.pairMin(p), h.pairMax(p)
	if xi < len(h.a) {
		return h.a[xi].key
	}
	return h.a[mi].key
}

// fixPair restores keys[2p] <= keys[2p+1] for pair p, if both slots exist.
func (h *Heap) fixPair(p int) {
	mi, xi := h.pairMin(p), h.pairMax(p)
	if xi < len(h.a) && h.a[mi].key > h.a[xi].key {
		h.a[mi], h.a[xi] = h.a[xi], h.a[mi]
	}
}
