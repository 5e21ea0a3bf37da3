package ivheap

import "github.com/pkg/errors"

// Insert adds (key, value) to the heap. Complexity: O(log n).
func (h *Heap) Insert(key float64, value any) {
	h.a = append(h.a, entry{key: key, value: value})
	i := len(h.a) - 1
	if i == 0 {
		return // first element: alone in pair 0's min slot.
	}

	p := i / 2
	if i%2 == 1 {
		// i is the max slot of pair p; its min-slot partner already exists.
		mi := h.pairMin(p)
		if h.a[i].key < h.a[mi].key {
			h.a[i], h.a[mi] = h.a[mi], h.a[i]
			h.siftUpMin(p)
		} else {
			h.siftUpMax(p)
		}
		return
	}

	// i is the min slot of a brand-new pair p (no max-slot partner yet).
	if p == 0 {
		return // root pair has no parent to compare against.
	}
	parent := (p - 1) / 2
	pmi, pxi := h.pairMin(parent), h.pairMax(parent)
	switch {
	case h.a[i].key < h.a[pmi].key:
		h.a[i], h.a[pmi] = h.a[pmi], h.a[i]
		h.siftUpMin(parent)
	case pxi < len(h.a) && h.a[i].key > h.a[pxi].key:
		h.a[i], h.a[pxi] = h.a[pxi], h.a[i]
		h.siftUpMax(parent)
	}
}

// siftUpMin moves the value at pair p's min slot toward the root while it
// is smaller than its parent pair's min.
func (h *Heap) siftUpMin(p int) {
	for p > 0 {
		parent := (p - 1) / 2
		mi, pmi := h.pairMin(p), h.pairMin(parent)
		if h.a[mi].key < h.a[pmi].key {
			h.a[mi], h.a[pmi] = h.a[pmi], h.a[mi]
			p = parent
			continue
		}
		break
	}
}

// siftUpMax moves the value at pair p's max slot toward the root while it
// is larger than its parent pair's max.
func (h *Heap) siftUpMax(p int) {
	for p > 0 {
		parent := (p - 1) / 2
		xi, pxi := h.pairMax(p), h.pairMax(parent)
		if h.a[xi].key > h.a[pxi].key {
			h.a[xi], h.a[pxi] = h.a[pxi], h.a[xi]
			p = parent
			continue
		}
		break
	}
}

// Min returns the value with the smallest key without removing it.
func (h *Heap) Min() (any, error) {
	if len(h.a) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "Min")
	}
	return h.a[0].value, nil
}

// MinKey returns the smallest key without removing its entry.
func (h *Heap) MinKey() (float64, error) {
	if len(h.a) == 0 {
		return 0, errors.WithMessage(ErrEmpty, "MinKey")
	}
	return h.a[0].key, nil
}

// Max returns the value with the largest key without removing it.
func (h *Heap) Max() (any, error) {
	if len(h.a) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "Max")
	}
	if len(h.a) == 1 {
		return h.a[0].value, nil
	}
	return h.a[1].value, nil
}

// MaxKey returns the largest key without removing its entry.
func (h *Heap) MaxKey() (float64, error) {
	if len(h.a) == 0 {
		return 0, errors.WithMessage(ErrEmpty, "MaxKey")
	}
	if len(h.a) == 1 {
		return h.a[0].key, nil
	}
	return h.a[1].key, nil
}

// RemoveMin removes and returns the value with the smallest key.
// Complexity: O(log n).
func (h *Heap) RemoveMin() (any, error) {
	if len(h.a) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "RemoveMin")
	}
	result := h.a[0].value
	last := len(h.a) - 1
	h.a[0] = h.a[last]
	h.a = h.a[:last]
	if len(h.a) > 0 {
		h.trickleDownMin(0)
	}
	return result, nil
}

// RemoveMax removes and returns the value with the largest key.
// Complexity: O(log n).
func (h *Heap) RemoveMax() (any, error) {
	if len(h.a) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "RemoveMax")
	}
	if len(h.a) == 1 {
		result := h.a[0].value
		h.a = h.a[:0]
		return result, nil
	}
	result := h.a[1].value
	last := len(h.a) - 1
	h.a[1] = h.a[last]
	h.a = h.a[:last]
	if len(h.a) > 1 {
		h.trickleDownMax(0)
	}
	return result, nil
}

// ReplaceMin replaces the current minimum with (key, value) in a single
// top-down pass, maintaining all heap invariants. Complexity: O(log n).
func (h *Heap) ReplaceMin(key float64, value any) error {
	if len(h.a) == 0 {
		return errors.WithMessage(ErrEmpty, "ReplaceMin")
	}
	h.a[0] = entry{key: key, value: value}
	if len(h.a) > 1 {
		h.fixPair(0)
	}
	h.trickleDownMin(0)
	return nil
}

// ReplaceMax replaces the current maximum with (key, value) in a single
// top-down pass, maintaining all heap invariants. Complexity: O(log n).
func (h *Heap) ReplaceMax(key float64, value any) error {
	if len(h.a) == 0 {
		return errors.WithMessage(ErrEmpty, "ReplaceMax")
	}
	if len(h.a) == 1 {
		h.a[0] = entry{key: key, value: value}
		return nil
	}
	h.a[1] = entry{key: key, value: value}
	h.fixPair(0)
	h.trickleDownMax(0)
	return nil
}

// trickleDownMin restores the min-heap chain starting at pair p's min
// slot, after a (possibly large) value was just placed there.
func (h *Heap) trickleDownMin(p int) {
	for {
		smallest := p
		for _, c := range [2]int{2*p + 1, 2*p + 2} {
			if h.pairMin(c) < len(h.a) && h.a[h.pairMin(c)].key < h.a[h.pairMin(smallest)].key {
				smallest = c
			}
		}
		if smallest == p {
			return
		}
		mi, smi := h.pairMin(p), h.pairMin(smallest)
		h.a[mi], h.a[smi] = h.a[smi], h.a[mi]
		h.fixPair(smallest)
		p = smallest
	}
}

// trickleDownMax restores the max-heap chain starting at pair p's max
// slot, after a (possibly small) value was just placed there. Pairs
// without a max slot stand in with their lone min-slot value.
func (h *Heap) trickleDownMax(p int) {
	for {
		if h.pairMax(p) >= len(h.a) {
			return // p is a lone-min leaf pair; nothing left to compare.
		}
		largest := p
		largestKey := h.maxKeyOf(p)
		for _, c := range [2]int{2*p + 1, 2*p + 2} {
			if h.pairMin(c) < len(h.a) {
				if k := h.maxKeyOf(c); k > largestKey {
					largest = c
					largestKey = k
				}
			}
		}
		if largest == p {
			return
		}
		xi := h.pairMax(p)
		if lxi := h.pairMax(largest); lxi < len(h.a) {
			h.a[xi], h.a[lxi] = h.a[lxi], h.a[xi]
			h.fixPair(largest)
		} else {
			// largest is a lone-min leaf: its single slot stands in for
			// the max comparison; swap it into p's max slot directly.
			lmi := h.pairMin(largest)
			h.a[xi], h.a[lmi] = h.a[lmi], h.a[xi]
		}
		p = largest
	}
}
