package pqueue

import (
	"container/heap"

	"github.com/pkg/errors"
)

// Insert pushes (key, value) onto the heap. Complexity: O(log n)
// amortized.
func (m *MinHeap) Insert(key float64, value any) {
	heap.Push(&m.h, &item{key: key, value: value})
}

// Min returns the value with the smallest key without removing it.
// Returns ErrEmpty if the heap has no entries.
func (m *MinHeap) Min() (any, error) {
	if len(m.h) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "Min")
	}
	return m.h[0].value, nil
}

// MinKey returns the smallest key without removing its entry.
// Returns ErrEmpty if the heap has no entries.
func (m *MinHeap) MinKey() (float64, error) {
	if len(m.h) == 0 {
		return 0, errors.WithMessage(ErrEmpty, "MinKey")
	}
	return m.h[0].key, nil
}

// RemoveMin removes and returns the value with the smallest key.
// Returns ErrEmpty if the heap has no entries. Complexity: O(log n).
func (m *MinHeap) RemoveMin() (any, error) {
	if len(m.h) == 0 {
		return nil, errors.WithMessage(ErrEmpty, "RemoveMin")
	}
	it := heap.Pop(&m.h).(*item)
	return it.value, nil
}
