package pqueue

import "errors"

// Sentinel errors for pqueue operations.
var (
	// ErrEmpty indicates that Min, MinKey, or RemoveMin was called on an
	// empty heap.
	ErrEmpty = errors.New("pqueue: heap is empty")
)
