package ivheap

import "errors"

// Sentinel errors for ivheap operations.
var (
	// ErrEmpty indicates that Min, Max, RemoveMin, RemoveMax, ReplaceMin,
	// or ReplaceMax was called on an empty heap.
	ErrEmpty = errors.New("ivheap: heap is empty")
)
