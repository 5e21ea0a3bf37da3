// Package ivheap provides an interval heap: a double-ended priority queue
// keyed by a float64, carrying an arbitrary associated value, with O(log n)
// Insert, RemoveMin, RemoveMax, ReplaceMin, and ReplaceMax.
//
// It exists as the "current best-k candidates" queue of a best-first k-NN
// search (see kdtree.Iterator), bounded to min(k, treeSize) entries:
// ReplaceMax lets the search evict the worst candidate in the same
// top-down pass that inserts a better one, without ever growing the heap
// past its bound.
//
// Representation: elements are stored in pairs at slots (2i, 2i+1); slot
// 2i holds the pair's minimum, slot 2i+1 (when present) holds the pair's
// maximum, so keys[2i] <= keys[2i+1] whenever both exist. A pair with
// only a min slot — possible only for the last pair when the heap holds an
// odd number of elements — is a leaf; that lone value stands in for both
// the min and max comparisons used while sifting.
//
// Not safe for concurrent use; lifetime does not exceed one search.
package ivheap
