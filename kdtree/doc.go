// Package kdtree implements a mutable, bucketed k-dimensional spatial
// index over a fixed dimensionality, supporting point insertion,
// removal, in-place relocation, and bounded best-first k-nearest-neighbor
// search under a pluggable distance model (see package metric).
//
// Unlike a classic balanced kd-tree built once from a static point set,
// the tree here is built incrementally: leaves hold up to a configured
// bucket capacity of points before splitting on their widest dimension,
// and removal never triggers a rebalance. A long-running tree that sees
// many point churns can grow unbalanced; callers that care about search
// latency under churn should periodically call Tree.Regen to rebuild
// from the live point set.
//
// Points are tracked by a stable integer index assigned on insertion and
// valid until that point is removed; removed slots ("holes") are reused
// by later insertions in highest-first order. Search results are
// delivered through an Iterator that walks a bounded set of candidates
// in increasing distance order.
//
// Concurrency: a Tree and its Iterators take no internal locks and are not
// safe for concurrent mutation. An Iterator records the Tree's state when
// it is created or reset; if the Tree is mutated afterwards, Next returns
// false and Err reports ErrUnsupportedOperation.
package kdtree
