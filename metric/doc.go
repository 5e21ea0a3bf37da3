// Package metric defines the pluggable distance model used by kdtree's
// best-first k-NN search: a Metric abstracts the notion of "distance" so
// that a single search engine works unmodified across squared-Euclidean,
// axis-weighted, and translation-augmented (predicted-position) spaces.
//
// Contract: DistanceToBox must be a monotone lower bound — for any
// point p and any point q inside the axis-aligned box [min,max],
// DistanceToBox(p,min,max) <= Distance(p,q). Search correctness (the
// pruning step in kdtree.Iterator) depends entirely on this inequality;
// an implementation that violates it will silently drop true nearest
// neighbors rather than erroring.
//
// Four implementations are provided: SquaredEuclidean, Weighted,
// Translated, and WeightedTranslated (the composition of the latter two).
// The translation-augmented metrics lay out each point as
// [pos(k)..., vel(k)..., t0], project to an effective position at the
// time the TimeSource reports, and otherwise behave like their
// non-translated counterpart.
package metric
