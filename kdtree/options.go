package kdtree

import "github.com/katalvlaran/kdspace/metric"

// searchConfig holds NearestNeighbors' resolved options.
type searchConfig struct {
	threshold float64
	metric    metric.Metric
}

// SearchOption configures a NearestNeighbors call. See WithThreshold and
// WithMetric.
type SearchOption func(*searchConfig)

// WithThreshold bounds results to those within distance threshold of the
// search point. A negative threshold (the default) means unbounded.
func WithThreshold(threshold float64) SearchOption {
	return func(c *searchConfig) { c.threshold = threshold }
}

// WithMetric selects the distance model. Defaults to
// metric.SquaredEuclidean{} when omitted. Panics if m is nil — a
// programmer error, not a data-dependent condition.
func WithMetric(m metric.Metric) SearchOption {
	if m == nil {
		panic("kdtree: WithMetric(nil)")
	}
	return func(c *searchConfig) { c.metric = m }
}
