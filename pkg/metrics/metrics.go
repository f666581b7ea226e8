// Package metrics holds shared instrument defaults.
package metrics

// DefaultBuckets provides histogram buckets in seconds reused across the
// application for latency metrics. The upper buckets cover full scans, which
// wait on several AI platforms and may take tens of seconds.
var DefaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 30, 60, 120} //nolint: gochecknoglobals
