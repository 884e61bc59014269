package dag

import "github.com/rcrowley/go-metrics"

// Instrumentation for the registry's build/evict/prefetch paths,
// following the teacher's own go-metrics-backed metrics package shape
// but scoped to what a PoW core (not a mining client) should observe.
var (
	cacheBuildMeter        = metrics.NewRegisteredMeter("dag/cache/build", nil)
	cacheBuildFailMeter    = metrics.NewRegisteredMeter("dag/cache/build/fail", nil)
	cacheBuildTimer        = metrics.NewRegisteredTimer("dag/cache/build/duration", nil)
	prefetchFailMeter      = metrics.NewRegisteredMeter("dag/cache/prefetch/fail", nil)
	staleEvictionFailMeter = metrics.NewRegisteredMeter("dag/cache/evict/fail", nil)
)
