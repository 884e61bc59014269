// Package progpow implements the ProgPoW 0.9.4 mixing loop: per-lane
// register mixing driven by a KISS99-seeded instruction stream, with a
// pluggable DAG dataset-item lookup.
package progpow

// Config carries the ProgPoW parameter set. KawPoW uses the 0.9.4
// values with a shortened period_length of 3.
type Config struct {
	PeriodLength        int
	DagLoads            int
	CacheBytes          int
	LaneCount           int
	RegisterCount       int
	RoundCount          int
	RoundCacheAccesses  int
	RoundMathOperations int
}

// KawPow returns the ProgPoW 0.9.4 parameter set as used by KawPoW
// (Ravencoin), differing from vanilla ProgPoW 0.9.4 only in its
// shortened period_length.
func KawPow() Config {
	return Config{
		PeriodLength:        3,
		DagLoads:            4,
		CacheBytes:          16 * 1024,
		LaneCount:           16,
		RegisterCount:       32,
		RoundCount:          64,
		RoundCacheAccesses:  11,
		RoundMathOperations: 18,
	}
}

// V094 returns the vanilla ProgPoW 0.9.4 parameter set.
func V094() Config {
	cfg := KawPow()
	cfg.PeriodLength = 10
	return cfg
}
