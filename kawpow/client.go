package kawpow

import (
	"fmt"

	"github.com/kawpow-go/powkit/dag"
	"github.com/rcrowley/go-metrics"
)

var computeMeter = metrics.NewRegisteredMeter("kawpow/compute", nil)

// Client owns a Dag registry and exposes the deterministic compute
// entry point consumed by external callers (miners, verifiers).
type Client struct {
	registry *dag.Dag
}

// NewClient constructs a Client over an arbitrary DagConfig, for coins
// other than Ravencoin or for test harnesses that supply their own
// sizing.
func NewClient(config *dag.Config) *Client {
	return &Client{registry: dag.NewDag(config)}
}

// NewRavencoin constructs a Client preconfigured with Ravencoin's
// KawPoW parameters, rooted at storageDir. The coin-specific precomputed
// cache_sizes/dataset_sizes tables are left nil, so every epoch's sizes
// come from the single-correction fallback formula; the returned Client
// offers no way to attach tables afterwards, so a caller that has them
// passes its own Config to NewClient (see SPEC_FULL.md §4).
func NewRavencoin(storageDir string) *Client {
	cfg := &dag.Config{
		Name:       "RVN",
		Revision:   23,
		StorageDir: storageDir,

		DatasetInitBytes:   1 << 30,
		DatasetGrowthBytes: 1 << 23,
		CacheInitBytes:     1 << 24,
		CacheGrowthBytes:   1 << 17,

		MixBytes:       128,
		DatasetParents: 512,
		EpochLength:    7500,
		SeedEpochLength: 7500,

		CacheRounds: 3,
		CachesCount: 3,

		L1Enabled:       true,
		L1CacheSize:     4096 * 4,
		L1CacheNumItems: 4096,
	}
	return NewClient(cfg)
}

// Compute runs the KawPoW pipeline for (hash, height, nonce), building
// or attaching to the epoch's DAG cache as needed. The only error
// class it can return is cache-construction failure (I/O); every
// arithmetic and hashing step downstream is total.
func (c *Client) Compute(hash [32]byte, height, nonce uint64) (mix [32]byte, digest [32]byte, err error) {
	config := c.registry.Config
	epoch := config.CalcEpoch(height)

	cache, err := c.registry.GetCache(epoch)
	if err != nil {
		return mix, digest, fmt.Errorf("kawpow: cache for epoch %d: %w", epoch, err)
	}

	lookup := func(index int) []uint32 {
		return dag.GenerateDatasetItemUnit(cache.Light(), index, 4, config.DatasetParents)
	}
	datasetSize := int(config.DatasetSize(epoch))

	computeMeter.Mark(1)
	mix, digest = Hash(hash, height, nonce, datasetSize, lookup, cache.L1())
	return mix, digest, nil
}
