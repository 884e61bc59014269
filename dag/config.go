// Package dag implements the per-epoch light-cache / L1-cache builder
// and the mmap-backed, LRU-bounded registry that serves them to the
// ProgPoW mixing loop.
package dag

import (
	"fmt"
	"path/filepath"

	"github.com/kawpow-go/powkit/crypto/keccak"
)

// HashBytes is the width of one light-cache row (a Keccak-512 digest).
const HashBytes = 64

// WordBytes is the width of one little-endian word within a row.
const WordBytes = 4

// LookupTable holds precomputed per-epoch sizes, indexed by epoch. An
// epoch beyond the table falls back to the algorithmic formula.
type LookupTable []uint64

// Config describes one coin's DAG/cache parameterization. It is
// immutable once constructed and safe for concurrent use by a Dag
// registry and any number of Cache builds.
type Config struct {
	Name       string
	Revision   uint64
	StorageDir string

	DatasetInitBytes   uint64
	DatasetGrowthBytes uint64
	CacheInitBytes     uint64
	CacheGrowthBytes   uint64

	DatasetSizes LookupTable
	CacheSizes   LookupTable

	MixBytes       uint64
	DatasetParents int
	EpochLength    uint64
	SeedEpochLength uint64

	CacheRounds     int
	CachesCount     int
	CachesLockMmap  bool

	L1Enabled      bool
	L1CacheSize    uint64
	L1CacheNumItems int
}

// FilePath returns the on-disk path for an epoch's cache or L1 file.
func (c *Config) FilePath(epoch uint64, isL1 bool) string {
	name := fmt.Sprintf("cache-%d", epoch)
	if isL1 {
		name = fmt.Sprintf("l1-%d", epoch)
	}
	return filepath.Join(c.StorageDir, name)
}

// SeedHash derives the light-cache seed for a given height: a zeroed
// 32-byte seed repeatedly Keccak-256'd floor(height/seed_epoch_length)
// times. A height inside the zero-th seed epoch yields all zeros.
func (c *Config) SeedHash(height uint64) [32]byte {
	var seed [32]byte
	if height < c.SeedEpochLength {
		return seed
	}
	for i := uint64(0); i < height/c.SeedEpochLength; i++ {
		seed = keccak.Sum256(seed[:])
	}
	return seed
}

// DatasetSize returns the full dataset size in bytes for epoch.
func (c *Config) DatasetSize(epoch uint64) uint64 {
	if epoch < uint64(len(c.DatasetSizes)) {
		return c.DatasetSizes[epoch]
	}
	return c.calcDatasetSize(epoch)
}

// CacheSize returns the light-cache size in bytes for epoch.
func (c *Config) CacheSize(epoch uint64) uint64 {
	if epoch < uint64(len(c.CacheSizes)) {
		return c.CacheSizes[epoch]
	}
	return c.calcCacheSize(epoch)
}

// calcCacheSize matches the reference's single-correction formula
// bit-for-bit (see DESIGN.md's Open Question resolution): the
// candidate size is decremented by one mix_bytes pair exactly once if
// its row count is not prime, never looped to primality.
func (c *Config) calcCacheSize(epoch uint64) uint64 {
	size := c.CacheInitBytes + c.CacheGrowthBytes*epoch - HashBytes
	if !isPrime(size / HashBytes) {
		size -= 2 * c.MixBytes
	}
	return size
}

func (c *Config) calcDatasetSize(epoch uint64) uint64 {
	size := c.DatasetInitBytes + c.DatasetGrowthBytes*epoch - c.MixBytes
	if !isPrime(size / c.MixBytes) {
		size -= 2 * c.MixBytes
	}
	return size
}

// CalcEpoch returns the epoch a block height belongs to.
func (c *Config) CalcEpoch(height uint64) uint64 {
	return height / c.EpochLength
}

// isPrime is a plain trial-division primality test over the modest
// candidate values calc*Size produces; no ecosystem library in the
// corpus covers one-off primality checks like this (see DESIGN.md).
func isPrime(n uint64) bool {
	if n < 2 {
		return false
	}
	if n%2 == 0 {
		return n == 2
	}
	for i := uint64(3); i*i <= n; i += 2 {
		if n%i == 0 {
			return false
		}
	}
	return true
}
