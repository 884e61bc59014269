package dag

import (
	"sync"

	"github.com/hashicorp/golang-lru/simplelru"
	"github.com/kawpow-go/powkit/log"
)

// Cache is the paired owner of one epoch's light cache and, if
// enabled, its derived L1 cache. Immutable after construction and
// shared by every concurrent caller holding a reference to it.
type Cache struct {
	cache *DataFile
	l1    *DataFile
}

// Light returns the light-cache payload.
func (c *Cache) Light() []byte {
	return c.cache.Data()
}

// L1 returns the L1-cache payload, or nil if L1 is disabled.
func (c *Cache) L1() []byte {
	if c.l1 == nil {
		return nil
	}
	return c.l1.Data()
}

// generateCache builds (or attaches to) both the light cache and,
// when enabled, its L1 cache for epoch, then fires a detached prefetch
// of epoch+1.
func generateCache(config *Config, epoch uint64) (*Cache, error) {
	cacheFile, err := GenerateDataFile(config, epoch, nil)
	if err != nil {
		return nil, err
	}

	var l1File *DataFile
	if config.L1Enabled {
		l1File, err = GenerateDataFile(config, epoch, cacheFile.Data())
		if err != nil {
			return nil, err
		}
	}

	go prefetchNext(config, epoch+1)

	return &Cache{cache: cacheFile, l1: l1File}, nil
}

// prefetchNext builds epoch's files on a detached goroutine without
// ever touching the registry map: the next on-demand GetCache call
// attaches to the now-finished on-disk file cheaply. Failures are
// observability events only.
func prefetchNext(config *Config, epoch uint64) {
	cacheFile, err := GenerateDataFile(config, epoch, nil)
	if err != nil {
		prefetchFailMeter.Mark(1)
		log.Warn("dag: background cache prefetch failed", "epoch", epoch, "err", err)
		return
	}
	if config.L1Enabled {
		if _, err := GenerateDataFile(config, epoch, cacheFile.Data()); err != nil {
			prefetchFailMeter.Mark(1)
			log.Warn("dag: background L1 prefetch failed", "epoch", epoch, "err", err)
		}
	}
}

// Dag is the process-wide registry mapping epoch to Cache, bounded to
// config.CachesCount entries with LRU eviction (resolving the spec's
// open question on the unspecified above-cap behavior: eviction here
// only drops the in-memory map entry, never the on-disk file, which is
// reclaimed solely by datafile.go's stale-file scan).
type Dag struct {
	Config *Config

	mu     sync.RWMutex
	caches *simplelru.LRU
}

// NewDag constructs a registry for config.
func NewDag(config *Config) *Dag {
	size := config.CachesCount
	if size < 1 {
		size = 1
	}
	lru, _ := simplelru.NewLRU(size, nil)
	return &Dag{Config: config, caches: lru}
}

// GetCache returns the Cache for epoch, building and registering it on
// first use.
func (d *Dag) GetCache(epoch uint64) (*Cache, error) {
	d.mu.RLock()
	if v, ok := d.caches.Get(epoch); ok {
		d.mu.RUnlock()
		return v.(*Cache), nil
	}
	d.mu.RUnlock()

	cache, err := generateCache(d.Config, epoch)
	if err != nil {
		return nil, err
	}

	d.mu.Lock()
	if v, ok := d.caches.Get(epoch); ok {
		d.mu.Unlock()
		return v.(*Cache), nil
	}
	d.caches.Add(epoch, cache)
	d.mu.Unlock()

	return cache, nil
}
