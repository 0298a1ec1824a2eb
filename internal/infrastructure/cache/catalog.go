package cache

import (
	"context"
	"log"
	"sync"

	"github.com/upbringing/recommender/internal/domain"
)

// SnapshotBuilder turns raw records into a catalog snapshot. The build is a
// composite, potentially slow pipeline (normalize, corpus, fit) and runs
// outside the cache lock.
type SnapshotBuilder func(ctx context.Context, records []domain.RawRecord) (*domain.Snapshot, error)

// CatalogCache is the single-slot, thread-safe holder of the active
// catalog/index pair. Readers fetch the current snapshot pointer under a
// read lock; Replace swaps in a fully built snapshot under the write lock,
// so a concurrent query sees either the whole old pair or the whole new
// pair, never a mismatched combination.
type CatalogCache struct {
	build SnapshotBuilder

	mutex sync.RWMutex
	snap  *domain.Snapshot
}

// NewCatalogCache creates an empty cache. The cache stays in the not-ready
// state until the first successful Replace.
func NewCatalogCache(build SnapshotBuilder) *CatalogCache {
	return &CatalogCache{build: build}
}

// Snapshot returns the active snapshot, or ErrNotReady before the first load
func (c *CatalogCache) Snapshot() (*domain.Snapshot, error) {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.snap == nil {
		return nil, domain.ErrNotReady
	}
	return c.snap, nil
}

// Replace builds a new snapshot from the records and swaps it in. On build
// failure the previously active snapshot stays in place untouched.
func (c *CatalogCache) Replace(ctx context.Context, records []domain.RawRecord) error {
	snap, err := c.build(ctx, records)
	if err != nil {
		return err
	}

	c.mutex.Lock()
	c.snap = snap
	c.mutex.Unlock()

	log.Printf("[CACHE] catalog replaced: %d products, %d index terms",
		len(snap.Products), snap.Index.Terms())
	return nil
}

// Len returns the active catalog size, zero when not loaded
func (c *CatalogCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	if c.snap == nil {
		return 0
	}
	return len(c.snap.Products)
}

// Clear drops the active snapshot, returning the cache to the not-ready state
func (c *CatalogCache) Clear() {
	c.mutex.Lock()
	defer c.mutex.Unlock()
	c.snap = nil
}
