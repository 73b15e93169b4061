package reconcile

import (
	"context"
	"sync"
	"time"

	"game-catalog/core/storage"

	"golang.org/x/sync/singleflight"
)

// Cache holds pre-built comparison indices.
type Cache struct {
	// CatalogIndex maps asset keys to referencing catalog entries.
	CatalogIndex map[string][]string

	// StorageSet is the set of asset keys present in storage.
	StorageSet map[string]struct{}

	// Built is the timestamp when this cache was built.
	Built time.Time

	// TTL is the time-to-live for this cache.
	TTL time.Duration
}

// IsExpired returns true if this cache has expired based on its TTL.
func (c *Cache) IsExpired() bool {
	if c.TTL == 0 {
		return true // No caching
	}
	return time.Since(c.Built) > c.TTL
}

// cacheStore holds all comparison caches keyed by spec cache key.
type cacheStore struct {
	mu     sync.RWMutex
	caches map[string]*Cache
	sf     singleflight.Group
}

var globalCacheStore = &cacheStore{
	caches: make(map[string]*Cache),
}

// BuildCache builds a new cache for the given spec by loading both indices
// concurrently. It does NOT store the cache; use GetOrBuildCache for that.
func BuildCache(ctx context.Context, spec *Spec, client storage.Client, bucket string) (*Cache, error) {
	var (
		catalogIndex map[string][]string
		storageSet   map[string]struct{}
		catalogErr   error
		storageErr   error
		wg           sync.WaitGroup
	)

	wg.Add(2)

	go func() {
		defer wg.Done()
		catalogIndex, catalogErr = spec.Adapter.LoadCatalogIndex(ctx)
	}()

	go func() {
		defer wg.Done()
		storageSet, storageErr = spec.Adapter.LoadStorageSet(ctx, client, bucket, spec.StoragePrefix)
	}()

	wg.Wait()

	if catalogErr != nil {
		return nil, catalogErr
	}
	if storageErr != nil {
		return nil, storageErr
	}

	return &Cache{
		CatalogIndex: catalogIndex,
		StorageSet:   storageSet,
		Built:        time.Now(),
		TTL:          spec.CacheTTL,
	}, nil
}

// GetOrBuildCache retrieves a cache for the given spec from the store, or
// builds a new one if it doesn't exist or has expired. Uses singleflight to
// prevent cache stampedes.
func GetOrBuildCache(ctx context.Context, spec *Spec, client storage.Client, bucket string) (*Cache, error) {
	cacheKey := spec.CacheKey()

	// Fast path: check if cache exists and is fresh
	globalCacheStore.mu.RLock()
	cache, exists := globalCacheStore.caches[cacheKey]
	globalCacheStore.mu.RUnlock()

	if exists && !cache.IsExpired() {
		return cache, nil
	}

	result, err, _ := globalCacheStore.sf.Do(cacheKey, func() (interface{}, error) {
		// Double-check after acquiring singleflight lock
		globalCacheStore.mu.RLock()
		cache, exists := globalCacheStore.caches[cacheKey]
		globalCacheStore.mu.RUnlock()

		if exists && !cache.IsExpired() {
			return cache, nil
		}

		newCache, err := BuildCache(ctx, spec, client, bucket)
		if err != nil {
			return nil, err
		}

		globalCacheStore.mu.Lock()
		globalCacheStore.caches[cacheKey] = newCache
		globalCacheStore.mu.Unlock()

		return newCache, nil
	})

	if err != nil {
		return nil, err
	}

	return result.(*Cache), nil
}

// InvalidateCache removes the cache for the given spec from the store.
// Useful for testing or forcing a rebuild.
func InvalidateCache(spec *Spec) {
	cacheKey := spec.CacheKey()
	globalCacheStore.mu.Lock()
	delete(globalCacheStore.caches, cacheKey)
	globalCacheStore.mu.Unlock()
}
