package reconcile

import (
	"context"
	"time"

	"game-catalog/core/storage"
)

// Result represents the comparison outcome for a single asset key.
type Result struct {
	// Key is the asset object name.
	Key string `json:"key"`

	// ReferencedBy lists the catalog entries referencing this asset.
	// Empty for orphan storage objects.
	ReferencedBy []string `json:"referenced_by"`

	// CatalogPresent indicates the asset is referenced by the catalog.
	CatalogPresent bool `json:"catalog_present"`

	// StoragePresent indicates the asset object exists in storage.
	StoragePresent bool `json:"storage_present"`
}

// Summary provides aggregate counts for a comparison run.
type Summary struct {
	// TotalKeys is the number of unique asset keys across both sources.
	TotalKeys int `json:"total_keys"`

	// MissingStorage counts assets referenced by the catalog but absent
	// from storage.
	MissingStorage int `json:"missing_storage"`

	// OrphanStorage counts storage objects no catalog entry references.
	OrphanStorage int `json:"orphan_storage"`
}

// Adapter provides the model-specific loading logic for a comparison.
type Adapter interface {
	// Name returns the unique name of this adapter (e.g. "assets").
	Name() string

	// LoadCatalogIndex returns asset keys referenced by the catalog,
	// each mapped to the referencing entry identifiers.
	LoadCatalogIndex(ctx context.Context) (map[string][]string, error)

	// LoadStorageSet lists storage objects under the given prefix and
	// returns the set of asset keys present.
	LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]struct{}, error)
}

// Spec defines the configuration for a comparison operation.
type Spec struct {
	// Adapter provides the loading logic.
	Adapter Adapter

	// CacheTTL is the time-to-live for cached comparison indices.
	// Zero disables caching.
	CacheTTL time.Duration

	// StoragePrefix is the prefix under which asset objects live.
	StoragePrefix string
}

// CacheKey returns a unique key for caching based on spec parameters,
// so different adapters and prefixes don't share a cache entry.
func (s *Spec) CacheKey() string {
	return s.Adapter.Name() + "|" + s.StoragePrefix
}
