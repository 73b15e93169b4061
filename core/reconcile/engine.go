package reconcile

import (
	"context"
	"sort"

	"game-catalog/core/storage"
)

// CompareAll performs a full comparison between the catalog's asset
// references and the objects present in storage. It builds both indices,
// computes the union of keys, and returns one result per key plus
// aggregate counts, sorted by key for deterministic output.
func CompareAll(ctx context.Context, spec *Spec, client storage.Client, bucket string) ([]Result, Summary, error) {
	cache, err := GetOrBuildCache(ctx, spec, client, bucket)
	if err != nil {
		return nil, Summary{}, err
	}

	union := make(map[string]struct{}, len(cache.CatalogIndex)+len(cache.StorageSet))
	for key := range cache.CatalogIndex {
		union[key] = struct{}{}
	}
	for key := range cache.StorageSet {
		union[key] = struct{}{}
	}

	results := make([]Result, 0, len(union))
	summary := Summary{TotalKeys: len(union)}
	for key := range union {
		refs, catalogPresent := cache.CatalogIndex[key]
		_, storagePresent := cache.StorageSet[key]

		if catalogPresent && !storagePresent {
			summary.MissingStorage++
		}
		if storagePresent && !catalogPresent {
			summary.OrphanStorage++
		}

		results = append(results, Result{
			Key:            key,
			ReferencedBy:   refs,
			CatalogPresent: catalogPresent,
			StoragePresent: storagePresent,
		})
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Key < results[j].Key
	})

	return results, summary, nil
}
