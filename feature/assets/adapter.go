package assets

import (
	"context"
	"sort"
	"strings"

	"game-catalog/core/storage"
	"game-catalog/feature/catalog"

	"github.com/minio/minio-go/v7"
)

// VideogameSource yields the videogames whose asset references are checked.
type VideogameSource interface {
	GetAll(ctx context.Context) ([]catalog.VideogameEntity, error)
}

// DeveloperSource yields the developers whose logos are checked.
type DeveloperSource interface {
	GetAll(ctx context.Context) ([]catalog.DeveloperEntity, error)
}

// catalogAdapter loads the two comparison indices: asset keys referenced by
// the catalog, and asset keys present in the bucket.
type catalogAdapter struct {
	videogames VideogameSource
	developers DeveloperSource
}

func (a *catalogAdapter) Name() string {
	return "assets"
}

// LoadCatalogIndex scans the local catalog and maps every referenced asset
// key to the entries referencing it. A key referenced by several entries
// (shared developer logo, reused screenshot) carries them all, sorted.
func (a *catalogAdapter) LoadCatalogIndex(ctx context.Context) (map[string][]string, error) {
	index := make(map[string][]string)
	add := func(key, ref string) {
		if key == "" {
			return
		}
		index[key] = append(index[key], ref)
	}

	games, err := a.videogames.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, game := range games {
		add(game.LogoAssetName, game.Title)
		for _, screenshot := range game.ScreenshotIdentifiers {
			add(screenshot, game.Title)
		}
	}

	developers, err := a.developers.GetAll(ctx)
	if err != nil {
		return nil, err
	}
	for _, developer := range developers {
		add(developer.LogoAssetName, "developer:"+developer.Name)
	}

	for key := range index {
		sort.Strings(index[key])
	}
	return index, nil
}

// LoadStorageSet lists the bucket under the given prefix and returns the
// set of asset keys present, with the prefix stripped. Folder markers are
// skipped.
func (a *catalogAdapter) LoadStorageSet(ctx context.Context, client storage.Client, bucket, prefix string) (map[string]struct{}, error) {
	set := make(map[string]struct{})

	opts := minio.ListObjectsOptions{
		Prefix:    prefix,
		Recursive: true,
	}
	for object := range client.ListObjects(ctx, bucket, opts) {
		if object.Err != nil {
			return nil, object.Err
		}
		key := strings.TrimPrefix(object.Key, prefix)
		if key == "" || strings.HasSuffix(key, "/") {
			continue
		}
		set[key] = struct{}{}
	}

	return set, nil
}
