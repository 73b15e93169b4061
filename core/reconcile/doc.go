// Package reconcile provides a generic comparison engine between the
// catalog's asset references and the contents of object storage.
//
// Features supply an Adapter that knows how to load the two indices; the
// engine computes the union of keys, flags assets referenced by the catalog
// but missing from storage, and flags orphan storage objects nothing
// references.
//
// # Caching
//
// Index loading can be expensive (a full table scan plus a bucket listing),
// so built indices are cached per spec with a TTL. Cache rebuilds go through
// singleflight to prevent stampedes when several requests arrive after
// expiry.
package reconcile
