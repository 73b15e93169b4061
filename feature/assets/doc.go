// Package assets verifies that the asset objects referenced by the catalog
// (videogame logos, screenshots, developer logos) actually exist in object
// storage, and reports storage objects nothing in the catalog references.
//
// The comparison itself runs through core/reconcile; this package supplies
// the catalog-aware adapter, the HTTP surface, and the CLI entry point.
package assets
