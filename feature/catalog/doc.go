// Package catalog implements the videogame catalog feature.
//
// It presents a single consistent view of "all catalog items" while
// arbitrating between a local durable store (GORM over MySQL/SQLite) and an
// unreliable remote JSON feed, under a pluggable fetch strategy.
//
// # Pipeline
//
// caller -> Repository -> Coordinator -> {FeedClient -> mapper ->
// VideogameStore/DeveloperStore (persist)} and/or {stores -> mapper} ->
// caller.
//
// # Components
//
//   - Mapper functions: pure conversions between wire records (untyped
//     key/value maps decoded from JSON), domain entities, and stored records.
//   - VideogameStore / DeveloperStore: local store adapters enforcing a
//     single-writer, many-reader session discipline over the database.
//   - FeedClient: remote source adapter translating transport and decoding
//     failures into the shared error taxonomy.
//   - Coordinator: selects and orchestrates one of four fetch policies per
//     call (local-only, remote-only, local-then-remote, remote-else-local).
//   - Repository: the public facade; owns the serialized work queue that
//     guarantees one reconciliation in flight at a time.
//   - Handler: exposes the repository over HTTP.
//
// Identity is preserved across representations through business keys: a
// videogame is keyed by its title, a developer by its name. No surrogate
// keys exist in the schema.
package catalog
