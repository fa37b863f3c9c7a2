// Package store provides the catalog storage layer for repocat.
//
// The package defines the [Store] interface which abstracts all catalog
// operations, allowing different storage backends to be used interchangeably.
// Supported backends are SQLite (default) and BoltDB.
//
// # Store Interface
//
// The [Store] interface defines methods for:
//   - Repository upserts keyed by path (Upsert)
//   - Catalog queries (ListAll, Search, GetByPath, FindByName)
//   - Configuration management (GetConfig, SaveConfig)
//
// No method deletes repository records: the catalog is an append/overwrite
// index and stale entries persist until a scan overwrites their path.
//
// # Opening a Store
//
// Use [Open] with [Options] to select the backend at runtime:
//
//	st, err := store.Open(store.Options{Backend: store.BackendSQLite, Path: dbPath})
//
// Rows come back ordered by modification time, newest first, with insertion
// order breaking ties; both backends honor the same contract.
package store
