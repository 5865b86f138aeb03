// Package db persists clustering runs to SQLite.
//
// All database read/write operations for runs and their final clusters
// belong here rather than in the clustering core; the core stays free of
// SQL noise and the storage backend stays swappable for testing. Schema
// is managed through embedded migrations applied by MigrateUp.
package db
