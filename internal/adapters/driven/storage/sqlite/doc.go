// Package sqlite provides a SQLite-backed implementation of the driven
// storage ports.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO. A single database connection serves several stores:
//
//   - StopwordStore: the persistent stopword set
//   - BufferStore: the active text buffer and its revision history
//   - MatchStateStore: the last search and its cursor
//
// # Schema
//
// The schema is managed through versioned migrations embedded from the
// migrations/ directory. Applied versions are recorded in schema_migrations.
//
// # Data Location
//
// By default the database is stored at ~/.textdesk/textdesk.db.
//
// # Thread Safety
//
// All operations are safe for concurrent use. The store relies on SQLite
// locking in WAL mode.
package sqlite
