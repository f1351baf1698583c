package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/custodia-labs/textdesk/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

// DBFile is the database file name inside the data directory.
const DBFile = "textdesk.db"

// Store is a SQLite-based storage that provides access to every
// persistent store interface through wrapper types.
type Store struct {
	db   *sql.DB
	path string
}

// NewStore creates a new SQLite store in the given data directory.
// If dataDir is empty, defaults to ~/.textdesk.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".textdesk")
	}

	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, DBFile)

	// Pragmas in the DSN apply to every pooled connection.
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// StopwordStore returns a StopwordStore backed by this store.
func (s *Store) StopwordStore() driven.StopwordStore {
	return &stopwordStore{store: s}
}

// BufferStore returns a BufferStore backed by this store.
func (s *Store) BufferStore() driven.BufferStore {
	return &bufferStore{store: s}
}

// MatchStateStore returns a MatchStateStore backed by this store.
func (s *Store) MatchStateStore() driven.MatchStateStore {
	return &matchStateStore{store: s}
}

// migrate runs all pending migrations and records each applied version.
func (s *Store) migrate(fsys embed.FS) error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// "001_initial.up.sql" -> 1
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue
		}

		if version <= currentVersion {
			continue
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec("INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// schemaVersion returns the highest applied migration version.
func (s *Store) schemaVersion(ctx context.Context) (int, error) {
	var version int
	err := s.db.QueryRowContext(ctx, "SELECT COALESCE(MAX(version), 0) FROM schema_migrations").Scan(&version)
	if err != nil {
		return 0, fmt.Errorf("getting schema version: %w", err)
	}
	return version, nil
}

// ==================== Stopword Store ====================

// stopwordStore implements driven.StopwordStore.
type stopwordStore struct {
	store *Store
}

var _ driven.StopwordStore = (*stopwordStore)(nil)

// Add inserts words in one transaction. Existing words are ignored.
func (s *stopwordStore) Add(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	stmt, err := tx.PrepareContext(ctx, "INSERT OR IGNORE INTO stopwords (word, added_at) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	now := time.Now().UTC()
	for _, w := range words {
		if w == "" {
			continue
		}
		if _, err := stmt.ExecContext(ctx, w, now); err != nil {
			return fmt.Errorf("adding stopword %q: %w", w, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing stopwords: %w", err)
	}
	return nil
}

// Remove deletes words.
func (s *stopwordStore) Remove(ctx context.Context, words ...string) error {
	if len(words) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(words)), ",")
	args := make([]any, len(words))
	for i, w := range words {
		args[i] = w
	}

	//nolint:gosec // placeholders only
	_, err := s.store.db.ExecContext(ctx, "DELETE FROM stopwords WHERE word IN ("+placeholders+")", args...)
	if err != nil {
		return fmt.Errorf("removing stopwords: %w", err)
	}
	return nil
}

// Clear deletes every word.
func (s *stopwordStore) Clear(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM stopwords"); err != nil {
		return fmt.Errorf("clearing stopwords: %w", err)
	}
	return nil
}

// List returns all words sorted ascending.
func (s *stopwordStore) List(ctx context.Context) ([]string, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT word FROM stopwords ORDER BY word")
	if err != nil {
		return nil, fmt.Errorf("querying stopwords: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var w string
		if err := rows.Scan(&w); err != nil {
			return nil, fmt.Errorf("scanning stopword: %w", err)
		}
		words = append(words, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating stopwords: %w", err)
	}

	return words, nil
}

// Contains reports whether word is in the set.
func (s *stopwordStore) Contains(ctx context.Context, word string) (bool, error) {
	var found int
	err := s.store.db.QueryRowContext(ctx, "SELECT 1 FROM stopwords WHERE word = ?", word).Scan(&found)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("checking stopword: %w", err)
	}
	return true, nil
}

// Count returns the number of words.
func (s *stopwordStore) Count(ctx context.Context) (int, error) {
	var count int
	if err := s.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM stopwords").Scan(&count); err != nil {
		return 0, fmt.Errorf("counting stopwords: %w", err)
	}
	return count, nil
}
