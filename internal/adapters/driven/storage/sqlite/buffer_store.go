package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/custodia-labs/textdesk/internal/core/domain"
	"github.com/custodia-labs/textdesk/internal/core/ports/driven"
)

// ==================== Buffer Store ====================

// bufferStore implements driven.BufferStore.
type bufferStore struct {
	store *Store
}

var _ driven.BufferStore = (*bufferStore)(nil)

// Save creates or updates the active buffer. Saving a buffer with a new ID
// deletes the previous buffers, and their revisions with them.
func (s *bufferStore) Save(ctx context.Context, buf *domain.TextBuffer) error {
	if buf == nil || buf.ID == "" {
		return domain.ErrInvalidInput
	}

	tx, err := s.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, "DELETE FROM buffers WHERE id <> ?", buf.ID); err != nil {
		return fmt.Errorf("dropping previous buffers: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO buffers (id, source, original, current, active, loaded_at, updated_at)
		VALUES (?, ?, ?, ?, 1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source = excluded.source,
			current = excluded.current,
			active = 1,
			updated_at = excluded.updated_at
	`, buf.ID, buf.Source, buf.Original, buf.Current, buf.LoadedAt.UTC(), buf.UpdatedAt.UTC())
	if err != nil {
		return fmt.Errorf("saving buffer: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing buffer: %w", err)
	}
	return nil
}

// Active returns the active buffer.
func (s *bufferStore) Active(ctx context.Context) (*domain.TextBuffer, error) {
	row := s.store.db.QueryRowContext(ctx, `
		SELECT id, source, original, current, loaded_at, updated_at
		FROM buffers WHERE active = 1
		ORDER BY updated_at DESC LIMIT 1
	`)

	var buf domain.TextBuffer
	if err := row.Scan(&buf.ID, &buf.Source, &buf.Original, &buf.Current, &buf.LoadedAt, &buf.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNoBuffer
		}
		return nil, fmt.Errorf("scanning buffer: %w", err)
	}

	return &buf, nil
}

// AddRevision appends a revision. Ordering uses a per-buffer sequence
// so revisions created within the same clock tick stay ordered.
func (s *bufferStore) AddRevision(ctx context.Context, rev *domain.Revision) error {
	if rev == nil || rev.BufferID == "" {
		return domain.ErrInvalidInput
	}

	createdAt := rev.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	_, err := s.store.db.ExecContext(ctx, `
		INSERT INTO revisions (id, buffer_id, seq, reason, text, created_at)
		VALUES (?, ?, (SELECT COALESCE(MAX(seq), 0) + 1 FROM revisions WHERE buffer_id = ?), ?, ?, ?)
	`, rev.ID, rev.BufferID, rev.BufferID, rev.Reason, rev.Text, createdAt.UTC())
	if err != nil {
		return fmt.Errorf("adding revision: %w", err)
	}
	return nil
}

// Revisions returns up to limit revisions, newest first.
func (s *bufferStore) Revisions(ctx context.Context, bufferID string, limit int) ([]domain.Revision, error) {
	if limit <= 0 {
		limit = -1
	}

	rows, err := s.store.db.QueryContext(ctx, `
		SELECT id, buffer_id, reason, text, created_at
		FROM revisions WHERE buffer_id = ?
		ORDER BY seq DESC LIMIT ?
	`, bufferID, limit)
	if err != nil {
		return nil, fmt.Errorf("querying revisions: %w", err)
	}
	defer rows.Close()

	revisions := []domain.Revision{}
	for rows.Next() {
		var r domain.Revision
		if err := rows.Scan(&r.ID, &r.BufferID, &r.Reason, &r.Text, &r.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning revision: %w", err)
		}
		revisions = append(revisions, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating revisions: %w", err)
	}

	return revisions, nil
}

// ==================== Match State Store ====================

// matchStateStore implements driven.MatchStateStore.
// The match set is stored as JSON in a single row.
type matchStateStore struct {
	store *Store
}

var _ driven.MatchStateStore = (*matchStateStore)(nil)

// SaveMatches stores the match set and cursor, replacing any previous state.
func (s *matchStateStore) SaveMatches(ctx context.Context, set *domain.MatchSet, cursor domain.MatchCursor) error {
	if set == nil {
		return domain.ErrInvalidInput
	}

	payload, err := json.Marshal(set)
	if err != nil {
		return fmt.Errorf("marshalling matches: %w", err)
	}

	_, err = s.store.db.ExecContext(ctx, `
		INSERT INTO match_state (id, source_text, payload, cursor, saved_at)
		VALUES (1, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			source_text = excluded.source_text,
			payload = excluded.payload,
			cursor = excluded.cursor,
			saved_at = excluded.saved_at
	`, set.SourceText, string(payload), cursor.Current, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving matches: %w", err)
	}
	return nil
}

// LoadMatches returns the stored match set and cursor.
func (s *matchStateStore) LoadMatches(ctx context.Context) (*domain.MatchSet, domain.MatchCursor, error) {
	cursor := domain.NewMatchCursor()

	var sourceText, payload string
	row := s.store.db.QueryRowContext(ctx, "SELECT source_text, payload, cursor FROM match_state WHERE id = 1")
	if err := row.Scan(&sourceText, &payload, &cursor.Current); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.NewMatchCursor(), domain.ErrNotFound
		}
		return nil, cursor, fmt.Errorf("scanning matches: %w", err)
	}

	var set domain.MatchSet
	if err := json.Unmarshal([]byte(payload), &set); err != nil {
		return nil, domain.NewMatchCursor(), fmt.Errorf("unmarshalling matches: %w", err)
	}
	set.SourceText = sourceText

	return &set, cursor, nil
}

// ClearMatches discards the stored match set.
func (s *matchStateStore) ClearMatches(ctx context.Context) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM match_state"); err != nil {
		return fmt.Errorf("clearing matches: %w", err)
	}
	return nil
}
