package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"reddypet/internal/pet"
)

const (
	upsertSnapshotSQL = `
		INSERT INTO snapshots (key, body, updated_at)
		VALUES (?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			body=excluded.body,
			updated_at=excluded.updated_at
	`

	selectSnapshotSQL = `SELECT body FROM snapshots WHERE key=?`
)

// SQLiteStore keeps the snapshot as one keyed row.
type SQLiteStore struct {
	db  *sql.DB
	key string
}

// NewSQLiteStore returns a store for the row named key.
func NewSQLiteStore(db *sql.DB, key string) *SQLiteStore {
	return &SQLiteStore{db: db, key: key}
}

// Load fetches the snapshot row.
func (s *SQLiteStore) Load(ctx context.Context) ([]byte, error) {
	var body string
	err := s.db.QueryRowContext(ctx, selectSnapshotSQL, s.key).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, pet.ErrNoSnapshot
		}
		return nil, fmt.Errorf("select snapshot %q: %w", s.key, err)
	}
	return []byte(body), nil
}

// Save inserts or replaces the snapshot row.
func (s *SQLiteStore) Save(ctx context.Context, data []byte) error {
	_, err := s.db.ExecContext(ctx, upsertSnapshotSQL, s.key, string(data), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("upsert snapshot %q: %w", s.key, err)
	}
	return nil
}
