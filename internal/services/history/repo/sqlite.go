package repo

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"langshift/internal/services/history/domain"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3" // registers the sqlite3 driver
)

const sqliteSchema = `
CREATE TABLE IF NOT EXISTS conversion_history (
	id          TEXT    PRIMARY KEY,
	session     TEXT    NOT NULL,
	label       TEXT    NOT NULL,
	source_text TEXT    NOT NULL,
	result_text TEXT    NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS conversion_history_session_idx
	ON conversion_history (session, created_at DESC);
`

// SQLite stores history in a local database file, used by the CLI
type SQLite struct {
	db *sql.DB
}

var _ Storage = (*SQLite)(nil)

// OpenSQLite opens (or creates) the database at path and applies the schema
// path ":memory:" gives a private in-memory database
func OpenSQLite(ctx context.Context, path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("history: open sqlite %s: %w", path, err)
	}
	// one writer keeps ":memory:" on a single connection
	db.SetMaxOpenConns(1)
	if _, err := db.ExecContext(ctx, sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("history: sqlite schema: %w", err)
	}
	return &SQLite{db: db}, nil
}

// Close closes the database
func (s *SQLite) Close() error { return s.db.Close() }

// Push implements Storage
func (s *SQLite) Push(ctx context.Context, session string, e domain.Entry, capacity int) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.ExecContext(ctx, `
		INSERT INTO conversion_history (id, session, label, source_text, result_text, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID.String(), session, e.Label, e.Source, e.Result, e.CreatedAt.UnixNano(),
	); err != nil {
		return err
	}
	if _, err = tx.ExecContext(ctx, `
		DELETE FROM conversion_history
		WHERE session = ? AND id IN (
			SELECT id FROM conversion_history
			WHERE session = ?
			ORDER BY created_at DESC, rowid DESC
			LIMIT -1 OFFSET ?
		)`, session, session, capacity); err != nil {
		return err
	}
	return tx.Commit()
}

// List implements Storage
func (s *SQLite) List(ctx context.Context, session string, limit int) ([]domain.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, label, source_text, result_text, created_at
		FROM conversion_history
		WHERE session = ?
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`, session, limit)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	out := make([]domain.Entry, 0, limit)
	for rows.Next() {
		var (
			id string
			ns int64
			e  domain.Entry
		)
		if err := rows.Scan(&id, &e.Label, &e.Source, &e.Result, &ns); err != nil {
			return nil, err
		}
		if e.ID, err = uuid.Parse(id); err != nil {
			return nil, err
		}
		e.CreatedAt = time.Unix(0, ns).UTC()
		out = append(out, e)
	}
	return out, rows.Err()
}

// Clear implements Storage
func (s *SQLite) Clear(ctx context.Context, session string) (int, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM conversion_history WHERE session = ?`, session)
	if err != nil {
		return 0, err
	}
	n, err := res.RowsAffected()
	return int(n), err
}
