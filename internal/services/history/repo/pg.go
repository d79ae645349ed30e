package repo

import (
	"context"
	"time"

	"langshift/internal/modkit/repokit"
	perr "langshift/internal/platform/errors"
	"langshift/internal/platform/store"
	"langshift/internal/services/history/domain"

	"github.com/google/uuid"
)

// Schema creates the postgres history table; applied by EnsureSchema
const Schema = `
CREATE TABLE IF NOT EXISTS conversion_history (
	id          uuid        PRIMARY KEY,
	session     text        NOT NULL,
	label       text        NOT NULL,
	source_text text        NOT NULL,
	result_text text        NOT NULL,
	created_at  timestamptz NOT NULL
);
CREATE INDEX IF NOT EXISTS conversion_history_session_idx
	ON conversion_history (session, created_at DESC, id DESC);
`

type (
	pg     struct{ q repokit.Queryer }
	binder struct{}
)

// NewPG constructs a new repo binder for Postgres
func NewPG() repokit.Binder[Storage] { return binder{} }

// Bind implements repokit.Binder
func (binder) Bind(q repokit.Queryer) Storage { return &pg{q: q} }

// EnsureSchema creates the history table when missing
func EnsureSchema(ctx context.Context, q repokit.Queryer) error {
	_, err := q.Exec(ctx, Schema)
	return err
}

// Push implements Storage; callers run it inside a transaction
func (s *pg) Push(ctx context.Context, session string, e domain.Entry, capacity int) error {
	if _, err := s.q.Exec(ctx, `
		INSERT INTO conversion_history (id, session, label, source_text, result_text, created_at)
		VALUES ($1::uuid, $2, $3, $4, $5, $6)`,
		e.ID.String(), session, e.Label, e.Source, e.Result, e.CreatedAt,
	); err != nil {
		return err
	}
	_, err := s.q.Exec(ctx, `
		DELETE FROM conversion_history
		WHERE session = $1 AND id IN (
			SELECT id FROM conversion_history
			WHERE session = $1
			ORDER BY created_at DESC, id DESC
			OFFSET $2
		)`, session, capacity)
	return err
}

// List implements Storage
func (s *pg) List(ctx context.Context, session string, limit int) ([]domain.Entry, error) {
	return store.Many(ctx, s.q, scanEntry, `
		SELECT id::text, label, source_text, result_text, created_at
		FROM conversion_history
		WHERE session = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`, session, limit)
}

func scanEntry(r store.Row) (domain.Entry, error) {
	var (
		id string
		e  domain.Entry
		at time.Time
	)
	if err := r.Scan(&id, &e.Label, &e.Source, &e.Result, &at); err != nil {
		return e, err
	}
	var err error
	if e.ID, err = uuid.Parse(id); err != nil {
		return e, err
	}
	e.CreatedAt = at.UTC()
	return e, nil
}

// Clear implements Storage
func (s *pg) Clear(ctx context.Context, session string) (int, error) {
	ct, err := s.q.Exec(ctx, `DELETE FROM conversion_history WHERE session = $1`, session)
	if err != nil {
		return 0, err
	}
	return int(ct.RowsAffected()), nil
}

// txStore runs every Storage call in its own transaction tagged with the session
type txStore struct {
	db     repokit.TxRunner
	binder repokit.Binder[Storage]
}

// NewPGStore returns a Storage backed by db, one transaction per call
func NewPGStore(db repokit.TxRunner) Storage {
	if db == nil {
		panic("history: nil postgres runner")
	}
	return &txStore{db: db, binder: NewPG()}
}

func (t *txStore) in(ctx context.Context, session string, fn func(ctx context.Context, s Storage) error) error {
	err := store.RunInSession(ctx, t.db, session, func(ctx context.Context, q store.RowQuerier) error {
		return fn(ctx, repokit.MustBind(t.binder, q))
	})
	return perr.FromPG(err, "history")
}

func (t *txStore) Push(ctx context.Context, session string, e domain.Entry, capacity int) error {
	return t.in(ctx, session, func(ctx context.Context, s Storage) error {
		return s.Push(ctx, session, e, capacity)
	})
}

func (t *txStore) List(ctx context.Context, session string, limit int) (out []domain.Entry, err error) {
	err = t.in(ctx, session, func(ctx context.Context, s Storage) error {
		out, err = s.List(ctx, session, limit)
		return err
	})
	return out, err
}

func (t *txStore) Clear(ctx context.Context, session string) (n int, err error) {
	err = t.in(ctx, session, func(ctx context.Context, s Storage) error {
		n, err = s.Clear(ctx, session)
		return err
	})
	return n, err
}
