// Package repo writes events to clickhouse
package repo

import (
	"context"
	"errors"
	"fmt"

	"langshift/internal/platform/store"
	"langshift/internal/services/events/domain"
)

// DefaultTable is the clickhouse table events land in
const DefaultTable = "conversion_events"

// Schema is the clickhouse DDL for the events table, %s is the table name
const Schema = `CREATE TABLE IF NOT EXISTS %s (
	id          String,
	kind        LowCardinality(String),
	at          DateTime64(3, 'UTC'),
	session     String,
	from_lang   LowCardinality(String),
	to_lang     LowCardinality(String),
	input_size  UInt32,
	duration_ms Int64,
	success     Bool,
	message     String
) ENGINE = MergeTree
ORDER BY (kind, at)`

// CH writes event batches through the store clickhouse seam
type CH struct {
	ch    store.Clickhouse
	table string
}

// NewCH constructs a clickhouse event writer
func NewCH(ch store.Clickhouse, table string) *CH {
	if table == "" {
		table = DefaultTable
	}
	return &CH{ch: ch, table: table}
}

// Table returns the destination table
func (r *CH) Table() string { return r.table }

// EnsureSchema creates the events table when missing
func (r *CH) EnsureSchema(ctx context.Context) error {
	if r == nil || r.ch == nil {
		return errors.New("events: clickhouse not configured")
	}
	return r.ch.Exec(ctx, fmt.Sprintf(Schema, r.table))
}

// WriteBatch inserts xs in one batch
func (r *CH) WriteBatch(ctx context.Context, xs []domain.Event) error {
	if r == nil || r.ch == nil {
		return errors.New("events: clickhouse not configured")
	}
	if len(xs) == 0 {
		return nil
	}
	return r.ch.Insert(ctx, r.table, Rows(xs))
}

// Rows maps events to clickhouse rows in Schema column order
func Rows(xs []domain.Event) [][]any {
	out := make([][]any, len(xs))
	for i, e := range xs {
		size := e.InputSize
		if size < 0 {
			size = 0
		}
		out[i] = []any{
			e.ID.String(),
			string(e.Kind),
			e.At,
			e.Session,
			e.From,
			e.To,
			uint32(size),
			e.DurationMs,
			e.Success,
			e.Message,
		}
	}
	return out
}
