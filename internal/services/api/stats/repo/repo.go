// Package repo reads conversion event aggregates from clickhouse
package repo

import (
	"context"
	"fmt"

	"langshift/internal/platform/store"
	evrepo "langshift/internal/services/events/repo"
)

// Repo is the minimal read surface for stats
type Repo interface {
	ByPair(ctx context.Context, days int, from string) ([]RowByPair, error)
	Daily(ctx context.Context, days int, kind string) ([]RowDaily, error)
}

// RowByPair represents a stats row by language pair
type RowByPair struct {
	From      string
	To        string
	Completed uint64
	Failed    uint64
	AvgMs     float64
}

// RowDaily represents a stats row by day and event kind
type RowDaily struct {
	Day   string
	Kind  string
	Count uint64
}

// CH reads the events table written by the events clickhouse sink
type CH struct {
	ch    store.Clickhouse
	table string
}

// NewCH binds the repo to a clickhouse handle; an empty table means the events default
func NewCH(ch store.Clickhouse, table string) *CH {
	if table == "" {
		table = evrepo.DefaultTable
	}
	return &CH{ch: ch, table: table}
}

// ByPair aggregates completed and failed conversions per pair
func (r *CH) ByPair(ctx context.Context, days int, from string) ([]RowByPair, error) {
	sql := fmt.Sprintf(`
SELECT from_lang, to_lang,
	countIf(kind = 'conversion_completed') AS completed,
	countIf(kind = 'conversion_failed') AS failed,
	ifNotFinite(avgIf(duration_ms, kind = 'conversion_completed'), 0) AS avg_ms
FROM %s
WHERE at >= now() - toIntervalDay(?)
AND kind IN ('conversion_completed', 'conversion_failed')
AND (? = '' OR from_lang = ?)
GROUP BY from_lang, to_lang
ORDER BY completed DESC, from_lang ASC, to_lang ASC
LIMIT 200`, r.table)

	rows, err := r.ch.Query(ctx, sql, days, from, from)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowByPair
	for rows.Next() {
		var rr RowByPair
		if err := rows.Scan(&rr.From, &rr.To, &rr.Completed, &rr.Failed, &rr.AvgMs); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}

// Daily counts events per day and kind
func (r *CH) Daily(ctx context.Context, days int, kind string) ([]RowDaily, error) {
	sql := fmt.Sprintf(`
SELECT toString(toDate(at)) AS day, kind, count() AS n
FROM %s
WHERE at >= now() - toIntervalDay(?)
AND (? = '' OR kind = ?)
GROUP BY day, kind
ORDER BY day ASC, kind ASC`, r.table)

	rows, err := r.ch.Query(ctx, sql, days, kind, kind)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []RowDaily
	for rows.Next() {
		var rr RowDaily
		if err := rows.Scan(&rr.Day, &rr.Kind, &rr.Count); err != nil {
			return nil, err
		}
		out = append(out, rr)
	}
	return out, rows.Err()
}
