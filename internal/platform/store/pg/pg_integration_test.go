//go:build integration_pg

package pg

import (
	"context"
	"testing"
	"time"

	"langshift/internal/platform/testkit"

	"github.com/jackc/pgx/v5"
)

func TestOpen_Integration(t *testing.T) {
	dsn := testkit.StartPostgres(t)

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	p, err := Open(ctx, Config{URL: dsn, MaxConns: 2, AppName: "langshift-pg-it"}, nil, nil)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(p.Close)

	var app string
	if err := p.Pool.QueryRow(ctx, `SELECT current_setting('application_name')`).Scan(&app); err != nil {
		t.Fatalf("application_name: %v", err)
	}
	if app != "langshift-pg-it" {
		t.Fatalf("application_name = %q", app)
	}

	type pair struct {
		From string
		To   string
	}
	rows, err := p.Pool.Query(ctx, `SELECT * FROM (VALUES ('json', 'yaml'), ('css', 'scss')) AS v(f, t) ORDER BY f`)
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	got, err := pgx.CollectRows(rows, pgx.RowToStructByPos[pair])
	if err != nil {
		t.Fatalf("collect: %v", err)
	}
	if len(got) != 2 || got[0].From != "css" || got[1].To != "yaml" {
		t.Fatalf("rows = %+v", got)
	}
}
