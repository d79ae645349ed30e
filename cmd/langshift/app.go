package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"langshift/internal/core/shift"
	convertmod "langshift/internal/services/api/convert/module"
	csvc "langshift/internal/services/api/convert/service"
	histrepo "langshift/internal/services/history/repo"
	histsvc "langshift/internal/services/history/service"
)

var (
	titleColor = color.New(color.FgCyan, color.Bold)
	tagColor   = color.New(color.FgGreen, color.Bold)
	dimColor   = color.New(color.Faint)
	warnColor  = color.New(color.FgYellow)
)

// app holds what one command invocation needs
type app struct {
	core    *shift.Shift
	session string
	json    bool
	out     io.Writer

	dbPath string
	db     *histrepo.SQLite
	hist   *histsvc.Service
}

func newApp(cmd *cobra.Command) (*app, error) {
	flags := cmd.Flags()
	catalogPath, _ := flags.GetString("catalog")
	indent, _ := flags.GetInt("indent")
	session, _ := flags.GetString("session")
	asJSON, _ := flags.GetBool("json")
	dbPath, _ := flags.GetString("history-db")

	core, err := convertmod.LoadCore(convertmod.Options{CatalogPath: catalogPath, IndentUnit: indent})
	if err != nil {
		return nil, err
	}
	return &app{
		core:    core,
		session: session,
		json:    asJSON,
		out:     cmd.OutOrStdout(),
		dbPath:  dbPath,
	}, nil
}

// history opens the sqlite store on first use
func (a *app) history(ctx context.Context) (*histsvc.Service, error) {
	if a.hist != nil {
		return a.hist, nil
	}
	if dir := filepath.Dir(a.dbPath); dir != "" {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("history dir: %w", err)
		}
	}
	db, err := histrepo.OpenSQLite(ctx, a.dbPath)
	if err != nil {
		return nil, err
	}
	a.db = db
	a.hist = histsvc.New(db, histsvc.Config{})
	return a.hist, nil
}

// service builds the conversion service; history is recorded when withHistory is set
func (a *app) service(ctx context.Context, withHistory bool) (*csvc.Svc, error) {
	opts := csvc.Options{}
	if withHistory {
		h, err := a.history(ctx)
		if err != nil {
			return nil, err
		}
		opts.History = h
	}
	return csvc.New(a.core, opts), nil
}

func (a *app) close() {
	if a.db != nil {
		_ = a.db.Close()
	}
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}

func defaultHistoryPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "langshift-history.db"
	}
	return filepath.Join(dir, "langshift", "history.db")
}
