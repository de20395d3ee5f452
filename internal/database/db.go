// Package database handles the initialization and connection to the SQLite db
// and the deck/card repositories built on top of it.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"
)

// MemoryPath opens a private in-memory database (used by tests)
const MemoryPath = ":memory:"

// Options controls how the store file is opened.
type Options struct {
	Path          string
	BusyTimeoutMS int
}

// InitDB opens the store file, applies connection pragmas and runs migrations.
// The returned handle is limited to a single connection for its whole lifetime.
func InitDB(ctx context.Context, opts Options) (*sql.DB, error) {
	if opts.Path == "" {
		return nil, fmt.Errorf("database path cannot be empty")
	}
	if opts.BusyTimeoutMS <= 0 {
		opts.BusyTimeoutMS = 5000
	}

	if opts.Path != MemoryPath {
		if dir := filepath.Dir(opts.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite", dsn(opts))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One connection: pragmas and in-memory databases are per connection
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	if err := db.PingContext(ctx); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	var fkEnabled int
	if err := db.QueryRowContext(ctx, "PRAGMA foreign_keys").Scan(&fkEnabled); err != nil || fkEnabled != 1 {
		closeDB(db)
		if err == nil {
			err = fmt.Errorf("foreign keys are disabled")
		}
		return nil, fmt.Errorf("failed to enable foreign keys: %w", err)
	}

	if err := runMigrations(ctx, db); err != nil {
		closeDB(db)
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	slog.Debug("database ready", "path", opts.Path)
	return db, nil
}

// dsn builds a modernc connection string carrying the pragmas, so they are
// applied again if the pool ever has to reconnect.
func dsn(opts Options) string {
	pragmas := []string{
		"foreign_keys(1)",
		fmt.Sprintf("busy_timeout(%d)", opts.BusyTimeoutMS),
	}
	if opts.Path != MemoryPath {
		pragmas = append(pragmas, "journal_mode(WAL)")
	}

	params := make([]string, 0, len(pragmas))
	for _, p := range pragmas {
		params = append(params, "_pragma="+p)
	}
	return opts.Path + "?" + strings.Join(params, "&")
}

func closeDB(db *sql.DB) {
	if err := db.Close(); err != nil {
		slog.Error("error closing db", "error", err)
	}
}
