// Package repository persists extraction results in a local SQLite file.
package repository

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "modernc.org/sqlite"
)

type Config struct {
	// Path is the SQLite file path; ":memory:" for ephemeral use.
	Path        string
	DialTimeout time.Duration
	BusyTimeout time.Duration
}

const schema = `
CREATE TABLE IF NOT EXISTS invoices (
	id              TEXT PRIMARY KEY,
	invoice_number  TEXT NOT NULL,
	invoice_date    TEXT NOT NULL,
	line_items      TEXT NOT NULL,
	issuer_name     TEXT NOT NULL,
	total_after_tax TEXT NOT NULL,
	source          TEXT NOT NULL,
	raw_text        TEXT NOT NULL,
	source_file     TEXT NOT NULL DEFAULT '',
	created_at      TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_invoices_number ON invoices (invoice_number);

CREATE TABLE IF NOT EXISTS identities (
	id                  TEXT PRIMARY KEY,
	id_number           TEXT NOT NULL,
	full_name           TEXT NOT NULL,
	date_of_birth       TEXT NOT NULL,
	sex                 TEXT NOT NULL,
	nationality         TEXT NOT NULL,
	place_of_origin     TEXT NOT NULL,
	permanent_residence TEXT NOT NULL,
	issue_date          TEXT NOT NULL,
	issuing_authority   TEXT NOT NULL,
	source              TEXT NOT NULL,
	raw_text            TEXT NOT NULL,
	source_file         TEXT NOT NULL DEFAULT '',
	created_at          TIMESTAMP NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_identities_number ON identities (id_number);
`

// Open opens (and creates, if needed) the SQLite database and applies the
// schema. The caller owns the returned handle.
func Open(ctx context.Context, cfg Config, logger *slog.Logger) (*sql.DB, error) {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Path == "" {
		cfg.Path = "bizdoc.db"
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 5 * time.Second
	}
	if cfg.BusyTimeout <= 0 {
		cfg.BusyTimeout = 5 * time.Second
	}

	logger.Info("connecting to database", "path", cfg.Path)
	dsn := fmt.Sprintf("%s?_pragma=busy_timeout(%d)", cfg.Path, cfg.BusyTimeout.Milliseconds())
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		return nil, err
	}
	// modernc sqlite is a single-writer engine
	db.SetMaxOpenConns(1)

	ctx, cancel := context.WithTimeout(ctx, cfg.DialTimeout)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		logger.Error("failed to ping database", "error", err)
		_ = db.Close()
		return nil, err
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		logger.Error("failed to apply schema", "error", err)
		_ = db.Close()
		return nil, err
	}
	logger.Info("database ready", "path", cfg.Path)
	return db, nil
}

// Close closes the database handle gracefully.
func Close(db *sql.DB, logger *slog.Logger) {
	if logger == nil {
		logger = slog.Default()
	}
	if db == nil {
		return
	}
	if err := db.Close(); err != nil {
		logger.Error("failed to close database", "error", err)
		return
	}
	logger.Info("database closed")
}
