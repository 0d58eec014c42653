package store

import (
	"context"
	"database/sql"
	"fmt"

	"autokeys/internal/log"
)

// Migration represents a database migration
type Migration struct {
	ID          int
	Description string
	SQL         string
}

// migrations contains all database migrations in order
var migrations = []Migration{
	{
		ID:          1,
		Description: "Create runs and requests tables",
		SQL: `
CREATE TABLE IF NOT EXISTS runs (
	id         TEXT PRIMARY KEY,
	layout     TEXT NOT NULL,
	baseline   TEXT NOT NULL,
	created_at INTEGER NOT NULL,
	assigned   INTEGER NOT NULL DEFAULT 0,
	unassigned INTEGER NOT NULL DEFAULT 0
);
CREATE TABLE IF NOT EXISTS requests (
	run_id    TEXT NOT NULL REFERENCES runs(id) ON DELETE CASCADE,
	seq       INTEGER NOT NULL,
	label     TEXT NOT NULL,
	requested TEXT NOT NULL,
	keystroke TEXT NOT NULL DEFAULT '',
	depth     INTEGER NOT NULL,
	derived   INTEGER NOT NULL DEFAULT 0,
	invokable INTEGER NOT NULL DEFAULT 0,
	PRIMARY KEY (run_id, seq)
);`,
	},
	{
		ID:          2,
		Description: "Index runs by creation time",
		SQL:         `CREATE INDEX IF NOT EXISTS idx_runs_created_at ON runs(created_at);`,
	},
}

func (s *Store) runMigrations(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, `
CREATE TABLE IF NOT EXISTS schema_version (
	version INTEGER PRIMARY KEY,
	applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
);`); err != nil {
		return fmt.Errorf("failed to create schema_version table: %w", err)
	}

	var current int
	row := s.db.QueryRowContext(ctx, `SELECT COALESCE(MAX(version), 0) FROM schema_version`)
	if err := row.Scan(&current); err != nil {
		return fmt.Errorf("failed to get current schema version: %w", err)
	}

	for _, m := range migrations {
		if m.ID <= current {
			continue
		}
		log.Debug("applying migration", "id", m.ID, "description", m.Description)
		if err := s.applyMigration(ctx, m); err != nil {
			return fmt.Errorf("failed to apply migration %d: %w", m.ID, err)
		}
	}
	return nil
}

func (s *Store) applyMigration(ctx context.Context, m Migration) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, m.SQL); err != nil {
		return err
	}
	if err := s.exec(ctx, tx, s.builder.Insert("schema_version").Columns("version").Values(m.ID)); err != nil {
		return err
	}
	return tx.Commit()
}

type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}
