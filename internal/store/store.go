package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"autokeys/internal/log"
)

// ErrRunNotFound is returned when no recorded run matches an ID.
var ErrRunNotFound = errors.New("run not found")

// Run summarizes one recorded resolution.
type Run struct {
	ID         string
	Layout     string
	Baseline   string
	CreatedAt  time.Time
	Assigned   int
	Unassigned int
}

// Request is one shortcut request of a run. Keystroke is empty when the
// request received no shortcut.
type Request struct {
	Label     string
	Requested string
	Keystroke string
	Depth     int
	Derived   bool
	Invokable bool
}

// Store keeps the history of resolution runs in SQLite.
type Store struct {
	db      *sql.DB
	builder squirrel.StatementBuilderType
	now     func() time.Time
}

// Open opens or creates the history database at path and applies pending
// migrations.
func Open(ctx context.Context, path string) (*Store, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// one connection keeps :memory: databases alive across calls
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	s := &Store{
		db:      db,
		builder: squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question),
		now:     time.Now,
	}
	if err := s.runMigrations(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Debug("history store opened", "path", path)
	return s, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores a run with its requests and returns the new run ID. The
// assigned and unassigned counts are derived from requests.
func (s *Store) Record(ctx context.Context, layout, baseline string, requests []Request) (Run, error) {
	run := Run{
		ID:        uuid.NewString(),
		Layout:    layout,
		Baseline:  baseline,
		CreatedAt: s.now().UTC().Truncate(time.Millisecond),
	}
	for _, r := range requests {
		if r.Keystroke == "" {
			run.Unassigned++
		} else {
			run.Assigned++
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return Run{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	insertRun := s.builder.Insert("runs").
		Columns("id", "layout", "baseline", "created_at", "assigned", "unassigned").
		Values(run.ID, run.Layout, run.Baseline, run.CreatedAt.UnixMilli(), run.Assigned, run.Unassigned)
	if err := s.exec(ctx, tx, insertRun); err != nil {
		return Run{}, fmt.Errorf("failed to insert run: %w", err)
	}

	if len(requests) > 0 {
		insertRequests := s.builder.Insert("requests").
			Columns("run_id", "seq", "label", "requested", "keystroke", "depth", "derived", "invokable")
		for i, r := range requests {
			insertRequests = insertRequests.Values(run.ID, i, r.Label, r.Requested, r.Keystroke, r.Depth, r.Derived, r.Invokable)
		}
		if err := s.exec(ctx, tx, insertRequests); err != nil {
			return Run{}, fmt.Errorf("failed to insert requests: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Run{}, fmt.Errorf("failed to commit run: %w", err)
	}
	log.Info("run recorded", "id", run.ID, "layout", layout, "assigned", run.Assigned, "unassigned", run.Unassigned)
	return run, nil
}

// Runs lists recorded runs, newest first. A limit of zero or less lists
// them all.
func (s *Store) Runs(ctx context.Context, limit int) ([]Run, error) {
	q := s.builder.Select("id", "layout", "baseline", "created_at", "assigned", "unassigned").
		From("runs").
		OrderBy("created_at DESC", "rowid DESC")
	if limit > 0 {
		q = q.Limit(uint64(limit))
	}

	query, args, err := q.ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// Run loads a run and its requests. id may be a unique prefix of the run
// ID.
func (s *Store) Run(ctx context.Context, id string) (Run, []Request, error) {
	if !isIDPrefix(id) {
		return Run{}, nil, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}
	query, args, err := s.builder.Select("id", "layout", "baseline", "created_at", "assigned", "unassigned").
		From("runs").
		Where(squirrel.Like{"id": id + "%"}).
		Limit(2).
		ToSql()
	if err != nil {
		return Run{}, nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return Run{}, nil, fmt.Errorf("failed to query run: %w", err)
	}
	var matches []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			rows.Close()
			return Run{}, nil, err
		}
		matches = append(matches, run)
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return Run{}, nil, err
	}

	switch {
	case len(matches) == 0:
		return Run{}, nil, fmt.Errorf("%w: %q", ErrRunNotFound, id)
	case len(matches) > 1:
		return Run{}, nil, fmt.Errorf("run ID prefix %q is ambiguous", id)
	}
	run := matches[0]

	requests, err := s.requests(ctx, run.ID)
	if err != nil {
		return Run{}, nil, err
	}
	return run, requests, nil
}

// isIDPrefix reports whether id can start a run ID. Run IDs are UUIDs, so
// anything else, including LIKE wildcards, matches nothing.
func isIDPrefix(id string) bool {
	if id == "" {
		return false
	}
	for _, r := range id {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F', r == '-':
		default:
			return false
		}
	}
	return true
}

// Delete removes a run and its requests.
func (s *Store) Delete(ctx context.Context, id string) error {
	query, args, err := s.builder.Delete("runs").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return err
	}
	res, err := s.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%w: %q", ErrRunNotFound, id)
	}
	return nil
}

func (s *Store) requests(ctx context.Context, runID string) ([]Request, error) {
	query, args, err := s.builder.Select("label", "requested", "keystroke", "depth", "derived", "invokable").
		From("requests").
		Where(squirrel.Eq{"run_id": runID}).
		OrderBy("seq").
		ToSql()
	if err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query requests: %w", err)
	}
	defer rows.Close()

	var out []Request
	for rows.Next() {
		var r Request
		if err := rows.Scan(&r.Label, &r.Requested, &r.Keystroke, &r.Depth, &r.Derived, &r.Invokable); err != nil {
			return nil, fmt.Errorf("failed to scan request: %w", err)
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var created int64
	if err := rows.Scan(&run.ID, &run.Layout, &run.Baseline, &created, &run.Assigned, &run.Unassigned); err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	run.CreatedAt = time.UnixMilli(created).UTC()
	return run, nil
}

func (s *Store) exec(ctx context.Context, e execer, b squirrel.Sqlizer) error {
	query, args, err := b.ToSql()
	if err != nil {
		return err
	}
	_, err = e.ExecContext(ctx, query, args...)
	return err
}
