package store

import (
	"context"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(context.Background(), filepath.Join(t.TempDir(), "nested", "history.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	s.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}
	return s
}

func sampleRequests() []Request {
	return []Request{
		{Label: "main/Save", Requested: "Ctrl+S", Keystroke: "Ctrl+Shift+S", Depth: 1, Derived: true, Invokable: true},
		{Label: "editor/Save", Requested: "Ctrl+S", Keystroke: "Ctrl+S", Depth: 3, Invokable: true},
		{Label: "editor/Redo", Requested: "Ctrl+Z", Depth: 3, Invokable: true},
	}
}

func TestRecordAndLoad(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.Record(ctx, "demo", "Ctrl", sampleRequests())
	require.NoError(t, err)
	assert.NotEmpty(t, run.ID)
	assert.Equal(t, 2, run.Assigned)
	assert.Equal(t, 1, run.Unassigned)

	got, requests, err := s.Run(ctx, run.ID)
	require.NoError(t, err)
	assert.Equal(t, run, got)
	assert.Equal(t, sampleRequests(), requests)

	byPrefix, _, err := s.Run(ctx, run.ID[:8])
	require.NoError(t, err)
	assert.Equal(t, run.ID, byPrefix.ID)
}

func TestRunsNewestFirst(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	first, err := s.Record(ctx, "first", "Ctrl", nil)
	require.NoError(t, err)
	second, err := s.Record(ctx, "second", "Meta", sampleRequests())
	require.NoError(t, err)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, second.ID, runs[0].ID)
	assert.Equal(t, first.ID, runs[1].ID)

	runs, err = s.Runs(ctx, 1)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "second", runs[0].Layout)
}

func TestRunNotFound(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	_, _, err := s.Run(ctx, "missing")
	assert.ErrorIs(t, err, ErrRunNotFound)
	_, _, err = s.Run(ctx, "")
	assert.ErrorIs(t, err, ErrRunNotFound)
	assert.ErrorIs(t, s.Delete(ctx, "missing"), ErrRunNotFound)
}

func TestRunRejectsWildcards(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.Record(ctx, "demo", "Ctrl", sampleRequests())
	require.NoError(t, err)

	for _, id := range []string{"%", "_", run.ID[:4] + "%", "' OR 1=1 --"} {
		_, _, err := s.Run(ctx, id)
		assert.ErrorIs(t, err, ErrRunNotFound, id)
	}

	got, _, err := s.Run(ctx, strings.ToUpper(run.ID[:6]))
	require.NoError(t, err)
	assert.Equal(t, run.ID, got.ID)
}

func TestDeleteCascades(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	run, err := s.Record(ctx, "demo", "Ctrl", sampleRequests())
	require.NoError(t, err)
	require.NoError(t, s.Delete(ctx, run.ID))

	var n int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM requests`).Scan(&n))
	assert.Zero(t, n)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	assert.Empty(t, runs)
}

func TestMigrationsAreIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.db")
	ctx := context.Background()

	s, err := Open(ctx, path)
	require.NoError(t, err)
	_, err = s.Record(ctx, "demo", "Ctrl", nil)
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s, err = Open(ctx, path)
	require.NoError(t, err)
	defer s.Close()

	var version int
	require.NoError(t, s.db.QueryRowContext(ctx, `SELECT MAX(version) FROM schema_version`).Scan(&version))
	assert.Equal(t, len(migrations), version)

	runs, err := s.Runs(ctx, 0)
	require.NoError(t, err)
	assert.Len(t, runs, 1)
}
