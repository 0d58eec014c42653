package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autokeys/internal/keystroke"
	"autokeys/internal/shortcuts"
	"autokeys/internal/store"
	"autokeys/internal/view"
)

func TestNote(t *testing.T) {
	assert.Equal(t, "unassigned", note(false, false, true))
	assert.Equal(t, "moved", note(true, true, true))
	assert.Equal(t, "accelerator", note(true, false, false))
	assert.Equal(t, "moved, accelerator", note(true, true, false))
	assert.Equal(t, "", note(true, false, true))
}

func TestBinding(t *testing.T) {
	noop := view.ActionFunc(func(*tcell.EventKey) {})
	root := view.NewNode("root", nil).AddItem(view.NewItem("Save all", keystroke.MustParse("Ctrl+S"), noop))
	root.Add(view.NewNode("editor", nil).AddItem(view.NewItem("Save", keystroke.MustParse("Ctrl+S"), noop)))

	b := shortcuts.NewBinder(nil, shortcuts.Options{}).Plan(root)

	var buf bytes.Buffer
	require.NoError(t, NewPrinter(&buf, keystroke.StyleText).Binding("demo", b))
	out := buf.String()

	assert.Contains(t, out, "root/Save all")
	assert.Contains(t, out, "Ctrl+Shift+S")
	assert.Contains(t, out, "moved")
	assert.Contains(t, out, "demo: 2 requests, 2 bound, 2 dispatchable, 0 unassigned")
}

func TestRuns(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf, keystroke.StyleText)

	require.NoError(t, p.Runs(nil))
	assert.Equal(t, "no recorded runs\n", buf.String())

	buf.Reset()
	runs := []store.Run{{
		ID:         "0123456789abcdef",
		Layout:     "demo",
		Baseline:   "Ctrl",
		CreatedAt:  time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		Assigned:   14,
		Unassigned: 1,
	}}
	require.NoError(t, p.Runs(runs))
	assert.Contains(t, buf.String(), "01234567")
	assert.NotContains(t, buf.String(), "0123456789")
	assert.Contains(t, buf.String(), "demo")
}

func TestRun(t *testing.T) {
	var buf bytes.Buffer
	run := store.Run{ID: "abc", Layout: "demo", Baseline: "Ctrl", CreatedAt: time.Now()}
	requests := []store.Request{
		{Label: "editor/Save", Requested: "Ctrl+S", Keystroke: "Ctrl+S", Depth: 3, Invokable: true},
		{Label: "editor/Redo", Requested: "Ctrl+Z", Depth: 3, Invokable: true},
	}
	require.NoError(t, NewPrinter(&buf, keystroke.StyleText).Run(run, requests))
	out := buf.String()
	assert.Contains(t, out, "run abc")
	assert.Contains(t, out, "editor/Redo")
	assert.Contains(t, out, "unassigned")
}
