package dispatch

import (
	"autokeys/internal/binding"
	"autokeys/internal/keystroke"
	"autokeys/internal/view"
)

// Entry is one installed shortcut.
type Entry struct {
	Keystroke keystroke.Keystroke
	Owner     *view.Node
	Item      *view.Item
	Action    view.Action
	Candidate binding.ID

	// description held by Item before Describe touched it
	original  string
	described bool
}

// Table maps keystrokes to the actions they trigger. It is built once per
// resolution run and is read-only afterwards.
type Table struct {
	entries map[keystroke.Keystroke]*Entry
	order   []keystroke.Keystroke
}

// NewTable collects every assigned candidate of res that carries an
// action, in the order the candidates won their keystrokes.
func NewTable(res *binding.Result) *Table {
	t := &Table{entries: make(map[keystroke.Keystroke]*Entry)}
	if res == nil {
		return t
	}
	for _, id := range res.Assigned {
		c := res.Arena.Get(id)
		if c.Action == nil {
			continue
		}
		t.entries[c.Keystroke] = &Entry{
			Keystroke: c.Keystroke,
			Owner:     c.Owner,
			Item:      c.Item,
			Action:    c.Action,
			Candidate: id,
		}
		t.order = append(t.order, c.Keystroke)
	}
	return t
}

// Lookup returns the entry bound to k.
func (t *Table) Lookup(k keystroke.Keystroke) (*Entry, bool) {
	e, ok := t.entries[k]
	return e, ok
}

// Len is the number of entries.
func (t *Table) Len() int {
	return len(t.entries)
}

// Entries returns the entries in assignment order.
func (t *Table) Entries() []*Entry {
	out := make([]*Entry, 0, len(t.order))
	for _, k := range t.order {
		out = append(out, t.entries[k])
	}
	return out
}

// Describe appends the rendered keystroke to the description of every
// entry's item, e.g. "Save" becomes "Save (Ctrl+S)".
func Describe(t *Table, style keystroke.Style) {
	for _, e := range t.Entries() {
		if e.Item == nil || e.described {
			continue
		}
		e.original = e.Item.Description()
		e.described = true
		e.Item.AppendDescription("(" + e.Keystroke.Describe(style) + ")")
	}
}

// Restore undoes Describe. Entries are restored newest first so an item
// shared by several entries ends with the description it had before the
// first suffix.
func Restore(t *Table) {
	entries := t.Entries()
	for i := len(entries) - 1; i >= 0; i-- {
		e := entries[i]
		if e.Item == nil || !e.described {
			continue
		}
		e.Item.SetDescription(e.original)
		e.described = false
	}
}
