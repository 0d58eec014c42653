package shortcuts

import (
	"sort"

	"autokeys/internal/binding"
	"autokeys/internal/dispatch"
	"autokeys/internal/keystroke"
	"autokeys/internal/view"
)

// Binding is the outcome of one Bind or Plan call.
type Binding struct {
	Root       *view.Node
	Result     *binding.Result
	Table      *dispatch.Table
	Dispatcher *dispatch.Dispatcher // nil for a plan

	installation *dispatch.Installation
}

// Installed reports whether the binding's filter is active.
func (b *Binding) Installed() bool {
	return b.installation != nil && b.installation.Active()
}

// Unassigned returns the requests that received no shortcut.
func (b *Binding) Unassigned() []*binding.Candidate {
	out := make([]*binding.Candidate, 0, len(b.Result.Unassigned))
	for _, id := range b.Result.Unassigned {
		out = append(out, b.Result.Arena.Get(id))
	}
	return out
}

// Assignment is one row of a binding report.
type Assignment struct {
	Keystroke keystroke.Keystroke
	Requested keystroke.Keystroke
	Label     string
	Depth     int
	Derived   bool
	Invokable bool
}

// Assignments lists every assigned request ordered by keystroke.
func (b *Binding) Assignments() []Assignment {
	out := make([]Assignment, 0, len(b.Result.Assigned))
	for _, id := range b.Result.Assigned {
		c := b.Result.Arena.Get(id)
		out = append(out, Assignment{
			Keystroke: c.Keystroke,
			Requested: b.Result.Arena.Get(b.Result.Arena.Root(id)).Keystroke,
			Label:     c.Label(),
			Depth:     c.Depth,
			Derived:   !c.IsRoot(),
			Invokable: c.Action != nil,
		})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return keystroke.Less(out[i].Keystroke, out[j].Keystroke)
	})
	return out
}

// Requests lists every request in collection order with the keystroke it
// ended up with. Keystroke is zero for unassigned requests.
func (b *Binding) Requests() []Assignment {
	arena := b.Result.Arena
	roots := arena.Roots()
	out := make([]Assignment, 0, len(roots))
	for _, root := range roots {
		c := arena.Get(root)
		k, ok := b.Result.AssignedFor(root)
		out = append(out, Assignment{
			Keystroke: k,
			Requested: c.Keystroke,
			Label:     c.Label(),
			Depth:     c.Depth,
			Derived:   ok && k != c.Keystroke,
			Invokable: c.Action != nil,
		})
	}
	return out
}
