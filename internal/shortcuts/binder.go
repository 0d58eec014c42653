package shortcuts

import (
	"errors"

	"github.com/gdamore/tcell/v2"

	"autokeys/internal/binding"
	"autokeys/internal/dispatch"
	"autokeys/internal/keystroke"
	"autokeys/internal/log"
	"autokeys/internal/view"
)

// ErrAlreadyBound is returned by Bind while a previous binding is still
// installed.
var ErrAlreadyBound = errors.New("shortcuts already bound; call Unbind first")

// Options configure a Binder.
type Options struct {
	// Baseline is the primary shortcut modifier. It is never added by
	// derivation. Zero means binding.DefaultBaseline.
	Baseline tcell.ModMask

	// Style selects how shortcuts are appended to item descriptions.
	Style keystroke.Style
}

// Binder owns the shortcut lifecycle of one component tree on one host.
// It is not safe for concurrent use; call it from the UI goroutine.
type Binder struct {
	host     dispatch.Host
	resolver *binding.Resolver
	style    keystroke.Style
	current  *Binding

	// OnDispatch is handed to every dispatcher the Binder installs.
	OnDispatch func(e *dispatch.Entry)
}

// NewBinder creates a binder that installs its filters on host.
func NewBinder(host dispatch.Host, opts Options) *Binder {
	baseline := opts.Baseline
	if baseline == 0 {
		baseline = binding.DefaultBaseline
	}
	return &Binder{
		host:     host,
		resolver: binding.NewResolver(binding.NewDeriver(baseline)),
		style:    opts.Style,
	}
}

// Baseline returns the modifier the binder never derives.
func (b *Binder) Baseline() tcell.ModMask {
	return b.resolver.Deriver.Baseline
}

// Current returns the installed binding, or nil.
func (b *Binder) Current() *Binding {
	return b.current
}

// Plan collects and resolves the tree under root without touching
// descriptions or installing anything.
func (b *Binder) Plan(root *view.Node) *Binding {
	arena := binding.NewArena()
	reg := binding.Collect(root, arena)
	requested := reg.Len()
	res := b.resolver.Resolve(arena, reg)

	log.Debug("shortcuts resolved",
		"keystrokes_requested", requested,
		"candidates", arena.Len(),
		"assigned", len(res.Assigned),
		"unassigned", len(res.Unassigned),
		"passes", res.Passes)

	return &Binding{
		Root:   root,
		Result: res,
		Table:  dispatch.NewTable(res),
	}
}

// Bind resolves the tree under root, appends shortcuts to item
// descriptions and installs the dispatch filter on the host.
func (b *Binder) Bind(root *view.Node) (*Binding, error) {
	if b.current != nil {
		return nil, ErrAlreadyBound
	}

	bd := b.Plan(root)
	dispatch.Describe(bd.Table, b.style)

	d := dispatch.NewDispatcher(bd.Table, b.host)
	d.OnDispatch = b.OnDispatch
	bd.Dispatcher = d
	bd.installation = dispatch.Install(b.host, d)

	b.current = bd
	log.Info("shortcuts bound", "entries", bd.Table.Len(), "unassigned", len(bd.Result.Unassigned))
	return bd, nil
}

// Unbind uninstalls the current filter, restores item descriptions and
// discards the dispatch table. It does nothing when nothing is bound.
func (b *Binder) Unbind() {
	if b.current == nil {
		return
	}
	b.current.installation.Uninstall()
	dispatch.Restore(b.current.Table)
	b.current = nil
	log.Debug("shortcuts unbound")
}

// Rebind unbinds and binds root again.
func (b *Binder) Rebind(root *view.Node) (*Binding, error) {
	b.Unbind()
	return b.Bind(root)
}
