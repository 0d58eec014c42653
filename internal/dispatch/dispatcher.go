package dispatch

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"autokeys/internal/keystroke"
	"autokeys/internal/log"
	"autokeys/internal/view"
)

// CaptureFunc has the signature of a tview input capture.
type CaptureFunc = func(event *tcell.EventKey) *tcell.EventKey

// Host is the process-wide input hook and focus owner, normally a
// tview.Application.
type Host interface {
	InputCapture() CaptureFunc
	SetInputCapture(capture CaptureFunc)
	Focus(p tview.Primitive)
}

type appHost struct {
	app *tview.Application
}

// Application adapts app to Host.
func Application(app *tview.Application) Host {
	return appHost{app: app}
}

func (h appHost) InputCapture() CaptureFunc {
	return h.app.GetInputCapture()
}

func (h appHost) SetInputCapture(capture CaptureFunc) {
	h.app.SetInputCapture(capture)
}

func (h appHost) Focus(p tview.Primitive) {
	h.app.SetFocus(p)
}

// Dispatcher turns key presses found in its table into action
// invocations.
type Dispatcher struct {
	table *Table
	host  Host
	next  CaptureFunc

	// OnDispatch, when set, runs after an entry's action was invoked.
	OnDispatch func(e *Entry)
}

// NewDispatcher returns a dispatcher for table. Focus requests go to host.
func NewDispatcher(table *Table, host Host) *Dispatcher {
	return &Dispatcher{table: table, host: host}
}

// Table returns the dispatch table.
func (d *Dispatcher) Table() *Table {
	return d.table
}

// Filter is the installed input capture. Keystrokes without an entry go to
// the capture that was installed before this one, or propagate unchanged.
// A bound keystroke reveals and focuses the owner, invokes the action and
// consumes the event.
func (d *Dispatcher) Filter(ev *tcell.EventKey) *tcell.EventKey {
	k := keystroke.FromEvent(ev)
	e, ok := d.table.Lookup(k)
	if !ok {
		if d.next != nil {
			return d.next(ev)
		}
		return ev
	}

	Reveal(e.Owner)
	if d.host != nil && e.Owner != nil && e.Owner.Primitive != nil {
		d.host.Focus(e.Owner.Primitive)
	}
	if e.Action != nil {
		e.Action.Invoke(k.Event())
	}
	log.Debug("shortcut dispatched", "keystroke", k.String(), "owner", ownerName(e.Owner))

	if d.OnDispatch != nil {
		d.OnDispatch(e)
	}
	return nil
}

// Reveal selects, from the root down, every page that hides a node on the
// path to owner.
func Reveal(owner *view.Node) {
	if owner == nil {
		return
	}
	path := owner.Path()
	for i := 1; i < len(path); i++ {
		parent, child := path[i-1], path[i]
		if parent.Hides(child) {
			parent.ShowPage(child)
		}
	}
}

func ownerName(n *view.Node) string {
	if n == nil {
		return ""
	}
	return n.Name
}

// Installation is a filter placed on a host. It must be uninstalled before
// another dispatcher for a rebuilt tree is installed on the same host.
type Installation struct {
	host       Host
	dispatcher *Dispatcher
	previous   CaptureFunc
	active     bool
}

// Install places d's filter on host, chaining to the capture it replaces.
func Install(host Host, d *Dispatcher) *Installation {
	prev := host.InputCapture()
	d.next = prev
	if d.host == nil {
		d.host = host
	}
	host.SetInputCapture(d.Filter)
	log.Debug("shortcut filter installed", "entries", d.table.Len())
	return &Installation{host: host, dispatcher: d, previous: prev, active: true}
}

// Active reports whether the filter is still installed.
func (in *Installation) Active() bool {
	return in.active
}

// Uninstall restores the capture that was in place before Install. Calling
// it more than once is harmless.
func (in *Installation) Uninstall() {
	if !in.active {
		return
	}
	in.host.SetInputCapture(in.previous)
	in.dispatcher.next = nil
	in.active = false
	log.Debug("shortcut filter uninstalled")
}
