package components

import (
	"sort"
	"sync"

	"github.com/gdamore/tcell/v2"

	"autokeys/internal/keystroke"
)

// Hotkey is a fixed application shortcut that takes no part in conflict
// resolution, such as F1 for help.
type Hotkey struct {
	Keystroke   keystroke.Keystroke
	Description string
	Callback    func()
}

// Hotkeys manages application-wide keyboard shortcuts that must work
// regardless of which component tree is bound.
type Hotkeys struct {
	hotkeys map[keystroke.Keystroke]Hotkey
	mutex   sync.RWMutex
}

// NewHotkeys creates an empty hotkey set.
func NewHotkeys() *Hotkeys {
	return &Hotkeys{hotkeys: make(map[keystroke.Keystroke]Hotkey)}
}

// Register binds k to callback, replacing any earlier registration.
func (h *Hotkeys) Register(k keystroke.Keystroke, description string, callback func()) {
	if k.IsZero() || callback == nil {
		return
	}
	h.mutex.Lock()
	defer h.mutex.Unlock()
	h.hotkeys[k] = Hotkey{Keystroke: k, Description: description, Callback: callback}
}

// Unregister removes k.
func (h *Hotkeys) Unregister(k keystroke.Keystroke) {
	h.mutex.Lock()
	defer h.mutex.Unlock()
	delete(h.hotkeys, k)
}

// Has reports whether k is registered.
func (h *Hotkeys) Has(k keystroke.Keystroke) bool {
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	_, ok := h.hotkeys[k]
	return ok
}

// HandleKeyEvent runs the callback registered for the event's keystroke and
// reports whether there was one.
func (h *Hotkeys) HandleKeyEvent(event *tcell.EventKey) bool {
	k := keystroke.FromEvent(event)
	if k.IsZero() {
		return false
	}

	h.mutex.RLock()
	hk, exists := h.hotkeys[k]
	h.mutex.RUnlock()

	if !exists {
		return false
	}
	hk.Callback()
	return true
}

// List returns the registered hotkeys ordered by keystroke.
func (h *Hotkeys) List() []Hotkey {
	h.mutex.RLock()
	defer h.mutex.RUnlock()

	out := make([]Hotkey, 0, len(h.hotkeys))
	for _, hk := range h.hotkeys {
		out = append(out, hk)
	}
	sort.Slice(out, func(i, j int) bool {
		return keystroke.Less(out[i].Keystroke, out[j].Keystroke)
	})
	return out
}
