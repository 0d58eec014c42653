package view

import (
	"github.com/gdamore/tcell/v2"

	"autokeys/internal/keystroke"
)

// Action is an invokable command. Shortcut dispatch passes a synthetic
// event built from the bound keystroke.
type Action interface {
	Invoke(ev *tcell.EventKey)
}

// ActionFunc adapts a function to Action.
type ActionFunc func(ev *tcell.EventKey)

// Invoke calls f(ev).
func (f ActionFunc) Invoke(ev *tcell.EventKey) {
	f(ev)
}

// Item is a menu entry exposed by a component. A zero Keystroke means the
// item does not recommend one; a nil Action means it is not invokable.
type Item struct {
	Label     string
	Keystroke keystroke.Keystroke
	Action    Action

	description string
	onDescribe  []func(*Item)
}

// NewItem creates a menu item.
func NewItem(label string, k keystroke.Keystroke, action Action) *Item {
	return &Item{Label: label, Keystroke: k, Action: action, description: label}
}

// Description is the tooltip text of the item.
func (i *Item) Description() string {
	return i.description
}

// SetDescription replaces the tooltip text.
func (i *Item) SetDescription(text string) {
	i.description = text
	i.notify()
}

// AppendDescription adds text to the existing tooltip, separated by a space.
func (i *Item) AppendDescription(text string) {
	if text == "" {
		return
	}
	if i.description == "" {
		i.description = text
	} else {
		i.description += " " + text
	}
	i.notify()
}

// ResetDescription restores the tooltip to the label.
func (i *Item) ResetDescription() {
	i.SetDescription(i.Label)
}

// OnDescribe registers fn to run whenever the description changes, so
// widgets displaying the item can refresh.
func (i *Item) OnDescribe(fn func(*Item)) {
	i.onDescribe = append(i.onDescribe, fn)
}

func (i *Item) notify() {
	for _, fn := range i.onDescribe {
		fn(i)
	}
}
