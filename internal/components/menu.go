package components

import (
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"github.com/rivo/tview"

	"autokeys/internal/view"
)

// MenuBorderStyle defines predefined border character sets for menus
type MenuBorderStyle int

const (
	MenuBorderStyleSingle  MenuBorderStyle = iota // Single-line box drawing characters
	MenuBorderStyleDouble                         // Double-line box drawing characters
	MenuBorderStyleHeavy                          // Heavy/thick box drawing characters
	MenuBorderStyleRounded                        // Rounded corner characters
)

// BorderChars defines the characters used for drawing borders
type BorderChars struct {
	Normal MenuBorderStyle // Style for normal state
	Focus  MenuBorderStyle // Style for focused state
}

// NewBorderChars creates BorderChars with normal and focus styles
func NewBorderChars(normal, focus MenuBorderStyle) *BorderChars {
	return &BorderChars{Normal: normal, Focus: focus}
}

// NewSimpleBorderChars creates BorderChars with the same style for normal and focus
func NewSimpleBorderChars(style MenuBorderStyle) *BorderChars {
	return NewBorderChars(style, style)
}

func getRunes(style MenuBorderStyle) (horizontal, vertical, topLeft, topRight, bottomLeft, bottomRight rune) {
	switch style {
	case MenuBorderStyleDouble:
		return '═', '║', '╔', '╗', '╚', '╝'
	case MenuBorderStyleHeavy:
		return '━', '┃', '┏', '┓', '┗', '┛'
	case MenuBorderStyleRounded:
		return '─', '│', '╭', '╮', '╰', '╯'
	default:
		return '─', '│', '┌', '┐', '└', '┘'
	}
}

// apply copies the border runes into b, which has the layout of
// tview.Borders.
func (bc *BorderChars) apply(b *tviewBorders) {
	b.Horizontal, b.Vertical, b.TopLeft, b.TopRight, b.BottomLeft, b.BottomRight = getRunes(bc.Normal)
	b.HorizontalFocus, b.VerticalFocus, b.TopLeftFocus, b.TopRightFocus, b.BottomLeftFocus, b.BottomRightFocus = getRunes(bc.Focus)
}

type tviewBorders = struct {
	Horizontal       rune
	Vertical         rune
	TopLeft          rune
	TopRight         rune
	BottomLeft       rune
	BottomRight      rune
	LeftT            rune
	RightT           rune
	TopT             rune
	BottomT          rune
	Cross            rune
	HorizontalFocus  rune
	VerticalFocus    rune
	TopLeftFocus     rune
	TopRightFocus    rune
	BottomLeftFocus  rune
	BottomRightFocus rune
}

// Menu is a tview.List showing view items together with the shortcut the
// binder gave them. Selecting an entry invokes the item's action.
type Menu struct {
	*tview.List
	borderChars *BorderChars
	items       []*view.Item
}

// NewMenu creates an empty menu. borderChars may be nil for tview's
// default borders.
func NewMenu(borderChars *BorderChars) *Menu {
	return &Menu{
		List:        tview.NewList().ShowSecondaryText(false),
		borderChars: borderChars,
	}
}

// SetBorderChars updates the border characters for this menu
func (m *Menu) SetBorderChars(borderChars *BorderChars) *Menu {
	m.borderChars = borderChars
	return m
}

// SetItems replaces the menu entries. The menu redraws an entry whenever
// the item's description changes.
func (m *Menu) SetItems(items []*view.Item) {
	m.items = items
	for _, item := range items {
		item.OnDescribe(func(*view.Item) { m.Refresh() })
	}
	m.Refresh()
}

// Items returns the menu entries.
func (m *Menu) Items() []*view.Item {
	return m.items
}

// Refresh rebuilds the list text from the items' current descriptions,
// keeping the selection.
func (m *Menu) Refresh() {
	current := m.List.GetCurrentItem()
	m.List.Clear()

	labels := make([]string, len(m.items))
	hints := make([]string, len(m.items))
	width := 0
	for i, item := range m.items {
		labels[i] = item.Label
		hints[i] = ShortcutHint(item)
		if n := runewidth.StringWidth(item.Label); n > width {
			width = n
		}
	}

	for i, item := range m.items {
		text := labels[i]
		if hints[i] != "" {
			// 3 spaces minimum between label and shortcut
			text += strings.Repeat(" ", width-runewidth.StringWidth(labels[i])+3) + hints[i]
		}
		m.List.AddItem(text, "", 0, m.selectFunc(item))
	}

	if current >= 0 && current < m.List.GetItemCount() {
		m.List.SetCurrentItem(current)
	}
}

// ShortcutHint is whatever the item's description adds to its label, such
// as "(Ctrl+S)".
func ShortcutHint(item *view.Item) string {
	desc := item.Description()
	if !strings.HasPrefix(desc, item.Label) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(desc, item.Label))
}

func (m *Menu) selectFunc(item *view.Item) func() {
	return func() {
		if item.Action == nil {
			return
		}
		var ev *tcell.EventKey
		if !item.Keystroke.IsZero() {
			ev = item.Keystroke.Event()
		} else {
			ev = tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)
		}
		item.Action.Invoke(ev)
	}
}

// Draw swaps tview's global border runes for this menu's style while the
// list draws, then restores them.
func (m *Menu) Draw(screen tcell.Screen) {
	if m.borderChars == nil {
		m.List.Draw(screen)
		return
	}
	original := tview.Borders
	m.borderChars.apply(&tview.Borders)
	m.List.Draw(screen)
	tview.Borders = original
}
