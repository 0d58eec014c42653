package components

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"

	"autokeys/internal/theme"
)

// StatusComponent manages the bottom status bar
type StatusComponent struct {
	wrapper    *tview.TextView
	layout     string
	bound      int
	unassigned int
	bindings   bool
	last       string
	message    string
}

// NewStatusComponent creates a new status bar component
func NewStatusComponent() *StatusComponent {
	sc := &StatusComponent{wrapper: theme.NewStatusBar()}
	sc.UpdateStatus()
	return sc
}

// GetWrapper returns the status bar TextView
func (sc *StatusComponent) GetWrapper() *tview.TextView {
	return sc.wrapper
}

// SetLayout sets the name of the displayed layout
func (sc *StatusComponent) SetLayout(name string) {
	sc.layout = name
	sc.UpdateStatus()
}

// SetBinding records the size of the current binding
func (sc *StatusComponent) SetBinding(bound, unassigned int) {
	sc.bindings = true
	sc.bound = bound
	sc.unassigned = unassigned
	sc.UpdateStatus()
}

// ClearBinding marks shortcuts as suspended
func (sc *StatusComponent) ClearBinding() {
	sc.bindings = false
	sc.UpdateStatus()
}

// SetLastDispatch records the most recently dispatched shortcut
func (sc *StatusComponent) SetLastDispatch(text string) {
	sc.last = text
	sc.UpdateStatus()
}

// SetMessage sets the free-form message shown after the shortcut summary
func (sc *StatusComponent) SetMessage(message string) {
	sc.message = message
	sc.UpdateStatus()
}

// Text returns the status line without color tags
func (sc *StatusComponent) Text() string {
	return sc.wrapper.GetText(true)
}

// UpdateStatus updates the status bar display
func (sc *StatusComponent) UpdateStatus() {
	var statusText strings.Builder

	statusColors := theme.Current().StatusColors()
	sc.wrapper.SetTextColor(statusColors.Foreground)

	statusText.WriteString(" ")
	if sc.layout != "" {
		statusText.WriteString("Layout: " + tview.Escape(sc.layout) + " | ")
	}

	if !sc.bindings {
		statusText.WriteString("Shortcuts: suspended")
	} else {
		statusText.WriteString(fmt.Sprintf("Shortcuts: %d bound", sc.bound))
		if sc.unassigned > 0 {
			statusText.WriteString(fmt.Sprintf(", [%s]%d unassigned[-]",
				statusColors.WarningFg.String(), sc.unassigned))
		}
	}

	if sc.last != "" {
		statusText.WriteString(fmt.Sprintf(" | Last: [%s]%s[-]",
			statusColors.HighlightFg.String(), tview.Escape(sc.last)))
	}
	if sc.message != "" {
		statusText.WriteString(" | " + tview.Escape(sc.message))
	}

	statusText.WriteString(" | F1=Help")

	sc.wrapper.SetText(statusText.String())
}
