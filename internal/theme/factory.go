package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"autokeys/internal/components"
)

// ThemedComponents provides convenience factory functions for creating themed components
// while still allowing manual styling using theme properties
type ThemedComponents struct {
	theme Theme
}

// NewThemedComponents creates a new themed components factory
func NewThemedComponents(theme Theme) *ThemedComponents {
	return &ThemedComponents{theme: theme}
}

// NewTextView creates a text view styled as a panel
func (tc *ThemedComponents) NewTextView() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.PanelColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetBorderColor(colors.Border)
	textView.SetTitleColor(colors.Title)
	textView.SetDynamicColors(true)

	return textView
}

// NewInputField creates a new input field with theme applied
func (tc *ThemedComponents) NewInputField() *tview.InputField {
	input := tview.NewInputField()
	colors := tc.theme.DialogColors()
	panel := tc.theme.PanelColors()

	input.SetBackgroundColor(panel.Background)
	input.SetFieldBackgroundColor(colors.FieldBg)
	input.SetFieldTextColor(colors.FieldFg)
	input.SetLabelColor(panel.Foreground)
	input.SetBorderColor(panel.Border)
	input.SetTitleColor(panel.Title)

	return input
}

// NewFlex creates a new flex with theme applied
func (tc *ThemedComponents) NewFlex() *tview.Flex {
	flex := tview.NewFlex()
	colors := tc.theme.PanelColors()

	flex.SetBackgroundColor(colors.Background)
	flex.SetBorderColor(colors.Border)
	flex.SetTitleColor(colors.Title)

	return flex
}

// NewPages creates a new pages container with theme applied
func (tc *ThemedComponents) NewPages() *tview.Pages {
	pages := tview.NewPages()
	colors := tc.theme.PanelColors()

	pages.SetBackgroundColor(colors.Background)
	pages.SetBorderColor(colors.Border)
	pages.SetTitleColor(colors.Title)

	return pages
}

// NewBox creates an empty themed box
func (tc *ThemedComponents) NewBox() *tview.Box {
	box := tview.NewBox()
	colors := tc.theme.PanelColors()

	box.SetBackgroundColor(colors.Background)
	box.SetBorderColor(colors.Border)
	box.SetTitleColor(colors.Title)

	return box
}

// NewMenu creates a new Menu with themed styling and custom borders
func (tc *ThemedComponents) NewMenu() *components.Menu {
	colors := tc.theme.MenuColors()
	borderChars := components.NewSimpleBorderChars(tc.theme.MenuBorderStyle())

	menu := components.NewMenu(borderChars)

	menu.SetBackgroundColor(colors.Background)

	// explicit background so unselected rows do not fall back to the terminal default
	mainStyle := tcell.StyleDefault.
		Foreground(colors.Foreground).
		Background(colors.Background)
	menu.SetMainTextStyle(mainStyle)

	menu.SetSelectedTextColor(colors.SelectedFg)
	menu.SetSelectedBackgroundColor(colors.SelectedBg)

	menu.SetBorderColor(colors.Foreground)
	menu.SetTitleColor(colors.Foreground)
	menu.SetBorder(true)

	return menu
}

// NewStatusBar creates a new text view styled for status bars
func (tc *ThemedComponents) NewStatusBar() *tview.TextView {
	textView := tview.NewTextView()
	colors := tc.theme.StatusColors()

	textView.SetBackgroundColor(colors.Background)
	textView.SetTextColor(colors.Foreground)
	textView.SetDynamicColors(true)
	textView.SetWrap(false)

	return textView
}

var defaultFactory = &ThemedComponents{}

// updateDefaultFactory updates the global factory with current theme
func updateDefaultFactory() {
	defaultFactory.theme = defaultThemeManager.Current()
}

// Convenience functions using global theme

func NewTextView() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewTextView()
}

func NewInputField() *tview.InputField {
	updateDefaultFactory()
	return defaultFactory.NewInputField()
}

func NewFlex() *tview.Flex {
	updateDefaultFactory()
	return defaultFactory.NewFlex()
}

func NewPages() *tview.Pages {
	updateDefaultFactory()
	return defaultFactory.NewPages()
}

func NewBox() *tview.Box {
	updateDefaultFactory()
	return defaultFactory.NewBox()
}

func NewMenu() *components.Menu {
	updateDefaultFactory()
	return defaultFactory.NewMenu()
}

func NewStatusBar() *tview.TextView {
	updateDefaultFactory()
	return defaultFactory.NewStatusBar()
}
