package theme

import (
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"autokeys/internal/components"
)

// DialogColors defines color scheme for dialogs and modals
type DialogColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	ButtonBg   tcell.Color
	ButtonFg   tcell.Color
	FieldBg    tcell.Color // Input field background
	FieldFg    tcell.Color // Input field text
}

// MenuColors defines color scheme for menus
type MenuColors struct {
	Background tcell.Color
	Foreground tcell.Color
	SelectedBg tcell.Color
	SelectedFg tcell.Color
	Shortcut   tcell.Color
}

// StatusColors defines color scheme for status bars
type StatusColors struct {
	Background  tcell.Color
	Foreground  tcell.Color
	HighlightFg tcell.Color // last dispatched shortcut
	WarningFg   tcell.Color // requests left without a shortcut
}

// PanelColors defines color scheme for panels
type PanelColors struct {
	Background tcell.Color
	Foreground tcell.Color
	Border     tcell.Color
	Title      tcell.Color
}

// Theme interface defines all theming properties
type Theme interface {
	Name() string

	DialogColors() DialogColors
	MenuColors() MenuColors
	StatusColors() StatusColors
	PanelColors() PanelColors

	MenuBorderStyle() components.MenuBorderStyle
}

// ThemeManager manages theme selection and application
type ThemeManager struct {
	currentTheme Theme
	themes       map[string]Theme
}

// NewThemeManager creates a theme manager with the built-in themes and
// "classic" selected.
func NewThemeManager() *ThemeManager {
	tm := &ThemeManager{
		themes: make(map[string]Theme),
	}

	tm.RegisterTheme(NewClassicTheme())
	tm.RegisterTheme(NewPlainTheme())
	tm.currentTheme = tm.themes["classic"]

	return tm
}

// RegisterTheme registers a new theme
func (tm *ThemeManager) RegisterTheme(theme Theme) {
	tm.themes[theme.Name()] = theme
}

// SetTheme sets the current theme by name
func (tm *ThemeManager) SetTheme(name string) error {
	if theme, exists := tm.themes[name]; exists {
		tm.currentTheme = theme
		return nil
	}
	return fmt.Errorf("theme '%s' not found", name)
}

// Current returns the current theme
func (tm *ThemeManager) Current() Theme {
	return tm.currentTheme
}

// Available returns the registered theme names in sorted order
func (tm *ThemeManager) Available() []string {
	names := make([]string, 0, len(tm.themes))
	for name := range tm.themes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var defaultThemeManager = NewThemeManager()

// GetThemeManager returns the global theme manager
func GetThemeManager() *ThemeManager {
	return defaultThemeManager
}

// Current returns the current theme from the global manager
func Current() Theme {
	return defaultThemeManager.Current()
}

// Use selects the global theme by name.
func Use(name string) error {
	return defaultThemeManager.SetTheme(name)
}
