package theme

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"autokeys/internal/components"
)

// DOS 16-color palette entries used by the classic theme.
var (
	DOSBlack     = tcell.NewHexColor(0x000000)
	DOSRed       = tcell.NewHexColor(0x800000)
	DOSBlue      = tcell.NewHexColor(0x000080)
	DOSCyan      = tcell.NewHexColor(0x008080)
	DOSLightGray = tcell.NewHexColor(0xC0C0C0)
	DOSDarkGray  = tcell.NewHexColor(0x808080)
	DOSYellow    = tcell.NewHexColor(0xFFFF00)
	DOSLightCyan = tcell.NewHexColor(0x00FFFF)
	DOSWhite     = tcell.NewHexColor(0xFFFFFF)
)

// ClassicTheme is a blue-and-gray DOS style theme.
type ClassicTheme struct{}

// NewClassicTheme creates a new classic theme instance
func NewClassicTheme() *ClassicTheme {
	return &ClassicTheme{}
}

func (t *ClassicTheme) Name() string {
	return "classic"
}

func (t *ClassicTheme) DialogColors() DialogColors {
	return DialogColors{
		Background: DOSBlue,
		Foreground: DOSWhite,
		Border:     DOSWhite,
		Title:      DOSWhite,
		SelectedBg: DOSWhite,
		SelectedFg: DOSBlack,
		ButtonBg:   DOSLightGray,
		ButtonFg:   DOSBlack,
		FieldBg:    tcell.NewHexColor(0x000040),
		FieldFg:    DOSWhite,
	}
}

func (t *ClassicTheme) MenuColors() MenuColors {
	return MenuColors{
		Background: DOSBlue,
		Foreground: DOSLightGray,
		SelectedBg: DOSRed,
		SelectedFg: DOSWhite,
		Shortcut:   DOSLightCyan,
	}
}

func (t *ClassicTheme) StatusColors() StatusColors {
	return StatusColors{
		Background:  DOSCyan,
		Foreground:  DOSBlack,
		HighlightFg: DOSWhite,
		WarningFg:   DOSYellow,
	}
}

func (t *ClassicTheme) PanelColors() PanelColors {
	return PanelColors{
		Background: DOSBlack,
		Foreground: DOSLightGray,
		Border:     DOSLightGray,
		Title:      DOSLightGray,
	}
}

func (t *ClassicTheme) MenuBorderStyle() components.MenuBorderStyle {
	return components.MenuBorderStyleSingle
}

// PlainTheme follows tview's default styles, for terminals with their own
// color scheme.
type PlainTheme struct{}

// NewPlainTheme creates a new plain theme instance
func NewPlainTheme() *PlainTheme {
	return &PlainTheme{}
}

func (t *PlainTheme) Name() string {
	return "plain"
}

func (t *PlainTheme) DialogColors() DialogColors {
	s := tview.Styles
	return DialogColors{
		Background: s.ContrastBackgroundColor,
		Foreground: s.PrimaryTextColor,
		Border:     s.BorderColor,
		Title:      s.TitleColor,
		SelectedBg: s.PrimaryTextColor,
		SelectedFg: s.PrimitiveBackgroundColor,
		ButtonBg:   s.ContrastBackgroundColor,
		ButtonFg:   s.PrimaryTextColor,
		FieldBg:    s.ContrastBackgroundColor,
		FieldFg:    s.PrimaryTextColor,
	}
}

func (t *PlainTheme) MenuColors() MenuColors {
	s := tview.Styles
	return MenuColors{
		Background: s.PrimitiveBackgroundColor,
		Foreground: s.PrimaryTextColor,
		SelectedBg: s.PrimaryTextColor,
		SelectedFg: s.PrimitiveBackgroundColor,
		Shortcut:   s.SecondaryTextColor,
	}
}

func (t *PlainTheme) StatusColors() StatusColors {
	s := tview.Styles
	return StatusColors{
		Background:  s.PrimitiveBackgroundColor,
		Foreground:  s.PrimaryTextColor,
		HighlightFg: s.TertiaryTextColor,
		WarningFg:   s.SecondaryTextColor,
	}
}

func (t *PlainTheme) PanelColors() PanelColors {
	s := tview.Styles
	return PanelColors{
		Background: s.PrimitiveBackgroundColor,
		Foreground: s.PrimaryTextColor,
		Border:     s.BorderColor,
		Title:      s.TitleColor,
	}
}

func (t *PlainTheme) MenuBorderStyle() components.MenuBorderStyle {
	return components.MenuBorderStyleRounded
}
