package keystroke

import (
	"fmt"
	"runtime"
	"strings"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Style selects how keystrokes are rendered for people.
type Style int

const (
	StyleAuto  Style = iota // glyphs on darwin, text elsewhere
	StyleText               // Ctrl+Alt+S
	StyleGlyph              // ⌃⌥S
)

// ParseStyle maps a config value to a Style.
func ParseStyle(s string) (Style, error) {
	switch cases.Fold().String(strings.TrimSpace(s)) {
	case "", "auto":
		return StyleAuto, nil
	case "text":
		return StyleText, nil
	case "glyph", "glyphs":
		return StyleGlyph, nil
	}
	return StyleAuto, fmt.Errorf("unknown keystroke style %q", s)
}

// Resolve turns StyleAuto into the concrete style for this platform.
func (s Style) Resolve() Style {
	if s != StyleAuto {
		return s
	}
	if runtime.GOOS == "darwin" {
		return StyleGlyph
	}
	return StyleText
}

func (s Style) String() string {
	switch s {
	case StyleText:
		return "text"
	case StyleGlyph:
		return "glyph"
	default:
		return "auto"
	}
}

type modToken struct {
	mod   tcell.ModMask
	text  string
	glyph string
}

// Rendering order: Control, Alt, Shift, platform key.
var modTokens = []modToken{
	{tcell.ModCtrl, "Ctrl", "⌃"},
	{tcell.ModAlt, "Alt", "⌥"},
	{tcell.ModShift, "Shift", "⇧"},
	{tcell.ModMeta, "Meta", "⌘"},
}

var upper = cases.Upper(language.Und)

// Describe renders k for tooltips and reports.
func (k Keystroke) Describe(style Style) string {
	if k.IsZero() {
		return ""
	}
	style = style.Resolve()

	parts := modifierParts(k.Mod, style)
	parts = append(parts, k.KeyName())
	return join(parts, style)
}

// DescribeModifiers renders mod without a key, e.g. "Ctrl+Shift".
func DescribeModifiers(mod tcell.ModMask, style Style) string {
	style = style.Resolve()
	return join(modifierParts(mod, style), style)
}

func modifierParts(mod tcell.ModMask, style Style) []string {
	var parts []string
	for _, t := range modTokens {
		if mod&t.mod == 0 {
			continue
		}
		if style == StyleGlyph {
			parts = append(parts, t.glyph)
		} else {
			parts = append(parts, t.text)
		}
	}
	return parts
}

func join(parts []string, style Style) string {
	if style == StyleGlyph {
		return strings.Join(parts, "")
	}
	return strings.Join(parts, "+")
}

// KeyName is the display name of the key without modifiers.
func (k Keystroke) KeyName() string {
	if k.Key == tcell.KeyRune {
		switch k.Rune {
		case ' ':
			return "Space"
		case '+':
			return "Plus"
		}
		return upper.String(string(k.Rune))
	}
	if name, ok := tcell.KeyNames[k.Key]; ok {
		return name
	}
	return fmt.Sprintf("Key[%d]", int(k.Key))
}
