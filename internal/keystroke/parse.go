package keystroke

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/cases"
)

var (
	ErrEmpty      = errors.New("empty keystroke")
	ErrNoKey      = errors.New("keystroke has modifiers but no key")
	ErrUnknownKey = errors.New("unknown key name")
)

var fold = cases.Fold()

var modifierNames = map[string]tcell.ModMask{
	"ctrl":    tcell.ModCtrl,
	"control": tcell.ModCtrl,
	"alt":     tcell.ModAlt,
	"option":  tcell.ModAlt,
	"opt":     tcell.ModAlt,
	"shift":   tcell.ModShift,
	"meta":    tcell.ModMeta,
	"cmd":     tcell.ModMeta,
	"command": tcell.ModMeta,
	"super":   tcell.ModMeta,
}

var glyphModifiers = map[rune]tcell.ModMask{
	'⌃': tcell.ModCtrl,
	'⌥': tcell.ModAlt,
	'⇧': tcell.ModShift,
	'⌘': tcell.ModMeta,
}

// keyNames maps case-folded names to symbolic keys.
var keyNames = func() map[string]tcell.Key {
	names := map[string]tcell.Key{
		"escape":    tcell.KeyEsc,
		"return":    tcell.KeyEnter,
		"pageup":    tcell.KeyPgUp,
		"pagedown":  tcell.KeyPgDn,
		"del":       tcell.KeyDelete,
		"ins":       tcell.KeyInsert,
		"backspace": tcell.KeyBackspace,
	}
	for k, name := range tcell.KeyNames {
		if strings.HasPrefix(name, "Ctrl-") || k == tcell.KeyBackspace2 {
			continue
		}
		names[fold.String(name)] = k
	}
	return names
}()

// ParseModifier maps a single modifier name ("ctrl", "meta", ...) to its bit.
func ParseModifier(name string) (tcell.ModMask, error) {
	if mod, ok := modifierNames[fold.String(strings.TrimSpace(name))]; ok {
		return mod, nil
	}
	return 0, fmt.Errorf("unknown modifier %q", name)
}

// Parse reads a keystroke written as "Ctrl+Shift+S", "alt+f4", "F1" or in
// glyph form "⌃⇧S". Matching is case-insensitive for names.
func Parse(s string) (Keystroke, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Keystroke{}, ErrEmpty
	}

	var mod tcell.ModMask
	var keyPart string

	if strings.Contains(s, "+") && s != "+" {
		parts := strings.Split(s, "+")
		// "Ctrl++" splits into ["Ctrl", "", ""]: the key is a literal plus.
		if strings.HasSuffix(s, "++") {
			parts = append(parts[:len(parts)-2], "+")
		}
		for i, part := range parts {
			part = strings.TrimSpace(part)
			if i == len(parts)-1 {
				keyPart = part
				break
			}
			m, ok := modifierNames[fold.String(part)]
			if !ok {
				return Keystroke{}, fmt.Errorf("%q: unknown modifier %q", s, part)
			}
			mod |= m
		}
	} else {
		keyPart = s
		for keyPart != "" {
			r, size := utf8.DecodeRuneInString(keyPart)
			m, ok := glyphModifiers[r]
			if !ok {
				break
			}
			mod |= m
			keyPart = keyPart[size:]
		}
	}

	if keyPart == "" {
		return Keystroke{}, fmt.Errorf("%q: %w", s, ErrNoKey)
	}
	if _, isMod := modifierNames[fold.String(keyPart)]; isMod {
		return Keystroke{}, fmt.Errorf("%q: %w", s, ErrNoKey)
	}

	if utf8.RuneCountInString(keyPart) == 1 {
		// Written letters are case-insensitive; Shift must be spelled out.
		r, _ := utf8.DecodeRuneInString(keyPart)
		return OfRune(unicode.ToLower(r), mod), nil
	}

	switch folded := fold.String(keyPart); folded {
	case "space":
		return OfRune(' ', mod), nil
	case "plus":
		return OfRune('+', mod), nil
	default:
		if k, ok := keyNames[folded]; ok {
			return OfKey(k, mod), nil
		}
	}
	return Keystroke{}, fmt.Errorf("%q: %w %q", s, ErrUnknownKey, keyPart)
}

// MustParse is Parse for literals known to be valid; it panics otherwise.
func MustParse(s string) Keystroke {
	k, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}
