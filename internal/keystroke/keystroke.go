package keystroke

import (
	"math/bits"
	"unicode"

	"github.com/gdamore/tcell/v2"
)

// Alphabet is the fixed set of modifier bits a keystroke can carry.
const Alphabet = tcell.ModShift | tcell.ModCtrl | tcell.ModAlt | tcell.ModMeta

// Keystroke identifies a physical key combination. Key is tcell.KeyRune
// exactly when Rune is set; otherwise Key is a symbolic key code.
//
// The zero value means "no keystroke requested".
type Keystroke struct {
	Key  tcell.Key
	Rune rune
	Mod  tcell.ModMask
}

// OfRune builds a keystroke for a literal character. Upper-case letters are
// stored lower case with Shift added, matching what terminals deliver.
func OfRune(r rune, mod tcell.ModMask) Keystroke {
	return normalize(tcell.KeyRune, r, mod)
}

// OfKey builds a keystroke for a symbolic key such as tcell.KeyF1.
func OfKey(k tcell.Key, mod tcell.ModMask) Keystroke {
	return normalize(k, 0, mod)
}

// FromEvent converts a tcell key event into the keystroke it represents.
func FromEvent(ev *tcell.EventKey) Keystroke {
	if ev == nil {
		return Keystroke{}
	}
	return normalize(ev.Key(), ev.Rune(), ev.Modifiers())
}

func normalize(k tcell.Key, r rune, mod tcell.ModMask) Keystroke {
	mod &= Alphabet

	// tcell reports Ctrl+letter as a dedicated key code. Tab, Enter,
	// Backspace and Esc share codes with Ctrl+I/M/H/[ on older tcell
	// releases and stay symbolic.
	if k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ && !typeable(k) {
		r = 'a' + rune(k-tcell.KeyCtrlA)
		k = tcell.KeyRune
		mod |= tcell.ModCtrl
	}
	// Ctrl+Space arrives as NUL.
	if k == tcell.KeyCtrlSpace {
		r = ' '
		k = tcell.KeyRune
		mod |= tcell.ModCtrl
	}
	if k == tcell.KeyBackspace2 {
		k = tcell.KeyBackspace
	}

	if k != tcell.KeyRune {
		return Keystroke{Key: k, Mod: mod}
	}
	if r == 0 {
		return Keystroke{}
	}
	if unicode.IsUpper(r) {
		r = unicode.ToLower(r)
		mod |= tcell.ModShift
	}
	return Keystroke{Key: tcell.KeyRune, Rune: r, Mod: mod}
}

func typeable(k tcell.Key) bool {
	switch k {
	case tcell.KeyTab, tcell.KeyEnter, tcell.KeyBackspace, tcell.KeyEsc:
		return true
	}
	return false
}

// IsZero reports whether no keystroke is set.
func (k Keystroke) IsZero() bool {
	return k == Keystroke{}
}

// With returns k with the given modifier bits added.
func (k Keystroke) With(mod tcell.ModMask) Keystroke {
	k.Mod |= mod & Alphabet
	return k
}

// Bits is the number of modifier bits set on k.
func (k Keystroke) Bits() int {
	return Count(k.Mod)
}

// Count returns the number of alphabet bits set in mod.
func Count(mod tcell.ModMask) int {
	return bits.OnesCount16(uint16(mod & Alphabet))
}

// Event synthesizes a key event for k. Actions receive it when invoked
// through a shortcut.
func (k Keystroke) Event() *tcell.EventKey {
	if k.Key == tcell.KeyRune {
		r := k.Rune
		if k.Mod&tcell.ModShift != 0 {
			r = unicode.ToUpper(r)
		}
		return tcell.NewEventKey(tcell.KeyRune, r, k.Mod)
	}
	return tcell.NewEventKey(k.Key, 0, k.Mod)
}

// String renders k in the textual style, e.g. "Ctrl+Shift+S".
func (k Keystroke) String() string {
	return k.Describe(StyleText)
}

// Less orders keystrokes by modifier count, then modifier mask, then key.
// Used for stable report output.
func Less(a, b Keystroke) bool {
	if a.Bits() != b.Bits() {
		return a.Bits() < b.Bits()
	}
	if a.Mod != b.Mod {
		return a.Mod < b.Mod
	}
	if a.Key != b.Key {
		return a.Key < b.Key
	}
	return a.Rune < b.Rune
}
