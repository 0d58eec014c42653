package binding

import (
	"sort"

	"github.com/gdamore/tcell/v2"

	"autokeys/internal/keystroke"
)

// Deriver manufactures alternate keystrokes for a candidate by adding
// modifier bits it does not use yet. The baseline modifier is never added.
type Deriver struct {
	Baseline tcell.ModMask
}

// DefaultBaseline is the conventional primary shortcut modifier.
const DefaultBaseline = tcell.ModCtrl

// NewDeriver returns a deriver that never invents baseline.
func NewDeriver(baseline tcell.ModMask) Deriver {
	return Deriver{Baseline: baseline & keystroke.Alphabet}
}

// Derivable is the set of bits the deriver may add.
func (d Deriver) Derivable() tcell.ModMask {
	return keystroke.Alphabet &^ d.Baseline
}

// Subsets lists every non-empty subset of the derivable bits that does not
// overlap used, ordered by bit count and then by mask value.
func (d Deriver) Subsets(used tcell.ModMask) []tcell.ModMask {
	free := d.Derivable() &^ used

	var subsets []tcell.ModMask
	// Standard submask enumeration over free.
	for s := free; s != 0; s = (s - 1) & free {
		subsets = append(subsets, s)
	}
	sort.Slice(subsets, func(i, j int) bool {
		ci, cj := keystroke.Count(subsets[i]), keystroke.Count(subsets[j])
		if ci != cj {
			return ci < cj
		}
		return subsets[i] < subsets[j]
	})
	return subsets
}

// Derive adds one derived child to the arena for every subset from
// Subsets and returns their IDs in that order. The children share owner,
// item, action and depth with the parent. A candidate that already uses
// every derivable bit yields nothing.
func (d Deriver) Derive(arena *Arena, id ID) []ID {
	parent := *arena.Get(id)
	subsets := d.Subsets(parent.Keystroke.Mod)
	if len(subsets) == 0 {
		return nil
	}

	derived := make([]ID, 0, len(subsets))
	for _, s := range subsets {
		derived = append(derived, arena.Add(Candidate{
			Owner:     parent.Owner,
			Item:      parent.Item,
			Action:    parent.Action,
			Depth:     parent.Depth,
			Keystroke: parent.Keystroke.With(s),
			Base:      id,
		}))
	}
	return derived
}
