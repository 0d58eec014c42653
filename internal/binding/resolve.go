package binding

import (
	"sort"

	"autokeys/internal/keystroke"
	"autokeys/internal/log"
)

// Result is the outcome of one resolution run.
type Result struct {
	Arena *Arena

	// Assigned lists the winning candidates in the order they won. No two
	// share a keystroke.
	Assigned []ID

	// Claimed is the set of keystrokes occupied by Assigned.
	Claimed map[keystroke.Keystroke]ID

	// Unassigned lists the lineage roots that never received a keystroke.
	Unassigned []ID

	// Passes counts iterations of the outer loop.
	Passes int
}

// Lookup returns the candidate holding k.
func (r *Result) Lookup(k keystroke.Keystroke) (*Candidate, bool) {
	id, ok := r.Claimed[k]
	if !ok {
		return nil, false
	}
	return r.Arena.Get(id), true
}

// AssignedFor returns the keystroke the lineage rooted at root ended up
// with.
func (r *Result) AssignedFor(root ID) (keystroke.Keystroke, bool) {
	for _, id := range r.Assigned {
		if r.Arena.Root(id) == root {
			return r.Arena.Get(id).Keystroke, true
		}
	}
	return keystroke.Keystroke{}, false
}

// Resolver assigns at most one candidate per keystroke. Deeper candidates
// beat shallower ones; losers are re-filed under derived keystrokes.
type Resolver struct {
	Deriver Deriver
}

// NewResolver returns a resolver that never derives the baseline modifier.
func NewResolver(d Deriver) *Resolver {
	return &Resolver{Deriver: d}
}

// Resolve consumes reg. Candidates referenced by reg must live in arena.
//
// Each pass visits the keystrokes present at the start of the pass, fewest
// modifiers first. For every keystroke not yet claimed, the first
// candidate at the deepest depth wins and its whole lineage is marked
// assigned. Every other live candidate in that bucket derives variants
// with extra modifiers, skipping keystrokes already claimed. Derivation
// strictly grows the modifier count, so the loop terminates.
func (r *Resolver) Resolve(arena *Arena, reg *Registry) *Result {
	res := &Result{
		Arena:   arena,
		Claimed: make(map[keystroke.Keystroke]ID),
	}

	for reg.Len() > 0 {
		res.Passes++
		progressed := false

		order := reg.Keys()
		sort.SliceStable(order, func(i, j int) bool {
			return order[i].Bits() < order[j].Bits()
		})

		for _, k := range order {
			if _, claimed := res.Claimed[k]; claimed {
				reg.Delete(k)
				continue
			}
			if !reg.Has(k) {
				// emptied by an earlier prune in this pass
				continue
			}

			winner, ok := reg.TakeWinner(k)
			if !ok {
				reg.Delete(k)
				continue
			}
			arena.MarkAssigned(winner)
			res.Assigned = append(res.Assigned, winner)
			res.Claimed[k] = winner
			log.Debug("shortcut assigned", "keystroke", k.String(), "request", arena.Get(winner).Label(), "depth", arena.Get(winner).Depth)

			for _, loser := range reg.Candidates(k) {
				if arena.Get(loser).Assigned {
					continue
				}
				for _, v := range r.Deriver.Derive(arena, loser) {
					c := arena.Get(v)
					if _, claimed := res.Claimed[c.Keystroke]; claimed {
						continue
					}
					reg.Insert(c.Keystroke, c.Depth, v)
				}
			}

			reg.Delete(k)
			reg.Prune(func(id ID) bool { return arena.Get(id).Assigned })
			progressed = true
		}

		if !progressed {
			break
		}
	}

	for _, root := range arena.Roots() {
		if !arena.Get(root).Assigned {
			res.Unassigned = append(res.Unassigned, root)
			log.Info("shortcut request exhausted", "keystroke", arena.Get(root).Keystroke.String(), "request", arena.Get(root).Label())
		}
	}
	return res
}
