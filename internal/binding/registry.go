package binding

import (
	"sort"

	"autokeys/internal/keystroke"
)

// Registry maps each requested keystroke to its candidates grouped by
// depth. Keys and the candidates inside a depth bucket keep insertion
// order, which serves as the tie-break during resolution.
//
// A Registry belongs to a single resolution run.
type Registry struct {
	seq     int
	buckets map[keystroke.Keystroke]*bucket
}

type bucket struct {
	seq    int
	depths map[int][]ID
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{buckets: make(map[keystroke.Keystroke]*bucket)}
}

// Insert files id under k at depth.
func (r *Registry) Insert(k keystroke.Keystroke, depth int, id ID) {
	b, ok := r.buckets[k]
	if !ok {
		b = &bucket{seq: r.seq, depths: make(map[int][]ID)}
		r.seq++
		r.buckets[k] = b
	}
	b.depths[depth] = append(b.depths[depth], id)
}

// Len is the number of keystrokes with at least one candidate.
func (r *Registry) Len() int {
	return len(r.buckets)
}

// Has reports whether k has a bucket.
func (r *Registry) Has(k keystroke.Keystroke) bool {
	_, ok := r.buckets[k]
	return ok
}

// Keys returns the keystrokes in the order their buckets were created.
func (r *Registry) Keys() []keystroke.Keystroke {
	keys := make([]keystroke.Keystroke, 0, len(r.buckets))
	for k := range r.buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		return r.buckets[keys[i]].seq < r.buckets[keys[j]].seq
	})
	return keys
}

// Depths returns the depths present under k, deepest first.
func (r *Registry) Depths(k keystroke.Keystroke) []int {
	b, ok := r.buckets[k]
	if !ok {
		return nil
	}
	depths := make([]int, 0, len(b.depths))
	for d := range b.depths {
		depths = append(depths, d)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(depths)))
	return depths
}

// At returns the candidates filed under k at depth, in insertion order.
func (r *Registry) At(k keystroke.Keystroke, depth int) []ID {
	if b, ok := r.buckets[k]; ok {
		return b.depths[depth]
	}
	return nil
}

// Candidates returns every candidate under k, deepest depth first and
// insertion order within a depth.
func (r *Registry) Candidates(k keystroke.Keystroke) []ID {
	var ids []ID
	for _, d := range r.Depths(k) {
		ids = append(ids, r.At(k, d)...)
	}
	return ids
}

// TakeWinner removes and returns the first candidate at the deepest depth
// under k. ok is false when k has no candidates.
func (r *Registry) TakeWinner(k keystroke.Keystroke) (id ID, ok bool) {
	depths := r.Depths(k)
	if len(depths) == 0 {
		return NoID, false
	}
	b := r.buckets[k]
	deepest := depths[0]
	ids := r.At(k, deepest)
	id = ids[0]
	if len(ids) == 1 {
		delete(b.depths, deepest)
	} else {
		b.depths[deepest] = ids[1:]
	}
	return id, true
}

// Delete drops k and all its candidates.
func (r *Registry) Delete(k keystroke.Keystroke) {
	delete(r.buckets, k)
}

// Prune removes every candidate for which drop returns true, then drops
// empty depth buckets and empty keystroke buckets.
func (r *Registry) Prune(drop func(ID) bool) {
	for k, b := range r.buckets {
		for d, ids := range b.depths {
			kept := ids[:0]
			for _, id := range ids {
				if !drop(id) {
					kept = append(kept, id)
				}
			}
			if len(kept) == 0 {
				delete(b.depths, d)
			} else {
				b.depths[d] = kept
			}
		}
		if len(b.depths) == 0 {
			delete(r.buckets, k)
		}
	}
}
