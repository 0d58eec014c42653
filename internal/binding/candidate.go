package binding

import (
	"autokeys/internal/keystroke"
	"autokeys/internal/view"
)

// ID indexes a candidate inside its Arena.
type ID int

// NoID marks the absence of a base: the candidate is a lineage root.
const NoID ID = -1

// Candidate is a requested binding of a keystroke at some depth, possibly
// derived from another candidate by adding modifier bits.
type Candidate struct {
	Owner     *view.Node
	Item      *view.Item  // nil for a bare component accelerator
	Action    view.Action // nil when the request is not invokable
	Depth     int
	Keystroke keystroke.Keystroke
	Assigned  bool

	Base    ID
	Derived []ID
}

// IsRoot reports whether c was requested directly rather than derived.
func (c *Candidate) IsRoot() bool {
	return c.Base == NoID
}

// Label names the request for logs and reports.
func (c *Candidate) Label() string {
	switch {
	case c.Item != nil && c.Owner != nil:
		return c.Owner.Name + "/" + c.Item.Label
	case c.Item != nil:
		return c.Item.Label
	case c.Owner != nil:
		return c.Owner.Name
	}
	return "?"
}

// Arena owns every candidate created during one resolution run. Lineage
// links are IDs into the arena, so walking a lineage never chases
// pointers between candidates.
type Arena struct {
	candidates []Candidate
}

// NewArena returns an empty arena.
func NewArena() *Arena {
	return &Arena{}
}

// Add stores c as a new root or derived candidate and returns its ID. When
// c.Base is set, the new ID is appended to the base's Derived list.
func (a *Arena) Add(c Candidate) ID {
	id := ID(len(a.candidates))
	c.Derived = nil
	a.candidates = append(a.candidates, c)
	if c.Base != NoID {
		base := &a.candidates[c.Base]
		base.Derived = append(base.Derived, id)
	}
	return id
}

// Get returns the candidate for id. The pointer stays valid until the next
// Add.
func (a *Arena) Get(id ID) *Candidate {
	return &a.candidates[id]
}

// Len is the number of candidates in the arena.
func (a *Arena) Len() int {
	return len(a.candidates)
}

// Root follows Base links from id to its lineage root.
func (a *Arena) Root(id ID) ID {
	for a.candidates[id].Base != NoID {
		id = a.candidates[id].Base
	}
	return id
}

// Lineage returns root and every descendant of root, breadth-first.
func (a *Arena) Lineage(root ID) []ID {
	ids := []ID{root}
	for i := 0; i < len(ids); i++ {
		ids = append(ids, a.candidates[ids[i]].Derived...)
	}
	return ids
}

// MarkAssigned flags the whole lineage containing id as assigned, which
// stops it from producing further derivations.
func (a *Arena) MarkAssigned(id ID) {
	for _, member := range a.Lineage(a.Root(id)) {
		a.candidates[member].Assigned = true
	}
}

// Roots returns every lineage root in creation order.
func (a *Arena) Roots() []ID {
	var roots []ID
	for i := range a.candidates {
		if a.candidates[i].Base == NoID {
			roots = append(roots, ID(i))
		}
	}
	return roots
}
