package binding

import (
	"autokeys/internal/view"
)

// Collect walks the tree under root once, depth-first in pre-order, and
// files a root candidate for every requested keystroke. Items come first,
// in the order the component exposes them, followed by the component's own
// accelerator. Requests without a keystroke are skipped.
func Collect(root *view.Node, arena *Arena) *Registry {
	reg := NewRegistry()
	if root == nil {
		return reg
	}

	root.Walk(func(node *view.Node, depth int) {
		for _, item := range node.Items() {
			if item == nil || item.Keystroke.IsZero() {
				continue
			}
			c := Candidate{
				Owner:     node,
				Item:      item,
				Action:    item.Action,
				Depth:     depth,
				Keystroke: item.Keystroke,
				Base:      NoID,
			}
			reg.Insert(c.Keystroke, depth, arena.Add(c))
		}

		if !node.Accelerator.IsZero() {
			c := Candidate{
				Owner:     node,
				Depth:     depth,
				Keystroke: node.Accelerator,
				Base:      NoID,
			}
			reg.Insert(c.Keystroke, depth, arena.Add(c))
		}
	})
	return reg
}
