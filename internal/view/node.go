package view

import (
	"github.com/rivo/tview"

	"autokeys/internal/keystroke"
)

// Node is one component of a generated view tree. It pairs a tview
// primitive with the shortcut requests the component exposes.
//
// Capabilities are explicit fields rather than type assertions on the
// primitive: Items carry requested keystrokes and actions, Accelerator is
// the component's own keystroke, and a non-nil Pages marks a paged
// container whose children are pages.
type Node struct {
	Name        string
	Primitive   tview.Primitive
	Accelerator keystroke.Keystroke

	items    []*Item
	pages    *tview.Pages
	pageName string
	parent   *Node
	children []*Node
}

// NewNode creates a node for primitive p. p may be nil for purely
// structural nodes; such nodes cannot take focus.
func NewNode(name string, p tview.Primitive) *Node {
	return &Node{Name: name, Primitive: p}
}

// NewPagesNode creates a paged container node backed by pages.
func NewPagesNode(name string, pages *tview.Pages) *Node {
	return &Node{Name: name, Primitive: pages, pages: pages}
}

// Add appends child and returns n for chaining.
func (n *Node) Add(child *Node) *Node {
	child.parent = n
	n.children = append(n.children, child)
	return n
}

// AddPage appends child as a page of the paged container n. The child's
// primitive is registered with the tview pages unless a page with that name
// already exists. Calling AddPage on a non-paged node behaves like Add.
func (n *Node) AddPage(page string, child *Node, visible bool) *Node {
	if n.pages == nil {
		return n.Add(child)
	}
	child.pageName = page
	if !n.pages.HasPage(page) && child.Primitive != nil {
		n.pages.AddPage(page, child.Primitive, true, visible)
	}
	return n.Add(child)
}

// AddItem attaches menu items to n.
func (n *Node) AddItem(items ...*Item) *Node {
	n.items = append(n.items, items...)
	return n
}

// SetAccelerator sets the component-level keystroke and returns n.
func (n *Node) SetAccelerator(k keystroke.Keystroke) *Node {
	n.Accelerator = k
	return n
}

func (n *Node) Items() []*Item { return n.items }

func (n *Node) Children() []*Node { return n.children }

func (n *Node) Parent() *Node { return n.parent }

func (n *Node) Pages() *tview.Pages { return n.pages }

// IsPaged reports whether n is a paged container.
func (n *Node) IsPaged() bool {
	return n.pages != nil
}

// PageName is the page n occupies inside its paged parent, or "".
func (n *Node) PageName() string {
	return n.pageName
}

// Path returns the nodes from the root down to n, inclusive.
func (n *Node) Path() []*Node {
	var path []*Node
	for cur := n; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Depth is the nesting level of n; the root has depth 0.
func (n *Node) Depth() int {
	depth := 0
	for cur := n.parent; cur != nil; cur = cur.parent {
		depth++
	}
	return depth
}

// Walk visits n and its descendants depth-first in pre-order.
func (n *Node) Walk(fn func(node *Node, depth int)) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int), depth int) {
	fn(n, depth)
	for _, child := range n.children {
		child.walk(fn, depth+1)
	}
}

// Hides reports whether the paged container n currently hides child.
func (n *Node) Hides(child *Node) bool {
	if n.pages == nil || child.parent != n || child.pageName == "" {
		return false
	}
	front, _ := n.pages.GetFrontPage()
	return front != child.pageName
}

// ShowPage selects the page holding child. It returns false when n is not
// a paged container or child is not one of its pages.
func (n *Node) ShowPage(child *Node) bool {
	if n.pages == nil || child.parent != n || child.pageName == "" {
		return false
	}
	n.pages.SwitchToPage(child.pageName)
	return true
}

// Find returns the first node named name in pre-order, or nil.
func (n *Node) Find(name string) *Node {
	var found *Node
	n.Walk(func(node *Node, _ int) {
		if found == nil && node.Name == name {
			found = node
		}
	})
	return found
}
