package layout

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"autokeys/internal/keystroke"
	"autokeys/internal/theme"
	"autokeys/internal/view"
)

// ErrUnknownAction is returned by Actions implementations for action names
// they do not provide.
var ErrUnknownAction = errors.New("unknown action")

// Actions turns an item's action name into something invokable.
type Actions interface {
	Action(owner string, item Item) (view.Action, error)
}

// ActionsFunc adapts a function to Actions.
type ActionsFunc func(owner string, item Item) (view.Action, error)

// Action calls f(owner, item).
func (f ActionsFunc) Action(owner string, item Item) (view.Action, error) {
	return f(owner, item)
}

// NoopActions gives every named action an action that does nothing. Items
// stay invokable, which is enough for resolving and reporting.
var NoopActions = ActionsFunc(func(string, Item) (view.Action, error) {
	return view.ActionFunc(func(*tcell.EventKey) {}), nil
})

type framed interface {
	SetBorder(show bool) *tview.Box
	SetTitle(title string) *tview.Box
}

// Build creates the tview widgets and the view tree for l. Items whose
// action name is empty are not invokable; with a nil Actions every item is
// left without an action.
func Build(l *Layout, actions Actions) (*view.Node, error) {
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return build(&l.Root, actions)
}

func build(c *Component, actions Actions) (*view.Node, error) {
	node, err := newNode(c)
	if err != nil {
		return nil, err
	}

	if c.Accelerator != "" {
		k, err := keystroke.Parse(c.Accelerator)
		if err != nil {
			return nil, fmt.Errorf("component %q accelerator: %w", c.Name, err)
		}
		node.SetAccelerator(k)
	}

	for _, it := range c.Items {
		item, err := newItem(c.Name, it, actions)
		if err != nil {
			return nil, err
		}
		node.AddItem(item)
	}
	if menu, ok := node.Primitive.(interface{ SetItems([]*view.Item) }); ok {
		menu.SetItems(node.Items())
	}

	for i := range c.Children {
		child, err := build(&c.Children[i], actions)
		if err != nil {
			return nil, err
		}
		attach(c, node, child, i)
	}
	return node, nil
}

func newNode(c *Component) (*view.Node, error) {
	var node *view.Node
	border := false

	switch c.Kind {
	case KindFlex:
		flex := theme.NewFlex()
		if c.Direction == "row" {
			flex.SetDirection(tview.FlexRow)
		}
		node = view.NewNode(c.Name, flex)
	case KindPages:
		node = view.NewPagesNode(c.Name, theme.NewPages())
	case KindMenu:
		menu := theme.NewMenu()
		node = view.NewNode(c.Name, menu)
		border = true
	case KindText:
		text := theme.NewTextView()
		text.SetText(c.Text)
		node = view.NewNode(c.Name, text)
		border = true
	case KindInput:
		input := theme.NewInputField()
		input.SetLabel(c.Text)
		node = view.NewNode(c.Name, input)
	case KindBox:
		node = view.NewNode(c.Name, theme.NewBox())
		border = true
	default:
		return nil, fmt.Errorf("component %q: %w %q", c.Name, ErrUnknownKind, c.Kind)
	}

	if c.Border != nil {
		border = *c.Border
	}
	if f, ok := node.Primitive.(framed); ok {
		f.SetBorder(border || c.Title != "")
		if c.Title != "" {
			f.SetTitle(" " + c.Title + " ")
		}
	}
	return node, nil
}

func newItem(owner string, it Item, actions Actions) (*view.Item, error) {
	var k keystroke.Keystroke
	if it.Keystroke != "" {
		var err error
		k, err = keystroke.Parse(it.Keystroke)
		if err != nil {
			return nil, fmt.Errorf("component %q item %q: %w", owner, it.Label, err)
		}
	}

	var action view.Action
	if it.Action != "" && actions != nil {
		var err error
		action, err = actions.Action(owner, it)
		if err != nil {
			return nil, fmt.Errorf("component %q item %q: %w", owner, it.Label, err)
		}
	}
	return view.NewItem(it.Label, k, action), nil
}

// attach links child under parent, as a page when parent is paged and as a
// flex item when parent is a flex. The first page starts visible.
func attach(c *Component, parent, child *view.Node, index int) {
	if parent.IsPaged() {
		parent.AddPage(child.Name, child, index == 0)
		return
	}
	if flex, ok := parent.Primitive.(*tview.Flex); ok {
		size := c.Children[index].Size
		proportion := 1
		if size > 0 {
			proportion = 0
		}
		flex.AddItem(child.Primitive, size, proportion, false)
	}
	parent.Add(child)
}
