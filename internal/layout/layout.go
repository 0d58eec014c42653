package layout

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrUnknownKind is returned for a component kind the builder cannot
	// construct.
	ErrUnknownKind = errors.New("unknown component kind")
	// ErrInvalid is returned for structurally invalid layouts.
	ErrInvalid = errors.New("invalid layout")
)

// Component kinds.
const (
	KindFlex  = "flex"
	KindPages = "pages"
	KindMenu  = "menu"
	KindText  = "text"
	KindInput = "input"
	KindBox   = "box"
)

// Layout is a component tree description loaded from YAML.
type Layout struct {
	Name string    `yaml:"name"`
	Root Component `yaml:"root"`
}

// Component describes one node of the tree.
type Component struct {
	Name        string      `yaml:"name"`
	Kind        string      `yaml:"kind"`
	Title       string      `yaml:"title,omitempty"`
	Text        string      `yaml:"text,omitempty"`
	Direction   string      `yaml:"direction,omitempty"` // flex: row or column
	Size        int         `yaml:"size,omitempty"`      // fixed size inside a flex parent
	Border      *bool       `yaml:"border,omitempty"`
	Accelerator string      `yaml:"accelerator,omitempty"`
	Items       []Item      `yaml:"items,omitempty"`
	Children    []Component `yaml:"children,omitempty"`
}

// Item describes a menu entry with an optional requested keystroke.
type Item struct {
	Label     string `yaml:"label"`
	Keystroke string `yaml:"keystroke,omitempty"`
	Action    string `yaml:"action,omitempty"`
	Arg       string `yaml:"arg,omitempty"`
}

// Load reads and validates a layout file.
func Load(path string) (*Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read layout: %w", err)
	}
	l, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return l, nil
}

// Parse decodes and validates a YAML layout.
func Parse(data []byte) (*Layout, error) {
	var l Layout
	if err := yaml.Unmarshal(data, &l); err != nil {
		return nil, fmt.Errorf("failed to parse layout: %w", err)
	}
	if err := l.Validate(); err != nil {
		return nil, err
	}
	return &l, nil
}

// Validate checks names and kinds. Component names must be unique because
// pages and reports refer to components by name.
func (l *Layout) Validate() error {
	if l.Root.Kind == "" && l.Root.Name == "" {
		return fmt.Errorf("%w: missing root component", ErrInvalid)
	}
	seen := make(map[string]bool)
	return l.Root.validate(seen)
}

func (c *Component) validate(seen map[string]bool) error {
	if c.Name == "" {
		return fmt.Errorf("%w: %s component without a name", ErrInvalid, c.Kind)
	}
	if seen[c.Name] {
		return fmt.Errorf("%w: duplicate component name %q", ErrInvalid, c.Name)
	}
	seen[c.Name] = true

	switch c.Kind {
	case KindFlex, KindPages:
	case KindMenu, KindText, KindInput, KindBox:
		if len(c.Children) > 0 {
			return fmt.Errorf("%w: %s component %q cannot have children", ErrInvalid, c.Kind, c.Name)
		}
	default:
		return fmt.Errorf("component %q: %w %q", c.Name, ErrUnknownKind, c.Kind)
	}

	if c.Direction != "" && c.Direction != "row" && c.Direction != "column" {
		return fmt.Errorf("%w: component %q has direction %q, want row or column", ErrInvalid, c.Name, c.Direction)
	}

	for i := range c.Children {
		if err := c.Children[i].validate(seen); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits c and its descendants in pre-order.
func (c *Component) Walk(fn func(c *Component, depth int)) {
	c.walk(fn, 0)
}

func (c *Component) walk(fn func(c *Component, depth int), depth int) {
	fn(c, depth)
	for i := range c.Children {
		c.Children[i].walk(fn, depth+1)
	}
}
