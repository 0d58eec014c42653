// Package lineage draws the derivation forest of a resolution run: every
// requested keystroke, the variants derived from it and which of them won.
package lineage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"

	"github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
	"github.com/goccy/go-graphviz"

	"autokeys/internal/binding"
	"autokeys/internal/keystroke"
)

// ErrUnknownFormat is returned by ParseFormat.
var ErrUnknownFormat = errors.New("unknown output format")

// Format is an output format for Render.
type Format string

const (
	FormatDOT Format = "dot"
	FormatSVG Format = "svg"
	FormatPNG Format = "png"
)

// ParseFormat accepts dot, svg and png.
func ParseFormat(s string) (Format, error) {
	switch f := Format(s); f {
	case FormatDOT, FormatSVG, FormatPNG:
		return f, nil
	}
	return "", fmt.Errorf("%w %q (want dot, svg or png)", ErrUnknownFormat, s)
}

// Fill colors by outcome.
const (
	colorWinner     = "palegreen"
	colorUnassigned = "lightcoral"
	colorPending    = "white"
)

// Graph is the derivation forest of one run keyed by vertex name.
type Graph struct {
	graph.Graph[string, binding.ID]
	res *binding.Result
}

// VertexName names the vertex of a candidate.
func VertexName(id binding.ID) string {
	return fmt.Sprintf("c%d", id)
}

// Build creates the forest for res. Edges run from a candidate to each
// variant derived from it.
func Build(res *binding.Result) (*Graph, error) {
	g := graph.New(VertexName, graph.Directed(), graph.Acyclic())

	winners := make(map[binding.ID]bool, len(res.Claimed))
	for _, id := range res.Claimed {
		winners[id] = true
	}
	unassigned := make(map[binding.ID]bool, len(res.Unassigned))
	for _, id := range res.Unassigned {
		unassigned[id] = true
	}

	arena := res.Arena
	for i := 0; i < arena.Len(); i++ {
		id := binding.ID(i)
		c := arena.Get(id)

		fill := colorPending
		switch {
		case winners[id]:
			fill = colorWinner
		case unassigned[arena.Root(id)]:
			fill = colorUnassigned
		}

		err := g.AddVertex(id,
			graph.VertexAttribute("label", vertexLabel(c)),
			graph.VertexAttribute("fillcolor", fill),
			graph.VertexAttribute("style", "filled"),
			graph.VertexAttribute("shape", "box"),
		)
		if err != nil {
			return nil, fmt.Errorf("failed to add candidate %d: %w", id, err)
		}
	}

	for i := 0; i < arena.Len(); i++ {
		c := arena.Get(binding.ID(i))
		if c.IsRoot() {
			continue
		}
		base := arena.Get(c.Base)
		added := keystroke.DescribeModifiers(c.Keystroke.Mod&^base.Keystroke.Mod, keystroke.StyleText)
		err := g.AddEdge(VertexName(c.Base), VertexName(binding.ID(i)),
			graph.EdgeAttribute("label", "+"+added))
		if err != nil {
			return nil, fmt.Errorf("failed to link candidate %d: %w", i, err)
		}
	}

	return &Graph{Graph: g, res: res}, nil
}

func vertexLabel(c *binding.Candidate) string {
	return fmt.Sprintf("%s\\n%s (depth %d)", c.Label(), c.Keystroke.Describe(keystroke.StyleText), c.Depth)
}

// Roots returns the vertex names of every requested keystroke in request
// order.
func (g *Graph) Roots() []string {
	roots := g.res.Arena.Roots()
	out := make([]string, len(roots))
	for i, id := range roots {
		out[i] = VertexName(id)
	}
	return out
}

// Descendants lists the vertices reachable from root, breadth-first, root
// included.
func (g *Graph) Descendants(root string) ([]string, error) {
	var out []string
	err := graph.BFS(g.Graph, root, func(name string) bool {
		out = append(out, name)
		return false
	})
	return out, err
}

// Order returns a topological order of the forest with ties broken by
// vertex name.
func (g *Graph) Order() ([]string, error) {
	return graph.StableTopologicalSort(g.Graph, func(a, b string) bool {
		return lessName(a, b)
	})
}

func lessName(a, b string) bool {
	if len(a) != len(b) {
		return len(a) < len(b)
	}
	return a < b
}

// WriteDOT writes the forest in Graphviz DOT syntax.
func (g *Graph) WriteDOT(w io.Writer) error {
	return draw.DOT(g.Graph, w, draw.GraphAttribute("rankdir", "LR"))
}

// Render writes the forest to w in format f. DOT is written directly; SVG
// and PNG are laid out by the embedded Graphviz.
func (g *Graph) Render(ctx context.Context, w io.Writer, f Format) error {
	if f == FormatDOT {
		return g.WriteDOT(w)
	}

	gv, err := graphviz.New(ctx)
	if err != nil {
		return fmt.Errorf("failed to create graphviz instance: %w", err)
	}
	defer gv.Close()

	gvGraph, err := gv.Graph()
	if err != nil {
		return fmt.Errorf("failed to create graphviz graph: %w", err)
	}
	defer gvGraph.Close()

	gvGraph.Set("rankdir", "LR")

	adjacency, err := g.AdjacencyMap()
	if err != nil {
		return fmt.Errorf("failed to get adjacency map: %w", err)
	}

	names := make([]string, 0, len(adjacency))
	for name := range adjacency {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return lessName(names[i], names[j]) })

	nodes := make(map[string]*graphviz.Node, len(names))
	for _, name := range names {
		_, props, err := g.VertexWithProperties(name)
		if err != nil {
			return err
		}
		node, err := gvGraph.CreateNodeByName(name)
		if err != nil {
			return fmt.Errorf("failed to create node %s: %w", name, err)
		}
		node.SetLabel(props.Attributes["label"])
		node.SetFillColor(props.Attributes["fillcolor"])
		node.SetShape("box")
		node.SetStyle("filled")
		nodes[name] = node
	}

	for _, source := range names {
		targets := make([]string, 0, len(adjacency[source]))
		for target := range adjacency[source] {
			targets = append(targets, target)
		}
		sort.Slice(targets, func(i, j int) bool { return lessName(targets[i], targets[j]) })

		for _, target := range targets {
			edge, err := gvGraph.CreateEdgeByName("", nodes[source], nodes[target])
			if err != nil {
				return fmt.Errorf("failed to create edge %s -> %s: %w", source, target, err)
			}
			edge.SetLabel(adjacency[source][target].Properties.Attributes["label"])
		}
	}

	var format graphviz.Format
	switch f {
	case FormatSVG:
		format = graphviz.SVG
	case FormatPNG:
		format = graphviz.PNG
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, f)
	}
	if err := gv.Render(ctx, gvGraph, format, w); err != nil {
		return fmt.Errorf("failed to render %s: %w", f, err)
	}
	return nil
}
