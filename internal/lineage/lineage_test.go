package lineage

import (
	"bytes"
	"context"
	"fmt"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autokeys/internal/binding"
	"autokeys/internal/keystroke"
	"autokeys/internal/view"
)

func resolve(root *view.Node) *binding.Result {
	arena := binding.NewArena()
	reg := binding.Collect(root, arena)
	return binding.NewResolver(binding.NewDeriver(tcell.ModCtrl)).Resolve(arena, reg)
}

func noop() view.Action {
	return view.ActionFunc(func(*tcell.EventKey) {})
}

// saveConflict requests Ctrl+S twice; the shallow request loses and moves
// to Ctrl+Shift+S.
func saveConflict() *binding.Result {
	ctrlS := keystroke.OfRune('s', tcell.ModCtrl)
	root := view.NewNode("root", nil).AddItem(view.NewItem("Save all", ctrlS, noop()))
	root.Add(view.NewNode("editor", nil).AddItem(view.NewItem("Save", ctrlS, noop())))
	return resolve(root)
}

func TestBuild(t *testing.T) {
	res := saveConflict()
	g, err := Build(res)
	require.NoError(t, err)

	assert.Equal(t, []string{"c0", "c1"}, g.Roots())

	edges, err := g.Size()
	require.NoError(t, err)
	assert.Equal(t, 7, edges, "the shallow request derives every modifier subset")

	descendants, err := g.Descendants("c0")
	require.NoError(t, err)
	assert.Len(t, descendants, 8)
	assert.Equal(t, "c0", descendants[0])

	leaf, err := g.Descendants("c1")
	require.NoError(t, err)
	assert.Equal(t, []string{"c1"}, leaf)

	edge, err := g.Edge("c0", "c2")
	require.NoError(t, err)
	assert.Equal(t, "+Shift", edge.Properties.Attributes["label"])

	_, winner, err := g.VertexWithProperties("c2")
	require.NoError(t, err)
	assert.Equal(t, colorWinner, winner.Attributes["fillcolor"])
	assert.Equal(t, "root/Save all\\nCtrl+Shift+S (depth 0)", winner.Attributes["label"])

	_, pending, err := g.VertexWithProperties("c3")
	require.NoError(t, err)
	assert.Equal(t, colorPending, pending.Attributes["fillcolor"])
}

func TestBuildMarksUnassigned(t *testing.T) {
	root := view.NewNode("root", nil)
	for i := 0; i < 9; i++ {
		root.AddItem(view.NewItem(fmt.Sprintf("Item %d", i), keystroke.OfRune('x', tcell.ModCtrl), noop()))
	}
	res := resolve(root)
	require.NotEmpty(t, res.Unassigned)

	g, err := Build(res)
	require.NoError(t, err)

	_, props, err := g.VertexWithProperties(VertexName(res.Unassigned[0]))
	require.NoError(t, err)
	assert.Equal(t, colorUnassigned, props.Attributes["fillcolor"])
}

func TestOrderIsTopological(t *testing.T) {
	g, err := Build(saveConflict())
	require.NoError(t, err)

	order, err := g.Order()
	require.NoError(t, err)
	require.Len(t, order, 9)
	assert.Equal(t, "c0", order[0])

	pos := make(map[string]int, len(order))
	for i, name := range order {
		pos[name] = i
	}
	for i := 2; i < 9; i++ {
		assert.Less(t, pos["c0"], pos[fmt.Sprintf("c%d", i)])
	}
}

func TestWriteDOT(t *testing.T) {
	g, err := Build(saveConflict())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Render(context.Background(), &buf, FormatDOT))
	out := buf.String()
	assert.Contains(t, out, "digraph")
	assert.Contains(t, out, `"c0" -> "c2"`)
	assert.Contains(t, out, "rankdir")
}

func TestRenderSVG(t *testing.T) {
	g, err := Build(saveConflict())
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, g.Render(context.Background(), &buf, FormatSVG))
	assert.Contains(t, buf.String(), "<svg")
}

func TestParseFormat(t *testing.T) {
	f, err := ParseFormat("png")
	require.NoError(t, err)
	assert.Equal(t, FormatPNG, f)

	_, err = ParseFormat("gif")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}
