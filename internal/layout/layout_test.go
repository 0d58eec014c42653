package layout

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autokeys/internal/components"
	"autokeys/internal/keystroke"
	"autokeys/internal/view"
)

const small = `
name: small
root:
  name: root
  kind: flex
  children:
    - name: menu
      kind: menu
      title: File
      size: 20
      items:
        - {label: Open, keystroke: Ctrl+O, action: open}
        - {label: Close}
    - name: tabs
      kind: pages
      children:
        - name: first
          kind: text
          text: hello
        - name: second
          kind: box
          accelerator: Alt+2
`

func TestParse(t *testing.T) {
	l, err := Parse([]byte(small))
	require.NoError(t, err)

	assert.Equal(t, "small", l.Name)
	assert.Equal(t, KindFlex, l.Root.Kind)
	require.Len(t, l.Root.Children, 2)
	assert.Equal(t, 20, l.Root.Children[0].Size)
	assert.Equal(t, Item{Label: "Open", Keystroke: "Ctrl+O", Action: "open"}, l.Root.Children[0].Items[0])

	var names []string
	l.Root.Walk(func(c *Component, depth int) {
		names = append(names, c.Name)
	})
	assert.Equal(t, []string{"root", "menu", "tabs", "first", "second"}, names)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		want error
	}{
		{"unknown kind", "root: {name: r, kind: tree}", ErrUnknownKind},
		{"missing root", "name: x", ErrInvalid},
		{"missing name", "root: {kind: flex, children: [{kind: box}]}", ErrInvalid},
		{"duplicate name", "root: {name: r, kind: flex, children: [{name: r, kind: box}]}", ErrInvalid},
		{"leaf with children", "root: {name: r, kind: text, children: [{name: c, kind: box}]}", ErrInvalid},
		{"bad direction", "root: {name: r, kind: flex, direction: diagonal}", ErrInvalid},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			assert.ErrorIs(t, err, tt.want)
		})
	}

	_, err := Parse([]byte("root: ["))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "layout.yaml")
	require.NoError(t, os.WriteFile(path, []byte(small), 0o644))

	l, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "small", l.Name)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestBuild(t *testing.T) {
	l, err := Parse([]byte(small))
	require.NoError(t, err)

	var requested []string
	actions := ActionsFunc(func(owner string, item Item) (view.Action, error) {
		requested = append(requested, owner+"/"+item.Action)
		return view.ActionFunc(func(*tcell.EventKey) {}), nil
	})

	root, err := Build(l, actions)
	require.NoError(t, err)
	assert.Equal(t, []string{"menu/open"}, requested)

	menuNode := root.Find("menu")
	require.NotNil(t, menuNode)
	require.Len(t, menuNode.Items(), 2)
	assert.Equal(t, keystroke.MustParse("Ctrl+O"), menuNode.Items()[0].Keystroke)
	assert.NotNil(t, menuNode.Items()[0].Action)
	assert.True(t, menuNode.Items()[1].Keystroke.IsZero())
	assert.Nil(t, menuNode.Items()[1].Action)

	menu, ok := menuNode.Primitive.(*components.Menu)
	require.True(t, ok)
	assert.Equal(t, 2, menu.GetItemCount())

	tabs := root.Find("tabs")
	require.True(t, tabs.IsPaged())
	first, second := root.Find("first"), root.Find("second")
	assert.False(t, tabs.Hides(first))
	assert.True(t, tabs.Hides(second))
	assert.Equal(t, keystroke.MustParse("Alt+2"), second.Accelerator)
	assert.Equal(t, 2, second.Depth())

	text, ok := first.Primitive.(*tview.TextView)
	require.True(t, ok)
	assert.Equal(t, "hello", text.GetText(true))
}

func TestBuildErrors(t *testing.T) {
	bad := &Layout{Root: Component{Name: "r", Kind: KindMenu, Items: []Item{{Label: "x", Keystroke: "Ctrl+Nope"}}}}
	_, err := Build(bad, nil)
	assert.ErrorIs(t, err, keystroke.ErrUnknownKey)

	unknown := &Layout{Root: Component{Name: "r", Kind: KindMenu, Items: []Item{{Label: "x", Action: "launch"}}}}
	failing := ActionsFunc(func(owner string, item Item) (view.Action, error) {
		return nil, ErrUnknownAction
	})
	_, err = Build(unknown, failing)
	assert.ErrorIs(t, err, ErrUnknownAction)
}

func TestDemo(t *testing.T) {
	l := Demo()
	root, err := Build(l, NoopActions)
	require.NoError(t, err)

	assert.NotNil(t, root.Find("editor-menu"))
	assert.True(t, root.Find("workspace").IsPaged())
}
