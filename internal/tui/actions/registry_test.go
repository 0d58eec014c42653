package actions

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"autokeys/internal/layout"
)

type fakeApp struct {
	shown   []string
	status  []string
	rebinds int
	helps   int
	exits   int
	showErr error
}

func (a *fakeApp) ShowComponent(name string) error {
	a.shown = append(a.shown, name)
	return a.showErr
}

func (a *fakeApp) SetStatus(message string) { a.status = append(a.status, message) }

func (a *fakeApp) Rebind() { a.rebinds++ }

func (a *fakeApp) ShowHelp() { a.helps++ }

func (a *fakeApp) Exit() { a.exits++ }

func TestNames(t *testing.T) {
	r := NewRegistry(&fakeApp{})
	assert.Equal(t, []string{"help", "quit", "rebind", "show", "status"}, r.Names())
}

func TestActionInvokesHandler(t *testing.T) {
	app := &fakeApp{}
	r := NewRegistry(app)

	tests := []struct {
		item  layout.Item
		check func(t *testing.T)
	}{
		{layout.Item{Label: "Editor", Action: "show", Arg: "editor"}, func(t *testing.T) {
			assert.Equal(t, []string{"editor"}, app.shown)
		}},
		{layout.Item{Label: "Save", Action: "status", Arg: "saved"}, func(t *testing.T) {
			assert.Equal(t, []string{"saved"}, app.status)
		}},
		{layout.Item{Label: "Rebind", Action: "rebind"}, func(t *testing.T) {
			assert.Equal(t, 1, app.rebinds)
		}},
		{layout.Item{Label: "Help", Action: "help"}, func(t *testing.T) {
			assert.Equal(t, 1, app.helps)
		}},
		{layout.Item{Label: "Quit", Action: "quit"}, func(t *testing.T) {
			assert.Equal(t, 1, app.exits)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.item.Action, func(t *testing.T) {
			action, err := r.Action("menu", tt.item)
			require.NoError(t, err)
			action.Invoke(nil)
			tt.check(t)
		})
	}
}

func TestActionErrors(t *testing.T) {
	r := NewRegistry(&fakeApp{})

	_, err := r.Action("menu", layout.Item{Label: "Launch", Action: "launch"})
	assert.ErrorIs(t, err, layout.ErrUnknownAction)

	_, err = r.Action("menu", layout.Item{Label: "Go", Action: "show"})
	assert.ErrorIs(t, err, ErrMissingArg)
}

func TestFailedActionReportsStatus(t *testing.T) {
	app := &fakeApp{showErr: errors.New("no such component")}
	r := NewRegistry(app)

	action, err := r.Action("menu", layout.Item{Label: "Go", Action: "show", Arg: "nowhere"})
	require.NoError(t, err)
	action.Invoke(nil)

	require.Len(t, app.status, 1)
	assert.Equal(t, "Go failed: no such component", app.status[0])
}

func TestRegisterCustomAction(t *testing.T) {
	app := &fakeApp{}
	r := NewRegistry(app)

	var got string
	r.Register(ActionConfig{Name: "echo", Handler: func(_ AppInterface, arg string) error {
		got = arg
		return nil
	}})

	action, err := r.Action("menu", layout.Item{Label: "Echo", Action: "echo", Arg: "hi"})
	require.NoError(t, err)
	action.Invoke(nil)
	assert.Equal(t, "hi", got)

	_, ok := r.Get("echo")
	assert.True(t, ok)
}
