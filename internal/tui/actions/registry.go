package actions

import (
	"errors"
	"fmt"
	"sort"

	"github.com/gdamore/tcell/v2"

	"autokeys/internal/layout"
	"autokeys/internal/log"
	"autokeys/internal/view"
)

// ErrMissingArg is returned for items whose action needs an argument.
var ErrMissingArg = errors.New("action requires an argument")

// AppInterface defines the methods actions need from the application.
// This prevents circular dependencies and makes testing easier.
type AppInterface interface {
	ShowComponent(name string) error
	SetStatus(message string)
	Rebind()
	ShowHelp()
	Exit()
}

// Handler runs an action with the item's argument.
type Handler func(app AppInterface, arg string) error

// ActionConfig defines one named action layouts can refer to.
type ActionConfig struct {
	Name        string
	Description string
	NeedsArg    bool
	Handler     Handler
}

// Registry provides the actions available to layout items.
type Registry struct {
	app     AppInterface
	actions map[string]ActionConfig
}

// NewRegistry creates a registry whose actions operate on app.
func NewRegistry(app AppInterface) *Registry {
	r := &Registry{app: app, actions: make(map[string]ActionConfig)}
	r.initializeActions()
	return r
}

// initializeActions defines all built-in actions in one place.
func (r *Registry) initializeActions() {
	for _, a := range []ActionConfig{
		{
			Name:        "show",
			Description: "Reveal and focus a component",
			NeedsArg:    true,
			Handler: func(app AppInterface, arg string) error {
				return app.ShowComponent(arg)
			},
		},
		{
			Name:        "status",
			Description: "Show a message in the status bar",
			NeedsArg:    true,
			Handler: func(app AppInterface, arg string) error {
				app.SetStatus(arg)
				return nil
			},
		},
		{
			Name:        "rebind",
			Description: "Resolve and bind shortcuts again",
			Handler: func(app AppInterface, _ string) error {
				app.Rebind()
				return nil
			},
		},
		{
			Name:        "help",
			Description: "Show the shortcut report",
			Handler: func(app AppInterface, _ string) error {
				app.ShowHelp()
				return nil
			},
		},
		{
			Name:        "quit",
			Description: "Exit the application",
			Handler: func(app AppInterface, _ string) error {
				app.Exit()
				return nil
			},
		},
	} {
		r.Register(a)
	}
}

// Register adds or replaces an action.
func (r *Registry) Register(a ActionConfig) {
	r.actions[a.Name] = a
}

// Get returns the action named name.
func (r *Registry) Get(name string) (ActionConfig, bool) {
	a, ok := r.actions[name]
	return a, ok
}

// Names returns the registered action names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.actions))
	for name := range r.actions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Action returns the invokable action for a layout item.
func (r *Registry) Action(owner string, item layout.Item) (view.Action, error) {
	config, ok := r.actions[item.Action]
	if !ok {
		return nil, fmt.Errorf("%w %q", layout.ErrUnknownAction, item.Action)
	}
	if config.NeedsArg && item.Arg == "" {
		return nil, fmt.Errorf("%s: %w", config.Name, ErrMissingArg)
	}

	arg := item.Arg
	return view.ActionFunc(func(*tcell.EventKey) {
		defer func() {
			if p := recover(); p != nil {
				log.Error("PANIC in action", "action", config.Name, "owner", owner, "panic", p)
			}
		}()

		log.Debug("action invoked", "action", config.Name, "owner", owner, "item", item.Label)
		if err := config.Handler(r.app, arg); err != nil {
			log.Warn("action failed", "action", config.Name, "error", err)
			r.app.SetStatus(fmt.Sprintf("%s failed: %v", item.Label, err))
		}
	}), nil
}
