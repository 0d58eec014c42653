package tui

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	basecomponents "autokeys/internal/components"
	"autokeys/internal/dispatch"
	"autokeys/internal/keystroke"
	"autokeys/internal/layout"
	"autokeys/internal/log"
	"autokeys/internal/report"
	"autokeys/internal/shortcuts"
	"autokeys/internal/theme"
	"autokeys/internal/tui/actions"
	"autokeys/internal/tui/components"
	"autokeys/internal/tui/handlers"
	"autokeys/internal/view"
)

const helpPage = "help"

// Options configure an App.
type Options struct {
	Baseline tcell.ModMask
	Style    keystroke.Style

	// OnBind is called after every successful bind.
	OnBind func(*shortcuts.Binding)
}

// App hosts a layout in a tview application and keeps its shortcuts bound.
type App struct {
	app      *tview.Application
	pages    *tview.Pages
	mainGrid *tview.Grid

	layout *layout.Layout
	root   *view.Node

	// UI Components
	statusComponent *components.StatusComponent

	// Input handling
	hotkeys      *basecomponents.Hotkeys
	inputHandler *handlers.InputHandler
	actions      *actions.Registry
	binder       *shortcuts.Binder

	style        keystroke.Style
	onBind       func(*shortcuts.Binding)
	restoreFocus tview.Primitive
}

// NewApplication builds l and binds its shortcuts to a new tview
// application.
func NewApplication(l *layout.Layout, opts Options) (*App, error) {
	app := tview.NewApplication()

	hotkeys := basecomponents.NewHotkeys()
	ta := &App{
		app:             app,
		layout:          l,
		statusComponent: components.NewStatusComponent(),
		hotkeys:         hotkeys,
		inputHandler:    handlers.NewInputHandler(hotkeys),
		style:           opts.Style,
		onBind:          opts.OnBind,
	}
	ta.actions = actions.NewRegistry(ta)

	root, err := layout.Build(l, ta.actions)
	if err != nil {
		return nil, fmt.Errorf("failed to build layout %q: %w", l.Name, err)
	}
	ta.root = root

	ta.binder = shortcuts.NewBinder(dispatch.Application(app), shortcuts.Options{
		Baseline: opts.Baseline,
		Style:    opts.Style,
	})
	ta.binder.OnDispatch = ta.dispatched

	ta.setupUI()
	ta.setupInputHandling()
	ta.bind()

	log.Info("TView TUI initialized", "layout", l.Name)
	return ta, nil
}

// setupUI configures the user interface layout
func (ta *App) setupUI() {
	ta.mainGrid = tview.NewGrid().
		SetRows(0, 1).
		SetColumns(0).
		SetBorders(false)

	ta.mainGrid.AddItem(ta.root.Primitive, 0, 0, 1, 1, 0, 0, true)
	ta.mainGrid.AddItem(ta.statusComponent.GetWrapper(), 1, 0, 1, 1, 0, 0, false)

	ta.pages = tview.NewPages()
	ta.pages.AddPage("main", ta.mainGrid, true, true)

	ta.statusComponent.SetLayout(ta.layout.Name)

	ta.app.SetRoot(ta.pages, true)
	if target := focusTarget(ta.root); target != nil {
		ta.app.SetFocus(target)
	}
}

// setupInputHandling registers the fixed hotkeys and installs the base
// input capture the shortcut dispatcher chains to.
func (ta *App) setupInputHandling() {
	ta.hotkeys.Register(keystroke.OfKey(tcell.KeyF1, tcell.ModNone), "Shortcut report", ta.ShowHelp)
	ta.hotkeys.Register(keystroke.OfKey(tcell.KeyF5, tcell.ModNone), "Rebind shortcuts", ta.Rebind)
	ta.hotkeys.Register(keystroke.OfKey(tcell.KeyF10, tcell.ModNone), "Quit", ta.Exit)

	ta.inputHandler.SetCallbacks(ta.CloseModal)
	ta.app.SetInputCapture(ta.inputHandler.HandleKeyEvent)
}

// Run starts the TUI application
func (ta *App) Run() error {
	defer ta.binder.Unbind()
	return ta.app.Run()
}

// Binding returns the installed binding, or nil while shortcuts are
// suspended.
func (ta *App) Binding() *shortcuts.Binding {
	return ta.binder.Current()
}

func (ta *App) bind() {
	b, err := ta.binder.Bind(ta.root)
	if err != nil {
		log.Error("failed to bind shortcuts", "error", err)
		ta.statusComponent.SetMessage(err.Error())
		return
	}

	for _, c := range b.Unassigned() {
		log.Warn("request left without a shortcut", "request", c.Label(), "keystroke", c.Keystroke.String())
	}
	ta.statusComponent.SetBinding(b.Table.Len(), len(b.Result.Unassigned))

	if ta.onBind != nil {
		ta.onBind(b)
	}
}

func (ta *App) rebind() {
	ta.binder.Unbind()
	ta.bind()
	ta.statusComponent.SetMessage("shortcuts rebound")
}

func (ta *App) dispatched(e *dispatch.Entry) {
	text := e.Keystroke.Describe(ta.style)
	if e.Item != nil {
		text += " " + e.Item.Label
	}
	ta.statusComponent.SetLastDispatch(text)
}

// ShowComponent reveals the component named name and focuses it.
func (ta *App) ShowComponent(name string) error {
	n := ta.root.Find(name)
	if n == nil {
		return fmt.Errorf("no component named %q", name)
	}
	dispatch.Reveal(n)
	if target := focusTarget(n); target != nil {
		ta.app.SetFocus(target)
	}
	log.Debug("component shown", "component", name, "depth", n.Depth())
	return nil
}

// focusTarget returns the first leaf primitive under n in pre-order.
func focusTarget(n *view.Node) tview.Primitive {
	var target tview.Primitive
	n.Walk(func(node *view.Node, _ int) {
		if target == nil && len(node.Children()) == 0 && node.Primitive != nil {
			target = node.Primitive
		}
	})
	if target == nil {
		target = n.Primitive
	}
	return target
}

// SetStatus shows message in the status bar.
func (ta *App) SetStatus(message string) {
	ta.statusComponent.SetMessage(message)
}

// Rebind resolves the layout again once the current event is handled.
func (ta *App) Rebind() {
	ta.app.QueueUpdateDraw(ta.rebind)
}

// ShowHelp suspends shortcuts and shows the shortcut report.
func (ta *App) ShowHelp() {
	if ta.inputHandler.ModalVisible() {
		return
	}

	b := ta.binder.Current()
	if b == nil {
		b = ta.binder.Plan(ta.root)
	}

	var buf bytes.Buffer
	if err := report.NewPrinter(&buf, ta.style).Binding(ta.layout.Name, b); err != nil {
		log.Error("failed to render shortcut report", "error", err)
	}
	buf.WriteString("\nApplication keys:\n")
	for _, hk := range ta.hotkeys.List() {
		fmt.Fprintf(&buf, "  %-8s %s\n", hk.Keystroke.Describe(ta.style), hk.Description)
	}
	buf.WriteString("  Esc      Close this report\n")

	ta.binder.Unbind()
	ta.statusComponent.ClearBinding()

	text := theme.NewTextView()
	text.SetDynamicColors(false)
	text.SetScrollable(true)
	text.SetText(buf.String())
	text.SetBorder(true)
	text.SetTitle(" Keyboard Shortcuts ")

	lines := strings.Count(buf.String(), "\n") + 2
	ta.restoreFocus = ta.app.GetFocus()
	ta.pages.AddPage(helpPage, centered(text, 0, lines), true, true)
	ta.app.SetFocus(text)
	ta.inputHandler.SetModalVisible(true)
}

// centered places p in the middle of the screen. A zero width takes the
// full width.
func centered(p tview.Primitive, width, height int) tview.Primitive {
	proportion := 0
	if width == 0 {
		proportion = 1
	}
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 0, true).
			AddItem(nil, 0, 1, false), width, proportion*8, true).
		AddItem(nil, 0, 1, false)
}

// CloseModal closes the shortcut report and binds shortcuts again.
func (ta *App) CloseModal() {
	if !ta.inputHandler.ModalVisible() {
		return
	}
	ta.pages.RemovePage(helpPage)
	ta.inputHandler.SetModalVisible(false)
	if ta.restoreFocus != nil {
		ta.app.SetFocus(ta.restoreFocus)
		ta.restoreFocus = nil
	}
	ta.bind()
}

// Exit shuts down the application
func (ta *App) Exit() {
	ta.binder.Unbind()
	ta.app.Stop()
}
