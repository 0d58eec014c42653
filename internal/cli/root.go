package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"autokeys/internal/config"
	"autokeys/internal/keystroke"
	"autokeys/internal/layout"
	"autokeys/internal/log"
	"autokeys/internal/shortcuts"
	"autokeys/internal/store"
	"autokeys/internal/theme"
)

// state is shared by every command of one root.
type state struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// NewRootCommand builds the autokeys command tree.
func NewRootCommand(version string) *cobra.Command {
	s := &state{}

	root := &cobra.Command{
		Use:   "autokeys",
		Short: "Automatic keyboard shortcut assignment for terminal UIs",
		Long: `autokeys resolves conflicting keyboard shortcut requests in a component
tree, dispatches the winners and reports what moved.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			log.SetOutput(cmd.ErrOrStderr())

			cfg, err := config.Load(s.configPath)
			if err != nil {
				return err
			}
			s.cfg = cfg

			log.SetLevel(log.ParseLevel(cfg.Log.Level))
			if s.verbose {
				log.SetLevel(slog.LevelDebug)
			}
			if err := theme.Use(cfg.UI.Theme); err != nil {
				return fmt.Errorf("ui.theme: %w", err)
			}
			return nil
		},
	}

	root.PersistentFlags().StringVar(&s.configPath, "config", "", "config file (default $AUTOKEYS_CONFIG or ~/.config/autokeys/config.yaml)")
	root.PersistentFlags().BoolVarP(&s.verbose, "verbose", "v", false, "verbose output (debug level)")

	root.AddCommand(
		newRunCommand(s),
		newResolveCommand(s),
		newLineageCommand(s),
		newHistoryCommand(s),
	)
	return root
}

// loadLayout reads the layout at path. An empty path or "demo" selects the
// built-in demo layout.
func loadLayout(path string) (*layout.Layout, error) {
	if path == "" || path == "demo" {
		return layout.Demo(), nil
	}
	return layout.Load(path)
}

func layoutArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}

func (s *state) binderOptions() (shortcuts.Options, error) {
	baseline, err := s.cfg.Baseline()
	if err != nil {
		return shortcuts.Options{}, err
	}
	style, err := s.cfg.Style()
	if err != nil {
		return shortcuts.Options{}, err
	}
	return shortcuts.Options{Baseline: baseline, Style: style}, nil
}

// plan builds l without live actions and resolves it.
func (s *state) plan(l *layout.Layout) (*shortcuts.Binding, error) {
	opts, err := s.binderOptions()
	if err != nil {
		return nil, err
	}
	root, err := layout.Build(l, layout.NoopActions)
	if err != nil {
		return nil, err
	}
	return shortcuts.NewBinder(nil, opts).Plan(root), nil
}

func (s *state) openStore(ctx context.Context) (*store.Store, error) {
	return store.Open(ctx, s.cfg.Store.Path)
}

// record stores b as a run of the named layout.
func (s *state) record(ctx context.Context, st *store.Store, name string, b *shortcuts.Binding) (store.Run, error) {
	opts, err := s.binderOptions()
	if err != nil {
		return store.Run{}, err
	}

	assignments := b.Requests()
	requests := make([]store.Request, len(assignments))
	for i, a := range assignments {
		requests[i] = store.Request{
			Label:     a.Label,
			Requested: a.Requested.String(),
			Keystroke: a.Keystroke.String(),
			Depth:     a.Depth,
			Derived:   a.Derived,
			Invokable: a.Invokable,
		}
	}
	return st.Record(ctx, name, baselineName(opts), requests)
}

func baselineName(opts shortcuts.Options) string {
	return keystroke.DescribeModifiers(opts.Baseline, keystroke.StyleText)
}
