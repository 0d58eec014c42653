package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"autokeys/internal/log"
	"autokeys/internal/shortcuts"
	"autokeys/internal/store"
	"autokeys/internal/tui"
)

// ErrNoTerminal is returned by run when stdout is not a terminal.
var ErrNoTerminal = errors.New("this command requires a terminal/TTY")

func newRunCommand(s *state) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "run [layout]",
		Short: "Show a layout with its shortcuts bound",
		Long: `Run builds the layout (the built-in demo when none is given), resolves its
shortcut requests and installs them. F1 shows the shortcut report, F5
rebinds and F10 quits.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
				return ErrNoTerminal
			}

			l, err := loadLayout(layoutArg(args))
			if err != nil {
				return err
			}
			opts, err := s.binderOptions()
			if err != nil {
				return err
			}

			if err := log.SetFileOutput(s.cfg.Log.File); err != nil {
				fmt.Fprintf(cmd.ErrOrStderr(), "Warning: Could not configure debug logging to file: %v\n", err)
			}
			defer log.Close()

			ctx := cmd.Context()

			var onBind func(*shortcuts.Binding)
			if record {
				st, err := s.openStore(ctx)
				if err != nil {
					return err
				}
				defer st.Close()
				onBind = recorder(ctx, s, st, l.Name)
			}

			app, err := tui.NewApplication(l, tui.Options{
				Baseline: opts.Baseline,
				Style:    opts.Style,
				OnBind:   onBind,
			})
			if err != nil {
				return err
			}
			return app.Run()
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "record every bind in the history store")
	return cmd
}

// recorder records each distinct binding once. Rebinding an unchanged tree
// yields the same assignments and is not recorded again.
func recorder(ctx context.Context, s *state, st *store.Store, name string) func(*shortcuts.Binding) {
	var last []shortcuts.Assignment
	return func(b *shortcuts.Binding) {
		current := b.Requests()
		if sameAssignments(last, current) {
			return
		}
		last = current
		if _, err := s.record(ctx, st, name, b); err != nil {
			log.Error("failed to record run", "error", err)
		}
	}
}

func sameAssignments(a, b []shortcuts.Assignment) bool {
	if a == nil || len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
