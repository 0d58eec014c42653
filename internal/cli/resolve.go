package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"autokeys/internal/report"
)

func newResolveCommand(s *state) *cobra.Command {
	var record bool

	cmd := &cobra.Command{
		Use:   "resolve [layout]",
		Short: "Resolve a layout's shortcuts and print the assignment report",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			l, err := loadLayout(layoutArg(args))
			if err != nil {
				return err
			}
			b, err := s.plan(l)
			if err != nil {
				return err
			}
			opts, err := s.binderOptions()
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if err := report.NewPrinter(out, opts.Style).Binding(l.Name, b); err != nil {
				return err
			}

			if !record {
				return nil
			}
			st, err := s.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			run, err := s.record(cmd.Context(), st, l.Name, b)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "recorded run %s\n", run.ID)
			return nil
		},
	}

	cmd.Flags().BoolVar(&record, "record", false, "record the run in the history store")
	return cmd
}
