package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"autokeys/internal/report"
)

func newHistoryCommand(s *state) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List recorded resolution runs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			runs, err := st.Runs(cmd.Context(), limit)
			if err != nil {
				return err
			}
			style, err := s.cfg.Style()
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout(), style).Runs(runs)
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "maximum number of runs to list (0 for all)")

	cmd.AddCommand(&cobra.Command{
		Use:   "show <id>",
		Short: "Show one recorded run; a unique ID prefix is enough",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			run, requests, err := st.Run(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			style, err := s.cfg.Style()
			if err != nil {
				return err
			}
			return report.NewPrinter(cmd.OutOrStdout(), style).Run(run, requests)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a recorded run",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			st, err := s.openStore(cmd.Context())
			if err != nil {
				return err
			}
			defer st.Close()

			if err := st.Delete(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted run %s\n", args[0])
			return nil
		},
	})
	return cmd
}
