package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"autokeys/internal/lineage"
)

func newLineageCommand(s *state) *cobra.Command {
	var format, output string

	cmd := &cobra.Command{
		Use:   "lineage [layout]",
		Short: "Draw how conflicting requests were moved to derived keystrokes",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := lineage.ParseFormat(format)
			if err != nil {
				return err
			}
			l, err := loadLayout(layoutArg(args))
			if err != nil {
				return err
			}
			b, err := s.plan(l)
			if err != nil {
				return err
			}
			g, err := lineage.Build(b.Result)
			if err != nil {
				return err
			}

			var w io.Writer = cmd.OutOrStdout()
			if output != "" && output != "-" {
				file, err := os.Create(output)
				if err != nil {
					return err
				}
				defer file.Close()
				w = file
			}
			return g.Render(cmd.Context(), w, f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "dot", "output format: dot, svg or png")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	return cmd
}
