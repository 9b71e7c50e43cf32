package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/schedulers"
)

func newCompareCmd() *cobra.Command {
	var flags runFlags

	cmd := &cobra.Command{
		Use:   "compare",
		Short: "Run every algorithm on the same processes and compare them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			request, opts, err := flags.load(cmd)
			if err != nil {
				return err
			}

			compare, err := schedulers.RunAll(request.Processes(), opts...)
			if err != nil {
				return fmt.Errorf("compare: %w", err)
			}

			out := cmd.OutOrStdout()
			if flags.output == "table" {
				for _, response := range compare.Results {
					report.Schedule(out, response)
					fmt.Fprintln(out)
				}
				report.Comparison(out, compare)
				return nil
			}
			return encode(out, flags.output, compare)
		},
	}

	flags.register(cmd)
	return cmd
}
