package cli

import (
	"github.com/spf13/cobra"

	"cpu-scheduler/internal/requests"
)

func newSampleCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "sample",
		Short: "Print the built-in sample process set",
		Long:  "Print the built-in sample process set, ready to be edited and passed back with --input.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return encode(cmd.OutOrStdout(), output, requests.SampleJobs())
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "yaml", "Output format (json, yaml)")
	return cmd
}
