package cli

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/input"
	"cpu-scheduler/internal/report"
	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/schedulers"
)

type runFlags struct {
	input   string
	quantum int
	output  string
}

func (f *runFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.input, "input", "i", "", "Process file (.yaml, .yml or .csv); the sample set is used when empty")
	cmd.Flags().IntVarP(&f.quantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round Robin time quantum")
	cmd.Flags().StringVarP(&f.output, "output", "o", "table", "Output format (table, json, yaml)")
}

// load returns the jobs to schedule and the scheduler options. The quantum is
// taken from the flag when set, then the input file, then the config.
func (f *runFlags) load(cmd *cobra.Command) (requests.ScheduleRequests, []schedulers.Option, error) {
	request := requests.SampleJobs()
	if f.input != "" {
		loaded, err := input.LoadFile(f.input)
		if err != nil {
			return requests.ScheduleRequests{}, nil, err
		}
		request = loaded
	}

	quantum := cfg.RoundRobinTimeQuantum
	switch {
	case cmd.Flags().Changed("quantum"):
		quantum = f.quantum
	case request.TimeQuantum != nil:
		quantum = *request.TimeQuantum
	}

	logger.Debug("loaded processes", "count", len(request.Jobs), "source", f.input, "time_quantum", quantum)
	return request, []schedulers.Option{
		schedulers.WithTimeQuantum(quantum),
		schedulers.WithLogger(logger),
	}, nil
}

func newRunCmd() *cobra.Command {
	var (
		flags     runFlags
		algorithm string
	)

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run one scheduling algorithm",
		Example: `  cpusched run -a rr -q 4 -i processes.yaml
  cpusched run -a sjf -i processes.csv -o json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			alg, err := schedulers.ParseAlgorithm(algorithm)
			if err != nil {
				return err
			}
			request, opts, err := flags.load(cmd)
			if err != nil {
				return err
			}

			response, err := schedulers.Run(alg, request.Processes(), opts...)
			if err != nil {
				return fmt.Errorf("run %s: %w", alg, err)
			}

			out := cmd.OutOrStdout()
			if flags.output == "table" {
				report.Schedule(out, response)
				return nil
			}
			return encode(out, flags.output, response)
		},
	}

	cmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Algorithm (fcfs, sjf, priority, rr)")
	flags.register(cmd)
	return cmd
}

func encode(w io.Writer, format string, v any) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case "yaml":
		enc := yaml.NewEncoder(w)
		defer enc.Close()
		return enc.Encode(v)
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
