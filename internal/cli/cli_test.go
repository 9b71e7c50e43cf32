package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"cpu-scheduler/internal/requests"
	"cpu-scheduler/internal/responses"
)

// execute runs the root command with args from an empty working directory and
// returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	chdir(t, t.TempDir())

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(args)
	err := root.Execute()
	return stdout.String(), err
}

func writeInput(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}
	return path
}

func TestRunCmd_TableOutput(t *testing.T) {
	out, err := execute(t, "run", "-a", "fcfs")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	for _, want := range []string{"First-Come, First-Served (FCFS)", "Time 0-5: P1", "Time 16-22: P4"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestRunCmd_JSONWithQuantumFlag(t *testing.T) {
	out, err := execute(t, "run", "-a", "rr", "-q", "2", "-o", "json")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got responses.ScheduleResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.TimeQuantum != 2 || got.TotalTime != 22 {
		t.Errorf("quantum=%d total=%d", got.TimeQuantum, got.TotalTime)
	}
}

func TestRunCmd_InputFileQuantum(t *testing.T) {
	path := writeInput(t, "jobs.yaml", "time_quantum: 3\njobs:\n  - name: A\n    burst_time: 4\n")

	out, err := execute(t, "run", "-a", "round_robin", "-i", path, "-o", "yaml")
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var got responses.ScheduleResponse
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v\n%s", err, out)
	}
	if got.TimeQuantum != 3 || len(got.Gantt) != 4 {
		t.Errorf("quantum=%d gantt=%d", got.TimeQuantum, len(got.Gantt))
	}
}

func TestRunCmd_CSVInput(t *testing.T) {
	path := writeInput(t, "jobs.csv", "P1,0,5\nP2,1,3\nP3,2,8\n")

	out, err := execute(t, "run", "-a", "sjf", "-i", path)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out, "Time 8-16: P3") {
		t.Errorf("output missing P3 span:\n%s", out)
	}
}

func TestRunCmd_Errors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"unknown algorithm", []string{"run", "-a", "lottery"}, "unknown scheduling algorithm"},
		{"zero quantum", []string{"run", "-a", "rr", "-q", "0"}, "time quantum"},
		{"unknown output", []string{"run", "-o", "xml"}, "unknown output format"},
		{"missing input", []string{"run", "-i", "nope.yaml"}, "open input"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %v, want it to contain %q", err, tt.want)
			}
		})
	}
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, "compare", "-o", "json")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	var got responses.CompareResponse
	if err := json.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Results) != 4 {
		t.Errorf("got %d results, want 4", len(got.Results))
	}

	out, err = execute(t, "compare")
	if err != nil {
		t.Fatalf("compare: %v", err)
	}
	if !strings.Contains(out, "Algorithm comparison") {
		t.Errorf("table output missing comparison:\n%s", out)
	}
}

func TestSampleCmd(t *testing.T) {
	out, err := execute(t, "sample")
	if err != nil {
		t.Fatalf("sample: %v", err)
	}
	var got requests.ScheduleRequests
	if err := yaml.Unmarshal([]byte(out), &got); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(got.Jobs) != 4 || got.Jobs[3].Name != "P4" {
		t.Errorf("unexpected sample: %+v", got.Jobs)
	}
}

// chdir changes the working directory for the duration of the test
// (equivalent to testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}
