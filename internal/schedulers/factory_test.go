package schedulers

import (
	"errors"
	"testing"

	"cpu-scheduler/internal/core"
)

func TestParseAlgorithm(t *testing.T) {
	tests := []struct {
		input string
		want  Algorithm
	}{
		{"fcfs", AlgorithmFCFS},
		{"FCFS", AlgorithmFCFS},
		{"sjf", AlgorithmSJF},
		{"shortest_job_first", AlgorithmSJF},
		{"Priority", AlgorithmPriority},
		{"rr", AlgorithmRoundRobin},
		{"round_robin", AlgorithmRoundRobin},
		{" round-robin ", AlgorithmRoundRobin},
	}
	for _, tt := range tests {
		got, err := ParseAlgorithm(tt.input)
		if err != nil {
			t.Errorf("ParseAlgorithm(%q): %v", tt.input, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseAlgorithm(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}

	if _, err := ParseAlgorithm("mlfq"); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("ParseAlgorithm(mlfq) error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestNew(t *testing.T) {
	tests := []struct {
		algorithm Algorithm
		opts      []Option
		wantName  string
	}{
		{AlgorithmFCFS, nil, "First-Come, First-Served (FCFS)"},
		{AlgorithmSJF, nil, "Shortest Job First (SJF) - Non-preemptive"},
		{AlgorithmPriority, nil, "Priority Scheduling - Non-preemptive"},
		{AlgorithmRoundRobin, nil, "Round Robin (Time Quantum = 4)"},
		{AlgorithmRoundRobin, []Option{WithTimeQuantum(2)}, "Round Robin (Time Quantum = 2)"},
		// quantum is ignored by non-preemptive algorithms
		{AlgorithmFCFS, []Option{WithTimeQuantum(0)}, "First-Come, First-Served (FCFS)"},
	}
	for _, tt := range tests {
		s, err := New(tt.algorithm, tt.opts...)
		if err != nil {
			t.Errorf("New(%s): %v", tt.algorithm, err)
			continue
		}
		if s.Name() != tt.wantName {
			t.Errorf("Name() = %q, want %q", s.Name(), tt.wantName)
		}
	}
}

func TestNew_InvalidTimeQuantum(t *testing.T) {
	for _, quantum := range []int{0, -1} {
		s, err := New(AlgorithmRoundRobin, WithTimeQuantum(quantum))
		if !errors.Is(err, ErrInvalidTimeQuantum) {
			t.Errorf("quantum %d: error = %v, want ErrInvalidTimeQuantum", quantum, err)
		}
		if s != nil {
			t.Errorf("quantum %d: scheduler = %v, want nil", quantum, s)
		}
	}
}

func TestNew_UnknownAlgorithm(t *testing.T) {
	if _, err := New(Algorithm("lottery")); !errors.Is(err, ErrUnknownAlgorithm) {
		t.Errorf("error = %v, want ErrUnknownAlgorithm", err)
	}
}

func TestRun(t *testing.T) {
	processes := sampleProcesses()
	response, err := Run(AlgorithmRoundRobin, processes, WithTimeQuantum(4))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if response.RunId == "" {
		t.Error("RunId should be set")
	}
	if response.Algorithm != "rr" || response.TimeQuantum != 4 {
		t.Errorf("algorithm=%q quantum=%d", response.Algorithm, response.TimeQuantum)
	}
	if response.TotalTime != 22 || response.IdleTime != 0 {
		t.Errorf("total=%d idle=%d, want 22/0", response.TotalTime, response.IdleTime)
	}
	if !approxEqual(response.CpuUtilization, 1) {
		t.Errorf("CpuUtilization = %v, want 1", response.CpuUtilization)
	}
	if !approxEqual(response.CpuThroughput, 4.0/22) {
		t.Errorf("CpuThroughput = %v, want %v", response.CpuThroughput, 4.0/22)
	}
	if response.ContextSwitches != 6 || len(response.Gantt) != 22 || len(response.Details) != 4 {
		t.Errorf("switches=%d gantt=%d details=%d", response.ContextSwitches, len(response.Gantt), len(response.Details))
	}
	if d := response.Details[1]; d.Name != "P2" || d.CompletionTime != 7 || d.WaitingTime != 3 {
		t.Errorf("P2 details = %+v", d)
	}

	for _, p := range processes {
		if p.Started {
			t.Errorf("Run mutated the caller's %s", p.Name)
		}
	}
}

func TestRun_IdleTime(t *testing.T) {
	response, err := Run(AlgorithmFCFS, []core.Process{core.NewProcess(1, "P1", 2, 2, 1)})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if response.TotalTime != 4 || response.IdleTime != 2 {
		t.Errorf("total=%d idle=%d, want 4/2", response.TotalTime, response.IdleTime)
	}
	if !approxEqual(response.CpuUtilization, 0.5) {
		t.Errorf("CpuUtilization = %v, want 0.5", response.CpuUtilization)
	}
	if response.TimeQuantum != 0 {
		t.Errorf("TimeQuantum = %d for fcfs", response.TimeQuantum)
	}
}

func TestRun_Empty(t *testing.T) {
	response, err := Run(AlgorithmSJF, nil)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if response.TotalTime != 0 || response.CpuUtilization != 0 || response.CpuThroughput != 0 {
		t.Errorf("unexpected metrics for empty run: %+v", response)
	}
}

func TestRunAll(t *testing.T) {
	compare, err := RunAll(sampleProcesses(), WithTimeQuantum(4))
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if len(compare.Results) != len(Algorithms()) {
		t.Fatalf("got %d results, want %d", len(compare.Results), len(Algorithms()))
	}
	for i, algorithm := range Algorithms() {
		if compare.Results[i].Algorithm != string(algorithm) {
			t.Errorf("result %d algorithm = %q, want %q", i, compare.Results[i].Algorithm, algorithm)
		}
		if compare.Results[i].TotalTime != 22 {
			t.Errorf("%s total time = %d, want 22", algorithm, compare.Results[i].TotalTime)
		}
	}

	if _, err := RunAll(sampleProcesses(), WithTimeQuantum(0)); !errors.Is(err, ErrInvalidTimeQuantum) {
		t.Errorf("RunAll with quantum 0: error = %v", err)
	}
}
