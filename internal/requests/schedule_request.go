package requests

import (
	"errors"
	"fmt"

	"cpu-scheduler/internal/core"
)

// DefaultPriority is applied to jobs that omit a priority.
const DefaultPriority = 1

var ErrInvalidJob = errors.New("invalid job")

type Job struct {
	ProcessId   int    `json:"process_id" yaml:"process_id"`
	Name        string `json:"name" yaml:"name"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority,omitempty"`
}

type ScheduleRequests struct {
	Jobs        []Job `json:"jobs" yaml:"jobs"`
	TimeQuantum *int  `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
}

// Normalize assigns ids 1..n to jobs that do not carry one.
func (r *ScheduleRequests) Normalize() {
	for i := range r.Jobs {
		if r.Jobs[i].ProcessId == 0 {
			r.Jobs[i].ProcessId = i + 1
		}
	}
}

// Validate checks every job against the input contract of the scheduling
// engine. The engine itself does not re-check.
func (r *ScheduleRequests) Validate() error {
	seen := make(map[int]bool, len(r.Jobs))
	for i, job := range r.Jobs {
		if err := job.Validate(); err != nil {
			return fmt.Errorf("job %d: %w", i+1, err)
		}
		if seen[job.ProcessId] {
			return fmt.Errorf("job %d: %w: duplicate process id %d", i+1, ErrInvalidJob, job.ProcessId)
		}
		seen[job.ProcessId] = true
	}
	if r.TimeQuantum != nil && *r.TimeQuantum <= 0 {
		return fmt.Errorf("%w: time quantum must be greater than 0", ErrInvalidJob)
	}
	return nil
}

func (j Job) Validate() error {
	switch {
	case j.Name == "":
		return fmt.Errorf("%w: process name cannot be empty", ErrInvalidJob)
	case j.ArrivalTime < 0:
		return fmt.Errorf("%w: arrival time must be >= 0", ErrInvalidJob)
	case j.BurstTime <= 0:
		return fmt.Errorf("%w: burst time must be > 0", ErrInvalidJob)
	case j.Priority != nil && *j.Priority <= 0:
		return fmt.Errorf("%w: priority must be > 0", ErrInvalidJob)
	}
	return nil
}

// EffectivePriority returns the job's priority or DefaultPriority when omitted.
func (j Job) EffectivePriority() int {
	if j.Priority == nil {
		return DefaultPriority
	}
	return *j.Priority
}

func (j Job) Process() core.Process {
	return core.NewProcess(j.ProcessId, j.Name, j.ArrivalTime, j.BurstTime, j.EffectivePriority())
}

func (r *ScheduleRequests) Processes() []core.Process {
	processes := make([]core.Process, 0, len(r.Jobs))
	for _, job := range r.Jobs {
		processes = append(processes, job.Process())
	}
	return processes
}

// SampleJobs is the built-in demonstration workload.
func SampleJobs() ScheduleRequests {
	return ScheduleRequests{
		Jobs: []Job{
			{ProcessId: 1, Name: "P1", ArrivalTime: 0, BurstTime: 5, Priority: IntPtr(2)},
			{ProcessId: 2, Name: "P2", ArrivalTime: 1, BurstTime: 3, Priority: IntPtr(1)},
			{ProcessId: 3, Name: "P3", ArrivalTime: 2, BurstTime: 8, Priority: IntPtr(3)},
			{ProcessId: 4, Name: "P4", ArrivalTime: 3, BurstTime: 6, Priority: IntPtr(2)},
		},
	}
}

func IntPtr(v int) *int {
	return &v
}
