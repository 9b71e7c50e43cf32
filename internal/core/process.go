package core

import "fmt"

// Unset marks a timing field that has not been computed yet.
const Unset = -1

// Process is one simulated job. ID, Name, ArrivalTime, BurstTime and Priority
// are fixed at construction; the remaining fields are simulation state owned by
// the scheduler that runs it.
type Process struct {
	ID          int
	Name        string
	ArrivalTime int
	BurstTime   int
	Priority    int // lower value wins

	RemainingTime  int
	Started        bool
	CompletionTime int
	TurnaroundTime int
	WaitingTime    int
	ResponseTime   int
}

func NewProcess(id int, name string, arrivalTime, burstTime, priority int) Process {
	p := Process{
		ID:          id,
		Name:        name,
		ArrivalTime: arrivalTime,
		BurstTime:   burstTime,
		Priority:    priority,
	}
	p.Reset()
	return p
}

// Reset puts the process back into its pre-run state.
func (p *Process) Reset() {
	p.RemainingTime = p.BurstTime
	p.Started = false
	p.CompletionTime = Unset
	p.TurnaroundTime = Unset
	p.WaitingTime = Unset
	p.ResponseTime = Unset
}

func (p *Process) Completed() bool {
	return p.RemainingTime <= 0
}

// Advance gives the process the CPU for up to ticks ticks starting at
// currentTime and returns how many ticks it actually used. Response time is
// recorded on the first call, completion/turnaround/waiting when the remaining
// time reaches zero.
func (p *Process) Advance(ticks, currentTime int) int {
	if !p.Started {
		p.ResponseTime = currentTime - p.ArrivalTime
		p.Started = true
	}

	executed := min(ticks, p.RemainingTime)
	p.RemainingTime -= executed

	if p.Completed() {
		p.CompletionTime = currentTime + executed
		p.TurnaroundTime = p.CompletionTime - p.ArrivalTime
		p.WaitingTime = p.TurnaroundTime - p.BurstTime
	}
	return executed
}

func (p Process) String() string {
	return fmt.Sprintf("Process{id=%d, name=%q, arrival=%d, burst=%d, priority=%d}",
		p.ID, p.Name, p.ArrivalTime, p.BurstTime, p.Priority)
}

// CloneAll returns an independent copy of processes, suitable for feeding the
// same input set to another scheduler.
func CloneAll(processes []Process) []Process {
	clones := make([]Process, len(processes))
	copy(clones, processes)
	return clones
}
