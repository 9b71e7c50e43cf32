package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/logging"
	"cpu-scheduler/internal/util"
)

// Scheduler is a single-processor scheduling strategy. A Scheduler owns copies
// of the processes added to it; Execute simulates the whole timeline and
// returns the Gantt trace. Implementations are not safe for concurrent use.
type Scheduler interface {
	AddProcess(process core.Process)
	Execute() []core.TraceEntry
	Name() string

	Trace() []core.TraceEntry
	Processes() []core.Process
	AverageWaitingTime() float64
	AverageTurnaroundTime() float64
	AverageResponseTime() float64
	ContextSwitches() int
}

// base holds the bookkeeping shared by every strategy.
type base struct {
	processes       []core.Process
	completed       []int
	trace           []core.TraceEntry
	currentTime     int
	contextSwitches int
	logger          *slog.Logger
}

func newBase(logger *slog.Logger) base {
	if logger == nil {
		logger = logging.Discard()
	}
	return base{
		trace:  make([]core.TraceEntry, 0),
		logger: logger,
	}
}

func (b *base) AddProcess(process core.Process) {
	b.processes = append(b.processes, process)
}

// reset clears per-run state and rewinds every owned process.
func (b *base) reset() {
	b.trace = make([]core.TraceEntry, 0)
	b.completed = b.completed[:0]
	b.currentTime = 0
	b.contextSwitches = 0
	for i := range b.processes {
		b.processes[i].Reset()
	}
}

// arrivedProcesses returns the indices of processes that have arrived by tick
// and are not completed, in working-set order.
func (b *base) arrivedProcesses(tick int) []int {
	arrived := make([]int, 0, len(b.processes))
	for i := range b.processes {
		if b.processes[i].ArrivalTime <= tick && !b.processes[i].Completed() {
			arrived = append(arrived, i)
		}
	}
	return arrived
}

func (b *base) allCompleted() bool {
	return len(b.completed) == len(b.processes)
}

func (b *base) markCompleted(i int) {
	b.completed = append(b.completed, i)
	p := &b.processes[i]
	b.logger.Debug("process completed",
		"pid", p.ID,
		"name", p.Name,
		"completion", p.CompletionTime,
		"waiting", p.WaitingTime,
		"turnaround", p.TurnaroundTime,
	)
}

func (b *base) recordTrace(i, start, end int) {
	p := &b.processes[i]
	b.trace = append(b.trace, core.TraceEntry{
		ProcessID: p.ID,
		Name:      p.Name,
		Start:     start,
		End:       end,
	})
}

// idle advances the clock by one tick without occupying the CPU.
func (b *base) idle() {
	b.logger.Debug("cpu idle", "tick", b.currentTime)
	b.currentTime++
}

// runToCompletion dispatches process i at the current tick and runs it to
// completion in a single span. A context switch is counted when work remains.
func (b *base) runToCompletion(i int) {
	p := &b.processes[i]
	start := b.currentTime
	b.logger.Debug("dispatch", "pid", p.ID, "name", p.Name, "tick", start)

	b.currentTime += p.Advance(p.RemainingTime, start)
	b.markCompleted(i)
	b.recordTrace(i, start, b.currentTime)

	if !b.allCompleted() {
		b.contextSwitches++
	}
}

// sortedByArrival returns working-set indices ordered by arrival time, keeping
// input order on ties.
func (b *base) sortedByArrival() []int {
	order := make([]int, len(b.processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return b.processes[order[i]].ArrivalTime < b.processes[order[j]].ArrivalTime
	})
	return order
}

func (b *base) completedProcesses() []core.Process {
	completed := make([]core.Process, 0, len(b.completed))
	for _, i := range b.completed {
		completed = append(completed, b.processes[i])
	}
	return completed
}

func (b *base) Trace() []core.TraceEntry {
	trace := make([]core.TraceEntry, len(b.trace))
	copy(trace, b.trace)
	return trace
}

func (b *base) Processes() []core.Process {
	return core.CloneAll(b.processes)
}

func (b *base) AverageWaitingTime() float64 {
	waiting, _, _ := util.CalculateAverage(b.completedProcesses())
	return waiting
}

func (b *base) AverageTurnaroundTime() float64 {
	_, _, turnaround := util.CalculateAverage(b.completedProcesses())
	return turnaround
}

func (b *base) AverageResponseTime() float64 {
	_, response, _ := util.CalculateAverage(b.completedProcesses())
	return response
}

func (b *base) ContextSwitches() int {
	return b.contextSwitches
}
