package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ShortestJobFirst is non-preemptive: at each decision point the arrived
// process with the smallest burst time runs to completion. Ties go to the
// process added first.
type ShortestJobFirst struct {
	base
}

func NewShortestJobFirst(logger *slog.Logger) *ShortestJobFirst {
	return &ShortestJobFirst{base: newBase(logger)}
}

func (s *ShortestJobFirst) Name() string {
	return "Shortest Job First (SJF) - Non-preemptive"
}

func (s *ShortestJobFirst) Execute() []core.TraceEntry {
	s.reset()
	s.logger.Debug("running sjf algorithm", "processes", len(s.processes))

	for !s.allCompleted() {
		arrived := s.arrivedProcesses(s.currentTime)
		if len(arrived) == 0 {
			s.idle()
			continue
		}
		s.runToCompletion(s.shortestJob(arrived))
	}

	return s.Trace()
}

// shortestJob picks from candidates, which must be in working-set order.
func (s *ShortestJobFirst) shortestJob(candidates []int) int {
	shortest := candidates[0]
	for _, i := range candidates[1:] {
		if s.processes[i].BurstTime < s.processes[shortest].BurstTime {
			shortest = i
		}
	}
	return shortest
}
