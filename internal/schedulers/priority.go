package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// Priority is non-preemptive priority scheduling. Lower priority values run
// first; ties are broken by earlier arrival, then by input order.
type Priority struct {
	base
}

func NewPriority(logger *slog.Logger) *Priority {
	return &Priority{base: newBase(logger)}
}

func (s *Priority) Name() string {
	return "Priority Scheduling - Non-preemptive"
}

func (s *Priority) Execute() []core.TraceEntry {
	s.reset()
	s.logger.Debug("running priority algorithm", "processes", len(s.processes))

	for !s.allCompleted() {
		arrived := s.arrivedProcesses(s.currentTime)
		if len(arrived) == 0 {
			s.idle()
			continue
		}
		s.runToCompletion(s.highestPriority(arrived))
	}

	return s.Trace()
}

func (s *Priority) highestPriority(candidates []int) int {
	best := candidates[0]
	for _, i := range candidates[1:] {
		p, b := &s.processes[i], &s.processes[best]
		if p.Priority < b.Priority || (p.Priority == b.Priority && p.ArrivalTime < b.ArrivalTime) {
			best = i
		}
	}
	return best
}
