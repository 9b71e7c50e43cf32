package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// FirstComeFirstServe runs processes to completion in arrival order.
type FirstComeFirstServe struct {
	base
}

func NewFirstComeFirstServe(logger *slog.Logger) *FirstComeFirstServe {
	return &FirstComeFirstServe{base: newBase(logger)}
}

func (s *FirstComeFirstServe) Name() string {
	return "First-Come, First-Served (FCFS)"
}

func (s *FirstComeFirstServe) Execute() []core.TraceEntry {
	s.reset()
	s.logger.Debug("running fcfs algorithm", "processes", len(s.processes))

	// sort jobs by arrival time
	queue := s.sortedByArrival()

	for !s.allCompleted() {
		head := queue[0]
		if s.processes[head].ArrivalTime > s.currentTime {
			s.idle()
			continue
		}
		queue = queue[1:]
		s.runToCompletion(head)
	}

	return s.Trace()
}
