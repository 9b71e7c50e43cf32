package schedulers

import (
	"fmt"
	"log/slog"

	"cpu-scheduler/internal/core"
)

// RoundRobin is preemptive: each dispatch grants at most TimeQuantum ticks,
// simulated one tick at a time.
type RoundRobin struct {
	base
	timeQuantum int
}

func NewRoundRobin(timeQuantum int, logger *slog.Logger) (*RoundRobin, error) {
	if timeQuantum <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTimeQuantum, timeQuantum)
	}
	return &RoundRobin{base: newBase(logger), timeQuantum: timeQuantum}, nil
}

func (s *RoundRobin) Name() string {
	return fmt.Sprintf("Round Robin (Time Quantum = %d)", s.timeQuantum)
}

func (s *RoundRobin) TimeQuantum() int {
	return s.timeQuantum
}

func (s *RoundRobin) Execute() []core.TraceEntry {
	s.reset()
	s.logger.Debug("running roundRobin algorithm", "processes", len(s.processes), "time_quantum", s.timeQuantum)

	arrivals := s.sortedByArrival()
	readyQueue := make([]int, 0, len(s.processes))
	current := -1
	quantumLeft := 0
	dispatched := false

	for !s.allCompleted() {
		// newly arrived processes join the queue before the preempted one
		for len(arrivals) > 0 && s.processes[arrivals[0]].ArrivalTime <= s.currentTime {
			readyQueue = append(readyQueue, arrivals[0])
			arrivals = arrivals[1:]
		}

		if current >= 0 && (quantumLeft == 0 || s.processes[current].Completed()) {
			if s.processes[current].Completed() {
				s.markCompleted(current)
			} else {
				s.logger.Debug("quantum expired", "pid", s.processes[current].ID, "tick", s.currentTime)
				readyQueue = append(readyQueue, current)
			}
			current = -1
		}

		if current < 0 && len(readyQueue) > 0 {
			current = readyQueue[0]
			readyQueue = readyQueue[1:]
			quantumLeft = s.timeQuantum
			if dispatched {
				s.contextSwitches++
			}
			dispatched = true
			s.logger.Debug("dispatch", "pid", s.processes[current].ID, "name", s.processes[current].Name, "tick", s.currentTime)
		}

		if current < 0 {
			s.idle()
			continue
		}

		s.processes[current].Advance(1, s.currentTime)
		quantumLeft--
		s.recordTrace(current, s.currentTime, s.currentTime+1)
		s.currentTime++
	}

	return s.Trace()
}
