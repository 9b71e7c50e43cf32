package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// DefaultTimeQuantum is used for Round Robin when the caller does not supply one.
const DefaultTimeQuantum = 4

var (
	ErrInvalidTimeQuantum = errors.New("time quantum must be greater than 0")
	ErrUnknownAlgorithm   = errors.New("unknown scheduling algorithm")
)

type Algorithm string

const (
	AlgorithmFCFS       Algorithm = "fcfs"
	AlgorithmSJF        Algorithm = "sjf"
	AlgorithmPriority   Algorithm = "priority"
	AlgorithmRoundRobin Algorithm = "rr"
)

// Algorithms lists every supported algorithm in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{AlgorithmFCFS, AlgorithmSJF, AlgorithmPriority, AlgorithmRoundRobin}
}

// ParseAlgorithm accepts the short identifiers plus a few common spellings.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "fcfs", "first_come_first_serve":
		return AlgorithmFCFS, nil
	case "sjf", "shortest_job_first":
		return AlgorithmSJF, nil
	case "priority":
		return AlgorithmPriority, nil
	case "rr", "round_robin", "round-robin", "roundrobin":
		return AlgorithmRoundRobin, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
	}
}

type options struct {
	timeQuantum int
	logger      *slog.Logger
}

type Option func(*options)

// WithTimeQuantum sets the Round Robin quantum. It is ignored by the other algorithms.
func WithTimeQuantum(timeQuantum int) Option {
	return func(o *options) { o.timeQuantum = timeQuantum }
}

func WithLogger(logger *slog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// New constructs a ready-to-use scheduler for algorithm.
func New(algorithm Algorithm, opts ...Option) (Scheduler, error) {
	o := options{timeQuantum: DefaultTimeQuantum}
	for _, opt := range opts {
		opt(&o)
	}
	if o.logger != nil {
		o.logger = o.logger.With("algorithm", string(algorithm))
	}

	switch algorithm {
	case AlgorithmFCFS:
		return NewFirstComeFirstServe(o.logger), nil
	case AlgorithmSJF:
		return NewShortestJobFirst(o.logger), nil
	case AlgorithmPriority:
		return NewPriority(o.logger), nil
	case AlgorithmRoundRobin:
		rr, err := NewRoundRobin(o.timeQuantum, o.logger)
		if err != nil {
			return nil, err
		}
		return rr, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(algorithm))
	}
}
