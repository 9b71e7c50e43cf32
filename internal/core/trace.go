package core

import "fmt"

// TraceEntry records that a process held the CPU during [Start, End).
type TraceEntry struct {
	ProcessID int    `json:"process_id" yaml:"process_id"`
	Name      string `json:"name" yaml:"name"`
	Start     int    `json:"start" yaml:"start"`
	End       int    `json:"end" yaml:"end"`
}

func (t TraceEntry) Duration() int {
	return t.End - t.Start
}

func (t TraceEntry) String() string {
	return fmt.Sprintf("Time %d-%d: %s", t.Start, t.End, t.Name)
}
