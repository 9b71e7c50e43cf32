package responses

import "cpu-scheduler/internal/core"

type ProcessResponse struct {
	ProcessId      int    `json:"process_id" yaml:"process_id"`
	Name           string `json:"name" yaml:"name"`
	ArrivalTime    int    `json:"arrival_time" yaml:"arrival_time"`
	BurstTime      int    `json:"burst_time" yaml:"burst_time"`
	Priority       int    `json:"priority" yaml:"priority"`
	CompletionTime int    `json:"completion_time" yaml:"completion_time"`
	ResponseTime   int    `json:"response_time" yaml:"response_time"`
	TurnAroundTime int    `json:"turn_around_time" yaml:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time" yaml:"waiting_time"`
}

type ScheduleResponse struct {
	RunId                 string            `json:"run_id" yaml:"run_id"`
	Algorithm             string            `json:"algorithm" yaml:"algorithm"`
	Name                  string            `json:"name" yaml:"name"`
	TimeQuantum           int               `json:"time_quantum,omitempty" yaml:"time_quantum,omitempty"`
	TotalTime             int               `json:"total_time" yaml:"total_time"`
	IdleTime              int               `json:"idle_time" yaml:"idle_time"`
	AverageWaitingTime    float64           `json:"average_waiting_time" yaml:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time" yaml:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time" yaml:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization" yaml:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput" yaml:"cpu_throughput"`
	ContextSwitches       int               `json:"context_switches" yaml:"context_switches"`
	Gantt                 []core.TraceEntry `json:"gantt" yaml:"gantt"`
	Details               []ProcessResponse `json:"details" yaml:"details"`
}

// CompareResponse holds one result per algorithm, each computed on its own
// copy of the same input.
type CompareResponse struct {
	Results []ScheduleResponse `json:"results" yaml:"results"`
}
