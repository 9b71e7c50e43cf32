package schedulers

import (
	"github.com/google/uuid"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

// Run builds the scheduler for algorithm, feeds it a private copy of processes,
// executes it and returns the analytics.
func Run(algorithm Algorithm, processes []core.Process, opts ...Option) (responses.ScheduleResponse, error) {
	scheduler, err := New(algorithm, opts...)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}
	for _, process := range core.CloneAll(processes) {
		scheduler.AddProcess(process)
	}
	scheduler.Execute()

	response := generateResponse(algorithm, scheduler)
	response.RunId = uuid.NewString()
	return response, nil
}

// RunAll runs every algorithm on independent copies of processes.
func RunAll(processes []core.Process, opts ...Option) (responses.CompareResponse, error) {
	compare := responses.CompareResponse{Results: make([]responses.ScheduleResponse, 0, len(Algorithms()))}
	for _, algorithm := range Algorithms() {
		response, err := Run(algorithm, processes, opts...)
		if err != nil {
			return responses.CompareResponse{}, err
		}
		compare.Results = append(compare.Results, response)
	}
	return compare, nil
}

func generateResponse(algorithm Algorithm, scheduler Scheduler) responses.ScheduleResponse {
	trace := scheduler.Trace()
	processes := scheduler.Processes()

	cpuMetric := core.MeasureCpu(trace)

	var completed int
	details := make([]responses.ProcessResponse, 0, len(processes))
	for _, process := range processes {
		if process.Completed() {
			completed++
		}
		details = append(details, generateProcessDetails(process))
	}

	response := responses.ScheduleResponse{
		Algorithm:             string(algorithm),
		Name:                  scheduler.Name(),
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    scheduler.AverageWaitingTime(),
		AverageResponseTime:   scheduler.AverageResponseTime(),
		AverageTurnAroundTime: scheduler.AverageTurnaroundTime(),
		CpuUtilization:        cpuMetric.Utilization(),
		CpuThroughput:         cpuMetric.Throughput(completed),
		ContextSwitches:       scheduler.ContextSwitches(),
		Gantt:                 trace,
		Details:               details,
	}
	if rr, ok := scheduler.(*RoundRobin); ok {
		response.TimeQuantum = rr.TimeQuantum()
	}
	return response
}

func generateProcessDetails(process core.Process) responses.ProcessResponse {
	return responses.ProcessResponse{
		ProcessId:      process.ID,
		Name:           process.Name,
		ArrivalTime:    process.ArrivalTime,
		BurstTime:      process.BurstTime,
		Priority:       process.Priority,
		CompletionTime: process.CompletionTime,
		ResponseTime:   process.ResponseTime,
		TurnAroundTime: process.TurnaroundTime,
		WaitingTime:    process.WaitingTime,
	}
}
