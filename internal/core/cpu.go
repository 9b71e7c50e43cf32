package core

// CpuMetric summarizes how the simulated CPU was used over a run.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// MeasureCpu derives CPU usage from a trace. The run is taken to start at tick
// 0 and end with the last entry.
func MeasureCpu(trace []TraceEntry) CpuMetric {
	var metric CpuMetric
	for _, entry := range trace {
		metric.UtilizationTime += entry.Duration()
	}
	if len(trace) > 0 {
		metric.TotalTime = trace[len(trace)-1].End
	}
	metric.IdleTime = metric.TotalTime - metric.UtilizationTime
	return metric
}

// Utilization is the busy fraction of TotalTime, or 0 for an empty run.
func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.UtilizationTime) / float64(m.TotalTime)
}

// Throughput is completed processes per tick, or 0 for an empty run.
func (m CpuMetric) Throughput(completed int) float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(completed) / float64(m.TotalTime)
}
