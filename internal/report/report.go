// Package report renders scheduling results for terminals.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/responses"
)

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
	_, _ = fmt.Fprintln(w, " ", title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)+4))
}

// Gantt writes one "Time <start>-<end>: <name>" line per trace entry.
func Gantt(w io.Writer, trace []core.TraceEntry) {
	_, _ = fmt.Fprintln(w, "Gantt chart")
	if len(trace) == 0 {
		_, _ = fmt.Fprintln(w, "(empty)")
		return
	}
	for _, entry := range trace {
		_, _ = fmt.Fprintln(w, entry.String())
	}
}

// GanttBar writes a compact bar of the trace, merging adjacent entries of the
// same process and marking idle gaps.
func GanttBar(w io.Writer, trace []core.TraceEntry) {
	if len(trace) == 0 {
		return
	}
	var bars, scale strings.Builder
	bars.WriteString("|")
	last := 0
	for _, seg := range mergeAdjacent(trace) {
		if seg.Start > last {
			writeCell(&bars, &scale, "idle", last)
		}
		writeCell(&bars, &scale, seg.Name, seg.Start)
		last = seg.End
	}
	scale.WriteString(fmt.Sprint(last))
	_, _ = fmt.Fprintln(w, bars.String())
	_, _ = fmt.Fprintln(w, scale.String())
}

func writeCell(bars, scale *strings.Builder, name string, start int) {
	width := max(len(name)+2, 6)
	left := (width - len(name)) / 2
	bars.WriteString(strings.Repeat(" ", left) + name + strings.Repeat(" ", width-len(name)-left) + "|")
	scale.WriteString(fmt.Sprintf("%-*d", width+1, start))
}

func mergeAdjacent(trace []core.TraceEntry) []core.TraceEntry {
	merged := make([]core.TraceEntry, 0, len(trace))
	for _, entry := range trace {
		if n := len(merged); n > 0 && merged[n-1].ProcessID == entry.ProcessID && merged[n-1].End == entry.Start {
			merged[n-1].End = entry.End
			continue
		}
		merged = append(merged, entry)
	}
	return merged
}

// Schedule writes the title, Gantt chart and per-process table of one run.
func Schedule(w io.Writer, response responses.ScheduleResponse) {
	outputTitle(w, response.Name)
	Gantt(w, response.Gantt)
	_, _ = fmt.Fprintln(w)
	GanttBar(w, response.Gantt)
	_, _ = fmt.Fprintln(w)

	rows := make([][]string, 0, len(response.Details))
	for _, d := range response.Details {
		rows = append(rows, []string{
			fmt.Sprint(d.ProcessId),
			d.Name,
			fmt.Sprint(d.Priority),
			fmt.Sprint(d.BurstTime),
			fmt.Sprint(d.ArrivalTime),
			fmt.Sprint(d.WaitingTime),
			fmt.Sprint(d.TurnAroundTime),
			fmt.Sprint(d.ResponseTime),
			fmt.Sprint(d.CompletionTime),
		})
	}

	_, _ = fmt.Fprintln(w, "Schedule table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Name", "Priority", "Burst", "Arrival", "Wait", "Turnaround", "Response", "Exit"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Average\n%.2f", response.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", response.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", response.AverageResponseTime),
		fmt.Sprintf("Switches\n%d", response.ContextSwitches)})
	table.Render()
}

// Comparison writes one summary row per algorithm.
func Comparison(w io.Writer, compare responses.CompareResponse) {
	outputTitle(w, "Algorithm comparison")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Wait", "Avg Turnaround", "Avg Response", "Switches", "Total", "Utilization"})
	for _, r := range compare.Results {
		table.Append([]string{
			r.Name,
			fmt.Sprintf("%.2f", r.AverageWaitingTime),
			fmt.Sprintf("%.2f", r.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", r.AverageResponseTime),
			fmt.Sprint(r.ContextSwitches),
			fmt.Sprint(r.TotalTime),
			fmt.Sprintf("%.0f%%", r.CpuUtilization*100),
		})
	}
	table.Render()
}
