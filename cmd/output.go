package cmd

import (
	"fmt"
	"io"
	"strings"

	"github.com/olekukonko/tablewriter"

	"os-simulator/internal/core"
	"os-simulator/internal/memory"
	"os-simulator/internal/schedulers"
	"os-simulator/internal/workload"
)

var algorithmTitles = map[schedulers.Algorithm]string{
	schedulers.FirstComeFirstServe: "First-come, first-serve",
	schedulers.ShortestJobFirst:    "Shortest-job-first",
	schedulers.Priority:            "Priority",
	schedulers.RoundRobin:          "Round-robin",
}

func scheduleTitle(s schedulers.Schedule) string {
	title := algorithmTitles[s.Algorithm]
	if s.Algorithm == schedulers.RoundRobin {
		title = fmt.Sprintf("%s (quantum %d)", title, s.Quantum)
	}
	return title
}

func outputTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// outputGantt prints one cell per slice, with idle gaps shown as "idle",
// followed by the slice start times and the final end time.
func outputGantt(w io.Writer, timeline []core.TimelineInterval) {
	_, _ = fmt.Fprintln(w, "Gantt schedule")
	slots := make([]core.TimelineInterval, 0, len(timeline))
	clock := 0
	for _, slot := range timeline {
		if slot.Start > clock {
			slots = append(slots, core.TimelineInterval{PID: "idle", Start: clock, End: slot.Start})
		}
		slots = append(slots, slot)
		clock = slot.End
	}

	_, _ = fmt.Fprint(w, "|")
	for _, slot := range slots {
		padding := strings.Repeat(" ", max(0, (8-len(slot.PID))/2))
		_, _ = fmt.Fprint(w, padding, slot.PID, padding, "|")
	}
	_, _ = fmt.Fprintln(w)
	for i, slot := range slots {
		_, _ = fmt.Fprint(w, slot.Start, "\t")
		if i == len(slots)-1 {
			_, _ = fmt.Fprint(w, slot.End)
		}
	}
	_, _ = fmt.Fprintf(w, "\n\n")
}

func outputSchedule(w io.Writer, s schedulers.Schedule) {
	_, _ = fmt.Fprintln(w, "Schedule table")
	rows := make([][]string, 0, len(s.Results))
	for _, r := range s.Results {
		rows = append(rows, []string{
			r.PID,
			fmt.Sprint(r.Priority),
			fmt.Sprint(r.BurstTime),
			fmt.Sprint(r.ArrivalTime),
			fmt.Sprint(r.StartTime),
			fmt.Sprint(r.FinishTime),
			fmt.Sprint(r.WaitingTime),
			fmt.Sprint(r.TurnaroundTime),
			fmt.Sprint(r.ResponseTime),
		})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"ID", "Priority", "Burst", "Arrival", "Start", "Exit", "Wait", "Turnaround", "Response"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "", "", "",
		fmt.Sprintf("Utilization\n%.2f", s.Metrics.CpuUtilization),
		fmt.Sprintf("Average\n%.2f", s.Metrics.AverageWaitingTime),
		fmt.Sprintf("Average\n%.2f", s.Metrics.AverageTurnAroundTime),
		fmt.Sprintf("Average\n%.2f", s.Metrics.AverageResponseTime)})
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputOperations(w io.Writer, outcomes []workload.OperationOutcome) {
	rows := make([][]string, 0, len(outcomes))
	for i, o := range outcomes {
		result := "ok"
		switch {
		case o.Err != nil:
			result = o.Err.Error()
		case o.Operation.Op != workload.OpReinitialize:
			result = fmt.Sprintf("[%d, %d)", o.Allocation.Start, o.Allocation.End())
		}
		rows = append(rows, []string{fmt.Sprint(i + 1), o.Operation.String(), string(o.Strategy), result})
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"#", "Operation", "Strategy", "Result"})
	table.SetAutoWrapText(false)
	table.AppendBulk(rows)
	table.Render()
	_, _ = fmt.Fprintln(w)
}

func outputLayout(w io.Writer, layout memory.Layout) {
	_, _ = fmt.Fprintln(w, "Memory layout")
	rows := make([][]string, 0, len(layout.Allocations)+len(layout.FreeRegions))
	allocations, regions := layout.Allocations, layout.FreeRegions
	for len(allocations) > 0 || len(regions) > 0 {
		if len(regions) == 0 || (len(allocations) > 0 && allocations[0].Start < regions[0].Start) {
			a := allocations[0]
			rows = append(rows, []string{a.PID, fmt.Sprint(a.Start), fmt.Sprint(a.End() - 1), fmt.Sprint(a.Size)})
			allocations = allocations[1:]
			continue
		}
		r := regions[0]
		rows = append(rows, []string{"free", fmt.Sprint(r.Start), fmt.Sprint(r.End() - 1), fmt.Sprint(r.Size)})
		regions = regions[1:]
	}

	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Owner", "Start", "End", "Size"})
	table.AppendBulk(rows)
	table.SetFooter([]string{"", "", "Used", fmt.Sprintf("%d/%d (%.1f%%)", layout.Usage.Used, layout.Usage.Capacity, layout.Usage.UsedPercent)})
	table.Render()

	f := layout.Fragmentation
	_, _ = fmt.Fprintf(w, "Free blocks: %d, largest: %d, free units: %d\n", f.FreeBlocks, f.LargestFreeBlock, f.FreeUnits)
	_, _ = fmt.Fprintf(w, "Fragmentation: %s (%s, %.0f%%)\n", f.Status, f.Level, f.Percentage)
}
