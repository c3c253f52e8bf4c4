package schedulers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

type iv = core.TimelineInterval

func resultsByPID(results []core.ProcessResult) map[string]core.ProcessResult {
	out := make(map[string]core.ProcessResult, len(results))
	for _, r := range results {
		out[r.PID] = r
	}
	return out
}

// requireTimings checks start, finish, waiting, turnaround and response for pid.
func requireTimings(t *testing.T, results []core.ProcessResult, pid string, start, finish, waiting, turnaround, response int) {
	t.Helper()
	r, ok := resultsByPID(results)[pid]
	require.True(t, ok, "missing result for %s", pid)
	require.Equal(t, start, r.StartTime, "%s start", pid)
	require.Equal(t, finish, r.FinishTime, "%s finish", pid)
	require.Equal(t, waiting, r.WaitingTime, "%s waiting", pid)
	require.Equal(t, turnaround, r.TurnaroundTime, "%s turnaround", pid)
	require.Equal(t, response, r.ResponseTime, "%s response", pid)
}

// sliceTotals sums execution time per pid over a timeline.
func sliceTotals(timeline []core.TimelineInterval) map[string]int {
	totals := make(map[string]int)
	for _, slot := range timeline {
		totals[slot.PID] += slot.Duration()
	}
	return totals
}

// mixedWorkload has idle gaps, ties on every key and late arrivals.
func mixedWorkload() []core.Process {
	return []core.Process{
		{PID: "P1", BurstTime: 6, ArrivalTime: 0, Priority: 3},
		{PID: "P2", BurstTime: 2, ArrivalTime: 1, Priority: 1},
		{PID: "P3", BurstTime: 2, ArrivalTime: 1, Priority: 1},
		{PID: "P4", BurstTime: 5, ArrivalTime: 4, Priority: 2},
		{PID: "P5", BurstTime: 1, ArrivalTime: 30, Priority: 5},
		{PID: "P6", BurstTime: 3, ArrivalTime: 31, Priority: 0},
	}
}
