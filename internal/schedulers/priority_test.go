package schedulers

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

func TestPriority_LowestValueFirst_AmongArrived(t *testing.T) {
	// GIVEN P1 alone at t=0; P2 and P4 tie on priority 1 with P2 arriving earlier
	processes := []core.Process{
		{PID: "P1", BurstTime: 3, ArrivalTime: 0, Priority: 3},
		{PID: "P2", BurstTime: 2, ArrivalTime: 1, Priority: 1},
		{PID: "P3", BurstTime: 1, ArrivalTime: 1, Priority: 2},
		{PID: "P4", BurstTime: 2, ArrivalTime: 2, Priority: 1},
	}

	s, err := SchedulePriority(processes)
	require.NoError(t, err)

	want := []iv{{PID: "P1", Start: 0, End: 3}, {PID: "P2", Start: 3, End: 5}, {PID: "P4", Start: 5, End: 7}, {PID: "P3", Start: 7, End: 8}}
	if diff := cmp.Diff(want, s.Timeline); diff != "" {
		t.Errorf("timeline mismatch (-want +got):\n%s", diff)
	}
	requireTimings(t, s.Results, "P3", 7, 8, 6, 7, 6)
	assert.Equal(t, Priority, s.Algorithm)
}

func TestPriority_FullTie_InputOrderWins(t *testing.T) {
	processes := []core.Process{
		{PID: "A", BurstTime: 2, ArrivalTime: 0, Priority: 1},
		{PID: "B", BurstTime: 1, ArrivalTime: 0, Priority: 1},
	}

	s, err := SchedulePriority(processes)
	require.NoError(t, err)

	assert.Equal(t, []iv{{PID: "A", Start: 0, End: 2}, {PID: "B", Start: 2, End: 3}}, s.Timeline)
}

func TestPriority_IgnoresBurst(t *testing.T) {
	processes := []core.Process{
		{PID: "short", BurstTime: 1, ArrivalTime: 0, Priority: 9},
		{PID: "long", BurstTime: 7, ArrivalTime: 0, Priority: 0},
	}

	s, err := SchedulePriority(processes)
	require.NoError(t, err)

	assert.Equal(t, []iv{{PID: "long", Start: 0, End: 7}, {PID: "short", Start: 7, End: 8}}, s.Timeline)
}
