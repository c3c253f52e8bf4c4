package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"

	"os-simulator/internal/core"
	"os-simulator/internal/schedulers"
)

func TestOutputGantt_MarksIdleGaps(t *testing.T) {
	var out bytes.Buffer

	outputGantt(&out, []core.TimelineInterval{
		{PID: "P1", Start: 0, End: 2},
		{PID: "P2", Start: 5, End: 8},
	})

	assert.Equal(t, "Gantt schedule\n|   P1   |  idle  |   P2   |\n0\t2\t5\t8\n\n", out.String())
}

func TestOutputGantt_LeadingIdle(t *testing.T) {
	var out bytes.Buffer

	outputGantt(&out, []core.TimelineInterval{{PID: "A", Start: 3, End: 4}})

	assert.Contains(t, out.String(), "|  idle  |")
	assert.Contains(t, out.String(), "0\t3\t4")
}

func TestScheduleTitle(t *testing.T) {
	assert.Equal(t, "Priority", scheduleTitle(schedulers.Schedule{Algorithm: schedulers.Priority}))
	assert.Equal(t, "Round-robin (quantum 3)", scheduleTitle(schedulers.Schedule{Algorithm: schedulers.RoundRobin, Quantum: 3}))
}
