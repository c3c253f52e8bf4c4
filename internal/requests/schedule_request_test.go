package requests

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"os-simulator/internal/core"
)

func TestToProcesses_FillsDefaults(t *testing.T) {
	zero, urgent := 0, 5
	specs := []ProcessSpec{
		{BurstTime: 3},
		{PID: "db", BurstTime: 2, ArrivalTime: 4, Priority: &urgent},
		{BurstTime: 1, ArrivalTime: 1, Priority: &zero},
	}

	got := ToProcesses(specs)

	assert.Equal(t, []core.Process{
		{PID: "P1", BurstTime: 3, ArrivalTime: 0, Priority: DefaultPriority},
		{PID: "db", BurstTime: 2, ArrivalTime: 4, Priority: 5},
		{PID: "P3", BurstTime: 1, ArrivalTime: 1, Priority: 0},
	}, got)
}

func TestScheduleRequest_DecodesJSON(t *testing.T) {
	body := `{"quantum":3,"processes":[{"pid":"A","burst_time":4,"arrival_time":1,"priority":2},{"burst_time":1}]}`

	var request ScheduleRequest
	require.NoError(t, json.Unmarshal([]byte(body), &request))

	assert.Equal(t, 3, request.Quantum)
	got := ToProcesses(request.Processes)
	assert.Equal(t, core.Process{PID: "A", BurstTime: 4, ArrivalTime: 1, Priority: 2}, got[0])
	assert.Equal(t, core.Process{PID: "P2", BurstTime: 1, Priority: DefaultPriority}, got[1])
}
