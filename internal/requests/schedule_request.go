package requests

import (
	"fmt"

	"os-simulator/internal/core"
)

// DefaultPriority is assigned to processes that omit a priority.
const DefaultPriority = 1

// ProcessSpec is a process as submitted by a caller. Omitted fields take
// defaults: pid "P<n>" by position, arrival 0, priority DefaultPriority.
type ProcessSpec struct {
	PID         string `json:"pid" yaml:"pid"`
	BurstTime   int    `json:"burst_time" yaml:"burst_time"`
	ArrivalTime int    `json:"arrival_time" yaml:"arrival_time"`
	Priority    *int   `json:"priority,omitempty" yaml:"priority"`
}

type ScheduleRequest struct {
	Processes []ProcessSpec `json:"processes"`
	Quantum   int           `json:"quantum"`
}

// ToProcesses fills defaults and converts specs to scheduler input.
func ToProcesses(specs []ProcessSpec) []core.Process {
	processes := make([]core.Process, len(specs))
	for i, spec := range specs {
		p := core.Process{
			PID:         spec.PID,
			BurstTime:   spec.BurstTime,
			ArrivalTime: spec.ArrivalTime,
			Priority:    DefaultPriority,
		}
		if p.PID == "" {
			p.PID = fmt.Sprintf("P%d", i+1)
		}
		if spec.Priority != nil {
			p.Priority = *spec.Priority
		}
		processes[i] = p
	}
	return processes
}
