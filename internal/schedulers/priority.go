package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
)

// SchedulePriority is non-preemptive static priority: the arrived process
// with the lowest priority value runs to completion.
func SchedulePriority(processes []core.Process) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	logrus.Debugf("running priority algorithm with %d processes", len(processes))

	results, cpu := scheduleNonPreemptive(copyProcesses(processes), func(p core.Process) int {
		return p.Priority
	})
	return generateSchedule(Priority, 0, results, cpu), nil
}
