package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
)

// ScheduleFirstComeFirstServe runs processes to completion in arrival order.
// Processes arriving on the same tick keep their input order.
func ScheduleFirstComeFirstServe(processes []core.Process) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	logrus.Debugf("running fcfs algorithm with %d processes", len(processes))

	jobs := copyProcesses(processes)
	results := newResults(jobs)
	cpu := core.NewCpu()

	for _, i := range arrivalOrder(jobs) {
		cpu.IdleUntil(jobs[i].ArrivalTime)
		slot := cpu.Execute(jobs[i].PID, jobs[i].BurstTime)
		results[i].Dispatch(slot.Start)
		results[i].Complete(slot.End)
	}

	return generateSchedule(FirstComeFirstServe, 0, results, cpu), nil
}
