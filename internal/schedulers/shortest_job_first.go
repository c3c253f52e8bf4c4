package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
)

// ScheduleShortestJobFirst is non-preemptive: among arrived processes the one
// with the smallest burst runs to completion, even if a shorter job arrives
// while it runs.
func ScheduleShortestJobFirst(processes []core.Process) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	logrus.Debugf("running sjf algorithm with %d processes", len(processes))

	results, cpu := scheduleNonPreemptive(copyProcesses(processes), func(p core.Process) int {
		return p.BurstTime
	})
	return generateSchedule(ShortestJobFirst, 0, results, cpu), nil
}

// scheduleNonPreemptive repeatedly picks the eligible process that precedes
// all others under key and runs it to completion. With nothing eligible the
// cpu idles until the next arrival.
func scheduleNonPreemptive(jobs []core.Process, key selectionKey) ([]core.ProcessResult, *core.Cpu) {
	results := newResults(jobs)
	finished := make([]bool, len(jobs))
	cpu := core.NewCpu()

	for completed := 0; completed < len(jobs); {
		next := -1
		for i := range jobs {
			if finished[i] || jobs[i].ArrivalTime > cpu.Clock() {
				continue
			}
			if next == -1 || precedes(jobs, key, i, next) {
				next = i
			}
		}

		if next == -1 {
			cpu.IdleUntil(nextArrival(jobs, finished))
			continue
		}

		slot := cpu.Execute(jobs[next].PID, jobs[next].BurstTime)
		results[next].Dispatch(slot.Start)
		results[next].Complete(slot.End)
		finished[next] = true
		completed++
	}
	return results, cpu
}

// nextArrival returns the earliest arrival among unfinished processes.
func nextArrival(jobs []core.Process, finished []bool) int {
	earliest := -1
	for i, p := range jobs {
		if finished[i] {
			continue
		}
		if earliest == -1 || p.ArrivalTime < earliest {
			earliest = p.ArrivalTime
		}
	}
	return earliest
}
