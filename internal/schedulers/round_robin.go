package schedulers

import (
	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
)

// ScheduleRoundRobin time-slices the cpu between ready processes.
//
// After every slice, processes that arrived during it join the ready queue
// (in arrival order, once each) ahead of the process that was just
// preempted. When the queue runs dry the clock jumps to the next arrival.
func ScheduleRoundRobin(processes []core.Process, timeQuantum int) (Schedule, error) {
	if err := validateProcesses(processes); err != nil {
		return Schedule{}, err
	}
	if timeQuantum <= 0 {
		timeQuantum = DefaultTimeQuantum
	}
	logrus.Debugf("running roundRobin algorithm with timeQuantum = %d", timeQuantum)

	jobs := copyProcesses(processes)
	results := newResults(jobs)
	remaining := make([]int, len(jobs))
	for i, p := range jobs {
		remaining[i] = p.BurstTime
	}

	cpu := core.NewCpu()
	order := arrivalOrder(jobs)
	admitted := 0
	var readyQueue core.ReadyQueue
	admitArrivals := func() {
		for admitted < len(order) && jobs[order[admitted]].ArrivalTime <= cpu.Clock() {
			logrus.Debugf("pid: %s joins ready queue at %d", jobs[order[admitted]].PID, cpu.Clock())
			readyQueue.Enqueue(order[admitted])
			admitted++
		}
	}

	admitArrivals()
	for completed := 0; completed < len(jobs); {
		i, ok := readyQueue.Dequeue()
		if !ok {
			// every admitted process is finished, so order[admitted] exists
			cpu.IdleUntil(jobs[order[admitted]].ArrivalTime)
			admitArrivals()
			continue
		}

		slot := cpu.Execute(jobs[i].PID, min(timeQuantum, remaining[i]))
		results[i].Dispatch(slot.Start)
		remaining[i] -= slot.Duration()

		admitArrivals()
		if remaining[i] > 0 {
			logrus.Debugf("pid: %s context switch, %d ticks left", jobs[i].PID, remaining[i])
			readyQueue.Enqueue(i)
			continue
		}
		results[i].Complete(slot.End)
		completed++
	}

	return generateSchedule(RoundRobin, timeQuantum, results, cpu), nil
}
