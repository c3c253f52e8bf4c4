package schedulers

import (
	"sort"

	"os-simulator/internal/core"
)

// arrivalOrder returns process indices sorted by (arrival time, input index).
func arrivalOrder(processes []core.Process) []int {
	order := make([]int, len(processes))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		return processes[order[i]].ArrivalTime < processes[order[j]].ArrivalTime
	})
	return order
}

// selectionKey extracts the value a non-preemptive discipline minimizes.
type selectionKey func(core.Process) int

// precedes orders processes i and j by (key, arrival time, input index).
func precedes(processes []core.Process, key selectionKey, i, j int) bool {
	a, b := processes[i], processes[j]
	if ka, kb := key(a), key(b); ka != kb {
		return ka < kb
	}
	if a.ArrivalTime != b.ArrivalTime {
		return a.ArrivalTime < b.ArrivalTime
	}
	return i < j
}
