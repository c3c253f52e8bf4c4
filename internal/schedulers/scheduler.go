package schedulers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"os-simulator/internal/core"
)

// Algorithm selects a scheduling discipline.
type Algorithm string

const (
	FirstComeFirstServe Algorithm = "fcfs"
	ShortestJobFirst    Algorithm = "sjf"
	Priority            Algorithm = "priority"
	RoundRobin          Algorithm = "rr"
)

// DefaultTimeQuantum is the round-robin slice used when none is given.
const DefaultTimeQuantum = 2

var (
	ErrInvalidProcess   = errors.New("invalid process")
	ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")
)

var algorithmAliases = map[string]Algorithm{
	"fcfs":        FirstComeFirstServe,
	"sjf":         ShortestJobFirst,
	"priority":    Priority,
	"rr":          RoundRobin,
	"round-robin": RoundRobin,
	"roundrobin":  RoundRobin,
}

// Algorithms lists every supported discipline in presentation order.
func Algorithms() []Algorithm {
	return []Algorithm{FirstComeFirstServe, ShortestJobFirst, Priority, RoundRobin}
}

// ParseAlgorithm resolves a selector (case-insensitive, aliases allowed).
func ParseAlgorithm(name string) (Algorithm, error) {
	if alg, ok := algorithmAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return alg, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Schedule is the outcome of one scheduling run. Results are in input order,
// Timeline is in execution order.
type Schedule struct {
	Algorithm Algorithm
	Quantum   int
	Results   []core.ProcessResult
	Timeline  []core.TimelineInterval
	Metrics   Metrics
}

// RunScheduling runs the selected discipline over a private copy of processes.
// An unrecognized selector falls back to first-come-first-served; the
// returned Schedule.Algorithm names the discipline that actually ran.
// quantum is only read by round-robin; values <= 0 mean DefaultTimeQuantum.
func RunScheduling(processes []core.Process, algorithm string, quantum int) (Schedule, error) {
	alg, err := ParseAlgorithm(algorithm)
	if err != nil {
		logrus.Warnf("%v, falling back to %s", err, FirstComeFirstServe)
		alg = FirstComeFirstServe
	}

	switch alg {
	case ShortestJobFirst:
		return ScheduleShortestJobFirst(processes)
	case Priority:
		return SchedulePriority(processes)
	case RoundRobin:
		return ScheduleRoundRobin(processes, quantum)
	default:
		return ScheduleFirstComeFirstServe(processes)
	}
}

// RunAll runs every discipline over the same input, in Algorithms() order.
func RunAll(processes []core.Process, quantum int) ([]Schedule, error) {
	schedules := make([]Schedule, 0, len(Algorithms()))
	for _, alg := range Algorithms() {
		s, err := RunScheduling(processes, string(alg), quantum)
		if err != nil {
			return nil, err
		}
		schedules = append(schedules, s)
	}
	return schedules, nil
}

func validateProcesses(processes []core.Process) error {
	seen := make(map[string]struct{}, len(processes))
	for i, p := range processes {
		if p.PID == "" {
			return fmt.Errorf("%w: process #%d has no pid", ErrInvalidProcess, i+1)
		}
		if _, dup := seen[p.PID]; dup {
			return fmt.Errorf("%w: duplicate pid %q", ErrInvalidProcess, p.PID)
		}
		seen[p.PID] = struct{}{}
		if p.BurstTime <= 0 {
			return fmt.Errorf("%w: pid %q burst time must be positive, got %d", ErrInvalidProcess, p.PID, p.BurstTime)
		}
		if p.ArrivalTime < 0 {
			return fmt.Errorf("%w: pid %q arrival time must not be negative, got %d", ErrInvalidProcess, p.PID, p.ArrivalTime)
		}
	}
	return nil
}

// copyProcesses detaches a run from caller-owned state.
func copyProcesses(processes []core.Process) []core.Process {
	out := make([]core.Process, len(processes))
	copy(out, processes)
	return out
}

func newResults(processes []core.Process) []core.ProcessResult {
	results := make([]core.ProcessResult, len(processes))
	for i, p := range processes {
		results[i] = core.NewProcessResult(p)
	}
	return results
}
