package schedulers

import (
	"os-simulator/internal/core"
	"os-simulator/internal/util"
)

// Metrics aggregates a run for reporting.
type Metrics struct {
	TotalTime             int
	IdleTime              int
	CpuUtilization        float64
	CpuThroughput         float64
	AverageWaitingTime    float64
	AverageResponseTime   float64
	AverageTurnAroundTime float64
}

func generateSchedule(algorithm Algorithm, quantum int, results []core.ProcessResult, cpu *core.Cpu) Schedule {
	return Schedule{
		Algorithm: algorithm,
		Quantum:   quantum,
		Results:   results,
		Timeline:  cpu.Timeline(),
		Metrics:   generateMetrics(results, cpu.Metric()),
	}
}

func generateMetrics(results []core.ProcessResult, cpuMetric core.CpuMetric) Metrics {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime := util.CalculateAverage(results)

	metrics := Metrics{
		TotalTime:             cpuMetric.TotalTime,
		IdleTime:              cpuMetric.IdleTime,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
	}
	if cpuMetric.TotalTime > 0 {
		metrics.CpuUtilization = float64(cpuMetric.UtilizationTime) / float64(cpuMetric.TotalTime)
		metrics.CpuThroughput = float64(len(results)) / float64(cpuMetric.TotalTime)
	}
	return metrics
}
