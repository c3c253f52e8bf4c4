package responses

import (
	"os-simulator/internal/core"
	"os-simulator/internal/schedulers"
)

type ScheduleResponse struct {
	Algorithm             string                  `json:"algorithm"`
	Quantum               int                     `json:"quantum,omitempty"`
	TotalTime             int                     `json:"total_time"`
	IdleTime              int                     `json:"idle_time"`
	AverageWaitingTime    float64                 `json:"average_waiting_time"`
	AverageResponseTime   float64                 `json:"average_response_time"`
	AverageTurnAroundTime float64                 `json:"average_turn_around_time"`
	CpuUtilization        float64                 `json:"cpu_utilization"`
	CpuThroughput         float64                 `json:"cpu_throughput"`
	Details               []core.ProcessResult    `json:"details"`
	Timeline              []core.TimelineInterval `json:"timeline"`
}

func NewScheduleResponse(schedule schedulers.Schedule) ScheduleResponse {
	return ScheduleResponse{
		Algorithm:             string(schedule.Algorithm),
		Quantum:               schedule.Quantum,
		TotalTime:             schedule.Metrics.TotalTime,
		IdleTime:              schedule.Metrics.IdleTime,
		AverageWaitingTime:    schedule.Metrics.AverageWaitingTime,
		AverageResponseTime:   schedule.Metrics.AverageResponseTime,
		AverageTurnAroundTime: schedule.Metrics.AverageTurnAroundTime,
		CpuUtilization:        schedule.Metrics.CpuUtilization,
		CpuThroughput:         schedule.Metrics.CpuThroughput,
		Details:               schedule.Results,
		Timeline:              schedule.Timeline,
	}
}
