package core

// Process describes a unit of work submitted to the scheduler.
// Lower Priority values are more urgent; Priority is read only by the
// priority discipline.
type Process struct {
	PID         string `json:"pid"`
	BurstTime   int    `json:"burst_time"`
	ArrivalTime int    `json:"arrival_time"`
	Priority    int    `json:"priority"`
}

// ProcessResult is the outcome of one process in a scheduling run.
type ProcessResult struct {
	Process
	StartTime      int `json:"start_time"` // -1 until first dispatch
	FinishTime     int `json:"finish_time"`
	WaitingTime    int `json:"waiting_time"`
	TurnaroundTime int `json:"turnaround_time"`
	ResponseTime   int `json:"response_time"`
}

// NewProcessResult returns a result for p that has not been dispatched yet.
func NewProcessResult(p Process) ProcessResult {
	return ProcessResult{Process: p, StartTime: -1}
}

// Dispatch records the first time the process got the cpu. Later calls are ignored.
func (r *ProcessResult) Dispatch(at int) {
	if r.StartTime < 0 {
		r.StartTime = at
	}
}

// Complete sets the finish time and derives waiting, turnaround and response times.
func (r *ProcessResult) Complete(at int) {
	r.FinishTime = at
	r.TurnaroundTime = at - r.ArrivalTime
	r.WaitingTime = r.TurnaroundTime - r.BurstTime
	r.ResponseTime = r.StartTime - r.ArrivalTime
}

// TimelineInterval is one Gantt chart slot: PID ran on [Start, End).
type TimelineInterval struct {
	PID   string `json:"pid"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

func (i TimelineInterval) Duration() int {
	return i.End - i.Start
}
