package core

import (
	"github.com/sirupsen/logrus"
)

// CpuMetric summarizes how a simulated cpu spent its time.
type CpuMetric struct {
	TotalTime       int
	UtilizationTime int
	IdleTime        int
}

// Cpu is a simulated single core. It owns the simulation clock and records
// every execution slice on the timeline. Time only moves forward.
type Cpu struct {
	clock           int
	utilizationTime int
	timeline        []TimelineInterval
}

func NewCpu() *Cpu {
	return &Cpu{timeline: make([]TimelineInterval, 0)}
}

// Clock returns the current simulation tick.
func (c *Cpu) Clock() int {
	return c.clock
}

// Execute runs pid for duration ticks starting at the current clock and
// advances the clock to the end of the slice.
func (c *Cpu) Execute(pid string, duration int) TimelineInterval {
	slot := TimelineInterval{PID: pid, Start: c.clock, End: c.clock + duration}
	logrus.Debugf("pid: %s executes [%d, %d)", pid, slot.Start, slot.End)
	c.timeline = append(c.timeline, slot)
	c.clock = slot.End
	c.utilizationTime += duration
	return slot
}

// IdleUntil leaves the cpu idle up to tick t. It is a no-op when t is not in the future.
func (c *Cpu) IdleUntil(t int) {
	if t <= c.clock {
		return
	}
	logrus.Debugf("cpu idle [%d, %d)", c.clock, t)
	c.clock = t
}

// Timeline returns the recorded execution slices in dispatch order.
func (c *Cpu) Timeline() []TimelineInterval {
	return c.timeline
}

func (c *Cpu) Metric() CpuMetric {
	return CpuMetric{
		TotalTime:       c.clock,
		UtilizationTime: c.utilizationTime,
		IdleTime:        c.clock - c.utilizationTime,
	}
}
