package cmd

import (
	"github.com/spf13/cobra"

	"os-simulator/internal/schedulers"
	"os-simulator/internal/workload"
)

var (
	workloadPath string // YAML process workload
	algorithm    string // Scheduling algorithm, overrides the workload's
	timeQuantum  int    // Round-robin quantum, overrides workload and config
	runAll       bool   // Run every algorithm
)

var scheduleCmd = &cobra.Command{
	Use:   "schedule",
	Short: "Schedule a process workload and print the Gantt chart and timings",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		w, err := workload.LoadWorkload(workloadPath)
		if err != nil {
			return err
		}

		quantum := cfg.RoundRobinTimeQuantum
		if w.Quantum > 0 {
			quantum = w.Quantum
		}
		if cmd.Flags().Changed("quantum") {
			quantum = timeQuantum
		}

		var schedules []schedulers.Schedule
		if runAll {
			schedules, err = schedulers.RunAll(w.ToProcesses(), quantum)
		} else {
			selected := string(schedulers.FirstComeFirstServe)
			if w.Algorithm != "" {
				selected = w.Algorithm
			}
			if cmd.Flags().Changed("algorithm") {
				selected = algorithm
			}
			var s schedulers.Schedule
			s, err = schedulers.RunScheduling(w.ToProcesses(), selected, quantum)
			schedules = []schedulers.Schedule{s}
		}
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		for _, s := range schedules {
			outputTitle(out, scheduleTitle(s))
			outputGantt(out, s.Timeline)
			outputSchedule(out, s)
		}
		return nil
	},
}

func init() {
	scheduleCmd.Flags().StringVarP(&workloadPath, "workload", "w", "", "YAML workload file")
	scheduleCmd.Flags().StringVarP(&algorithm, "algorithm", "a", "fcfs", "Algorithm (fcfs, sjf, priority, rr)")
	scheduleCmd.Flags().IntVarP(&timeQuantum, "quantum", "q", schedulers.DefaultTimeQuantum, "Round-robin time quantum")
	scheduleCmd.Flags().BoolVar(&runAll, "all", false, "Run every algorithm on the workload")
	_ = scheduleCmd.MarkFlagRequired("workload")
}
