package cmd

import (
	"github.com/spf13/cobra"

	"os-simulator/internal/memory"
	"os-simulator/internal/workload"
)

var (
	scriptPath     string // YAML memory operation script
	memoryCapacity int    // Initial capacity, overrides script and config
	memoryStrategy string // Default placement strategy, overrides config
)

var memoryCmd = &cobra.Command{
	Use:   "memory",
	Short: "Replay a memory allocation script and print the resulting layout",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		script, err := workload.LoadMemoryScript(scriptPath)
		if err != nil {
			return err
		}

		capacity := cfg.MemoryDefaultCapacity
		if script.Capacity > 0 {
			capacity = script.Capacity
		}
		if cmd.Flags().Changed("capacity") {
			capacity = memoryCapacity
		}
		strategyName := cfg.MemoryDefaultStrategy
		if cmd.Flags().Changed("strategy") {
			strategyName = memoryStrategy
		}
		strategy, err := memory.ParseStrategy(strategyName)
		if err != nil {
			return err
		}

		allocator, err := memory.New(capacity)
		if err != nil {
			return err
		}
		outcomes := script.Replay(allocator, strategy)

		out := cmd.OutOrStdout()
		outputTitle(out, "Memory operations")
		outputOperations(out, outcomes)
		outputLayout(out, allocator.Layout())
		return nil
	},
}

func init() {
	memoryCmd.Flags().StringVarP(&scriptPath, "script", "s", "", "YAML memory operation script")
	memoryCmd.Flags().IntVarP(&memoryCapacity, "capacity", "c", 256, "Initial memory capacity in units")
	memoryCmd.Flags().StringVar(&memoryStrategy, "strategy", string(memory.FirstFit), "Default placement strategy (first-fit, best-fit, worst-fit)")
	_ = memoryCmd.MarkFlagRequired("script")
}
