package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"os-simulator/config"
)

var (
	logLevel   string // Log verbosity level, overrides log_level from config
	configFile string // Explicit config file path
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:           "ossim",
	Short:         "CPU scheduling and contiguous memory allocation simulator",
	SilenceUsage:  true,
	SilenceErrors: false,
}

// loadConfig reads configuration and applies the log level. The --log flag
// wins over the config file.
func loadConfig(cmd *cobra.Command) (*config.SimulatorConfig, error) {
	cfg, err := config.Load(configFile)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if cmd.Flags().Changed("log") {
		level = logLevel
	}
	parsed, err := logrus.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	logrus.SetLevel(parsed)
	return cfg, nil
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default ./config.yaml when present)")

	rootCmd.AddCommand(serveCmd, scheduleCmd, memoryCmd)
}
