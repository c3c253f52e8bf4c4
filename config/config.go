package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"os-simulator/internal/memory"
)

type SimulatorConfig struct {
	Port                  int
	LogLevel              string
	RoundRobinTimeQuantum int
	MemoryDefaultCapacity int
	MemoryDefaultStrategy string
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("port", 9095)
	v.SetDefault("log_level", "info")
	v.SetDefault("scheduler.round_robin.time_quantum", 2)
	v.SetDefault("memory.default_capacity", 256)
	v.SetDefault("memory.default_strategy", "first-fit")
}

// Load reads configuration from configFile, or from ./config.yaml when
// configFile is empty. A missing ./config.yaml is not an error; an explicit
// file must exist. OSSIM_* environment variables override file values,
// e.g. OSSIM_SCHEDULER_ROUND_ROBIN_TIME_QUANTUM.
func Load(configFile string) (*SimulatorConfig, error) {
	v := viper.New()
	setDefaults(v)

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./")
	}
	v.SetEnvPrefix("ossim")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	config := &SimulatorConfig{
		Port:                  v.GetInt("port"),
		LogLevel:              v.GetString("log_level"),
		RoundRobinTimeQuantum: v.GetInt("scheduler.round_robin.time_quantum"),
		MemoryDefaultCapacity: v.GetInt("memory.default_capacity"),
		MemoryDefaultStrategy: v.GetString("memory.default_strategy"),
	}
	if err := config.validate(); err != nil {
		return nil, err
	}
	return config, nil
}

func (c *SimulatorConfig) validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid port %d", c.Port)
	}
	if c.RoundRobinTimeQuantum <= 0 {
		return fmt.Errorf("scheduler.round_robin.time_quantum must be positive, got %d", c.RoundRobinTimeQuantum)
	}
	if c.MemoryDefaultCapacity <= 0 {
		return fmt.Errorf("memory.default_capacity must be positive, got %d", c.MemoryDefaultCapacity)
	}
	if _, err := memory.ParseStrategy(c.MemoryDefaultStrategy); err != nil {
		return fmt.Errorf("memory.default_strategy: %w", err)
	}
	return nil
}
