// Package workload reads process workloads and memory operation scripts
// from YAML files.
package workload

import (
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"os-simulator/internal/core"
	"os-simulator/internal/requests"
)

// Workload is a process set to schedule, with optional run parameters.
type Workload struct {
	Algorithm string                 `yaml:"algorithm"`
	Quantum   int                    `yaml:"quantum"`
	Processes []requests.ProcessSpec `yaml:"processes"`
}

// ToProcesses returns scheduler input with defaults applied.
func (w *Workload) ToProcesses() []core.Process {
	return requests.ToProcesses(w.Processes)
}

// LoadWorkload reads a workload file.
func LoadWorkload(path string) (*Workload, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open workload file: %w", err)
	}
	defer f.Close()
	return DecodeWorkload(f)
}

// DecodeWorkload parses a workload with strict field checking: unknown
// keys are errors so typos do not silently fall back to defaults.
func DecodeWorkload(r io.Reader) (*Workload, error) {
	var w Workload
	if err := decodeStrict(r, &w); err != nil {
		return nil, fmt.Errorf("parse workload: %w", err)
	}
	if len(w.Processes) == 0 {
		return nil, errors.New("parse workload: no processes")
	}
	return &w, nil
}

func decodeStrict(r io.Reader, out interface{}) error {
	decoder := yaml.NewDecoder(r)
	decoder.KnownFields(true)
	return decoder.Decode(out)
}
