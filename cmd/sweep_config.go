package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

// SweepFile is the YAML representation of a sweep: the six axes plus the
// external command lines and output location.
type SweepFile struct {
	SLOLatenciesMs   []float64 `yaml:"slo_latencies_ms"`
	SLOThroughputs   []float64 `yaml:"slo_throughputs"`
	SimulationYears  []int     `yaml:"simulation_years"`
	Frontends        []string  `yaml:"frontends"`
	Caches           []string  `yaml:"caches"`
	Backends         []string  `yaml:"backends"`
	SimulatorCommand []string  `yaml:"simulator_command"`
	PlotCommand      []string  `yaml:"plot_command"`
	OutputDir        string    `yaml:"output_dir"`
}

// LoadSweepFile reads and parses a YAML sweep file.
func LoadSweepFile(path string) (*SweepFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading sweep file: %w", err)
	}

	var file SweepFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing sweep file: %w", err)
	}
	return &file, nil
}

// applySweepFile copies file values into the flag variables for every flag
// the user did not set explicitly. Checking Changed() keeps command-line
// values authoritative over the file.
func applySweepFile(cmd *cobra.Command, file *SweepFile) {
	if !cmd.Flags().Changed("slo-latency") && len(file.SLOLatenciesMs) > 0 {
		sloLatencies = file.SLOLatenciesMs
	}
	if !cmd.Flags().Changed("slo-throughput") && len(file.SLOThroughputs) > 0 {
		sloThroughputs = file.SLOThroughputs
	}
	if !cmd.Flags().Changed("years") && len(file.SimulationYears) > 0 {
		simulationYears = file.SimulationYears
	}
	if !cmd.Flags().Changed("frontend") && len(file.Frontends) > 0 {
		frontendPaths = file.Frontends
	}
	if !cmd.Flags().Changed("cache") && len(file.Caches) > 0 {
		cachePaths = file.Caches
	}
	if !cmd.Flags().Changed("backend") && len(file.Backends) > 0 {
		backendPaths = file.Backends
	}
	if !cmd.Flags().Changed("simulator-cmd") && len(file.SimulatorCommand) > 0 {
		simulatorCommand = file.SimulatorCommand
	}
	if !cmd.Flags().Changed("plot-cmd") && len(file.PlotCommand) > 0 {
		plotCommand = file.PlotCommand
	}
	if !cmd.Flags().Changed("output-dir") && file.OutputDir != "" {
		outputDir = file.OutputDir
	}
}
