package cmd

import (
	"context"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/carbon-stream/carbon-sweep/sweep"
)

var (
	// CLI flags for the sweep axes
	sloLatencies    []float64 // SLO latency axis (ms)
	sloThroughputs  []float64 // SLO throughput axis (req/s)
	simulationYears []int     // Simulation horizon axis (years)
	frontendPaths   []string  // Frontend hardware descriptor paths
	cachePaths      []string  // Cache hardware descriptor paths
	backendPaths    []string  // Backend hardware descriptor paths

	// CLI flags for external collaborators and output
	configPath       string        // Optional YAML sweep file
	outputDir        string        // Directory for per-group result CSVs
	simulatorCommand []string      // External simulator command line
	plotCommand      []string      // External plotter command line
	workDir          string        // Working directory for external commands
	taskTimeout      time.Duration // Per-invocation timeout (0 = none)
	dryRun           bool          // Enumerate tasks without running anything
	logLevel         string        // Log verbosity level
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "carbon-sweep",
	Short: "Parametric sweep driver for the CarbonStream cost/carbon simulator",
}

// runCmd executes the sweep using parameters from CLI flags and/or a YAML
// sweep file. Flags set on the command line win over file values.
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the hardware configuration sweep",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if configPath != "" {
			file, err := LoadSweepFile(configPath)
			if err != nil {
				logrus.Fatalf("Failed to load sweep file %s: %v", configPath, err)
			}
			applySweepFile(cmd, file)
		}

		catalog := buildCatalog()

		if dryRun {
			if err := catalog.Validate(); err != nil {
				logrus.Fatalf("%v", err)
			}
			tasks := sweep.Tasks(catalog)
			for i, task := range tasks {
				logrus.Infof("Task %d/%d: %s", i+1, len(tasks), task)
			}
			logrus.Infof("Dry run: %d tasks across %d groups, nothing executed",
				len(tasks), len(sweep.Groups(catalog)))
			return
		}

		sink := sweep.NewResultSink(outputDir)
		simulator := sweep.NewSubprocessSimulator(simulatorCommand, workDir, taskTimeout)
		plotter := sweep.NewSubprocessPlotter(plotCommand, workDir, taskTimeout)

		orchestrator := sweep.NewOrchestrator(catalog, sink, simulator, plotter)
		if err := orchestrator.Run(context.Background()); err != nil {
			logrus.Fatalf("Sweep failed: %v", err)
		}
		logrus.Info("Sweep complete.")
	},
}

// buildCatalog assembles the axis catalog from the resolved flag values.
func buildCatalog() *sweep.Catalog {
	return &sweep.Catalog{
		SLOLatenciesMs:  sloLatencies,
		SLOThroughputs:  sloThroughputs,
		SimulationYears: simulationYears,
		Frontends:       descriptors(frontendPaths),
		Caches:          descriptors(cachePaths),
		Backends:        descriptors(backendPaths),
	}
}

func descriptors(paths []string) []sweep.HardwareDescriptor {
	out := make([]sweep.HardwareDescriptor, 0, len(paths))
	for _, path := range paths {
		out = append(out, sweep.NewDescriptor(path))
	}
	return out
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().StringVar(&configPath, "config", "", "YAML sweep file supplying axes and commands (flags override)")
	runCmd.Flags().StringVar(&logLevel, "log", "info", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Sweep axes
	runCmd.Flags().Float64SliceVar(&sloLatencies, "slo-latency", []float64{100}, "Comma-separated SLO latency values (ms)")
	runCmd.Flags().Float64SliceVar(&sloThroughputs, "slo-throughput", []float64{1000}, "Comma-separated SLO throughput values (req/s)")
	runCmd.Flags().IntSliceVar(&simulationYears, "years", []int{10}, "Comma-separated simulation horizons (years)")
	runCmd.Flags().StringSliceVar(&frontendPaths, "frontend", nil, "Frontend hardware descriptor paths")
	runCmd.Flags().StringSliceVar(&cachePaths, "cache", nil, "Cache hardware descriptor paths")
	runCmd.Flags().StringSliceVar(&backendPaths, "backend", nil, "Backend hardware descriptor paths")

	// External collaborators and output
	runCmd.Flags().StringVar(&outputDir, "output-dir", "results", "Directory for per-group result CSV files")
	runCmd.Flags().StringSliceVar(&simulatorCommand, "simulator-cmd", nil, "Simulator command line (default: python3,carbon_stream.py)")
	runCmd.Flags().StringSliceVar(&plotCommand, "plot-cmd", nil, "Plotter command line (default: python3,plot_results.py)")
	runCmd.Flags().StringVar(&workDir, "workdir", "", "Working directory for external commands")
	runCmd.Flags().DurationVar(&taskTimeout, "timeout", 0, "Per-invocation timeout for external commands (0 = none)")
	runCmd.Flags().BoolVar(&dryRun, "dry-run", false, "Log the task sequence without invoking anything")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
