package sweep

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Default external collaborator command lines. Both match the CarbonStream
// reference scripts' argument surfaces.
var (
	DefaultSimulatorCommand = []string{"python3", "carbon_stream.py"}
	DefaultPlotterCommand   = []string{"python3", "plot_results.py"}
)

// SubprocessSimulator invokes the external cost/carbon simulator as a child
// process, one synchronous invocation per task.
type SubprocessSimulator struct {
	Command []string      // executable plus leading arguments
	Dir     string        // working directory ("" = inherit)
	Timeout time.Duration // per-invocation timeout (0 = none)
}

// NewSubprocessSimulator builds a simulator adapter; a nil or empty command
// falls back to DefaultSimulatorCommand.
func NewSubprocessSimulator(command []string, dir string, timeout time.Duration) *SubprocessSimulator {
	if len(command) == 0 {
		command = DefaultSimulatorCommand
	}
	return &SubprocessSimulator{Command: command, Dir: dir, Timeout: timeout}
}

// Simulate runs one simulator invocation and blocks until it terminates.
func (s *SubprocessSimulator) Simulate(ctx context.Context, req SimulationRequest) error {
	return runCommand(ctx, s.Command, simulatorArgs(req), s.Dir, s.Timeout)
}

// simulatorArgs marshals a request onto the simulator's flag surface.
func simulatorArgs(req SimulationRequest) []string {
	return []string{
		"--slo_latency", formatAxis(req.SLOLatencyMs),
		"--slo_throughput", formatAxis(req.SLOThroughputReqsPerSec),
		"--frontend", req.Frontend.Path,
		"--cache", req.Cache.Path,
		"--backend", req.Backend.Path,
		"--simulation_years", strconv.Itoa(req.SimulationYears),
		"--output", req.OutputPath,
	}
}

// SubprocessPlotter invokes the external plotting routine as a child process,
// once per completed group.
type SubprocessPlotter struct {
	Command []string
	Dir     string
	Timeout time.Duration
}

// NewSubprocessPlotter builds a plotter adapter; a nil or empty command falls
// back to DefaultPlotterCommand.
func NewSubprocessPlotter(command []string, dir string, timeout time.Duration) *SubprocessPlotter {
	if len(command) == 0 {
		command = DefaultPlotterCommand
	}
	return &SubprocessPlotter{Command: command, Dir: dir, Timeout: timeout}
}

// Plot runs one plot invocation and blocks until it terminates.
func (p *SubprocessPlotter) Plot(ctx context.Context, req PlotRequest) error {
	return runCommand(ctx, p.Command, plotterArgs(req), p.Dir, p.Timeout)
}

// plotterArgs marshals a request onto the plotter's positional surface:
// slo_latency slo_throughput simulation_years result_file.
func plotterArgs(req PlotRequest) []string {
	return []string{
		formatAxis(req.Key.SLOLatencyMs),
		formatAxis(req.Key.SLOThroughputReqsPerSec),
		strconv.Itoa(req.Key.SimulationYears),
		req.ResultPath,
	}
}

// runCommand executes one external command synchronously, capturing stderr
// for the error message.
func runCommand(ctx context.Context, command, args []string, dir string, timeout time.Duration) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	full := append(append([]string{}, command[1:]...), args...)
	cmd := exec.CommandContext(ctx, command[0], full...)
	cmd.Dir = dir

	var stderr bytes.Buffer
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%s failed: %w: %s", command[0], err, msg)
		}
		return fmt.Errorf("%s failed: %w", command[0], err)
	}
	return nil
}
