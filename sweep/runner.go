package sweep

import "context"

// SimulationRequest carries the arguments of one external simulator
// invocation. The simulator is expected to append exactly one row matching
// ResultColumns to OutputPath and terminate with a success/failure status.
type SimulationRequest struct {
	SLOLatencyMs            float64
	SLOThroughputReqsPerSec float64
	Frontend                HardwareDescriptor
	Cache                   HardwareDescriptor
	Backend                 HardwareDescriptor
	SimulationYears         int
	OutputPath              string
}

// PlotRequest carries the arguments of one external plot invocation: a
// completed group's key and the result file holding all of its rows.
type PlotRequest struct {
	Key        GroupKey
	ResultPath string
}

// Simulator runs the external cost/carbon simulation for one task. The
// orchestration core depends only on this interface; tests substitute fakes.
type Simulator interface {
	Simulate(ctx context.Context, req SimulationRequest) error
}

// Plotter runs the external plotting routine for one completed group.
type Plotter interface {
	Plot(ctx context.Context, req PlotRequest) error
}
