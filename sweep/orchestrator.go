package sweep

import (
	"context"

	"github.com/sirupsen/logrus"
)

// GroupState tracks one group's lifecycle: the result file does not exist
// yet, the header is written and rows are accumulating, or the group has
// been handed to the plotter (terminal).
type GroupState string

const (
	GroupPending      GroupState = "pending"
	GroupAccumulating GroupState = "accumulating"
	GroupPlotted      GroupState = "plotted"
)

// Orchestrator runs the whole sweep: it walks the deterministic task
// sequence strictly sequentially, resolves each task's result file through
// the sink, invokes the simulator per task, and triggers the plotter exactly
// once per group, after the group's last task has succeeded. Any failure
// aborts forward progress; partial result files are left in place.
type Orchestrator struct {
	catalog   *Catalog
	sink      *ResultSink
	simulator Simulator
	plotter   Plotter
	states    map[GroupKey]GroupState
}

// NewOrchestrator wires a sweep over catalog, writing through sink and
// delegating external work to simulator and plotter.
func NewOrchestrator(catalog *Catalog, sink *ResultSink, simulator Simulator, plotter Plotter) *Orchestrator {
	return &Orchestrator{
		catalog:   catalog,
		sink:      sink,
		simulator: simulator,
		plotter:   plotter,
		states:    make(map[GroupKey]GroupState),
	}
}

// GroupState returns the lifecycle state of one group key.
func (o *Orchestrator) GroupState(key GroupKey) GroupState {
	if state, ok := o.states[key]; ok {
		return state
	}
	return GroupPending
}

// Run executes the sweep. It validates the catalog before the first task,
// then runs every task in enumeration order. Because the task sequence keeps
// each group contiguous, a change of group key means the previous group is
// complete and can be plotted.
func (o *Orchestrator) Run(ctx context.Context) error {
	if err := o.catalog.Validate(); err != nil {
		return err
	}

	tasks := Tasks(o.catalog)
	logrus.Infof("Starting sweep: %d tasks across %d groups", len(tasks), len(Groups(o.catalog)))

	var current *ResultFile
	for i, task := range tasks {
		key := task.Group()
		if current == nil || current.Key != key {
			if current != nil {
				if err := o.finishGroup(ctx, current); err != nil {
					return err
				}
			}
			rf, err := o.sink.Obtain(key)
			if err != nil {
				return err
			}
			o.states[key] = GroupAccumulating
			current = rf
			logrus.Infof("Group %s -> %s", key, rf.Path)
		}

		logrus.Infof("Task %d/%d: %s", i+1, len(tasks), task)
		err := o.simulator.Simulate(ctx, SimulationRequest{
			SLOLatencyMs:            task.SLO.LatencyMs,
			SLOThroughputReqsPerSec: task.SLO.ThroughputReqsPerSec,
			Frontend:                task.Frontend,
			Cache:                   task.Cache,
			Backend:                 task.Backend,
			SimulationYears:         task.SimulationYears,
			OutputPath:              current.Path,
		})
		if err != nil {
			return &RunError{Task: task, Err: err}
		}
	}

	if current != nil {
		return o.finishGroup(ctx, current)
	}
	return nil
}

// finishGroup plots a completed group and logs its lowest-cost summary.
func (o *Orchestrator) finishGroup(ctx context.Context, rf *ResultFile) error {
	if err := o.plotter.Plot(ctx, PlotRequest{Key: rf.Key, ResultPath: rf.Path}); err != nil {
		return &PlotError{Key: rf.Key, Path: rf.Path, Err: err}
	}
	o.states[rf.Key] = GroupPlotted
	logrus.Infof("Group %s plotted", rf.Key)
	o.logSummary(rf)
	return nil
}

// logSummary reads the group's result file back and logs the configuration
// with the lowest cumulative carbon cost. The summary is informational only;
// a malformed file does not fail an otherwise successful sweep.
func (o *Orchestrator) logSummary(rf *ResultFile) {
	summary, err := SummarizeLowestCost(rf.Path)
	if err != nil {
		logrus.Warnf("Could not summarize group %s: %v", rf.Key, err)
		return
	}
	logrus.Infof("Lowest cumulative carbon cost for group %s: frontend=%s cache=%s backend=%s cost=%s kg CO2e (embodied=%s active=%s idle=%s replacement=%s, %d rows)",
		rf.Key, summary.Frontend, summary.Cache, summary.Backend,
		summary.CumulativeCarbonCost, summary.EmbodiedCost, summary.ActiveCost,
		summary.IdleCost, summary.ReplacementCost, summary.Rows)
}
