// Package sweep drives a parametric sweep of the CarbonStream cost/carbon
// simulator across a matrix of storage-hierarchy configurations.
//
// # Reading Guide
//
// Start with these three files to understand the sweep kernel:
//   - task.go: axis value types (SLO, HardwareDescriptor) and the SweepTask unit of work
//   - enumerate.go: the deterministic Cartesian-product task sequence and its grouping invariant
//   - orchestrator.go: sequential execution, per-group result files, and the plot trigger
//
// # Architecture
//
// The package owns orchestration only. The cost/carbon model and the plotting
// routine are external collaborators reached through two single-method
// interfaces (Simulator, Plotter in runner.go); subprocess.go provides the
// production adapters that shell out to them, and tests substitute fakes.
//
// Result files are owned exclusively by ResultSink (sink.go): one CSV per
// (SLO latency, SLO throughput, horizon) group, header written exactly once.
// report.go reads a finished group's file back and summarizes the
// lowest-carbon configuration.
package sweep
