package sweep

import "fmt"

// ConfigError reports an invalid sweep configuration: an empty axis or an
// unreadable hardware descriptor. It is always detected before the first
// task executes; the sweep does not start.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid sweep configuration: %s", e.Reason)
}

// RunError reports a failed simulator invocation for one task. It is fatal
// to the whole sweep: no task after the failed one executes, and the failed
// task's group is never plotted.
type RunError struct {
	Task Task
	Err  error
}

func (e *RunError) Error() string {
	return fmt.Sprintf("simulation failed for %s: %v", e.Task, e.Err)
}

func (e *RunError) Unwrap() error { return e.Err }

// SinkError reports that a group's result file could not be created or
// written. Equivalent in severity to RunError.
type SinkError struct {
	Key  GroupKey
	Path string
	Err  error
}

func (e *SinkError) Error() string {
	return fmt.Sprintf("result sink failed for group %s (%s): %v", e.Key, e.Path, e.Err)
}

func (e *SinkError) Unwrap() error { return e.Err }

// PlotError reports a failed plot invocation for a completed group. The
// group's rows are already durably written and are kept, but the sweep is
// reported as failed and does not proceed past the failure.
type PlotError struct {
	Key  GroupKey
	Path string
	Err  error
}

func (e *PlotError) Error() string {
	return fmt.Sprintf("plotting failed for group %s (%s): %v", e.Key, e.Path, e.Err)
}

func (e *PlotError) Unwrap() error { return e.Err }
