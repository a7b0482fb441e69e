package sweep

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// HardwareDescriptor references one tier's hardware option. Path points at
// the configuration file describing the hardware's performance/cost/carbon
// characteristics; the file is opaque to the sweep and is handed to the
// simulator unparsed. Name is a display name used in logs and file names.
type HardwareDescriptor struct {
	Path string
	Name string
}

// NewDescriptor builds a descriptor from a config file path, deriving the
// display name from the path stem (e.g. "configs/backend/SSD.json" -> "SSD").
func NewDescriptor(path string) HardwareDescriptor {
	base := filepath.Base(path)
	return HardwareDescriptor{
		Path: path,
		Name: strings.TrimSuffix(base, filepath.Ext(base)),
	}
}

// SLO is one service-level objective target pair.
type SLO struct {
	LatencyMs            float64 // end-to-end latency target (ms)
	ThroughputReqsPerSec float64 // end-to-end throughput target (req/s)
}

// GroupKey identifies all tasks that share one result file and one plot
// invocation: the SLO pair plus the simulation horizon.
type GroupKey struct {
	SLOLatencyMs            float64
	SLOThroughputReqsPerSec float64
	SimulationYears         int
}

func (k GroupKey) String() string {
	return fmt.Sprintf("slo_latency=%sms slo_throughput=%sreq/s years=%d",
		formatAxis(k.SLOLatencyMs), formatAxis(k.SLOThroughputReqsPerSec), k.SimulationYears)
}

// Task is the unit of work: one simulator invocation for one point of the
// six-axis product. Tasks are created by Tasks and consumed exactly once by
// the orchestrator; they are never persisted.
type Task struct {
	SLO             SLO
	SimulationYears int
	Frontend        HardwareDescriptor
	Cache           HardwareDescriptor
	Backend         HardwareDescriptor
}

// Group returns the key of the result-file group this task belongs to.
func (t Task) Group() GroupKey {
	return GroupKey{
		SLOLatencyMs:            t.SLO.LatencyMs,
		SLOThroughputReqsPerSec: t.SLO.ThroughputReqsPerSec,
		SimulationYears:         t.SimulationYears,
	}
}

func (t Task) String() string {
	return fmt.Sprintf("%s frontend=%s cache=%s backend=%s",
		t.Group(), t.Frontend.Name, t.Cache.Name, t.Backend.Name)
}

// formatAxis renders a numeric axis value without exponent notation, so
// values like 1e7 appear as "10000000" in file names and simulator arguments.
func formatAxis(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
