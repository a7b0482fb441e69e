package sweep

import (
	"fmt"
	"os"
)

// Catalog enumerates the available hardware options for each tier and the
// SLO/horizon values to sweep. All axes are ordered and immutable after
// construction; the sweep is the Cartesian product of the six axes.
type Catalog struct {
	SLOLatenciesMs  []float64
	SLOThroughputs  []float64
	SimulationYears []int
	Frontends       []HardwareDescriptor
	Caches          []HardwareDescriptor
	Backends        []HardwareDescriptor
}

// Validate checks the catalog before any task executes. An empty axis would
// make the product empty or ill-defined; a non-positive axis value or an
// unreadable descriptor path would only surface mid-sweep otherwise.
func (c *Catalog) Validate() error {
	axes := []struct {
		name string
		size int
	}{
		{"slo-latency", len(c.SLOLatenciesMs)},
		{"slo-throughput", len(c.SLOThroughputs)},
		{"simulation-years", len(c.SimulationYears)},
		{"frontend", len(c.Frontends)},
		{"cache", len(c.Caches)},
		{"backend", len(c.Backends)},
	}
	for _, axis := range axes {
		if axis.size == 0 {
			return &ConfigError{Reason: fmt.Sprintf("axis %q is empty", axis.name)}
		}
	}

	for _, v := range c.SLOLatenciesMs {
		if v <= 0 {
			return &ConfigError{Reason: fmt.Sprintf("slo-latency value %s is not positive", formatAxis(v))}
		}
	}
	for _, v := range c.SLOThroughputs {
		if v <= 0 {
			return &ConfigError{Reason: fmt.Sprintf("slo-throughput value %s is not positive", formatAxis(v))}
		}
	}
	for _, v := range c.SimulationYears {
		if v <= 0 {
			return &ConfigError{Reason: fmt.Sprintf("simulation-years value %d is not positive", v)}
		}
	}

	for _, tier := range []struct {
		name        string
		descriptors []HardwareDescriptor
	}{
		{"frontend", c.Frontends},
		{"cache", c.Caches},
		{"backend", c.Backends},
	} {
		for _, d := range tier.descriptors {
			if _, err := os.Stat(d.Path); err != nil {
				return &ConfigError{Reason: fmt.Sprintf("%s descriptor %q is not readable: %v", tier.name, d.Path, err)}
			}
		}
	}
	return nil
}

// TaskCount returns the size of the full sweep without materializing it.
func (c *Catalog) TaskCount() int {
	return len(c.SLOLatenciesMs) * len(c.SLOThroughputs) * len(c.SimulationYears) *
		len(c.Frontends) * len(c.Caches) * len(c.Backends)
}
