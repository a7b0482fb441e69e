package sweep

// Tasks materializes the full Cartesian product of the catalog's six axes as
// a flat, deterministic task sequence. The nesting order is fixed,
// outer-to-inner: SLO latency, SLO throughput, simulation years, frontend,
// cache, backend. This keeps every task of one (latency, throughput, years)
// group contiguous, which the sink's write-header-once rule and the
// plot-once-per-group rule both depend on. Each call returns a fresh slice,
// so the sequence is restartable.
func Tasks(c *Catalog) []Task {
	tasks := make([]Task, 0, c.TaskCount())
	for _, latency := range c.SLOLatenciesMs {
		for _, throughput := range c.SLOThroughputs {
			for _, years := range c.SimulationYears {
				for _, frontend := range c.Frontends {
					for _, cache := range c.Caches {
						for _, backend := range c.Backends {
							tasks = append(tasks, Task{
								SLO:             SLO{LatencyMs: latency, ThroughputReqsPerSec: throughput},
								SimulationYears: years,
								Frontend:        frontend,
								Cache:           cache,
								Backend:         backend,
							})
						}
					}
				}
			}
		}
	}
	return tasks
}

// Groups returns the distinct group keys of the sweep, in the same order the
// task sequence first reaches them.
func Groups(c *Catalog) []GroupKey {
	keys := make([]GroupKey, 0, len(c.SLOLatenciesMs)*len(c.SLOThroughputs)*len(c.SimulationYears))
	for _, latency := range c.SLOLatenciesMs {
		for _, throughput := range c.SLOThroughputs {
			for _, years := range c.SimulationYears {
				keys = append(keys, GroupKey{
					SLOLatencyMs:            latency,
					SLOThroughputReqsPerSec: throughput,
					SimulationYears:         years,
				})
			}
		}
	}
	return keys
}
