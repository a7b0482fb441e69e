package cmd

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sweepFixture = `
slo_latencies_ms: [10, 100]
slo_throughputs: [1000, 10000000]
simulation_years: [5, 10]
frontends:
  - configs/frontend/low_performance.json
  - configs/frontend/high_performance.json
caches:
  - configs/cache/DRAM.json
backends:
  - configs/backend/SSD.json
  - configs/backend/HDD.json
simulator_command: [python3, src/carbon_stream.py]
plot_command: [python3, src/plot_results.py]
output_dir: data/results
`

func writeSweepFixture(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sweep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sweepFixture), 0644))
	return path
}

func TestLoadSweepFile_ParsesAllAxes(t *testing.T) {
	file, err := LoadSweepFile(writeSweepFixture(t))
	require.NoError(t, err)

	assert.Equal(t, []float64{10, 100}, file.SLOLatenciesMs)
	assert.Equal(t, []float64{1000, 1e7}, file.SLOThroughputs)
	assert.Equal(t, []int{5, 10}, file.SimulationYears)
	assert.Len(t, file.Frontends, 2)
	assert.Equal(t, []string{"configs/cache/DRAM.json"}, file.Caches)
	assert.Len(t, file.Backends, 2)
	assert.Equal(t, []string{"python3", "src/carbon_stream.py"}, file.SimulatorCommand)
	assert.Equal(t, []string{"python3", "src/plot_results.py"}, file.PlotCommand)
	assert.Equal(t, "data/results", file.OutputDir)
}

func TestLoadSweepFile_MissingFileIsError(t *testing.T) {
	_, err := LoadSweepFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
}

func TestLoadSweepFile_InvalidYAMLIsError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("frontends: [unclosed"), 0644))

	_, err := LoadSweepFile(path)
	require.Error(t, err)
}

func TestApplySweepFile_FileFillsUnsetFlags(t *testing.T) {
	// GIVEN a loaded sweep file and no flags set on the command line
	file, err := LoadSweepFile(writeSweepFixture(t))
	require.NoError(t, err)

	// WHEN the file is applied
	applySweepFile(runCmd, file)

	// THEN the flag variables carry the file's values
	assert.Equal(t, []float64{10, 100}, sloLatencies)
	assert.Equal(t, []int{5, 10}, simulationYears)
	assert.Equal(t, []string{"configs/cache/DRAM.json"}, cachePaths)
	assert.Equal(t, "data/results", outputDir)

	// AND the catalog built from them reflects the file, with display names
	// derived from the descriptor path stems
	catalog := buildCatalog()
	require.Len(t, catalog.Frontends, 2)
	assert.Equal(t, "low_performance", catalog.Frontends[0].Name)
	assert.Equal(t, "high_performance", catalog.Frontends[1].Name)
	assert.Equal(t, 2*2*2*2*1*2, catalog.TaskCount())
}
