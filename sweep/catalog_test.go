package sweep

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDescriptor creates an opaque hardware config file and returns its
// descriptor.
func writeDescriptor(t *testing.T, dir, name string) HardwareDescriptor {
	t.Helper()
	path := filepath.Join(dir, name+".json")
	require.NoError(t, os.WriteFile(path, []byte("{}\n"), 0644))
	return NewDescriptor(path)
}

func validCatalog(t *testing.T) *Catalog {
	t.Helper()
	dir := t.TempDir()
	return &Catalog{
		SLOLatenciesMs:  []float64{100},
		SLOThroughputs:  []float64{1000},
		SimulationYears: []int{10},
		Frontends:       []HardwareDescriptor{writeDescriptor(t, dir, "low_performance")},
		Caches:          []HardwareDescriptor{writeDescriptor(t, dir, "DRAM")},
		Backends:        []HardwareDescriptor{writeDescriptor(t, dir, "SSD")},
	}
}

func TestCatalogValidate_AcceptsCompleteCatalog(t *testing.T) {
	c := validCatalog(t)
	assert.NoError(t, c.Validate())
}

func TestCatalogValidate_RejectsEmptyAxis(t *testing.T) {
	c := validCatalog(t)
	c.Backends = nil

	err := c.Validate()
	require.Error(t, err)
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "backend")
}

func TestCatalogValidate_RejectsNonPositiveSLO(t *testing.T) {
	c := validCatalog(t)
	c.SLOLatenciesMs = []float64{100, 0}

	err := c.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "slo-latency")
}

func TestCatalogValidate_RejectsNonPositiveYears(t *testing.T) {
	c := validCatalog(t)
	c.SimulationYears = []int{-1}

	err := c.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "simulation-years")
}

func TestCatalogValidate_RejectsUnreadableDescriptor(t *testing.T) {
	c := validCatalog(t)
	c.Caches = []HardwareDescriptor{NewDescriptor(filepath.Join(t.TempDir(), "missing.json"))}

	err := c.Validate()
	var cfgErr *ConfigError
	require.ErrorAs(t, err, &cfgErr)
	assert.Contains(t, cfgErr.Error(), "missing.json")
}

func TestNewDescriptor_DerivesNameFromStem(t *testing.T) {
	d := NewDescriptor("configs/backend/SSD/Samsung_PM9A3.json")
	assert.Equal(t, "Samsung_PM9A3", d.Name)
	assert.Equal(t, "configs/backend/SSD/Samsung_PM9A3.json", d.Path)
}
