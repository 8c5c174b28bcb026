package pyrodash

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	body := `{
  "cell": [1, 0, 2],
  "preset": "ms",
  "neighborsDir": "tables",
  "out": "cell.json",
  "figure": {
    "tetraCount": 2,
    "which": "u",
    "cellCube": false,
    "spins": true,
    "projection": "orthographic"
  }
}`
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, [3]int{1, 0, 2}, cfg.Cell)
	assert.Equal(t, "ms", cfg.Preset)
	assert.Equal(t, "tables", cfg.NeighborsDir)
	assert.Equal(t, "cell.json", cfg.Out)

	opts := cfg.Options()
	assert.Equal(t, 2, opts.TetraCount)
	assert.Equal(t, WhichUp, opts.Which)
	assert.False(t, opts.CellCube)
	assert.True(t, opts.Spins)
	assert.False(t, opts.Monopoles)
	assert.Equal(t, ProjectionOrthographic, opts.Projection)
}

func TestLoadConfigErrors(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte("{"), 0644))
	_, err = LoadConfig(bad)
	assert.Error(t, err)
}

func TestConfigFinalizeDefaults(t *testing.T) {
	cfg := &Config{NeighborsDir: "tables"}
	require.NoError(t, cfg.finalize())
	assert.Equal(t, DefaultPreset, cfg.Preset)
	assert.Equal(t, DefaultOut, cfg.Out)

	opts := cfg.Options()
	assert.Equal(t, DefaultTetraCount, opts.TetraCount)
	assert.Equal(t, DefaultWhich, opts.Which)
	assert.Equal(t, DefaultProjection, opts.Projection)
	assert.True(t, opts.CellCube)
	assert.False(t, opts.IndividualCubes)
}

func TestConfigFinalizeErrors(t *testing.T) {
	cfg := &Config{Preset: "+z", SpinFile: "spins.dat", NeighborsDir: "tables"}
	assert.Error(t, cfg.finalize())

	cfg = &Config{Preset: "+z"}
	assert.Error(t, cfg.finalize())
}

func TestConfigSpinFileSuppressesPresetDefault(t *testing.T) {
	cfg := &Config{SpinFile: "spins.dat", NeighborsDir: "tables"}
	require.NoError(t, cfg.finalize())
	assert.Empty(t, cfg.Preset)
}
