package pyrodash

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTable = "0 1 2 3\n4 5 6 7\n8 9 10 11\n12 13 14 15\n"

func TestRunEndToEnd(t *testing.T) {
	dir := t.TempDir()
	tables := filepath.Join(dir, "neighbors")
	require.NoError(t, os.Mkdir(tables, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tables, "L1.dat"), []byte(testTable), 0644))

	out := filepath.Join(dir, "figure.json")
	cfgPath := filepath.Join(dir, "config.json")
	cfg := Config{
		Cell:         [3]int{0, 0, 0},
		Preset:       PresetSingleMonopole,
		NeighborsDir: tables,
		Out:          out,
	}
	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(cfgPath, raw, 0644))

	require.NoError(t, Run(cfgPath))

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var fig struct {
		Data   []map[string]interface{} `json:"data"`
		Layout map[string]interface{}   `json:"layout"`
	}
	require.NoError(t, json.Unmarshal(data, &fig))

	// Default view: 4 pairs of tetrahedra (36 traces) plus the cell
	// cube (12 traces).
	assert.Len(t, fig.Data, 48)
	assert.Equal(t, "simple_white", fig.Layout["template"])
}

func TestRunConfigSpinFile(t *testing.T) {
	dir := t.TempDir()
	tables := filepath.Join(dir, "neighbors")
	require.NoError(t, os.Mkdir(tables, 0755))
	require.NoError(t, os.WriteFile(filepath.Join(tables, "L1.dat"), []byte(testTable), 0644))

	spins := ""
	for i := 0; i < SitesPerCell; i++ {
		spins += "-1\n"
	}
	spinPath := filepath.Join(dir, "spins.dat")
	require.NoError(t, os.WriteFile(spinPath, []byte(spins), 0644))

	out := filepath.Join(dir, "figure.json")
	cfg := &Config{
		SpinFile:     spinPath,
		NeighborsDir: tables,
		Out:          out,
		Figure:       FigureCfg{TetraCount: 1, Monopoles: true},
	}
	require.NoError(t, RunConfig(cfg))

	if _, err := os.Stat(out); err != nil {
		t.Fatalf("output not written: %v", err)
	}
}

func TestRunConfigErrors(t *testing.T) {
	// No neighbors directory.
	assert.Error(t, RunConfig(&Config{Preset: "+z"}))

	// Unknown preset.
	dir := t.TempDir()
	assert.Error(t, RunConfig(&Config{Preset: "afm", NeighborsDir: dir}))

	// Neighbor table missing for the lattice size.
	assert.Error(t, RunConfig(&Config{Preset: "+z", NeighborsDir: dir, Out: filepath.Join(dir, "f.json")}))

	// Spin file with a value that is not a spin.
	bad := filepath.Join(dir, "bad.dat")
	require.NoError(t, os.WriteFile(bad, []byte("1\n2\n"), 0644))
	assert.Error(t, RunConfig(&Config{SpinFile: bad, NeighborsDir: dir}))
}
