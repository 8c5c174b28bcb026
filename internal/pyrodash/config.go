package pyrodash

import (
	"encoding/json"
	"fmt"
	"os"
)

// Default configuration values.
const (
	DefaultPreset     = PresetSpinIceZ
	DefaultOut        = "figure.json"
	DefaultWhich      = WhichUpDown
	DefaultTetraCount = 4
	DefaultProjection = ProjectionPerspective
)

// FigureCfg holds the dashboard toggles of the rendered figure.
type FigureCfg struct {
	TetraCount      int    `json:"tetraCount,omitempty"`
	Which           string `json:"which,omitempty"`
	CellCube        *bool  `json:"cellCube,omitempty"`
	IndividualCubes bool   `json:"individualCubes,omitempty"`
	Spins           bool   `json:"spins,omitempty"`
	Monopoles       bool   `json:"monopoles,omitempty"`
	Projection      string `json:"projection,omitempty"`
}

// Config describes one figure to render: the cell to pick, where the
// spins come from, where the neighbor tables live and where the figure
// JSON goes. Exactly one of Preset and SpinFile selects the spins.
type Config struct {
	Cell         [3]int    `json:"cell"`
	Preset       string    `json:"preset,omitempty"`
	SpinFile     string    `json:"spinFile,omitempty"`
	NeighborsDir string    `json:"neighborsDir"`
	Out          string    `json:"out,omitempty"`
	Figure       FigureCfg `json:"figure"`
}

// Options translates the figure section into validated-later options,
// applying the defaults for unset fields.
func (cfg *Config) Options() FigureOptions {
	f := cfg.Figure
	opts := FigureOptions{
		TetraCount:      f.TetraCount,
		Which:           f.Which,
		CellCube:        true,
		IndividualCubes: f.IndividualCubes,
		Spins:           f.Spins,
		Monopoles:       f.Monopoles,
		Projection:      f.Projection,
	}
	if f.CellCube != nil {
		opts.CellCube = *f.CellCube
	}
	if opts.TetraCount == 0 {
		opts.TetraCount = DefaultTetraCount
	}
	if opts.Which == "" {
		opts.Which = DefaultWhich
	}
	if opts.Projection == "" {
		opts.Projection = DefaultProjection
	}
	return opts
}

// finalize applies defaults and checks the cross-field rules.
func (cfg *Config) finalize() error {
	if cfg.Preset != "" && cfg.SpinFile != "" {
		return fmt.Errorf("config sets both preset %q and spin file %q; pick one", cfg.Preset, cfg.SpinFile)
	}
	if cfg.Preset == "" && cfg.SpinFile == "" {
		cfg.Preset = DefaultPreset
	}
	if cfg.NeighborsDir == "" {
		return fmt.Errorf("config has no neighbors directory")
	}
	if cfg.Out == "" {
		cfg.Out = DefaultOut
	}
	return nil
}

// LoadConfig reads and decodes a config file. Defaults and cross-field
// validation are applied later, when the config runs.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	DebugLog("Loaded config from %s: cell=%v, preset=%q, spinFile=%q", path, cfg.Cell, cfg.Preset, cfg.SpinFile)
	return &cfg, nil
}
