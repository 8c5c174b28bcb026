package pyrodash

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Run loads a config file, builds the requested cell and writes the
// figure JSON to the configured output path.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}
	return RunConfig(cfg)
}

// RunConfig renders one figure from an in-memory config.
func RunConfig(cfg *Config) error {
	if err := cfg.finalize(); err != nil {
		return err
	}

	start := time.Now()

	var spins []int
	var err error
	if cfg.SpinFile != "" {
		spins, err = LoadSpinValues(cfg.SpinFile)
	} else {
		spins, err = PresetSpinValues(cfg.Preset)
	}
	if err != nil {
		return err
	}

	l, err := LatticeSize(len(spins))
	if err != nil {
		return err
	}

	table, err := NewNeighborCatalog(cfg.NeighborsDir).Table(l)
	if err != nil {
		return err
	}

	cell, err := NewUnitCell(cfg.Cell, spins, table)
	if err != nil {
		return err
	}

	fig, err := NewFigure(cell, cfg.Options())
	if err != nil {
		return err
	}
	DebugLog("Built figure with %d traces in %v", len(fig.Data), time.Since(start))

	data, err := json.MarshalIndent(fig, "", "  ")
	if err != nil {
		return err
	}
	if err := os.WriteFile(cfg.Out, data, 0644); err != nil {
		return fmt.Errorf("write figure: %w", err)
	}
	DebugLog("Wrote %s (%d bytes) in %v", cfg.Out, len(data), time.Since(start))
	return nil
}
