package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/raudcu/pyrodash/internal/pyrodash"
)

var (
	flagPreset    string
	flagSpinFile  string
	flagNeighbors string
	flagOut       string
	flagCell      []int
)

var rootCmd = &cobra.Command{
	Use:   "pyrodash [config.json]",
	Short: "Render a pyrochlore unit cell as a plotly figure JSON",
	Long: `pyrodash builds the tetrahedra, spins and monopoles of one unit cell
of a pyrochlore lattice and writes them as a plotly figure JSON.
The spin configuration comes from a named preset or a spin file; flags
override the matching config fields.`,
	Args:          cobra.MaximumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := &pyrodash.Config{}
		if len(args) > 0 {
			loaded, err := pyrodash.LoadConfig(args[0])
			if err != nil {
				return err
			}
			cfg = loaded
		}
		if flagPreset != "" {
			cfg.Preset = flagPreset
			cfg.SpinFile = ""
		}
		if flagSpinFile != "" {
			cfg.SpinFile = flagSpinFile
			cfg.Preset = ""
		}
		if flagNeighbors != "" {
			cfg.NeighborsDir = flagNeighbors
		}
		if flagOut != "" {
			cfg.Out = flagOut
		}
		if cmd.Flags().Changed("cell") {
			if len(flagCell) != 3 {
				return fmt.Errorf("--cell needs three comma-separated coordinates, got %d", len(flagCell))
			}
			copy(cfg.Cell[:], flagCell)
		}
		return pyrodash.RunConfig(cfg)
	},
}

func main() {
	pyrodash.Debug = os.Getenv("DEBUG") != ""

	rootCmd.Flags().StringVar(&flagPreset, "preset", "", "named spin configuration (+z, ms, md)")
	rootCmd.Flags().StringVar(&flagSpinFile, "spins", "", "spin file, one value per line")
	rootCmd.Flags().StringVar(&flagNeighbors, "neighbors", "", "directory with L<size>.dat neighbor tables")
	rootCmd.Flags().StringVar(&flagOut, "out", "", "output figure path")
	rootCmd.Flags().IntSliceVar(&flagCell, "cell", nil, "cell coordinates i,j,k")

	if err := rootCmd.Execute(); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}
