package commands

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/internal/log"
)

var (
	debug       bool
	temperature float64
	salinity    float64
	depth       float64

	outPath string
)

func Execute() error {
	root := &cobra.Command{
		Use:   "tscalc",
		Short: "Acoustic target strength calculator for bubbles and solid spheres",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return log.Init(debug)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			log.Sync()
		},
	}

	root.PersistentFlags().BoolVar(&debug, "debug", false, "verbose logging")
	root.PersistentFlags().Float64VarP(&temperature, "temperature", "t", 20, "water temperature (degC)")
	root.PersistentFlags().Float64VarP(&salinity, "salinity", "s", 35, "salinity (psu)")
	root.PersistentFlags().Float64VarP(&depth, "depth", "z", 10, "depth (m)")
	root.PersistentFlags().StringVarP(&outPath, "out", "o", "", "output CSV file (default stdout)")

	root.AddCommand(sweepCmd(), diametersCmd(), sphereCmd(), absorptionCmd(), modelsCmd(), envCmd())
	return root.Execute()
}

func gasByName(name string) (bubble.Gas, error) {
	switch name {
	case "air":
		return bubble.Air{}, nil
	case "methane":
		return bubble.Methane{}, nil
	}
	return nil, fmt.Errorf("unknown gas %q (want air or methane)", name)
}

// writeCSV streams records to --out or stdout.
func writeCSV(header []string, records [][]string) error {
	out := os.Stdout
	if outPath != "" {
		f, err := os.Create(outPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	w := csv.NewWriter(out)
	if err := w.Write(header); err != nil {
		return err
	}
	for _, rec := range records {
		if err := w.Write(rec); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}
