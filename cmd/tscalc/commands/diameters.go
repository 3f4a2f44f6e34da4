package commands

import (
	"github.com/spf13/cobra"
	"gonum.org/v1/gonum/floats"

	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/sweep"
)

func diametersCmd() *cobra.Command {
	var (
		freq       float64
		dMin, dMax float64
		points     int
		models     []string
		gasName    string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "diameters",
		Short: "Compute bubble TS over a diameter grid at a fixed frequency",
		RunE: func(cmd *cobra.Command, args []string) error {
			gas, err := gasByName(gasName)
			if err != nil {
				return err
			}
			if len(models) == 0 {
				models = model.Names()
			}

			p := sweep.DiameterParams{
				FrequencyKHz: freq,
				Diameters:    floats.LogSpan(make([]float64, points), dMin, dMax),
				Models:       models,
				T:            temperature,
				S:            salinity,
				Z:            depth,
				Gas:          gas,
				Workers:      workers,
			}

			rs, err := sweep.RunDiameters(cmd.Context(), p)
			if err != nil {
				return err
			}

			rows := rs.Rows()
			records := make([][]string, len(rows))
			for i, row := range rows {
				records[i] = row.Record()
			}
			return writeCSV(sweep.Header(), records)
		},
	}

	cmd.Flags().Float64VarP(&freq, "frequency", "f", 120, "acoustic frequency (kHz)")
	cmd.Flags().Float64Var(&dMin, "dmin", 1e-5, "smallest bubble diameter (m)")
	cmd.Flags().Float64Var(&dMax, "dmax", 1e-2, "largest bubble diameter (m)")
	cmd.Flags().IntVarP(&points, "points", "n", 500, "number of diameter points")
	cmd.Flags().StringSliceVarP(&models, "models", "m", nil, "models to evaluate (default all)")
	cmd.Flags().StringVarP(&gasName, "gas", "g", "air", "bubble gas (air or methane)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (default NumCPU)")
	return cmd
}
