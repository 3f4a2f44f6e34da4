package commands

import (
	"github.com/spf13/cobra"

	"github.com/mu-bwang/seaEchoTSCalculator/internal/log"
	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/sweep"
)

func sweepCmd() *cobra.Command {
	var (
		fMin, fMax float64
		points     int
		diameter   float64
		models     []string
		gasName    string
		workers    int
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Compute bubble TS over a frequency grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			gas, err := gasByName(gasName)
			if err != nil {
				return err
			}
			if len(models) == 0 {
				models = model.Names()
			}

			p := sweep.Params{
				FrequenciesKHz: sweep.LogSpacedFrequencies(fMin, fMax, points),
				Diameter:       diameter,
				Models:         models,
				T:              temperature,
				S:              salinity,
				Z:              depth,
				Gas:            gas,
				Workers:        workers,
				Logger:         log.GetZapLogger(),
			}

			rs, err := sweep.Run(cmd.Context(), p)
			if err != nil {
				return err
			}
			log.Debugf("sweep complete: %d frequencies, %d models, c = %.1f m/s",
				len(p.FrequenciesKHz), len(p.Models), rs.Water.C)

			rows := rs.Rows()
			records := make([][]string, len(rows))
			for i, row := range rows {
				records[i] = row.Record()
			}
			return writeCSV(sweep.Header(), records)
		},
	}

	cmd.Flags().Float64Var(&fMin, "fmin", 1, "lowest frequency (kHz)")
	cmd.Flags().Float64Var(&fMax, "fmax", 1200, "highest frequency (kHz)")
	cmd.Flags().IntVarP(&points, "points", "n", 2000, "number of frequency points")
	cmd.Flags().Float64VarP(&diameter, "diameter", "d", 2e-3, "bubble diameter (m)")
	cmd.Flags().StringSliceVarP(&models, "models", "m", nil, "models to evaluate (default all)")
	cmd.Flags().StringVarP(&gasName, "gas", "g", "air", "bubble gas (air or methane)")
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, "worker pool size (default NumCPU)")
	return cmd
}
