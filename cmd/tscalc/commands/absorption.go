package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mu-bwang/seaEchoTSCalculator/sweep"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func absorptionCmd() *cobra.Command {
	var (
		fMin, fMax float64
		points     int
	)

	cmd := &cobra.Command{
		Use:   "absorption",
		Short: "Compute the seawater absorption coefficient over a frequency grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := water.New(temperature, depth, salinity)

			header := []string{"frequency_kHz", "alpha_dB_per_km"}
			freqs := sweep.LogSpacedFrequencies(fMin, fMax, points)
			records := make([][]string, 0, len(freqs))
			for _, f := range freqs {
				records = append(records, []string{
					strconv.FormatFloat(f, 'g', -1, 64),
					strconv.FormatFloat(w.AbsorptionCoeff(f), 'g', -1, 64),
				})
			}
			return writeCSV(header, records)
		},
	}

	cmd.Flags().Float64Var(&fMin, "fmin", 1, "lowest frequency (kHz)")
	cmd.Flags().Float64Var(&fMax, "fmax", 1000, "highest frequency (kHz)")
	cmd.Flags().IntVarP(&points, "points", "n", 200, "number of frequency points")
	return cmd
}
