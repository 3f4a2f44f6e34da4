package commands

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/solid"
	"github.com/mu-bwang/seaEchoTSCalculator/sweep"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func sphereCmd() *cobra.Command {
	var (
		fMin, fMax float64
		points     int
		radius     float64
		material   string
	)

	cmd := &cobra.Command{
		Use:   "sphere",
		Short: "Compute elastic solid sphere TS over a frequency grid",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := solid.Lookup(material)
			if err != nil {
				return err
			}
			w := water.New(temperature, depth, salinity)

			header := []string{"frequency_kHz", "TS_dB", "material", "radius_m"}
			freqs := sweep.LogSpacedFrequencies(fMin, fMax, points)
			records := make([][]string, 0, len(freqs))
			for _, f := range freqs {
				ts, err := model.SolidSphereTS(f, radius, m, w)
				if err != nil {
					return err
				}
				records = append(records, []string{
					strconv.FormatFloat(f, 'g', -1, 64),
					strconv.FormatFloat(ts, 'g', -1, 64),
					m.Name,
					strconv.FormatFloat(radius, 'g', -1, 64),
				})
			}
			return writeCSV(header, records)
		},
	}

	cmd.Flags().Float64Var(&fMin, "fmin", 10, "lowest frequency (kHz)")
	cmd.Flags().Float64Var(&fMax, "fmax", 500, "highest frequency (kHz)")
	cmd.Flags().IntVarP(&points, "points", "n", 500, "number of frequency points")
	cmd.Flags().Float64VarP(&radius, "radius", "r", 19.05e-3, "sphere radius (m)")
	cmd.Flags().StringVarP(&material, "material", "M", solid.TungstenCarbide.Name, "sphere material")
	return cmd
}
