package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mu-bwang/seaEchoTSCalculator/model"
	"github.com/mu-bwang/seaEchoTSCalculator/solid"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func modelsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "models",
		Short: "List registered bubble models and sphere materials",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println("Bubble models:")
			for _, name := range model.Names() {
				fmt.Printf("  %s\n", name)
			}
			fmt.Println("Sphere materials:")
			for _, name := range solid.Names() {
				fmt.Printf("  %s\n", name)
			}
			return nil
		},
	}
	return cmd
}

func envCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "env",
		Short: "Print the derived seawater state",
		RunE: func(cmd *cobra.Command, args []string) error {
			w := water.New(temperature, depth, salinity)
			fmt.Printf("temperature:      %g degC\n", w.T)
			fmt.Printf("salinity:         %g psu\n", w.S)
			fmt.Printf("depth:            %g m\n", w.Z)
			fmt.Printf("sound speed:      %.2f m/s\n", w.C)
			fmt.Printf("density:          %.3f kg/m^3\n", w.Rho)
			fmt.Printf("pressure:         %.1f Pa\n", w.P)
			fmt.Printf("dyn. viscosity:   %.4g Pa s\n", w.Mu)
			fmt.Printf("vapor pressure:   %.1f Pa\n", w.Pv)
			fmt.Printf("surface tension:  %.4f N/m\n", w.Sigma)
			fmt.Printf("specific heat:    %.1f J/(kg K)\n", w.Cp)
			return nil
		},
	}
	return cmd
}
