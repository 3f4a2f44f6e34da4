package sweep_test

import (
	"context"
	"fmt"
	"log"

	"github.com/mu-bwang/seaEchoTSCalculator/sweep"
)

func ExampleRun() {
	p := sweep.Params{
		FrequenciesKHz: sweep.LogSpacedFrequencies(1, 1200, 200),
		Diameter:       2e-3,
		Models:         []string{"Medwin_Clay", "Breathing"},
		T:              20, S: 0, Z: 10,
	}

	rs, err := sweep.Run(context.Background(), p)
	if err != nil {
		log.Fatal(err)
	}

	rows := rs.Rows()
	fmt.Printf("models: %d\n", len(rs.TS))
	fmt.Printf("rows: %d\n", len(rows))
	fmt.Printf("columns: %d\n", len(sweep.Header()))
	// Output:
	// models: 2
	// rows: 400
	// columns: 7
}
