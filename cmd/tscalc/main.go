package main

import (
	"os"

	"github.com/mu-bwang/seaEchoTSCalculator/cmd/tscalc/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		os.Exit(1)
	}
}
