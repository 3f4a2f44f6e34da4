package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Wildt_Medwin", WildtMedwinTS) }

// WildtMedwinTS computes target strength in the Wildt (1946) manner: the
// breathing-sphere response with the damping constant frozen at its value at
// the resonance frequency, rather than re-evaluated at the sonar frequency.
// This reproduces the constant-Q resonance curves of Physics of Sound in
// the Sea.
func WildtMedwinTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	a := b.D / 2

	fb, fR, _, _ := resonance.Freq(fKHz, c, w, b)

	freq := fR
	if math.IsNaN(fR) {
		freq = fb
	}

	// Damping at resonance; freq is in Hz, the engine takes kHz.
	deltaR := resonance.DampingConstant(freq/1e3, c, w, b)
	if math.IsNaN(deltaR) {
		deltaR = resonance.SimplifiedDamping(freq/1e3, c, w, b)
	}

	r := freq / (fKHz * 1e3)
	ratio := r*r - 1
	sigma := a * a / (ratio*ratio + deltaR*deltaR)

	return finiteTS("Wildt_Medwin", fKHz, sigma)
}
