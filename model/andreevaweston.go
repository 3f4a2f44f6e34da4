package model

import (
	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Andreeva_Weston", AndreevaWestonTS) }

// AndreevaWestonTS computes target strength from the Andreeva (1964) /
// Weston (1967) fisheries formulation: the adiabatic (uncorrected)
// resonance frequency with re-radiation plus viscous damping,
//
//	sigma_bs = a^2 / (((fb/f)^2 - 1)^2 + delta^2)
//
// No thermal correction enters, so this model has no singular inputs and
// no fallback path.
func AndreevaWestonTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	a := b.D / 2

	fb, _, _, _ := resonance.Freq(fKHz, c, w, b)
	delta := resonance.SimplifiedDamping(fKHz, c, w, b)

	r := fb / (fKHz * 1e3)
	ratio := r*r - 1
	sigma := a * a / (ratio*ratio + delta*delta)

	return finiteTS("Andreeva_Weston", fKHz, sigma)
}
