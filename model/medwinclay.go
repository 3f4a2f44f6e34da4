package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Medwin_Clay", MedwinClayTS) }

// MedwinClayTS computes target strength from the Medwin and Clay (1998)
// resonant-bubble formula,
//
//	sigma_bs = a^2 / ((fR/f - 1)^2 + delta^2)
//
// using the corrected resonance frequency and the full damping constant.
// When the thermal correction is singular (fR is NaN) the bare frequency is
// substituted, and if the damping is poisoned too it is recomputed from the
// re-radiation and viscous terms only (resonance.SimplifiedDamping).
func MedwinClayTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	a := b.D / 2

	fb, fR, _, _ := resonance.Freq(fKHz, c, w, b)
	delta := resonance.DampingConstant(fKHz, c, w, b)

	freq := fR
	if math.IsNaN(fR) {
		freq = fb
		if math.IsNaN(delta) {
			delta = resonance.SimplifiedDamping(fKHz, c, w, b)
		}
	}

	ratio := freq/(fKHz*1e3) - 1
	sigma := a * a / (ratio*ratio + delta*delta)

	return finiteTS("Medwin_Clay", fKHz, sigma)
}
