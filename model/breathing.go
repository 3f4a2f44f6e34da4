package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Breathing", BreathingTS) }

// BreathingTS computes target strength from the monopole breathing-sphere
// response,
//
//	sigma_bs = a^2 / (((fR/f)^2 - 1)^2 + delta^2)
//
// which differs from Medwin_Clay in squaring the frequency ratio before the
// resonance term. The two agree away from resonance.
func BreathingTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
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

	r := freq / (fKHz * 1e3)
	ratio := r*r - 1
	sigma := a * a / (ratio*ratio + delta*delta)

	return finiteTS("Breathing", fKHz, sigma)
}
