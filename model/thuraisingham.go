package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Thuraisingham", ThuraisinghamTS) }

// ThuraisinghamTS computes target strength from the Thuraisingham (1997)
// modification of the breathing model, which stays valid when ka is not
// small: the radiation damping term ka is replaced by ka/(1+(ka)^2) and the
// cross-section gains the sinc factor of the finite sphere,
//
//	sigma_bs = a^2 (sin(ka)/ka)^2 /
//	           (((fR/f)^2 - 1)^2 + (delta_th + delta_nu + ka/(1+(ka)^2))^2)
func ThuraisinghamTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	a := b.D / 2
	ka := resonance.Ka(fKHz, c, a)

	fb, fR, _, _ := resonance.Freq(fKHz, c, w, b)
	delta := resonance.DampingConstant(fKHz, c, w, b)

	freq := fR
	if math.IsNaN(fR) {
		freq = fb
		if math.IsNaN(delta) {
			delta = resonance.SimplifiedDamping(fKHz, c, w, b)
		}
	}

	// Swap the plain ka radiation term for the finite-ka form.
	delta += -ka + ka/(1+ka*ka)

	sinc := 1.0
	if ka > 0 {
		sinc = math.Sin(ka) / ka
	}

	r := freq / (fKHz * 1e3)
	ratio := r*r - 1
	sigma := a * a * sinc * sinc / (ratio*ratio + delta*delta)

	return finiteTS("Thuraisingham", fKHz, sigma)
}
