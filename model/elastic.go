package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/internal/sphbessel"
	"github.com/mu-bwang/seaEchoTSCalculator/solid"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

// SolidSphereTS computes the target strength of an elastic solid sphere of
// the given radius (m) in seawater, from the partial-wave modal solution of
// MacLennan (1981). The material supplies density and the longitudinal and
// transverse sound speeds; the water supplies density and sound speed.
//
// Each mode contributes a phase shift eta_l determined by the continuity of
// pressure and displacement at the sphere surface, including the shear wave
// inside the solid. The form function is
//
//	f_inf = -(2/q) sum (-1)^l (2l+1) sin(eta_l) e^(i eta_l)
//
// and TS = 10 log10(a^2 |f_inf|^2 / 4).
func SolidSphereTS(fKHz, radius float64, m solid.Material, w water.SeawaterState) (float64, error) {
	k := 2 * math.Pi * fKHz * 1000 / w.C
	q := k * radius
	q1 := q * w.C / m.CLon
	q2 := q * w.C / m.CTrans

	alpha := 2 * (m.Rho / w.Rho) * (m.CTrans / w.C) * (m.CTrans / w.C)
	beta := (m.Rho/w.Rho)*(m.CLon/w.C)*(m.CLon/w.C) - alpha

	lmax := int(math.Ceil(q)) + 15
	if lmax > maxModalOrder {
		lmax = maxModalOrder
	}

	jq := sphbessel.J(lmax, q)
	yq := sphbessel.Y(lmax, q)
	djq := sphbessel.Deriv(jq, q)
	dyq := sphbessel.Deriv(yq, q)

	jq1 := sphbessel.J(lmax, q1)
	djq1 := sphbessel.Deriv(jq1, q1)
	jq2 := sphbessel.J(lmax, q2)
	djq2 := sphbessel.Deriv(jq2, q2)

	var sumRe, sumIm float64
	sign := 1.0
	for l := 0; l <= lmax; l++ {
		d2jq1 := sphbessel.Deriv2(l, jq1[l], djq1[l], q1)
		d2jq2 := sphbessel.Deriv2(l, jq2[l], djq2[l], q2)

		ll := float64(l)
		a2 := (ll*ll+ll-2)*jq2[l] + q2*q2*d2jq2
		a1 := 2 * ll * (ll + 1) * (q1*djq1[l] - jq1[l])
		b2 := a2*q1*q1*(beta*jq1[l]-alpha*d2jq1) - a1*alpha*(jq2[l]-q2*djq2[l])
		b1 := q * (a2*q1*djq1[l] - a1*jq2[l])

		eta := math.Atan(-(b2*djq[l] - b1*jq[l]) / (b2*dyq[l] - b1*yq[l]))

		s, co := math.Sincos(eta)
		sumRe += sign * float64(2*l+1) * s * co
		sumIm += sign * float64(2*l+1) * s * s
		sign = -sign
	}

	// |f_inf|^2 = (2/q)^2 |sum|^2; sigma_bs = a^2 |f_inf|^2 / 4.
	sigma := radius * radius * (sumRe*sumRe + sumIm*sumIm) / (q * q)

	return finiteTS("SolidSphere", fKHz, sigma)
}
