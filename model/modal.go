package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/internal/sphbessel"
	"github.com/mu-bwang/seaEchoTSCalculator/resonance"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Modal", ModalTS) }

// maxModalOrder caps the partial-wave sums; the series has long converged
// by then for every ka this package is used at.
const maxModalOrder = 80

// ModalTS computes target strength from the Anderson (1950) fluid-sphere
// partial-wave solution, treating the bubble as a fluid sphere of gas with
// sound speed sqrt(gamma Pg / rho_g). This is the exact monopole-plus-
// higher-modes reference for the approximate bubble formulas.
//
// For each mode n the boundary conditions give a real coefficient
//
//	      (j'_n(q') y_n(q)) / (j_n(q') j'_n(q)) - gh (y'_n(q) / j'_n(q))
//	C_n = ----------------------------------------------------------------
//	      (j'_n(q') j_n(q)) / (j_n(q') j'_n(q)) - gh
//
// with q = ka in water, q' = ka/h in the gas, g = rho_g/rho_w, h = c_g/c.
// The backscattering length is (1/k) sum (-1)^n (2n+1) / (1 + i C_n) and
// sigma_bs is its squared modulus.
func ModalTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	a := b.D / 2
	k := 2 * math.Pi * fKHz * 1000 / c
	q := resonance.Ka(fKHz, c, a)

	g := b.Rho / w.Rho
	cg := math.Sqrt(b.Gamma * b.Pg / b.Rho)
	h := cg / c
	qp := q / h

	nmax := int(math.Ceil(math.Max(q, qp))) + 12
	if nmax > maxModalOrder {
		nmax = maxModalOrder
	}

	jw := sphbessel.J(nmax, q)
	yw := sphbessel.Y(nmax, q)
	jg := sphbessel.J(nmax, qp)
	jwp := sphbessel.Deriv(jw, q)
	ywp := sphbessel.Deriv(yw, q)
	jgp := sphbessel.Deriv(jg, qp)

	var sumRe, sumIm float64
	sign := 1.0
	for n := 0; n <= nmax; n++ {
		num := jgp[n]*yw[n]/(jg[n]*jwp[n]) - g*h*(ywp[n]/jwp[n])
		den := jgp[n]*jw[n]/(jg[n]*jwp[n]) - g*h
		cn := num / den

		// (-1)^n (2n+1) / (1 + i C_n)
		scale := sign * float64(2*n+1) / (1 + cn*cn)
		sumRe += scale
		sumIm += scale * -cn
		sign = -sign
	}

	sigma := (sumRe*sumRe + sumIm*sumIm) / (k * k)

	return finiteTS("Modal", fKHz, sigma)
}
