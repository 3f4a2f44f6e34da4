// Package sphbessel computes spherical Bessel functions of the first and
// second kind with their derivatives, as needed by partial-wave scattering
// solutions.
//
// j_n is evaluated by downward recurrence (stable for all orders, including
// n > x) with normalization against the closed forms of j_0 or j_1; y_n is
// evaluated by upward recurrence, which is stable for the second kind.
package sphbessel

import "math"

// extraOrders is the downward-recurrence headroom above the requested order.
const extraOrders = 15

// J returns j_0(x) .. j_n(x).
func J(n int, x float64) []float64 {
	out := make([]float64, n+1)
	if x == 0 {
		out[0] = 1
		return out
	}
	if n == 0 {
		out[0] = math.Sin(x) / x
		return out
	}

	// Start the unnormalized downward recurrence well above max(n, x).
	m := n + extraOrders
	if k := int(math.Abs(x)); k > n {
		m = k + extraOrders
	}

	fkp1 := 0.0   // unnormalized f_{k+1}
	fk := 1e-30   // unnormalized f_k, arbitrary seed
	for k := m; k >= 1; k-- {
		fkm1 := float64(2*k+1)/x*fk - fkp1
		fkp1, fk = fk, fkm1

		if k-1 <= n {
			out[k-1] = fk
		}

		// Rescale to keep the unnormalized sequence in range.
		if math.Abs(fk) > 1e250 {
			const scale = 1e-250
			fkp1 *= scale
			fk *= scale
			for i := range out {
				out[i] *= scale
			}
		}
	}

	// Normalize against a closed form; prefer j_0 unless x sits near one
	// of its zeros.
	j0 := math.Sin(x) / x
	if math.Abs(out[0]) > math.Abs(fkp1) {
		norm := j0 / out[0]
		for i := range out {
			out[i] *= norm
		}
	} else {
		j1 := math.Sin(x)/(x*x) - math.Cos(x)/x
		norm := j1 / out[1]
		for i := range out {
			out[i] *= norm
		}
	}

	return out
}

// Y returns y_0(x) .. y_n(x). x must be positive; y_n diverges at 0.
func Y(n int, x float64) []float64 {
	out := make([]float64, n+1)

	out[0] = -math.Cos(x) / x
	if n == 0 {
		return out
	}
	out[1] = -math.Cos(x)/(x*x) - math.Sin(x)/x

	for k := 2; k <= n; k++ {
		out[k] = float64(2*k-1)/x*out[k-1] - out[k-2]
	}

	return out
}

// Deriv returns the derivatives f'_0 .. f'_n given the values f_0 .. f_n of
// either spherical Bessel kind, using
//
//	f'_0 = -f_1
//	f'_l = f_{l-1} - (l+1)/x * f_l
//
// f must contain at least two orders.
func Deriv(f []float64, x float64) []float64 {
	out := make([]float64, len(f))
	if len(f) < 2 {
		return out
	}

	out[0] = -f[1]
	for l := 1; l < len(f); l++ {
		out[l] = f[l-1] - float64(l+1)/x*f[l]
	}

	return out
}

// Deriv2 returns the second derivative f''_l from the value and first
// derivative at order l, via the spherical Bessel differential equation:
//
//	f''_l = (l(l+1)/x^2 - 1) f_l - (2/x) f'_l
func Deriv2(l int, f, fp, x float64) float64 {
	ll := float64(l * (l + 1))
	return (ll/(x*x)-1)*f - 2/x*fp
}
