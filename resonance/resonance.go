// Package resonance computes the resonance frequency and damping constant
// of a gas bubble in seawater, following Medwin and Clay (1998), ch. 8.
//
// The resonance frequency is produced by a fixed two-pass refinement, not a
// solver loop: first the bare (adiabatic, tension-free) breathing frequency,
// then a closed-form correction for surface tension and thermal conductivity
// built from hyperbolic and trigonometric terms of a dimensionless thermal
// parameter X. For extreme inputs (X -> 0) the correction is singular and
// yields NaN; downstream consumers apply a documented fallback instead of
// propagating it silently.
package resonance

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

// Precision selects how the transcendental correction terms are evaluated.
// Double is plain IEEE-754 double precision, which overflows for very large
// thermal parameters. Extended stands in for the float128 path of systems
// that have one: it evaluates the same double-precision value but swaps in
// overflow-free asymptotic forms where the naive expressions would not
// survive. Callers must not assume a particular precision level, only that
// results degrade gracefully rather than fail.
type Precision int

const (
	// Extended requests the widest precision the platform provides.
	Extended Precision = iota
	// Double pins the evaluation to IEEE-754 double precision.
	Double
)

// Default is the precision used by Freq and DampingConstant.
const Default = Extended

// Correction holds the factors of the surface-tension/thermal-conductivity
// correction pass, Eq. (8.2.28a)-(8.2.28d).
type Correction struct {
	B      float64 // frequency-correction factor b
	DOverB float64 // thermal damping correction d/b
	Beta   float64 // surface-tension correction beta
}

// Ka returns the dimensionless wavenumber-radius product (2 pi f / c) * a
// for a frequency in kHz.
func Ka(fKHz, c, radius float64) float64 {
	return 2 * math.Pi * fKHz * 1000 / c * radius
}

// Freq computes the resonance frequency of the bubble at sonar frequency
// fKHz and sound speed c (m/s).
//
// It returns the bare frequency fb (Hz) under the assumption of no surface
// tension, adiabatic oscillation and no energy absorption, Eq. (8.2.13); the
// corrected frequency fR = fb*sqrt(b*beta); the correction factors; and a
// flag reporting that the small-bubble assumption ka <= 1 was violated. The
// flag is advisory: the computation proceeds with best-effort values.
func Freq(fKHz, c float64, w water.SeawaterState, b bubble.State) (fb, fR float64, corr Correction, kaExceeded bool) {
	return FreqAt(Default, fKHz, c, w, b)
}

// FreqAt is Freq with an explicit precision policy.
func FreqAt(p Precision, fKHz, c float64, w water.SeawaterState, b bubble.State) (fb, fR float64, corr Correction, kaExceeded bool) {
	omega := 2 * math.Pi * fKHz * 1000 // rad/s
	a := b.D / 2

	kaExceeded = omega/c*a > 1.0

	// Bare harmonic breathing frequency of a small bubble, Eq. (8.2.13).
	fb = 1 / (2 * math.Pi * a) * math.Sqrt(3*b.Gamma*w.P/w.Rho)

	// The correction works in cgs units.
	pDyn := w.P * 10                 // Pa -> dyne/cm^2
	rhoGA := b.Rho0 * 1e-3           // kg/m^3 -> g/cm^3, free gas at sea level
	cpg := b.Cp * 0.2388             // kJ/(kg K) -> cal/(g degC)
	kg := b.Kth * 2.3900573613766683e-3 // W/(m K) -> cal/(cm s degC)
	tau := w.Sigma * 1e3             // N/m -> dyne/cm
	aCm := a * 1e2

	x := aCm * math.Sqrt(2*omega*rhoGA*cpg/kg)
	corr = corrections(p, x, b.Gamma)

	corr.Beta = 1 + 2*tau/(pDyn*aCm)*(1-1/(3*b.Gamma*corr.B))

	fR = fb * math.Sqrt(corr.B*corr.Beta)
	return fb, fR, corr, kaExceeded
}

// largeX is the threshold above which the Extended policy switches to the
// asymptotic forms. For x > 50 the trigonometric terms are below one ulp of
// the hyperbolic ones, so the switch does not change the double-precision
// value; it only avoids the overflow of sinh/cosh near x ~ 710.
const largeX = 50.0

// corrections evaluates the thermal correction terms of Eq. (8.2.28a)-(8.2.28c)
// at the dimensionless parameter x. Beta is left zero; it depends on surface
// tension and is filled in by FreqAt.
//
// For x small enough that cosh(x)-cos(x) underflows to zero the expressions
// degenerate to 0/0 and the returned factors are NaN, which is the signal for
// the caller-side fallback policy. Under the Double policy, x beyond the
// overflow point of sinh/cosh degenerates the same way; Extended keeps those
// inputs finite, standing in for the wider exponent range of float128.
func corrections(p Precision, x, gamma float64) Correction {
	if p == Extended && x > largeX {
		// sinh(x) ~ cosh(x) ~ e^x/2 and (sinh-sin)/(cosh-cos) ~ 1; the
		// common e^x/2 factor cancels from d/b.
		dOverB := 3 * (gamma - 1) * (x - 2) / (x*x + 3*(gamma-1)*x)
		t3 := (1 + dOverB*dOverB) * (1 + (3*gamma-3)/x)
		return Correction{B: 1 / t3, DOverB: dOverB}
	}

	sinh, cosh := math.Sinh(x), math.Cosh(x)
	sin, cos := math.Sin(x), math.Cos(x)

	t1 := x*(sinh+sin) - 2*(cosh-cos)
	t2 := x*x*(cosh-cos) + 3*(gamma-1)*x*(sinh-sin)

	dOverB := 3 * (gamma - 1) * t1 / t2

	t3 := (1 + dOverB*dOverB) * (1 + (3*gamma-3)/x*((sinh-sin)/(cosh-cos)))

	return Correction{B: 1 / t3, DOverB: dOverB}
}

// DampingConstant returns the total dimensionless damping constant of the
// bubble: the sum of re-radiation, thermal and viscous terms,
//
//	delta = omega*a/c + (d/b)*(fR/f)^2 + 4*mu/(rho*omega*a^2)
//
// If the correction pass produced NaN the thermal term poisons the sum;
// callers are expected to fall back to SimplifiedDamping.
func DampingConstant(fKHz, c float64, w water.SeawaterState, b bubble.State) float64 {
	omega := 2 * math.Pi * fKHz * 1000
	a := b.D / 2

	_, fR, corr, _ := Freq(fKHz, c, w, b)

	deltaR := omega * a / c
	deltaT := corr.DOverB * (fR / (fKHz * 1000)) * (fR / (fKHz * 1000))
	deltaNu := 4 * w.Mu / (w.Rho * omega * a * a)

	return deltaR + deltaT + deltaNu
}

// SimplifiedDamping returns the damping constant without the thermal term:
// re-radiation plus viscous only. This is the shared fallback path used when
// the thermal correction is singular.
func SimplifiedDamping(fKHz, c float64, w water.SeawaterState, b bubble.State) float64 {
	omega := 2 * math.Pi * fKHz * 1000
	a := b.D / 2

	deltaR := omega * a / c
	deltaNu := 4 * w.Mu / (w.Rho * omega * a * a)

	return deltaR + deltaNu
}
