package model

import (
	"math"

	"github.com/mu-bwang/seaEchoTSCalculator/bubble"
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

func init() { Register("Ainslie_Leighton", AinslieLeightonTS) }

// AinslieLeightonTS computes target strength following Ainslie and Leighton
// (2011). Unlike the other bubble models it does not consume the shared
// resonance/damping engine: it carries its own closed-form chain of
// resonance frequency, damping factors and cross-section.
//
// The chain: an uncorrected angular resonance frequency
// omega_0 = sqrt(3 gamma P / rho) / R0, viscous and thermal damping factors
// (the thermal one from the diffusivity Kth/(rho_w cp_w)), a radiation
// correction epsilon = omega R0 / c, and finally
//
//	sigma = R0^2 / (((omega_0/omega)^2 - 1)^2 + (2 beta_0/omega + epsilon)^2)
func AinslieLeightonTS(fKHz, c float64, w water.SeawaterState, b bubble.State) (float64, error) {
	omega := 2 * math.Pi * fKHz * 1000
	r0 := b.D / 2

	omega0 := alResonanceFrequency(b.Gamma, w.P, w.Rho, r0)

	// Thermal diffusivity of the gas referenced to the surrounding water.
	diff := b.Kth / (w.Rho * w.Cp)
	beta0 := alDampingFactor(b.Gamma, w.Mu, w.Rho, r0, diff)
	eps0 := alRadiationCorrection(omega0, r0, c)

	omega0 = alCorrectedResonance(omega0, beta0, eps0)

	eps := alRadiationCorrection(omega, r0, c)
	sigma := alCrossSection(omega, omega0, beta0, eps, r0)

	return finiteTS("Ainslie_Leighton", fKHz, sigma)
}

// alResonanceFrequency returns the uncorrected angular resonance frequency
// of the bubble.
func alResonanceFrequency(gamma, p, rho, r0 float64) float64 {
	return math.Sqrt(3*gamma*p/rho) / r0
}

// alDampingFactor returns the total damping factor beta_0 (1/s): viscous
// plus thermal.
func alDampingFactor(gamma, mu, rho, r0, diff float64) float64 {
	betaVis := 2 * mu / (rho * r0 * r0)
	betaTh := 3 * (gamma - 1) * diff / (2 * r0 * r0)
	return betaVis + betaTh
}

// alRadiationCorrection returns the dimensionless compressibility
// correction omega*R0/c.
func alRadiationCorrection(omega, r0, c float64) float64 {
	return omega * r0 / c
}

// alCorrectedResonance applies the damping and radiation corrections to the
// uncorrected resonance frequency.
func alCorrectedResonance(omega0, beta0, eps0 float64) float64 {
	return math.Sqrt(omega0*omega0-2*beta0*beta0) / math.Sqrt(1+eps0*eps0)
}

// alCrossSection returns the backscattering cross-section (m^2).
func alCrossSection(omega, omega0, beta0, eps, r0 float64) float64 {
	r := omega0 / omega
	ratio := r*r - 1
	damp := 2*beta0/omega + eps
	return r0 * r0 / (ratio*ratio + damp*damp)
}
