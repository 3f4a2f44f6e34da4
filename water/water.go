package water

import "math"

// Gravity is the gravitational acceleration used for hydrostatic pressure.
const Gravity = 9.81 // m/s^2

// AtmosphericPressure is the reference pressure at the sea surface.
const AtmosphericPressure = 1.01e5 // Pa

// SeawaterState holds the derived physical state of seawater at a point.
// All fields are pure functions of (T, Z, S) and must not be mutated after
// construction.
type SeawaterState struct {
	T float64 // temperature (deg C)
	Z float64 // depth (m)
	S float64 // salinity (psu)

	Rho   float64 // density (kg/m^3)
	C     float64 // sound speed (m/s)
	Mu    float64 // dynamic viscosity (Pa s)
	Nu    float64 // kinematic viscosity (m^2/s)
	P     float64 // absolute pressure (Pa)
	Pv    float64 // vapor pressure (Pa)
	Sigma float64 // surface tension (N/m)
	Cp    float64 // specific heat capacity (J/(kg K))
	PH    float64 // pH at the surface layer
}

// New derives the seawater state for temperature T (deg C), depth z (m) and
// salinity S (psu). The correlations are valid over the open-ocean range
// (roughly -2..30 degC, 0..8000 m, 0..40 psu); outside it the derived fields
// degrade to NaN rather than being clamped.
func New(T, z, S float64) SeawaterState {
	rho := density(T, S)
	mu := dynamicViscosity(T, S)

	return SeawaterState{
		T:     T,
		Z:     z,
		S:     S,
		Rho:   rho,
		C:     soundSpeed(T, z, S),
		Mu:    mu,
		Nu:    mu / rho,
		P:     AtmosphericPressure + rho*Gravity*z,
		Pv:    vaporPressure(T, S),
		Sigma: surfaceTension(T, S),
		Cp:    specificHeat(T, S),
		PH:    8.1,
	}
}

// soundSpeed implements the Mackenzie (1981) nine-term equation:
//
//	c = 1448.96 + 4.591 T - 5.304e-2 T^2 + 2.374e-4 T^3
//	    + 1.340 (S-35) + 1.630e-2 z + 1.675e-7 z^2
//	    - 1.025e-2 T (S-35) - 7.139e-13 T z^3
func soundSpeed(T, z, S float64) float64 {
	return 1448.96 + 4.591*T - 5.304e-2*T*T + 2.374e-4*T*T*T +
		1.340*(S-35) + 1.630e-2*z + 1.675e-7*z*z -
		1.025e-2*T*(S-35) - 7.139e-13*T*z*z*z
}

// density implements the EOS-80 one-atmosphere equation of state
// (Millero and Poisson 1981).
func density(T, S float64) float64 {
	rhoW := 999.842594 + T*(6.793952e-2+T*(-9.095290e-3+T*(1.001685e-4+T*(-1.120083e-6+T*6.536332e-9))))

	a := 0.824493 + T*(-4.0899e-3+T*(7.6438e-5+T*(-8.2467e-7+T*5.3875e-9)))
	b := -5.72466e-3 + T*(1.0227e-4+T*(-1.6546e-6))
	const c = 4.8314e-4

	return rhoW + a*S + b*S*math.Sqrt(S) + c*S*S
}

// dynamicViscosity implements the Sharqawy, Lienhard and Zubair (2010)
// correlation. Salinity enters as a mass fraction.
func dynamicViscosity(T, S float64) float64 {
	muW := 4.2844e-5 + 1/(0.157*(T+64.993)*(T+64.993)-91.296)

	sk := S * 1e-3 // psu ~ g/kg -> kg/kg
	a := 1.541 + 1.998e-2*T - 9.52e-5*T*T
	b := 7.974 - 7.561e-2*T + 4.724e-4*T*T

	return muW * (1 + a*sk + b*sk*sk)
}

// vaporPressure uses the Magnus form over fresh water with the Raoult
// salinity correction.
func vaporPressure(T, S float64) float64 {
	pvW := 610.94 * math.Exp(17.625*T/(T+243.04))
	return pvW * (1 - 5.37e-4*S)
}

// surfaceTension combines the IAPWS fresh-water formulation with the
// Nayar et al. (2014) salinity factor.
func surfaceTension(T, S float64) float64 {
	tau := 1 - (T+273.15)/647.096
	sigmaW := 0.2358 * math.Pow(tau, 1.256) * (1 - 0.625*tau)

	return sigmaW * (1 + (2.26e-4*T+9.46e-3)*math.Log(1+3.31e-2*S))
}

// specificHeat implements the Sharqawy, Lienhard and Zubair (2010)
// polynomial for seawater heat capacity at constant pressure.
func specificHeat(T, S float64) float64 {
	tk := T + 273.15

	a := 5.328 - 9.76e-2*S + 4.04e-4*S*S
	b := -6.913e-3 + 7.351e-4*S - 3.15e-6*S*S
	c := 9.6e-6 - 1.927e-6*S + 8.23e-9*S*S
	d := 2.5e-9 + 1.666e-9*S - 7.125e-12*S*S

	return 1000 * (a + tk*(b+tk*(c+tk*d)))
}

// AbsorptionCoeff returns the seawater absorption coefficient in dB/km for
// the frequency fKHz, using the simplified formula of Ainslie and McColm
// (1998). It is independent of any scatterer and usable on its own.
func (w SeawaterState) AbsorptionCoeff(fKHz float64) float64 {
	zKm := w.Z / 1000

	f1 := 0.78 * math.Sqrt(w.S/35.0) * math.Exp(w.T/26.0)
	f2 := 42.0 * math.Exp(w.T/17.0)

	boric := 0.106 * (f1 * fKHz * fKHz) / (fKHz*fKHz + f1*f1) * math.Exp((w.PH-8.0)/0.56)
	magnesium := 0.52 * (1 + w.T/43.0) * (w.S / 35.0) *
		f2 * fKHz * fKHz / (fKHz*fKHz + f2*f2) * math.Exp(-zKm/6.0)
	viscous := 0.00049 * fKHz * fKHz * math.Exp(-(w.T/27.0 + zKm/17.0))

	return boric + magnesium + viscous
}
