// Package bubble derives the state of a gas bubble suspended in seawater.
//
// The derivation is generic over the gas species: any type implementing Gas
// can be used, so adding a species is a drop-in implementation rather than a
// change to the derivation. Air and Methane are provided.
package bubble

import (
	"github.com/mu-bwang/seaEchoTSCalculator/water"
)

// GasConstant is the universal gas constant R in J/(mol K).
const GasConstant = 8.31446261815324

// referenceTemp is the reference temperature for the free-gas density at
// sea level, in deg C.
const referenceTemp = 20.0

// Gas describes the species-specific constants of a bubble gas.
type Gas interface {
	// Name identifies the species.
	Name() string
	// MolarMass returns the molar mass in kg/mol.
	MolarMass() float64
	// HeatCapacityRatio returns gamma = Cp/Cv.
	HeatCapacityRatio() float64
	// Cp returns the specific heat at constant pressure in kJ/(kg K).
	Cp() float64
	// ThermalConductivity returns the thermal conductivity in W/(m K).
	ThermalConductivity() float64
}

// Air is the default bubble gas.
//
// The thermal conductivity constant follows Eq. 7 of Stephan and Laesecke
// (1985), The Thermal Conductivity of Fluid Air.
type Air struct{}

func (Air) Name() string                 { return "air" }
func (Air) MolarMass() float64           { return 28.96e-3 }
func (Air) HeatCapacityRatio() float64   { return 1.4 }
func (Air) Cp() float64                  { return 1.005 } // 1.005 kJ/(kg K) = 0.24 cal/(g degC)
func (Air) ThermalConductivity() float64 { return 4.358e-3 }

// Methane models seep-gas bubbles.
type Methane struct{}

func (Methane) Name() string                 { return "methane" }
func (Methane) MolarMass() float64           { return 16.04e-3 }
func (Methane) HeatCapacityRatio() float64   { return 1.31 }
func (Methane) Cp() float64                  { return 2.22 }
func (Methane) ThermalConductivity() float64 { return 34.3e-3 }

// State holds the derived state of a single gas bubble. It embeds the
// seawater state it was derived from; neither is mutated after construction.
type State struct {
	Water water.SeawaterState

	D     float64 // bubble diameter (m)
	Pg    float64 // pressure inside the bubble (Pa)
	Rho   float64 // gas density at depth (kg/m^3)
	Rho0  float64 // free-gas density at sea level, 20 degC (kg/m^3)
	Gamma float64 // specific heat ratio
	Mm    float64 // molar mass (kg/mol)
	Cp    float64 // specific heat at constant pressure (kJ/(kg K))
	Kth   float64 // thermal conductivity (W/(m K))
	Gas   string  // species name
}

// New derives the bubble state for a bubble of the given diameter (m) in
// the given seawater, filled with gas g.
//
// The internal pressure is hydrostatic pressure plus the Laplace term
// 2*sigma/a minus the vapor pressure; gas density follows the ideal gas
// law at the local temperature.
func New(w water.SeawaterState, diameter float64, g Gas) State {
	a := diameter / 2

	pg := water.AtmosphericPressure + w.Rho*water.Gravity*w.Z + 2*w.Sigma/a - w.Pv
	rho := pg * g.MolarMass() / (GasConstant * (w.T + 273.15))
	rho0 := water.AtmosphericPressure * g.MolarMass() / (GasConstant * (referenceTemp + 273.15))

	return State{
		Water: w,
		D:     diameter,
		Pg:    pg,
		Rho:   rho,
		Rho0:  rho0,
		Gamma: g.HeatCapacityRatio(),
		Mm:    g.MolarMass(),
		Cp:    g.Cp(),
		Kth:   g.ThermalConductivity(),
		Gas:   g.Name(),
	}
}

// NewAir derives the state of an air bubble.
func NewAir(w water.SeawaterState, diameter float64) State {
	return New(w, diameter, Air{})
}
