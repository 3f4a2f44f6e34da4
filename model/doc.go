// Package model provides the library of interchangeable target strength
// formulas.
//
// Seven bubble models and one elastic-sphere solution are available. Every
// bubble model is a pure function from (frequency, sound speed, seawater
// state, bubble state) to a TS value in dB re 1 m^2, where
//
//	TS = 10 log10(sigma_bs)
//
// and sigma_bs is a backscattering cross-section in m^2. Models are
// dispatched through a name-keyed registry: requesting a name that was never
// registered is an error, never a silent skip. Adding a model means
// registering a new entry, not branching existing code.
//
// Registered bubble models:
//
//   - Medwin_Clay: classic resonant-bubble formulation, Medwin and Clay (1998)
//   - Breathing: monopole breathing-sphere response
//   - Thuraisingham: finite-ka modification of the breathing model
//   - Modal: Anderson (1950) fluid-sphere partial-wave solution
//   - Wildt_Medwin: Wildt (1946) constant-damping approximation
//   - Andreeva_Weston: adiabatic resonance, radiation-dominated damping
//   - Ainslie_Leighton: Ainslie and Leighton (2011) closed-form chain
//
// Models that rely on the thermal correction apply a deterministic fallback
// when the correction is singular: the bare resonance frequency is
// substituted and the damping is recomputed from the re-radiation and
// viscous terms only. A NaN that survives the fallback is reported as a
// computation error for that frequency, never returned as a TS value.
package model
