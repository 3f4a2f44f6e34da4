// Package water derives the physical state of seawater from temperature,
// depth and salinity.
//
// All derived quantities are pure functions of the three inputs and are
// stored on an immutable SeawaterState value:
//
//   - sound speed via the Mackenzie (1981) nine-term equation
//   - hydrostatic pressure from depth
//   - dynamic and kinematic viscosity (Sharqawy et al. 2010 correlations)
//   - vapor pressure (Magnus form with salinity correction)
//   - surface tension at the air/water interface
//
// The package also provides the Ainslie & McColm (1998) absorption
// coefficient, which depends on the seawater state and frequency but is
// independent of any scatterer.
//
// Inputs outside the valid range of the underlying empirical correlations
// produce NaN fields rather than errors; callers are expected to validate
// their inputs against the oceanographic range they care about.
package water
