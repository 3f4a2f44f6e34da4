// Package commands defines the tscalc CLI.
//
// Commands
//
//   - sweep       Bubble TS over a frequency grid, one or more models
//   - diameters   Bubble TS over a diameter grid at a fixed frequency
//   - sphere      Elastic solid sphere TS over a frequency grid
//   - absorption  Seawater absorption coefficient over a frequency grid
//   - models      List registered bubble models and sphere materials
//   - env         Print the derived seawater state
//
// The water column is described by the persistent --temperature,
// --salinity and --depth flags shared by every command. Tabular output is
// CSV on stdout unless --out names a file.
package commands
