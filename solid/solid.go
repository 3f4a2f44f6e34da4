// Package solid provides the elastic constants of solid sphere materials.
//
// Entries are static catalog data; there is no derivation step. The two
// shipped materials are the standard calibration-sphere metals.
package solid

import (
	"fmt"
	"sort"
)

// Material holds the elastic constants of a solid scatterer.
type Material struct {
	Name   string
	Rho    float64 // density (kg/m^3)
	CLon   float64 // longitudinal sound speed (m/s)
	CTrans float64 // transverse (shear) sound speed (m/s)
}

// TungstenCarbide is the standard calibration sphere material
// (MacLennan and Dunn 1984, Foote 1990).
var TungstenCarbide = Material{
	Name:   "tungsten_carbide",
	Rho:    14900,
	CLon:   6853,
	CTrans: 4171,
}

// Copper describes annealed copper at ~25 degC.
var Copper = Material{
	Name:   "copper",
	Rho:    8940,
	CLon:   4660,
	CTrans: 2325,
}

var catalog = map[string]Material{
	TungstenCarbide.Name: TungstenCarbide,
	Copper.Name:          Copper,
}

// Lookup returns the material registered under name.
func Lookup(name string) (Material, error) {
	m, ok := catalog[name]
	if !ok {
		return Material{}, fmt.Errorf("solid: unknown material %q", name)
	}
	return m, nil
}

// Names returns the catalog material names in sorted order.
func Names() []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
