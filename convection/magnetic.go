package convection

import "math"

// Vacuum permeability, H/m
const mu0 = 4 * math.Pi * 1e-7

// Core holds the bulk properties of the convecting core.
type Core struct {
	Density      float64 // kg/m^3
	Alpha        float64 // thermal expansivity, 1/K
	SpecificHeat float64 // J/kg K
}

func DefaultCore() Core {
	return Core{
		Density:      7500,
		Alpha:        3e-5,
		SpecificHeat: 840,
	}
}

/*
Dynamo field strength at the core-mantle boundary.

	Args:
		gCMB: gravity at the core-mantle boundary, m/s^2
		buoyancyFlux: convective heat flux driving the dynamo, W/m^2
		coreRadius: m
		layerRadius: outer radius of the convecting layer, m

	Returns:
		B, T

	Notes:
		Reese & Solomatov (2010), after Christensen & Aubert (2006).
*/
func (c Core) MagneticFieldStrength(gCMB, buoyancyFlux, coreRadius, layerRadius float64) float64 {
	dr := layerRadius - coreRadius
	f := c.Alpha * gCMB * buoyancyFlux * dr / (4 * math.Pi * c.SpecificHeat * coreRadius * coreRadius)
	return 0.9 * math.Sqrt(mu0) * math.Pow(c.Density, 1.0/6.0) * math.Cbrt(f)
}
