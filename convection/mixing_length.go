// Package convection estimates core convection parameters from
// mixing-length theory and SPH simulation output.
package convection

import "math"

/*
Convective velocity of an inviscid fluid.

	Args:
		g: gravity, m/s^2
		alpha: thermal expansivity, 1/K
		beta: superadiabatic temperature gradient, K/m
		length: mixing length, m

	Returns:
		v = sqrt(g alpha beta L^2), m/s

	Notes:
		g alpha beta L acts as an effective gravity.
		Stevenson, Ge131 notes ch. 14.
*/
func Velocity(g, alpha, beta, length float64) float64 {
	return math.Sqrt(g * alpha * beta * length * length)
}

// HeatFlux is the convective heat flux rho cp v beta L, W/m^2.
func HeatFlux(density, specHeat, velocity, beta, length float64) float64 {
	return density * specHeat * velocity * beta * length
}

/*
Convective velocity for an adiabatic flow with known heat flux.

	Args:
		length: mixing length, m
		heatFlux: convective heat flux, W/m^2
		density: kg/m^3
		scaleHeight: temperature scale height H_T = cp / (alpha g), m

	Returns:
		v = 0.1 (L F / (rho H_T))^(1/3), m/s
*/
func AdiabaticVelocity(length, heatFlux, density, scaleHeight float64) float64 {
	return 0.1 * math.Cbrt(length*heatFlux/(density*scaleHeight))
}

// BetaL recovers the product beta L from a velocity: (10^2 / alpha) (v / sqrt(g L))^2, K.
func BetaL(alpha, velocity, g, length float64) float64 {
	r := velocity / math.Sqrt(g*length)
	return 1e2 / alpha * r * r
}
