package eos

import (
	"math"

	"gonum.org/v1/gonum/diff/fd"
)

// ReferenceTemperature is the temperature of the reference isotherm, K.
const ReferenceTemperature = 300.0

/*
P-V-T equation of state P(V, T) = P_0(V, 300 K) + P_th(T - 300 K).

	Fields:
		V0: reference molar volume, cm^3/mol
		K0: isothermal bulk modulus at V0, GPa
		K0Prime: pressure derivative of K0, -
		A: linear thermal pressure coefficient, GPa/K
		B: quadratic thermal pressure coefficient, GPa/K^2
*/
type Model struct {
	V0      float64
	K0      float64
	K0Prime float64
	A       float64
	B       float64
}

/*
Constants fitted for iron.

	Notes:
		Birch-Murnaghan parameters from Anderson et al. (2001),
		thermal pressure from Isaak & Anderson (2003).
*/
func Anderson2001() Model {
	return Model{
		V0:      6.73,
		K0:      155.8,
		K0Prime: 5.81,
		A:       12.1e-3,
		B:       7.8e-7,
	}
}

/*
Third-order Birch-Murnaghan isothermal equation of state.

	Args:
		v: molar volume, cm^3/mol, > 0

	Returns:
		pressure on the reference isotherm, GPa
*/
func (m Model) BirchMurnaghan3(v float64) float64 {
	x := m.V0 / v
	term1 := 3 * m.K0 / 2
	term2 := math.Pow(x, 7.0/3.0) - math.Pow(x, 5.0/3.0)
	term3 := 1 + 0.75*(m.K0Prime-4)*(math.Pow(x, 2.0/3.0)-1)
	return term1 * term2 * term3
}

/*
Thermal pressure relative to the reference isotherm.

	Args:
		deltaT: temperature above 300 K, K

	Returns:
		P_th = a dT + b dT^2 / 2, GPa
*/
func (m Model) ThermalPressure(deltaT float64) float64 {
	return m.A*deltaT + 0.5*m.B*deltaT*deltaT
}

// Pressure evaluates P(V, dT). V <= 0 yields a *DomainError.
func (m Model) Pressure(v, deltaT float64) (float64, error) {
	if !(v > 0) {
		return 0, &DomainError{Op: "pressure", Volume: v}
	}
	return m.BirchMurnaghan3(v) + m.ThermalPressure(deltaT), nil
}

// PressureAt is Pressure with an absolute temperature in K.
func (m Model) PressureAt(v, t float64) (float64, error) {
	return m.Pressure(v, t-ReferenceTemperature)
}

/*
Isothermal bulk modulus K = -V (dP/dV)_T on the reference isotherm.

	Notes:
		dP/dV is taken with a central finite difference.
*/
func (m Model) BulkModulus(v float64) (float64, error) {
	if !(v > 0) {
		return 0, &DomainError{Op: "bulk modulus", Volume: v}
	}
	h := 1e-4 * v
	dpdv := fd.Derivative(m.BirchMurnaghan3, v, &fd.Settings{
		Formula: fd.Central,
		Step:    h,
	})
	return -v * dpdv, nil
}

/*
Bulk modulus along an ordered volume sweep using backward differences.

	Args:
		volumes: ascending volumes, cm^3/mol

	Returns:
		K at volumes[1:], GPa, [len(volumes)-1]
*/
func (m Model) BulkModulusProfile(volumes []float64) ([]float64, error) {
	if len(volumes) < 2 {
		return nil, ErrEmptyGrid
	}
	for _, v := range volumes {
		if !(v > 0) {
			return nil, &DomainError{Op: "bulk modulus", Volume: v}
		}
	}

	k := make([]float64, len(volumes)-1)
	for i := 1; i < len(volumes); i++ {
		dv := volumes[i] - volumes[i-1]
		dp := m.BirchMurnaghan3(volumes[i]) - m.BirchMurnaghan3(volumes[i-1])
		k[i-1] = -volumes[i] * dp / dv
	}
	return k, nil
}

// LinearBulkModulus approximates K(P) = K0 + K0' P.
func (m Model) LinearBulkModulus(p float64) float64 {
	return m.K0 + m.K0Prime*p
}
