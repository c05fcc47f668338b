package eos

import "math"

/*
Fitted Debye model theta(V) = a + b exp(-cV).

	Fields:
		A: K
		B: K
		C: mol/cm^3
*/
type Debye struct {
	A float64
	B float64
	C float64
}

// Anderson2001Debye holds the iron fit of Anderson et al. (2001).
func Anderson2001Debye() Debye {
	return Debye{A: 97.3, B: 2996, C: 0.33}
}

// Temperature is the Debye temperature at volume v, K.
func (d Debye) Temperature(v float64) float64 {
	return d.A + d.B*math.Exp(-d.C*v)
}

/*
Vibrational Grüneisen parameter of the fitted Debye model.

	Returns:
		gamma = -dln(theta)/dln(V) = V b c / (a exp(cV) + b), -
*/
func (d Debye) Gruneisen(v float64) float64 {
	return v * (d.B * d.C) / (d.A*math.Exp(d.C*v) + d.B)
}
