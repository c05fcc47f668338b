package eos

/*
Integrated linear thermal expansion.

	Args:
		v1: volume at t1
		alpha: thermal expansion coefficient, 1/K
		t1, t2: temperatures, K

	Returns:
		V2 = V1 + alpha V1 (T2 - T1)
*/
func ExpandedVolume(v1, alpha, t1, t2 float64) float64 {
	return v1 + alpha*v1*(t2-t1)
}

// Reference is the state (V1, T1) thermal expansion is measured from.
type Reference struct {
	Volume      float64
	Temperature float64
}

// AlphaFit is the best thermal expansion coefficient for one temperature.
type AlphaFit struct {
	Temperature float64 // T2, K
	Alpha       float64 // best alpha, 1/K
	Volume      float64 // volume from the isotherm at T2
	Expanded    float64 // V(alpha) at T2
	Residual    float64 // |Expanded - Volume|
}

// Calibrator fits alpha against volumes inverted from the P-V-T model.
type Calibrator struct {
	Inverter Inverter
	Alphas   Grid
}

func NewCalibrator(m Model) Calibrator {
	return Calibrator{Inverter: NewInverter(m), Alphas: DefaultAlphaGrid()}
}

// ReferenceAt takes V1 from the isotherm at t1 for the target pressure.
func (c Calibrator) ReferenceAt(t1, targetP float64) (Reference, error) {
	f, err := c.Inverter.Volume(t1, targetP)
	if err != nil {
		return Reference{}, err
	}
	return Reference{Volume: f.Value, Temperature: t1}, nil
}

/*
Finds, for every temperature, the alpha whose linearly expanded volume is
closest to the isotherm volume at the target pressure.

	Args:
		ref: (V1, T1)
		targetP: isobar pressure, GPa
		temperatures: T2 values, K

	Returns:
		one AlphaFit per temperature, in input order
*/
func (c Calibrator) Calibrate(ref Reference, targetP float64, temperatures []float64) ([]AlphaFit, error) {
	if c.Alphas.Len() == 0 {
		return nil, ErrEmptyGrid
	}

	fits := make([]AlphaFit, 0, len(temperatures))
	expanded := make([]float64, c.Alphas.Len())
	for _, t2 := range temperatures {
		v, err := c.Inverter.Volume(t2, targetP)
		if err != nil {
			return nil, err
		}

		for i := range expanded {
			expanded[i] = ExpandedVolume(ref.Volume, c.Alphas.At(i), ref.Temperature, t2)
		}
		best := NearestIndex(expanded, v.Value)
		if !best.Found {
			return nil, ErrEmptyGrid
		}

		fits = append(fits, AlphaFit{
			Temperature: t2,
			Alpha:       c.Alphas.At(best.Index),
			Volume:      v.Value,
			Expanded:    expanded[best.Index],
			Residual:    best.Residual,
		})
	}
	return fits, nil
}
