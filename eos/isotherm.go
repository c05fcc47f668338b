package eos

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Isotherm pairs each grid volume with its predicted pressure at a fixed temperature.
type Isotherm struct {
	Temperature float64
	Volumes     Grid
	Pressures   *mat.VecDense
}

/*
Evaluates the forward model over a volume grid.

	Args:
		volumes: volume grid, cm^3/mol
		t: temperature, K

	Returns:
		the isotherm; a *DomainError if any grid volume is <= 0
*/
func (m Model) Isotherm(volumes Grid, t float64) (Isotherm, error) {
	if volumes.Len() == 0 {
		return Isotherm{}, ErrEmptyGrid
	}

	n := volumes.Len()
	cold := mat.NewVecDense(n, nil)
	for i := 0; i < n; i++ {
		v := volumes.At(i)
		if !(v > 0) {
			return Isotherm{}, &DomainError{Op: "pressure", Volume: v}
		}
		cold.SetVec(i, m.BirchMurnaghan3(v))
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}

	// P = P_0(V) + P_th(T - 300 K) for every grid volume
	p := mat.NewVecDense(n, nil)
	p.AddScaledVec(cold, m.ThermalPressure(t-ReferenceTemperature), mat.NewVecDense(n, ones))

	return Isotherm{
		Temperature: t,
		Volumes:     volumes,
		Pressures:   p,
	}, nil
}

// Fit is the outcome of a nearest-value scan.
type Fit struct {
	Index    int     // position of the winner in the scanned sequence
	Value    float64 // winning candidate (volume or alpha)
	Residual float64 // |prediction - target| at the winner
	Found    bool    // false when nothing could be compared
}

/*
Linear scan for the entry closest to target.

	Args:
		values: predictions, in candidate order
		target: value to match

	Returns:
		Index and Residual of the first entry with the smallest |values[i] - target|

	Notes:
		ties go to the earliest entry. NaN entries never win. When nothing
		qualifies Found is false, which is distinct from an exact match.
*/
func NearestIndex(values []float64, target float64) Fit {
	best := Fit{Index: -1, Residual: math.Inf(1)}
	for i, v := range values {
		r := math.Abs(v - target)
		if r < best.Residual {
			best.Index = i
			best.Residual = r
			best.Found = true
		}
	}
	return best
}

// Nearest finds the grid volume whose pressure on this isotherm is closest to targetP.
func (iso Isotherm) Nearest(targetP float64) Fit {
	f := NearestIndex(iso.Pressures.RawVector().Data, targetP)
	if f.Found {
		f.Value = iso.Volumes.At(f.Index)
	}
	return f
}

// Inverter maps (T, P) back to the nearest grid volume.
type Inverter struct {
	Model   Model
	Volumes Grid
}

// NewInverter uses the default 3.9 .. 7.0 volume sweep.
func NewInverter(m Model) Inverter {
	return Inverter{Model: m, Volumes: DefaultVolumeGrid()}
}

/*
Volume on the isotherm at t closest to targetP.

	Args:
		t: temperature, K
		targetP: pressure, GPa

	Returns:
		the nearest grid point; targets beyond the isotherm's range give
		the boundary volume rather than an error

	Notes:
		accuracy is bounded by the grid step; no interpolation is done.
*/
func (inv Inverter) Volume(t, targetP float64) (Fit, error) {
	if math.IsNaN(targetP) {
		return Fit{}, ErrInvalidPressure
	}
	iso, err := inv.Model.Isotherm(inv.Volumes, t)
	if err != nil {
		return Fit{}, err
	}
	f := iso.Nearest(targetP)
	if !f.Found {
		return Fit{}, ErrEmptyGrid
	}
	return f, nil
}
