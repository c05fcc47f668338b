package eos

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// slack on the point count so that rounding in (stop-start)/step never adds a point at stop
const gridTolerance = 1e-9

// upper bound on the points a single grid may hold
const maxGridPoints = 10_000_000

// Grid is an ordered, strictly ascending set of sample points.
type Grid struct {
	points []float64
}

/*
Builds the points start, start+step, ... below stop.

	Args:
		start: first point
		stop: exclusive upper bound
		step: spacing, > 0

	Returns:
		the grid, or ErrInvalidGrid

	Notes:
		the number of points is ceil((stop-start)/step), the same count
		numpy.arange gives, so [3.9, 7.1) step 0.1 has 32 points. A point
		that lands on stop only through rounding is left out. Grids of more
		than maxGridPoints points are rejected.
*/
func NewGrid(start, stop, step float64) (Grid, error) {
	for _, v := range []float64{start, stop, step} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Grid{}, ErrInvalidGrid
		}
	}
	if step <= 0 || stop <= start {
		return Grid{}, ErrInvalidGrid
	}

	q := math.Ceil((stop-start)/step - gridTolerance)
	if q > maxGridPoints {
		return Grid{}, ErrInvalidGrid
	}
	n := int(q)
	if n < 1 {
		return Grid{}, ErrInvalidGrid
	}
	points := make([]float64, n)
	if n == 1 {
		points[0] = start
		return Grid{points: points}, nil
	}
	floats.Span(points, start, start+float64(n-1)*step)

	return Grid{points: points}, nil
}

// GridOf wraps an explicit list of points. They must be strictly ascending.
func GridOf(points ...float64) (Grid, error) {
	if len(points) == 0 {
		return Grid{}, ErrEmptyGrid
	}
	for i, p := range points {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return Grid{}, ErrInvalidGrid
		}
		if i > 0 && p <= points[i-1] {
			return Grid{}, ErrInvalidGrid
		}
	}
	return Grid{points: append([]float64(nil), points...)}, nil
}

// DefaultVolumeGrid is the 3.9 .. 7.0 cm^3/mol sweep in steps of 0.1.
func DefaultVolumeGrid() Grid {
	g, _ := NewGrid(3.9, 7.0+0.1, 0.1)
	return g
}

// DefaultAlphaGrid is the thermal expansion sweep [1e-6, 5e-5) in steps of 1e-6, 1/K.
func DefaultAlphaGrid() Grid {
	g, _ := NewGrid(1e-6, 5e-5, 1e-6)
	return g
}

func (g Grid) Len() int {
	return len(g.points)
}

func (g Grid) At(i int) float64 {
	return g.points[i]
}

// Values returns a copy of the points.
func (g Grid) Values() []float64 {
	return append([]float64(nil), g.points...)
}

func (g Grid) Min() float64 {
	return g.points[0]
}

func (g Grid) Max() float64 {
	return g.points[len(g.points)-1]
}
