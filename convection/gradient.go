package convection

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Lines ahead of the header row in SPH output tables.
const sphPreamble = 2

// Particle is one row of an SPH output table. Other columns are ignored.
type Particle struct {
	Tag         int     `csv:"tag"`
	Radius      float64 `csv:"radius"`
	Temperature float64 `csv:"temperature"`
}

/*
Reads particles from a delimited table.

	Args:
		r: table source
		preamble: number of lines before the header row

	Returns:
		the rows in file order
*/
func ReadParticles(r io.Reader, preamble int) ([]Particle, error) {
	br := bufio.NewReader(r)
	for i := 0; i < preamble; i++ {
		if _, err := br.ReadString('\n'); err != nil {
			return nil, fmt.Errorf("skip preamble line %d: %w", i+1, err)
		}
	}

	var rows []Particle
	if err := gocsv.Unmarshal(br, &rows); err != nil {
		return nil, fmt.Errorf("parse particles: %w", err)
	}
	return rows, nil
}

// Gradient is the radial temperature structure of one SPH material.
type Gradient struct {
	radii        []float64 // ascending, m
	temperatures []float64 // K, aligned with radii
}

/*
Selects particles with the given tag inside radiusLimit and sorts them by radius.

	Returns:
		ErrNoParticles when the selection is empty
*/
func NewGradient(particles []Particle, tag int, radiusLimit float64) (*Gradient, error) {
	var radii, temps []float64
	for _, p := range particles {
		if p.Tag == tag && p.Radius <= radiusLimit {
			radii = append(radii, p.Radius)
			temps = append(temps, p.Temperature)
		}
	}
	if len(radii) == 0 {
		return nil, ErrNoParticles
	}

	inds := make([]int, len(radii))
	floats.Argsort(radii, inds)
	sorted := make([]float64, len(temps))
	for i, j := range inds {
		sorted[i] = temps[j]
	}

	return &Gradient{radii: radii, temperatures: sorted}, nil
}

// LoadGradient reads an SPH table from path and builds the Gradient for tag.
func LoadGradient(path string, tag int, radiusLimit float64) (*Gradient, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	particles, err := ReadParticles(f, sphPreamble)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewGradient(particles, tag, radiusLimit)
}

func (g *Gradient) Len() int {
	return len(g.radii)
}

func (g *Gradient) MinRadius() float64 {
	return g.radii[0]
}

func (g *Gradient) MaxRadius() float64 {
	return g.radii[len(g.radii)-1]
}

/*
Gravity inside a uniform sphere.

	Args:
		r: radius, m
		surfaceG: surface gravity, m/s^2
		planetRadius: m

	Returns:
		g(r) = g_s (1 - r / R), m/s^2
*/
func Gravity(r, surfaceG, planetRadius float64) float64 {
	return surfaceG * (1 - r/planetRadius)
}

// EarthGravity is Gravity with g_s = 9.8 m/s^2 and R = 6378 km.
func EarthGravity(r float64) float64 {
	return Gravity(r, 9.8, 6378*1000)
}

/*
Mean temperature in equal-width radial bins.

	Args:
		n: number of bins, >= 1

	Returns:
		outer edge of each bin, m, [n]
		mean temperature in each bin, K, [n]

	Notes:
		a bin covers [edge_{i-1}, edge_i], both ends inclusive. A bin with no
		particles repeats the mean of the bin below it; the first bin always
		holds the innermost particle.
*/
func (g *Gradient) TemperatureProfile(n int) ([]float64, []float64, error) {
	if n < 1 {
		return nil, nil, ErrSamples
	}

	edges := make([]float64, n+1)
	floats.Span(edges, g.MinRadius(), g.MaxRadius())
	// Span can leave the outer edge an ulp short of the outermost particle
	edges[n] = g.MaxRadius()

	means := make([]float64, n)
	lo := 0
	for i := 1; i <= n; i++ {
		for lo < len(g.radii) && g.radii[lo] < edges[i-1] {
			lo++
		}
		hi := lo
		for hi < len(g.radii) && g.radii[hi] <= edges[i] {
			hi++
		}

		if hi > lo {
			means[i-1] = stat.Mean(g.temperatures[lo:hi], nil)
		} else {
			means[i-1] = means[i-2]
		}
	}

	return edges[1:], means, nil
}

/*
Mean radial temperature gradient of the binned profile.

	Args:
		n: number of bins, >= 2

	Returns:
		dT/dr averaged over consecutive bins, K/m
*/
func (g *Gradient) MeanGradient(n int) (float64, error) {
	if n < 2 {
		return 0, ErrSamples
	}
	if g.MaxRadius() == g.MinRadius() {
		return 0, ErrFlatRange
	}

	points, temps, err := g.TemperatureProfile(n)
	if err != nil {
		return 0, err
	}

	dTdr := make([]float64, n-1)
	for i := 1; i < n; i++ {
		dTdr[i-1] = (temps[i] - temps[i-1]) / (points[i] - points[i-1])
	}
	return stat.Mean(dTdr, nil), nil
}
