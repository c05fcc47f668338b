package convection

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sphTable = `run 2900
time 0
id,tag,radius,temperature,density
1,3,3000,1500,7800
2,3,0,3000,8000
3,1,500,9999,3000
4,3,1000,2500,7900
5,3,2000,2000,7850
6,3,9000,100,7000
`

func TestReadParticles(t *testing.T) {
	particles, err := ReadParticles(strings.NewReader(sphTable), 2)
	require.NoError(t, err)
	require.Len(t, particles, 6)
	assert.Equal(t, Particle{Tag: 3, Radius: 3000, Temperature: 1500}, particles[0])
	assert.Equal(t, 1, particles[2].Tag)

	_, err = ReadParticles(strings.NewReader("only one line"), 2)
	assert.Error(t, err)
}

func TestNewGradient(t *testing.T) {
	particles, err := ReadParticles(strings.NewReader(sphTable), 2)
	require.NoError(t, err)

	g, err := NewGradient(particles, 3, 3400)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())
	assert.Equal(t, 0.0, g.MinRadius())
	assert.Equal(t, 3000.0, g.MaxRadius())
	assert.Equal(t, []float64{0, 1000, 2000, 3000}, g.radii)
	assert.Equal(t, []float64{3000, 2500, 2000, 1500}, g.temperatures)

	_, err = NewGradient(particles, 7, 3400)
	assert.ErrorIs(t, err, ErrNoParticles)

	_, err = NewGradient(particles, 3, -1)
	assert.ErrorIs(t, err, ErrNoParticles)
}

func TestTemperatureProfile(t *testing.T) {
	g, err := NewGradient([]Particle{
		{Tag: 3, Radius: 0, Temperature: 3000},
		{Tag: 3, Radius: 1000, Temperature: 2500},
		{Tag: 3, Radius: 2000, Temperature: 2000},
		{Tag: 3, Radius: 3000, Temperature: 1500},
	}, 3, 3400)
	require.NoError(t, err)

	t.Run("one bin averages everything", func(t *testing.T) {
		points, means, err := g.TemperatureProfile(1)
		require.NoError(t, err)
		assert.Equal(t, []float64{3000}, points)
		assert.Equal(t, []float64{2250}, means)
	})

	t.Run("edges are shared by neighbouring bins", func(t *testing.T) {
		points, means, err := g.TemperatureProfile(3)
		require.NoError(t, err)
		assert.InDeltaSlice(t, []float64{1000, 2000, 3000}, points, 1e-9)
		assert.InDeltaSlice(t, []float64{2750, 2250, 1750}, means, 1e-9)
	})

	t.Run("empty bins repeat the previous mean", func(t *testing.T) {
		sparse, err := NewGradient([]Particle{
			{Tag: 1, Radius: 0, Temperature: 4000},
			{Tag: 1, Radius: 100, Temperature: 3800},
			{Tag: 1, Radius: 3000, Temperature: 1000},
		}, 1, 3000)
		require.NoError(t, err)

		_, means, err := sparse.TemperatureProfile(3)
		require.NoError(t, err)
		assert.Equal(t, []float64{3900, 3900, 1000}, means)
	})

	_, _, err = g.TemperatureProfile(0)
	assert.ErrorIs(t, err, ErrSamples)
}

func TestTemperatureProfileKeepsOutermostParticle(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
	}{
		{1234.5, 3399876.3, 35},
		{0.1, 2999999.7, 17},
		{987.65, 3400000, 99},
		{12.3456, 1700001.1, 100},
	}
	for _, tt := range tests {
		g, err := NewGradient([]Particle{
			{Tag: 3, Radius: tt.lo, Temperature: 3000},
			{Tag: 3, Radius: tt.hi, Temperature: 1000},
		}, 3, 3400*1000)
		require.NoError(t, err)

		points, means, err := g.TemperatureProfile(tt.n)
		require.NoError(t, err)
		require.Len(t, means, tt.n)
		assert.Equal(t, tt.hi, points[tt.n-1], "lo=%v hi=%v n=%v", tt.lo, tt.hi, tt.n)
		assert.Equal(t, 1000.0, means[tt.n-1], "lo=%v hi=%v n=%v", tt.lo, tt.hi, tt.n)
	}
}

func TestMeanGradient(t *testing.T) {
	g, err := NewGradient([]Particle{
		{Tag: 3, Radius: 0, Temperature: 3000},
		{Tag: 3, Radius: 1000, Temperature: 2500},
		{Tag: 3, Radius: 2000, Temperature: 2000},
		{Tag: 3, Radius: 3000, Temperature: 1500},
	}, 3, 3400)
	require.NoError(t, err)

	grad, err := g.MeanGradient(3)
	require.NoError(t, err)
	assert.InDelta(t, -0.5, grad, 1e-9)

	_, err = g.MeanGradient(1)
	assert.ErrorIs(t, err, ErrSamples)

	flat, err := NewGradient([]Particle{{Tag: 1, Radius: 5, Temperature: 10}}, 1, 10)
	require.NoError(t, err)
	_, err = flat.MeanGradient(10)
	assert.ErrorIs(t, err, ErrFlatRange)
}

func TestLoadGradient(t *testing.T) {
	path := filepath.Join(t.TempDir(), "2900.csv")
	require.NoError(t, os.WriteFile(path, []byte(sphTable), 0o644))

	g, err := LoadGradient(path, 3, 3400)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Len())

	_, err = LoadGradient(filepath.Join(t.TempDir(), "missing.csv"), 3, 3400)
	assert.Error(t, err)
}

func TestGravity(t *testing.T) {
	assert.Equal(t, 9.8, EarthGravity(0))
	assert.InDelta(t, 0.0, EarthGravity(6378e3), 1e-12)
	assert.InDelta(t, 1.9, Gravity(500, 3.8, 1000), 1e-12)
}
