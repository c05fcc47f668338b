package main

import (
	"bytes"
	"encoding/csv"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runTable(t *testing.T, args ...string) [][]string {
	t.Helper()

	var stdout, stderr bytes.Buffer
	require.NoError(t, run(args, &stdout, &stderr), stderr.String())

	records, err := csv.NewReader(&stdout).ReadAll()
	require.NoError(t, err)
	require.NotEmpty(t, records)
	return records
}

func TestRunAlpha(t *testing.T) {
	records := runTable(t, "alpha")
	assert.Equal(t, []string{"temperature", "alpha", "alpha_1e5", "volume", "expanded_volume", "residual"}, records[0])
	require.Len(t, records, 8)
	assert.Equal(t, "1000", records[1][0])
	assert.Equal(t, "7000", records[7][0])

	for _, r := range records[1:] {
		alpha, err := strconv.ParseFloat(r[1], 64)
		require.NoError(t, err)
		assert.Greater(t, alpha, 0.0)
		assert.Less(t, alpha, 5e-5)
	}
}

func TestRunAlphaOverrides(t *testing.T) {
	records := runTable(t, "alpha", "-p", "100", "-temperatures", "2000,4000")
	require.Len(t, records, 3)
	assert.Equal(t, "2000", records[1][0])
	assert.Equal(t, "4000", records[2][0])
}

func TestRunIsotherm(t *testing.T) {
	records := runTable(t, "isotherm", "-temperatures", "1000")
	assert.Equal(t, []string{"temperature", "volume", "pressure"}, records[0])
	// 300 K reference plus 1000 K, 32 volumes each
	require.Len(t, records, 1+2*32)
	assert.Equal(t, "300", records[1][0])
	assert.Equal(t, "1000", records[33][0])
}

func TestRunProperties(t *testing.T) {
	records := runTable(t, "properties")
	require.Len(t, records, 1+32)
	assert.Equal(t, "volume", records[0][0])
	assert.Equal(t, "NaN", records[1][5])
}

func TestRunThermal(t *testing.T) {
	records := runTable(t, "thermal")
	assert.Equal(t, []string{"t_low", "t_high", "p_th", "dp_dt"}, records[0])
	require.Len(t, records, 1+7)
	assert.Equal(t, "300", records[1][0])
	assert.Equal(t, "1000", records[1][1])
}

func TestRunConvection(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "2900.csv")
	require.NoError(t, os.WriteFile(path, []byte(`header one
header two
tag,radius,temperature
3,0,3000
3,1000000,2500
3,2000000,2000
3,3000000,1500
1,1000,100
`), 0o644))

	out := filepath.Join(dir, "convection.csv")
	var stdout, stderr bytes.Buffer
	require.NoError(t, run([]string{"convection", "-sph", path, "-samples", "3", "-o", out, "-log", "INFO"}, &stdout, &stderr))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "convection estimate")

	f, err := os.Open(out)
	require.NoError(t, err)
	defer f.Close()
	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "4", records[1][0])

	grad, err := strconv.ParseFloat(records[1][3], 64)
	require.NoError(t, err)
	assert.InDelta(t, -5e-4, grad, 1e-12)

	v, err := strconv.ParseFloat(records[1][4], 64)
	require.NoError(t, err)
	assert.Greater(t, v, 0.0)
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{"no command", nil},
		{"unknown command", []string{"plot"}},
		{"bad flag", []string{"alpha", "-nope"}},
		{"bad log level", []string{"alpha", "-log", "LOUD"}},
		{"bad temperatures", []string{"alpha", "-temperatures", "1000,x"}},
		{"missing config", []string{"alpha", "-config", "/nonexistent/run.yaml"}},
		{"convection without table", []string{"convection"}},
		{"descending temperatures", []string{"thermal", "-temperatures", "2000,1000"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stdout, stderr bytes.Buffer
			assert.Error(t, run(tt.args, &stdout, &stderr))
		})
	}
}
