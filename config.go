package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"planet_eos/convection"
	"planet_eos/eos"
)

// GridConfig describes an arange-style sweep [Start, Stop) by Step.
type GridConfig struct {
	Start float64 `yaml:"start"`
	Stop  float64 `yaml:"stop"`
	Step  float64 `yaml:"step"`
}

func (g GridConfig) Grid() (eos.Grid, error) {
	return eos.NewGrid(g.Start, g.Stop, g.Step)
}

type ModelConfig struct {
	V0      float64 `yaml:"v0"`
	K0      float64 `yaml:"k0"`
	K0Prime float64 `yaml:"k0_prime"`
	A       float64 `yaml:"a"`
	B       float64 `yaml:"b"`
}

type DebyeConfig struct {
	A float64 `yaml:"a"`
	B float64 `yaml:"b"`
	C float64 `yaml:"c"`
}

type CalibrationConfig struct {
	ReferenceTemperature float64   `yaml:"reference_temperature"`
	TargetPressure       float64   `yaml:"target_pressure"`
	Temperatures         []float64 `yaml:"temperatures"`
}

type CoreConfig struct {
	Density      float64 `yaml:"density"`
	Alpha        float64 `yaml:"alpha"`
	SpecificHeat float64 `yaml:"specific_heat"`
}

type ConvectionConfig struct {
	Path        string     `yaml:"path"`
	Tag         int        `yaml:"tag"`
	RadiusLimit float64    `yaml:"radius_limit"`
	Samples     int        `yaml:"samples"`
	Gravity     float64    `yaml:"gravity"`
	Length      float64    `yaml:"length"`
	CoreRadius  float64    `yaml:"core_radius"`
	LayerRadius float64    `yaml:"layer_radius"`
	Core        CoreConfig `yaml:"core"`
}

// Config holds every constant a run needs. Fields missing from the YAML file keep their defaults.
type Config struct {
	Model       ModelConfig       `yaml:"model"`
	Debye       DebyeConfig       `yaml:"debye"`
	Volumes     GridConfig        `yaml:"volumes"`
	Alphas      GridConfig        `yaml:"alphas"`
	Calibration CalibrationConfig `yaml:"calibration"`
	Convection  ConvectionConfig  `yaml:"convection"`
}

/*
Settings of the iron thermal-expansion study.

	Notes:
		iron EoS of Anderson et al. (2001), isobar at 160 GPa heated from
		300 K to 7000 K, and a Mars-like core for the convection estimate.
*/
func DefaultConfig() Config {
	m := eos.Anderson2001()
	d := eos.Anderson2001Debye()
	c := convection.DefaultCore()

	return Config{
		Model:   ModelConfig{V0: m.V0, K0: m.K0, K0Prime: m.K0Prime, A: m.A, B: m.B},
		Debye:   DebyeConfig{A: d.A, B: d.B, C: d.C},
		Volumes: GridConfig{Start: 3.9, Stop: 7.0 + 0.1, Step: 0.1},
		Alphas:  GridConfig{Start: 1e-6, Stop: 5e-5, Step: 1e-6},
		Calibration: CalibrationConfig{
			ReferenceTemperature: eos.ReferenceTemperature,
			TargetPressure:       160,
			Temperatures:         []float64{1000, 2000, 3000, 4000, 5000, 6000, 7000},
		},
		Convection: ConvectionConfig{
			Tag:         3,
			RadiusLimit: 3400 * 1000,
			Samples:     100,
			Gravity:     3.8,
			Length:      150 * 1000,
			CoreRadius:  1700 * 1000,
			LayerRadius: 3400 * 1000,
			Core:        CoreConfig{Density: c.Density, Alpha: c.Alpha, SpecificHeat: c.SpecificHeat},
		},
	}
}

// LoadConfig overlays the YAML file at path on DefaultConfig. An empty path gives the defaults.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) EoS() eos.Model {
	return eos.Model{
		V0:      c.Model.V0,
		K0:      c.Model.K0,
		K0Prime: c.Model.K0Prime,
		A:       c.Model.A,
		B:       c.Model.B,
	}
}

func (c Config) DebyeModel() eos.Debye {
	return eos.Debye{A: c.Debye.A, B: c.Debye.B, C: c.Debye.C}
}

func (c Config) Core() convection.Core {
	return convection.Core{
		Density:      c.Convection.Core.Density,
		Alpha:        c.Convection.Core.Alpha,
		SpecificHeat: c.Convection.Core.SpecificHeat,
	}
}

// sweep is the reference temperature followed by the target temperatures above it.
func (c CalibrationConfig) sweep() []float64 {
	temps := make([]float64, 0, len(c.Temperatures)+1)
	if len(c.Temperatures) == 0 || c.Temperatures[0] > c.ReferenceTemperature {
		temps = append(temps, c.ReferenceTemperature)
	}
	return append(temps, c.Temperatures...)
}

// parseFloatList reads "1000, 2000,3000" style flag values.
func parseFloatList(s string) ([]float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}

	parts := strings.Split(s, ",")
	out := make([]float64, 0, len(parts))
	for _, p := range parts {
		v, err := cast.ToFloat64E(strings.TrimSpace(p))
		if err != nil {
			return nil, fmt.Errorf("invalid number %q: %w", p, err)
		}
		out = append(out, v)
	}
	return out, nil
}
