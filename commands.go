package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math"

	"planet_eos/convection"
	"planet_eos/eos"
)

// calibrateAlpha fits thermal expansion along the configured isobar.
func calibrateAlpha(cfg Config, logger *slog.Logger) ([]alphaRow, error) {
	volumes, err := cfg.Volumes.Grid()
	if err != nil {
		return nil, fmt.Errorf("volume grid: %w", err)
	}
	alphas, err := cfg.Alphas.Grid()
	if err != nil {
		return nil, fmt.Errorf("alpha grid: %w", err)
	}

	c := eos.Calibrator{
		Inverter: eos.Inverter{Model: cfg.EoS(), Volumes: volumes},
		Alphas:   alphas,
	}

	cal := cfg.Calibration
	ref, err := c.ReferenceAt(cal.ReferenceTemperature, cal.TargetPressure)
	if err != nil {
		return nil, err
	}
	logger.Info("reference state", "volume", ref.Volume, "temperature", ref.Temperature, "pressure", cal.TargetPressure)

	fits, err := c.Calibrate(ref, cal.TargetPressure, cal.Temperatures)
	if err != nil {
		return nil, err
	}

	rows := make([]alphaRow, len(fits))
	for i, f := range fits {
		logger.Debug("alpha fit", "temperature", f.Temperature, "volume", f.Volume, "alpha", f.Alpha)
		rows[i] = alphaRow{
			Temperature: f.Temperature,
			Alpha:       f.Alpha,
			AlphaE5:     f.Alpha * 1e5,
			Volume:      f.Volume,
			Expanded:    f.Expanded,
			Residual:    f.Residual,
		}
	}
	return rows, nil
}

// isotherms tabulates P(V) on the volume sweep for each temperature.
func isotherms(cfg Config, temperatures []float64) ([]isothermRow, error) {
	volumes, err := cfg.Volumes.Grid()
	if err != nil {
		return nil, fmt.Errorf("volume grid: %w", err)
	}

	m := cfg.EoS()
	rows := make([]isothermRow, 0, len(temperatures)*volumes.Len())
	for _, t := range temperatures {
		iso, err := m.Isotherm(volumes, t)
		if err != nil {
			return nil, err
		}
		for i := 0; i < volumes.Len(); i++ {
			rows = append(rows, isothermRow{
				Temperature: t,
				Volume:      volumes.At(i),
				Pressure:    iso.Pressures.AtVec(i),
			})
		}
	}
	return rows, nil
}

/*
Properties of the reference isotherm along the volume sweep.

	Notes:
		the backward-difference bulk modulus has no value at the first
		volume and is reported as NaN there.
*/
func properties(cfg Config) ([]propertyRow, error) {
	volumes, err := cfg.Volumes.Grid()
	if err != nil {
		return nil, fmt.Errorf("volume grid: %w", err)
	}

	m := cfg.EoS()
	d := cfg.DebyeModel()
	vs := volumes.Values()

	sweep, err := m.BulkModulusProfile(vs)
	if err != nil && !errors.Is(err, eos.ErrEmptyGrid) {
		return nil, err
	}

	rows := make([]propertyRow, len(vs))
	for i, v := range vs {
		p, err := m.Pressure(v, 0)
		if err != nil {
			return nil, err
		}
		k, err := m.BulkModulus(v)
		if err != nil {
			return nil, err
		}

		kb := math.NaN()
		if i > 0 && i-1 < len(sweep) {
			kb = sweep[i-1]
		}

		rows[i] = propertyRow{
			Volume:            v,
			Gruneisen:         d.Gruneisen(v),
			DebyeTemperature:  d.Temperature(v),
			Pressure:          p,
			BulkModulus:       k,
			BulkModulusSweep:  kb,
			LinearBulkModulus: m.LinearBulkModulus(p),
		}
	}
	return rows, nil
}

func thermalPressure(cfg Config, temperatures []float64) ([]thermalRow, error) {
	steps, err := cfg.EoS().ThermalPressureTable(temperatures)
	if err != nil {
		return nil, err
	}

	rows := make([]thermalRow, len(steps))
	for i, s := range steps {
		rows[i] = thermalRow{Low: s.Low, High: s.High, Pressure: s.Pressure, Slope: s.Slope}
	}
	return rows, nil
}

/*
Convective velocity, heat flux and dynamo field from an SPH snapshot.

	Notes:
		the temperature falls outward, so the magnitude of the mean gradient
		is used as beta.
*/
func estimateConvection(cfg Config, logger *slog.Logger) ([]convectionRow, error) {
	cc := cfg.Convection
	if cc.Path == "" {
		return nil, errors.New("no SPH table given (-sph or convection.path)")
	}

	logger.Info("load SPH table", "path", cc.Path, "tag", cc.Tag, "radius_limit", cc.RadiusLimit)
	g, err := convection.LoadGradient(cc.Path, cc.Tag, cc.RadiusLimit)
	if err != nil {
		return nil, err
	}

	grad, err := g.MeanGradient(cc.Samples)
	if err != nil {
		return nil, err
	}
	beta := math.Abs(grad)

	core := cfg.Core()
	v := convection.Velocity(cc.Gravity, core.Alpha, beta, cc.Length)
	flux := convection.HeatFlux(core.Density, core.SpecificHeat, v, beta, cc.Length)
	b := core.MagneticFieldStrength(cc.Gravity, flux, cc.CoreRadius, cc.LayerRadius)
	logger.Info("convection estimate", "mean_dT_dr", grad, "velocity", v, "heat_flux", flux)

	return []convectionRow{{
		Particles:     g.Len(),
		MinRadius:     g.MinRadius(),
		MaxRadius:     g.MaxRadius(),
		MeanGradient:  grad,
		Velocity:      v,
		HeatFlux:      flux,
		MagneticField: b,
	}}, nil
}
