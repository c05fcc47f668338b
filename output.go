package main

import (
	"io"
	"os"

	"github.com/gocarina/gocsv"
)

type alphaRow struct {
	Temperature float64 `csv:"temperature"`
	Alpha       float64 `csv:"alpha"`
	AlphaE5     float64 `csv:"alpha_1e5"`
	Volume      float64 `csv:"volume"`
	Expanded    float64 `csv:"expanded_volume"`
	Residual    float64 `csv:"residual"`
}

type isothermRow struct {
	Temperature float64 `csv:"temperature"`
	Volume      float64 `csv:"volume"`
	Pressure    float64 `csv:"pressure"`
}

type propertyRow struct {
	Volume            float64 `csv:"volume"`
	Gruneisen         float64 `csv:"gruneisen"`
	DebyeTemperature  float64 `csv:"debye_temperature"`
	Pressure          float64 `csv:"pressure"`
	BulkModulus       float64 `csv:"bulk_modulus"`
	BulkModulusSweep  float64 `csv:"bulk_modulus_backward"`
	LinearBulkModulus float64 `csv:"bulk_modulus_linear"`
}

type thermalRow struct {
	Low      float64 `csv:"t_low"`
	High     float64 `csv:"t_high"`
	Pressure float64 `csv:"p_th"`
	Slope    float64 `csv:"dp_dt"`
}

type convectionRow struct {
	Particles     int     `csv:"particles"`
	MinRadius     float64 `csv:"min_radius"`
	MaxRadius     float64 `csv:"max_radius"`
	MeanGradient  float64 `csv:"mean_dt_dr"`
	Velocity      float64 `csv:"velocity"`
	HeatFlux      float64 `csv:"heat_flux"`
	MagneticField float64 `csv:"magnetic_field"`
}

/*
Writes rows as a CSV table.

	Args:
		path: output file; "" or "-" writes to stdout
		stdout: writer used for stdout
		rows: pointer to a slice of row structs
*/
func writeTable(path string, stdout io.Writer, rows interface{}) error {
	if path == "" || path == "-" {
		return gocsv.Marshal(rows, stdout)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := gocsv.MarshalFile(rows, f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
