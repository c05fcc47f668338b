package main

import (
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

const usage = `usage: planet_eos <command> [flags]

commands:
  alpha        fit thermal expansion coefficients along an isobar
  isotherm     tabulate P(V) isotherms
  properties   Grüneisen parameter, Debye temperature and bulk modulus on the volume sweep
  thermal      thermal pressure over consecutive temperature intervals
  convection   convective velocity, heat flux and field strength from an SPH table
`

/*
Runs one command.

	Args:
		args: command line without the program name
		stdout: destination of the result table when -o is not given
		stderr: destination of log messages

	Returns:
		error of the command
*/
func run(args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return fmt.Errorf("no command\n%s", usage)
	}
	cmd := args[0]

	fs := flag.NewFlagSet(cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)

	var configPath string
	fs.StringVar(&configPath, "config", "", "YAML file with model constants, grids and run settings")

	var outPath string
	fs.StringVar(&outPath, "o", "-", "output CSV file (- for stdout)")

	var logLevel string
	fs.StringVar(&logLevel, "log", "ERROR", "log level (DEBUG, INFO, WARN, ERROR)")

	var pressure float64
	fs.Float64Var(&pressure, "p", 0, "target pressure, GPa (alpha; overrides config)")

	var temps string
	fs.StringVar(&temps, "temperatures", "", "comma separated temperatures, K (overrides config)")

	var sphPath string
	fs.StringVar(&sphPath, "sph", "", "SPH output table (convection)")

	var tag int
	fs.IntVar(&tag, "tag", -1, "SPH material tag (convection; overrides config)")

	var samples int
	fs.IntVar(&samples, "samples", 0, "number of radial bins (convection; overrides config)")

	if err := fs.Parse(args[1:]); err != nil {
		return err
	}

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		return fmt.Errorf("-log: %w", err)
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	cfg, err := LoadConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	explicit := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	if explicit["p"] {
		cfg.Calibration.TargetPressure = pressure
	}
	temperatures, err := parseFloatList(temps)
	if err != nil {
		return fmt.Errorf("-temperatures: %w", err)
	}
	if temperatures != nil {
		cfg.Calibration.Temperatures = temperatures
	}
	if sphPath != "" {
		cfg.Convection.Path = sphPath
	}
	if explicit["tag"] {
		cfg.Convection.Tag = tag
	}
	if explicit["samples"] {
		cfg.Convection.Samples = samples
	}

	start := time.Now()
	logger.Info("start", "command", cmd, "config", configPath)

	var rows interface{}
	switch cmd {
	case "alpha":
		r, err := calibrateAlpha(cfg, logger)
		if err != nil {
			return err
		}
		rows = &r
	case "isotherm":
		r, err := isotherms(cfg, cfg.Calibration.sweep())
		if err != nil {
			return err
		}
		rows = &r
	case "properties":
		r, err := properties(cfg)
		if err != nil {
			return err
		}
		rows = &r
	case "thermal":
		r, err := thermalPressure(cfg, cfg.Calibration.sweep())
		if err != nil {
			return err
		}
		rows = &r
	case "convection":
		r, err := estimateConvection(cfg, logger)
		if err != nil {
			return err
		}
		rows = &r
	default:
		return fmt.Errorf("unknown command %q\n%s", cmd, usage)
	}

	if err := writeTable(outPath, stdout, rows); err != nil {
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	logger.Info("done", "command", cmd, "elapsed", time.Since(start))
	return nil
}

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
