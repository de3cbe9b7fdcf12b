// Package sweep renders a protanopia correction parameter sweep to disk so
// the results can be compared visually, for example on an Ishihara test
// plate. Each output is a 2x2 comparison grid; the interesting panel is the
// bottom-right one, which shows what a protanope would see after the
// correction is applied.
package sweep

import (
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/kovidgoyal/daltonize"
	"github.com/kovidgoyal/daltonize/correct"
	"github.com/kovidgoyal/daltonize/simulate"
)

var _ = fmt.Print

// Config carries the sweep's output settings. There is deliberately no
// package-level default directory: callers own the filesystem layout.
type Config struct {
	OutputDir   string
	JPEGQuality int // 0 means the Save default of 95
}

func (c Config) save(img image.Image, name string) (string, error) {
	path := filepath.Join(c.OutputDir, name)
	opts := []daltonize.EncodeOption{}
	if c.JPEGQuality > 0 {
		opts = append(opts, daltonize.JPEGQuality(c.JPEGQuality))
	}
	if err := daltonize.Save(img, path, opts...); err != nil {
		return "", err
	}
	return path, nil
}

// CorrectionCase is one point in the V3 correction parameter space.
type CorrectionCase struct {
	Name        string
	RedToBlue   float64
	RedToGreen  float64
	GreenToBlue float64
}

func (c CorrectionCase) params() correct.Params {
	p := correct.DefaultParams()
	p.RedToBlue = c.RedToBlue
	p.RedToGreen = c.RedToGreen
	p.GreenToBlue = c.GreenToBlue
	return p
}

// CorrectionCases covers the V3 parameter space from a pure red shift to the
// strongest combined correction.
var CorrectionCases = []CorrectionCase{
	{"weak_red_shift", 0.5, 0.0, 0.0},
	{"medium_red_shift", 0.8, 0.0, 0.0},
	{"strong_red_shift", 1.0, 0.0, 0.0},
	{"very_strong_red_shift", 1.2, 0.0, 0.0},
	{"extreme_red_shift", 1.5, 0.0, 0.0},

	{"red_shift_with_green_cyan", 0.8, 0.0, 0.3},
	{"strong_red_green_cyan", 1.0, 0.0, 0.5},
	{"very_strong_both", 1.2, 0.0, 0.5},

	{"red_to_magenta", 0.8, 0.2, 0.0},
	{"strong_red_to_magenta", 1.0, 0.3, 0.0},

	{"balanced_correction", 1.0, 0.2, 0.3},
	{"strong_balanced", 1.2, 0.2, 0.4},
	{"maximum_correction", 1.5, 0.3, 0.5},
}

// Corrections writes one comparison grid per entry in CorrectionCases, plus
// the bare strict simulation of img, into cfg.OutputDir. It returns the
// paths of the files written.
func Corrections(cfg Config, img image.Image) (written []string, err error) {
	if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}
	simulated, err := daltonize.Simulated(img, daltonize.SimulateSpec{Variant: simulate.Strict})
	if err != nil {
		return nil, err
	}
	path, err := cfg.save(simulated, "00_simulation_protanopia.jpg")
	if err != nil {
		return nil, err
	}
	written = append(written, path)

	for i, tc := range CorrectionCases {
		corrected, err := daltonize.Corrected(img, daltonize.CorrectSpec{Variant: correct.V3, Params: tc.params()})
		if err != nil {
			return nil, err
		}
		grid, err := daltonize.ComparisonGrid(img, simulated, corrected)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%02d_protanopia_%s_r2b%g_r2g%g_g2b%g.jpg",
			i+1, tc.Name, tc.RedToBlue, tc.RedToGreen, tc.GreenToBlue)
		if path, err = cfg.save(grid, name); err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}

// SimulationCase is one simulation model/parameter combination.
type SimulationCase struct {
	Name    string
	Variant simulate.Variant
	Params  simulate.Params
}

// SimulationCases compares the strict and Machado models with the blend
// model at increasing strengths.
var SimulationCases = []SimulationCase{
	{"min_L_M", simulate.Strict, simulate.Params{}},
	{"machado", simulate.Machado, simulate.Params{}},
	{"blend_50", simulate.Blend, simulate.Params{Strength: 0.5}},
	{"blend_70", simulate.Blend, simulate.Params{Strength: 0.7}},
	{"blend_100", simulate.Blend, simulate.Params{Strength: 1.0}},
}

// Simulations writes one simulated rendering of img per entry in
// SimulationCases into cfg.OutputDir and returns the paths written.
func Simulations(cfg Config, img image.Image) (written []string, err error) {
	if err = os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, err
	}
	for _, tc := range SimulationCases {
		simulated, err := daltonize.Simulated(img, daltonize.SimulateSpec{Variant: tc.Variant, Params: tc.Params})
		if err != nil {
			return nil, err
		}
		path, err := cfg.save(simulated, fmt.Sprintf("sim_protanopia_%s.jpg", tc.Name))
		if err != nil {
			return nil, err
		}
		written = append(written, path)
	}
	return written, nil
}
