package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/kovidgoyal/daltonize"
	"github.com/kovidgoyal/daltonize/correct"
	"github.com/kovidgoyal/daltonize/simulate"
	"github.com/kovidgoyal/daltonize/sweep"
)

var _ = fmt.Print

func main() {
	var err error
	defer func() {
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}()
	if len(os.Args) < 2 || len(os.Args) > 5 {
		fmt.Fprintln(os.Stderr, "usage: daltonize input-file [output-dir [simulation-variant [correction-variant]]]")
		os.Exit(1)
	}
	input_file := os.Args[1]
	output_dir := "."
	if len(os.Args) > 2 {
		output_dir = os.Args[2]
	}
	sim_spec := &daltonize.SimulateSpec{Variant: simulate.Strict}
	if len(os.Args) > 3 {
		if sim_spec, err = daltonize.SimulateSpecFromName(os.Args[3], nil); err != nil {
			return
		}
	}
	corr_spec := &daltonize.CorrectSpec{Variant: correct.V3, Params: correct.DefaultParams()}
	if len(os.Args) > 4 {
		if corr_spec, err = daltonize.CorrectSpecFromName(os.Args[4], nil); err != nil {
			return
		}
	}
	img, err := daltonize.Open(input_file)
	if err != nil {
		return
	}
	if err = os.MkdirAll(output_dir, 0o755); err != nil {
		return
	}
	base := filepath.Join(output_dir, strings_trim_ext(filepath.Base(input_file)))

	simulated, corrected, err := daltonize.Run(img, sim_spec, corr_spec)
	if err != nil {
		return
	}
	if err = daltonize.Save(simulated, base+"-simulated.png"); err != nil {
		return
	}
	if err = daltonize.Save(corrected, base+"-corrected.png"); err != nil {
		return
	}
	grid, err := daltonize.ComparisonGrid(img, simulated, corrected)
	if err != nil {
		return
	}
	if err = daltonize.Save(grid, base+"-grid.png"); err != nil {
		return
	}
	if err = daltonize.SaveFlipbook(base+"-flipbook.apng", time.Second, img, simulated, corrected); err != nil {
		return
	}
	if _, err = sweep.Corrections(sweep.Config{OutputDir: filepath.Join(output_dir, "sweep")}, img); err != nil {
		return
	}
	if _, err = sweep.Simulations(sweep.Config{OutputDir: filepath.Join(output_dir, "sweep")}, img); err != nil {
		return
	}
	fmt.Println("Results saved to:", output_dir)
}

func strings_trim_ext(name string) string {
	ext := filepath.Ext(name)
	return name[:len(name)-len(ext)]
}
