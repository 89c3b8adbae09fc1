package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/benchmarks"
)

// Options are the command line options of dmfb-eval.
type Options struct {
	ArchFile   string
	OpsFile    string
	GraphsFile string
	AlphaFile  string
	Benchmark  string
	Alpha      float64

	ConfigFile      string
	ChromosomesFile string
	BatchSize       int

	Objective    float64
	objectiveSet bool

	OutFile    string
	ReportFile string
	PlotFile   string
}

func NewOptions() *Options {
	return &Options{
		Alpha:           0.5,
		ChromosomesFile: "-",
		BatchSize:       256,
		OutFile:         "placement.out",
	}
}

func (o *Options) AddFlags(fs *pflag.FlagSet) {
	fs.StringVar(&o.ArchFile, "arch", o.ArchFile, "Architecture description (arch.in).")
	fs.StringVar(&o.OpsFile, "ops", o.OpsFile, "Operation catalog (ops.in).")
	fs.StringVar(&o.GraphsFile, "graphs", o.GraphsFile, "Interference and communication graphs (graphs.in).")
	fs.StringVar(&o.AlphaFile, "alpha-file", o.AlphaFile, "Objective weight (alpha.in).")
	fs.StringVar(&o.Benchmark, "benchmark", o.Benchmark, fmt.Sprintf("Use a built-in instance instead of input files, one of: %s.", strings.Join(benchmarks.Names(), ", ")))
	fs.Float64Var(&o.Alpha, "alpha", o.Alpha, "Objective weight used with --benchmark.")
	fs.StringVar(&o.ConfigFile, "config", o.ConfigFile, "PlacementArgs YAML file.")
	fs.StringVar(&o.ChromosomesFile, "chromosomes", o.ChromosomesFile, "File with one chromosome per line, variables separated by whitespace, bit 0 first. Use - for stdin.")
	fs.IntVar(&o.BatchSize, "batch-size", o.BatchSize, "Number of chromosomes scored per batch.")
	fs.Float64Var(&o.Objective, "objective", o.Objective, "Best objective reported by the search engine, used to select the final placement.")
	fs.StringVar(&o.OutFile, "out", o.OutFile, "Where to write the selected placement. Empty disables.")
	fs.StringVar(&o.ReportFile, "report", o.ReportFile, "Where to write the YAML report. Empty disables.")
	fs.StringVar(&o.PlotFile, "plot", o.PlotFile, "Where to write an HTML plot of the archive. Empty disables.")
}

func (o *Options) Validate() error {
	var errs []error
	files := []string{o.ArchFile, o.OpsFile, o.GraphsFile, o.AlphaFile}
	given := 0
	for _, f := range files {
		if f != "" {
			given++
		}
	}
	switch {
	case o.Benchmark != "" && given > 0:
		errs = append(errs, errors.New("--benchmark cannot be combined with input files"))
	case o.Benchmark == "" && given != len(files):
		errs = append(errs, errors.New("--arch, --ops, --graphs and --alpha-file are all required"))
	}
	if o.Benchmark != "" && (o.Alpha < 0 || o.Alpha > 1) {
		errs = append(errs, fmt.Errorf("--alpha must be in [0, 1], got %v", o.Alpha))
	}
	if o.BatchSize < 1 {
		errs = append(errs, fmt.Errorf("--batch-size must be positive, got %d", o.BatchSize))
	}
	if o.ChromosomesFile == "" {
		errs = append(errs, errors.New("--chromosomes is required"))
	}
	return errors.Join(errs...)
}
