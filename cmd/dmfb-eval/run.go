package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"k8s.io/klog/v2"

	"github.com/dmfb-tools/reconfig-placement/apis/config"
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb/loader"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/benchmarks"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
	"github.com/dmfb-tools/reconfig-placement/pkg/placement"
	"github.com/dmfb-tools/reconfig-placement/pkg/report"
)

// Run loads the instance, evaluates every chromosome and writes the outputs.
func Run(ctx context.Context, o *Options) error {
	logger := klog.FromContext(ctx)

	inst, err := loadInstance(o)
	if err != nil {
		return err
	}
	args := &config.PlacementArgs{}
	if o.ConfigFile != "" {
		if args, err = config.LoadPlacementArgs(o.ConfigFile); err != nil {
			return err
		}
	}

	problem, err := placement.New(ctx, inst, args)
	if err != nil {
		return err
	}

	in, closeIn, err := openInput(o.ChromosomesFile)
	if err != nil {
		return err
	}
	defer closeIn()

	start := time.Now()
	if err := evaluateAll(ctx, problem, in, o.BatchSize); err != nil {
		return err
	}
	evaluations, feasible := problem.Stats()
	logger.Info("evaluation finished",
		"evaluations", humanize.Comma(evaluations),
		"feasible", humanize.Comma(feasible),
		"archived", problem.Archive().Len(),
		"elapsed", time.Since(start).Round(time.Millisecond))

	return writeOutputs(o, args, problem)
}

func loadInstance(o *Options) (*dmfb.Instance, error) {
	if o.Benchmark != "" {
		return benchmarks.Get(o.Benchmark, o.Alpha)
	}
	return loader.Load(loader.Files{
		Arch:   o.ArchFile,
		Ops:    o.OpsFile,
		Graphs: o.GraphsFile,
		Alpha:  o.AlphaFile,
	})
}

func openInput(path string) (io.Reader, func(), error) {
	if path == "-" {
		return os.Stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}

// evaluateAll reads chromosomes line by line, skipping blank lines and lines
// starting with '#', and evaluates them in batches.
func evaluateAll(ctx context.Context, problem *placement.Problem, r io.Reader, batchSize int) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)

	batch := make([]framework.Solution, 0, batchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		_, err := problem.EvaluateBatch(ctx, batch)
		batch = batch[:0]
		return err
	}

	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		sol, err := framework.ParseBinarySolution(text)
		if err != nil {
			return fmt.Errorf("chromosome on line %d: %w", line, err)
		}
		batch = append(batch, sol)
		if len(batch) == batchSize {
			if err := flush(); err != nil {
				return err
			}
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading chromosomes: %w", err)
	}
	return flush()
}

func writeOutputs(o *Options, args *config.PlacementArgs, problem *placement.Problem) error {
	archive := problem.Archive()
	selected := archive.Best()
	if o.objectiveSet {
		selected = archive.Select(o.Objective)
	}
	entries := archive.Snapshot()

	if o.OutFile != "" {
		ops := problem.Instance().Operations
		if selected != nil {
			placed, err := placement.Materialize(ops, selected)
			if err != nil {
				return err
			}
			ops = placed
		}
		if err := writeFile(o.OutFile, func(w io.Writer) error {
			return report.WritePlacement(w, selected, ops, problem.Alpha())
		}); err != nil {
			return err
		}
	}

	if o.ReportFile != "" {
		name := args.ReportName
		if name == "" {
			name = config.DefaultReportName
		}
		doc, err := report.Build(name, problem, entries, selected, time.Now())
		if err != nil {
			return err
		}
		if err := writeFile(o.ReportFile, func(w io.Writer) error {
			return report.Write(w, doc)
		}); err != nil {
			return err
		}
	}

	if o.PlotFile != "" && len(entries) > 0 {
		if err := writeFile(o.PlotFile, func(w io.Writer) error {
			return report.Plot(w, problem.Name(), entries)
		}); err != nil {
			return err
		}
	}
	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
