package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2/ktesting"
)

const twoMixChromosomes = `# overlapping mixes
1010000 1010000

# mixes at (3,3) and (3,5)
1010000 1011000
`

func TestRunTwoMix(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	dir := t.TempDir()
	chromosomes := filepath.Join(dir, "chromosomes.txt")
	require.NoError(t, os.WriteFile(chromosomes, []byte(twoMixChromosomes), 0o644))

	o := NewOptions()
	o.Benchmark = "TwoMix"
	o.ChromosomesFile = chromosomes
	o.BatchSize = 1
	o.OutFile = filepath.Join(dir, "placement.out")
	o.ReportFile = filepath.Join(dir, "report.yaml")
	o.PlotFile = filepath.Join(dir, "plot.html")
	require.NoError(t, o.Validate())
	require.NoError(t, Run(ctx, o))

	out, err := os.ReadFile(o.OutFile)
	require.NoError(t, err)
	assert.Equal(t, "2\t4\t0\t0.5\n3\t3\t3\t2\t2\n3\t3\t5\t2\t2\n", string(out))

	rep, err := os.ReadFile(o.ReportFile)
	require.NoError(t, err)
	assert.Contains(t, string(rep), "name: dmfb-placement")
	assert.Contains(t, string(rep), "evaluations: 2")
	assert.Contains(t, string(rep), "feasibleEvaluations: 1")

	_, err = os.Stat(o.PlotFile)
	assert.NoError(t, err)
}

func TestRunWithoutFeasiblePlacement(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	dir := t.TempDir()
	chromosomes := filepath.Join(dir, "chromosomes.txt")
	require.NoError(t, os.WriteFile(chromosomes, []byte("1010000 1010000\n"), 0o644))
	config := filepath.Join(dir, "args.yaml")
	require.NoError(t, os.WriteFile(config, []byte("parallelism: 2\nreportName: nothing\n"), 0o644))

	o := NewOptions()
	o.Benchmark = "TwoMix"
	o.ConfigFile = config
	o.ChromosomesFile = chromosomes
	o.OutFile = filepath.Join(dir, "placement.out")
	o.ReportFile = filepath.Join(dir, "report.yaml")
	o.PlotFile = filepath.Join(dir, "plot.html")
	require.NoError(t, Run(ctx, o))

	out, err := os.ReadFile(o.OutFile)
	require.NoError(t, err)
	assert.Equal(t, "No solution found.\n", string(out))

	rep, err := os.ReadFile(o.ReportFile)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(rep), "phase: NotFound"))

	_, err = os.Stat(o.PlotFile)
	assert.True(t, os.IsNotExist(err), "nothing to plot")
}

func TestRunRejectsMalformedChromosome(t *testing.T) {
	_, ctx := ktesting.NewTestContext(t)
	dir := t.TempDir()
	chromosomes := filepath.Join(dir, "chromosomes.txt")
	require.NoError(t, os.WriteFile(chromosomes, []byte("1010000 10120000\n"), 0o644))

	o := NewOptions()
	o.Benchmark = "TwoMix"
	o.ChromosomesFile = chromosomes
	o.OutFile = ""
	assert.ErrorContains(t, Run(ctx, o), "line 1")
}
