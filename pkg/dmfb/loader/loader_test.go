package loader

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
)

func testdataFiles(dir string) Files {
	return Files{
		Arch:   filepath.Join("testdata", dir, "arch.in"),
		Ops:    filepath.Join("testdata", dir, "ops.in"),
		Graphs: filepath.Join("testdata", dir, "graphs.in"),
		Alpha:  filepath.Join("testdata", dir, "alpha.in"),
	}
}

func TestLoad(t *testing.T) {
	inst, err := Load(testdataFiles("twomix"))
	require.NoError(t, err)

	arch := inst.Architecture
	assert.Equal(t, 6, arch.Rows())
	assert.Equal(t, 6, arch.Columns())
	assert.Equal(t, []dmfb.Location{{X: 1, Y: 3}}, arch.Locations(dmfb.Inputs))
	assert.Equal(t, []dmfb.Location{{X: 6, Y: 4}}, arch.Locations(dmfb.Outputs))
	assert.Equal(t, []dmfb.Location{{X: 3, Y: 3}}, arch.Locations(dmfb.Sensors))

	require.Equal(t, 4, inst.Operations.Len())
	in, _ := inst.Operations.ByID(1)
	assert.Equal(t, dmfb.KindInput, in.Kind)
	assert.Equal(t, dmfb.Location{X: 1, Y: 3}, in.Location)
	assert.Equal(t, []int{2, 3}, inst.Operations.IDsOf(dmfb.KindMix))
	out, _ := inst.Operations.ByID(4)
	assert.Equal(t, dmfb.KindOutput, out.Kind)

	assert.Equal(t, 1, inst.Interference.Len())
	assert.Equal(t, "(2, 3)", inst.Interference.Edges()[0].String())
	require.Equal(t, 3, inst.Communication.Len())
	assert.Equal(t, 2, inst.Communication.Edges()[1].Weight())
	assert.Equal(t, 0.5, inst.Alpha)
}

func TestLoadMissingFile(t *testing.T) {
	files := testdataFiles("twomix")
	files.Graphs = filepath.Join(t.TempDir(), "graphs.in")
	_, err := Load(files)
	assert.Error(t, err)
}

func TestParseArchitectureErrors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"truncated", "6 6\n1 0\n0 0 0\n", "unexpected EOF"},
		{"bad integer", "6 six\n", `arch.in:1: bad integer "six"`},
		{"too few values", "6 6\n1\n", "arch.in:2: expected 2 values, got 1"},
		{"negative registry", "6 6\n-1 0\n0 0 0\n", "negative registry size"},
		{"small grid", "2 6\n0 0\n0 0 0\n", "at least 3x3"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArchitecture(strings.NewReader(tc.input))
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseOperations(t *testing.T) {
	arch, err := ParseArchitecture(strings.NewReader("8 8\n1 0\n0 1 0\n1 4\n5 5\n"))
	require.NoError(t, err)

	ops, err := ParseOperations(strings.NewReader("3\n1 1\n3 2.5\n8\n"), arch)
	require.NoError(t, err)
	mix, _ := ops.ByID(2)
	assert.Equal(t, 2.5, mix.Importance)
	detect, _ := ops.ByID(3)
	assert.Equal(t, dmfb.KindDetect, detect.Kind)

	tests := []struct {
		name    string
		input   string
		wantErr string
	}{
		{"unknown kind", "1\n12\n", "unknown operation kind"},
		{"missing reservoir", "1\n1\n", "missing reservoir"},
		{"reservoir out of range", "1\n2 1\n", "out of range"},
		{"bad importance", "1\n3 high\n", "bad importance"},
		{"short", "2\n3 1\n", io.ErrUnexpectedEOF.Error()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseOperations(strings.NewReader(tc.input), arch)
			assert.ErrorContains(t, err, tc.wantErr)
		})
	}
}

func TestParseGraphs(t *testing.T) {
	arch, err := ParseArchitecture(strings.NewReader("6 6\n0 0\n0 0 0\n"))
	require.NoError(t, err)
	ops, err := ParseOperations(strings.NewReader("2\n3 1\n3 1\n"), arch)
	require.NoError(t, err)

	ig, cg, err := ParseGraphs(strings.NewReader("2 2 1\n1 2\n1 2\n1 2 4\n"), ops)
	require.NoError(t, err)
	assert.Equal(t, 1, ig.Len(), "repeated edges are dropped")
	assert.Equal(t, 4, cg.Edges()[0].Weight())

	_, _, err = ParseGraphs(strings.NewReader("3 0 0\n"), ops)
	assert.ErrorContains(t, err, "graphs declare 3 operations")
	_, _, err = ParseGraphs(strings.NewReader("2 1 0\n1 5\n"), ops)
	assert.ErrorContains(t, err, "unknown operation 5")
}

func TestParseAlpha(t *testing.T) {
	alpha, err := ParseAlpha(strings.NewReader("\n 0.25 \n"))
	require.NoError(t, err)
	assert.Equal(t, 0.25, alpha)

	_, err = ParseAlpha(strings.NewReader("1.5\n"))
	assert.ErrorContains(t, err, "alpha must be in [0, 1]")
	_, err = ParseAlpha(strings.NewReader("half\n"))
	assert.ErrorContains(t, err, "bad alpha")
	_, err = ParseAlpha(strings.NewReader(""))
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}
