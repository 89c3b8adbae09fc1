package report

import (
	"bytes"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"k8s.io/klog/v2/ktesting"
	"k8s.io/utils/ptr"

	"github.com/dmfb-tools/reconfig-placement/apis/placement/v1alpha1"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/benchmarks"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
	"github.com/dmfb-tools/reconfig-placement/pkg/placement"
)

func evaluatedTwoMix(t *testing.T, chromosomes ...string) *placement.Problem {
	t.Helper()
	_, ctx := ktesting.NewTestContext(t)
	inst, err := benchmarks.NewTwoMix(0.5)
	require.NoError(t, err)
	p, err := placement.New(ctx, inst, nil)
	require.NoError(t, err)
	for _, c := range chromosomes {
		sol, err := framework.ParseBinarySolution(c)
		require.NoError(t, err)
		p.Evaluate(sol)
	}
	return p
}

func TestWritePlacement(t *testing.T) {
	p := evaluatedTwoMix(t, "1010000 1011000")
	best := p.Archive().Best()
	require.NotNil(t, best)
	ops, err := placement.Materialize(p.Instance().Operations, best)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePlacement(&buf, best, ops, p.Alpha()))
	want := "2\t4\t0\t0.5\n" +
		"3\t3\t3\t2\t2\n" +
		"3\t3\t5\t2\t2\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestWritePlacementNegatesThroughput(t *testing.T) {
	// Mix 1 at (3,3) as 2x4, Mix 2 at (3,5) as 1x4
	p := evaluatedTwoMix(t, "1010011 1011001")
	best := p.Archive().Best()
	require.NotNil(t, best)
	require.Equal(t, 12.0, best.TMix)
	ops, err := placement.Materialize(p.Instance().Operations, best)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, WritePlacement(&buf, best, ops, p.Alpha()))
	want := "-4\t4\t-12\t0.5\n" +
		"3\t3\t3\t2\t4\n" +
		"3\t3\t5\t1\t4\n"
	if diff := cmp.Diff(want, buf.String()); diff != "" {
		t.Errorf("unexpected output (-want +got):\n%s", diff)
	}
}

func TestWritePlacementWithoutSolution(t *testing.T) {
	p := evaluatedTwoMix(t)
	var buf bytes.Buffer
	require.NoError(t, WritePlacement(&buf, nil, p.Instance().Operations, p.Alpha()))
	assert.Equal(t, NoSolution+"\n", buf.String())
}

func TestBuild(t *testing.T) {
	// a feasible placement, then an overlapping one
	p := evaluatedTwoMix(t, "1010000 1011000", "1010000 1010000")
	entries := p.Archive().Snapshot()
	now := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

	r, err := Build("twomix", p, entries, p.Archive().Select(2), now)
	require.NoError(t, err)

	assert.Equal(t, v1alpha1.Kind, r.Kind)
	assert.Equal(t, "twomix", r.Name)
	assert.Equal(t, v1alpha1.PlacementReportSpec{
		Rows:               6,
		Columns:            6,
		Alpha:              0.5,
		Operations:         2,
		InterferenceEdges:  1,
		CommunicationEdges: 1,
	}, r.Spec)
	assert.Equal(t, v1alpha1.PlacementPhaseFound, r.Status.Phase)
	assert.EqualValues(t, 2, r.Status.Evaluations)
	assert.EqualValues(t, 1, r.Status.FeasibleEvaluations)
	assert.Equal(t, ptr.To(0), r.Status.Selected)

	want := []v1alpha1.PlacementSolution{{
		Rank:       0,
		Objectives: v1alpha1.ObjectiveValues{Combined: 2, DComm: 4, TMix: 0},
		Operations: []v1alpha1.OperationPlacement{
			{ID: 1, Kind: "Mix", X: 3, Y: 3, Height: 2, Width: 2},
			{ID: 2, Kind: "Mix", X: 3, Y: 5, Height: 2, Width: 2},
		},
	}}
	if diff := cmp.Diff(want, r.Status.Solutions); diff != "" {
		t.Errorf("unexpected solutions (-want +got):\n%s", diff)
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, r))
	assert.Contains(t, buf.String(), "kind: PlacementReport")
	assert.Contains(t, buf.String(), "apiVersion: "+v1alpha1.GroupVersion)
	assert.Contains(t, buf.String(), "phase: "+string(v1alpha1.PlacementPhaseFound))
}

func TestBuildEmptyArchive(t *testing.T) {
	p := evaluatedTwoMix(t, "1010000 1010000")
	r, err := Build("twomix", p, nil, nil, time.Now())
	require.NoError(t, err)
	assert.Equal(t, v1alpha1.PlacementPhaseNotFound, r.Status.Phase)
	assert.Nil(t, r.Status.Selected)
	assert.Empty(t, r.Status.Solutions)
}

func TestPlot(t *testing.T) {
	p := evaluatedTwoMix(t, "1010000 1011000", "0000011 1100000")

	var buf bytes.Buffer
	require.NoError(t, Plot(&buf, "twomix", p.Archive().Snapshot()))
	assert.Contains(t, buf.String(), "Archived placements for twomix")

	assert.Error(t, Plot(&bytes.Buffer{}, "twomix", nil))
}
