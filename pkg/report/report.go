package report

import (
	"fmt"
	"io"
	"time"

	metav1 "k8s.io/apimachinery/pkg/apis/meta/v1"
	"k8s.io/utils/ptr"
	"sigs.k8s.io/yaml"

	"github.com/dmfb-tools/reconfig-placement/apis/placement/v1alpha1"
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
	"github.com/dmfb-tools/reconfig-placement/pkg/placement"
)

// Build assembles the report of a search run. entries are the archive
// contents in archive order and selected, if not nil, the chosen answer.
func Build(name string, p *placement.Problem, entries []*placement.Placement, selected *placement.Placement, now time.Time) (*v1alpha1.PlacementReport, error) {
	inst := p.Instance()
	evaluations, feasible := p.Stats()

	points := make([]framework.ObjectiveSpacePoint, len(entries))
	for i, e := range entries {
		points[i] = e.Objectives()
	}
	ranks := framework.Ranks(points)

	report := &v1alpha1.PlacementReport{
		TypeMeta: metav1.TypeMeta{
			APIVersion: v1alpha1.GroupVersion,
			Kind:       v1alpha1.Kind,
		},
		ObjectMeta: metav1.ObjectMeta{
			Name: name,
		},
		Spec: v1alpha1.PlacementReportSpec{
			Rows:               inst.Architecture.Rows(),
			Columns:            inst.Architecture.Columns(),
			Alpha:              p.Alpha(),
			Operations:         inst.Operations.Len(),
			InterferenceEdges:  inst.Interference.Len(),
			CommunicationEdges: inst.Communication.Len(),
		},
		Status: v1alpha1.PlacementReportStatus{
			Phase:               v1alpha1.PlacementPhaseNotFound,
			Evaluations:         evaluations,
			FeasibleEvaluations: feasible,
			Solutions:           make([]v1alpha1.PlacementSolution, 0, len(entries)),
			GeneratedAt:         ptr.To(metav1.NewTime(now)),
		},
	}

	for i, e := range entries {
		sol, err := solution(inst.Operations, e, ranks[i])
		if err != nil {
			return nil, fmt.Errorf("archive entry %d: %w", i, err)
		}
		report.Status.Solutions = append(report.Status.Solutions, sol)
		if e == selected {
			report.Status.Selected = ptr.To(i)
		}
	}
	if len(entries) > 0 {
		report.Status.Phase = v1alpha1.PlacementPhaseFound
	}
	return report, nil
}

func solution(ops *dmfb.Catalog, pl *placement.Placement, rank int) (v1alpha1.PlacementSolution, error) {
	placed, err := placement.Materialize(ops, pl)
	if err != nil {
		return v1alpha1.PlacementSolution{}, err
	}
	sol := v1alpha1.PlacementSolution{
		Rank: rank,
		Objectives: v1alpha1.ObjectiveValues{
			Combined: pl.Obj,
			DComm:    pl.DComm,
			TMix:     pl.TMix,
		},
		Operations: make([]v1alpha1.OperationPlacement, 0, placed.Len()),
	}
	for _, op := range placed.Operations() {
		o := v1alpha1.OperationPlacement{
			ID:      op.ID,
			Kind:    op.Kind.String(),
			X:       op.Location.X,
			Y:       op.Location.Y,
			Height:  op.Size.Height,
			Width:   op.Size.Width,
			Rotated: op.Rotated,
		}
		if op.Kind.IsIO() {
			o.Reservoir = ptr.To(op.Reservoir)
		}
		sol.Operations = append(sol.Operations, o)
	}
	return sol, nil
}

// Write serializes the report as YAML.
func Write(w io.Writer, report *v1alpha1.PlacementReport) error {
	data, err := yaml.Marshal(report)
	if err != nil {
		return fmt.Errorf("encoding report: %w", err)
	}
	_, err = w.Write(data)
	return err
}
