package report

import (
	"fmt"
	"io"

	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/util"
	"github.com/dmfb-tools/reconfig-placement/pkg/placement"
)

// Plot draws the archive entries in the (D_comm, T_mix) plane, separating the
// non-dominated ones from the rest.
func Plot(w io.Writer, name string, entries []*placement.Placement) error {
	points := make([]framework.ObjectiveSpacePoint, len(entries))
	for i, e := range entries {
		points[i] = e.Objectives()
	}

	front := util.Series{Name: "Non-dominated", Symbol: "triangle"}
	rest := util.Series{Name: "Dominated", Symbol: "circle"}
	for i, rank := range framework.Ranks(points) {
		pt := framework.ObjectiveSpacePoint{entries[i].DComm, entries[i].TMix}
		if rank == 0 {
			front.Points = append(front.Points, pt)
		} else {
			rest.Points = append(rest.Points, pt)
		}
	}

	return util.PlotResults(w, fmt.Sprintf("Archived placements for %s", name), "D_comm", "T_mix", front, rest)
}
