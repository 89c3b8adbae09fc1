package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/placement"
)

// NoSolution is written instead of a placement when nothing feasible was found.
const NoSolution = "No solution found."

// WritePlacement writes the placement.out text format. ops must be the
// catalog materialized from sol; a nil sol writes NoSolution.
//
// The first line is "Obj D_comm f2 alpha", tab separated, where f2 is the
// minimised throughput term -T_mix. It is followed by one
// line per operation: "kind reservoir" for Input and Output, "kind x y" for
// the rest, with "height width" appended for Mix.
func WritePlacement(w io.Writer, sol *placement.Placement, ops *dmfb.Catalog, alpha float64) error {
	bw := bufio.NewWriter(w)
	if sol == nil {
		fmt.Fprintln(bw, NoSolution)
		return bw.Flush()
	}

	f2 := -sol.TMix
	if f2 == 0 {
		// no "-0" for a zero reward
		f2 = 0
	}
	fmt.Fprintf(bw, "%v\t%v\t%v\t%v\n", sol.Obj, sol.DComm, f2, alpha)
	for _, op := range ops.Operations() {
		switch {
		case op.Kind.IsIO():
			fmt.Fprintf(bw, "%d\t%d\n", int(op.Kind), op.Reservoir)
		case op.Kind == dmfb.KindMix:
			fmt.Fprintf(bw, "%d\t%d\t%d\t%d\t%d\n", int(op.Kind), op.Location.X, op.Location.Y, op.Size.Height, op.Size.Width)
		default:
			fmt.Fprintf(bw, "%d\t%d\t%d\n", int(op.Kind), op.Location.X, op.Location.Y)
		}
	}
	return bw.Flush()
}
