package placement

import (
	"slices"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
)

// Placement is a decoded chromosome: where every operation sits, the footprint
// chosen for each Mix, which operations are rotated, and the scores of the
// layout. A Placement is not modified once scored.
type Placement struct {
	// Locations and Orientations are indexed by operation ID-1.
	Locations    []dmfb.Location
	Orientations []bool
	// MixSizes is keyed by Mix operation ID.
	MixSizes map[int]dmfb.Footprint

	DComm float64
	TMix  float64
	Obj   float64
}

// Location returns the cell assigned to the operation with the given ID.
func (p *Placement) Location(id int) dmfb.Location {
	return p.Locations[id-1]
}

// Rotated reports the orientation flag of the operation with the given ID.
func (p *Placement) Rotated(id int) bool {
	return p.Orientations[id-1]
}

// Footprint returns the cells-area op occupies in this placement, after
// applying the decoded mix size and the orientation flag.
func (p *Placement) Footprint(op *dmfb.Operation) dmfb.Footprint {
	fp := op.Size
	if op.Kind == dmfb.KindMix {
		if size, ok := p.MixSizes[op.ID]; ok {
			fp = size
		}
	}
	return fp.Oriented(p.Rotated(op.ID))
}

// SameLocations compares the per-operation location sequences only.
func (p *Placement) SameLocations(o *Placement) bool {
	return slices.Equal(p.Locations, o.Locations)
}

// Objectives returns (D_comm, -T_mix), both minimised.
func (p *Placement) Objectives() framework.ObjectiveSpacePoint {
	return framework.ObjectiveSpacePoint{p.DComm, -p.TMix}
}
