package placement

import (
	"fmt"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
)

// Materialize returns a copy of ops with the placement applied: every
// operation gets its location, Mix operations their decoded footprint, and
// rotated Mix, Split and Merge operations a swapped footprint. ops itself is
// left untouched.
func Materialize(ops *dmfb.Catalog, p *Placement) (*dmfb.Catalog, error) {
	if p == nil {
		return nil, fmt.Errorf("no placement to materialize")
	}
	if len(p.Locations) != ops.Len() || len(p.Orientations) != ops.Len() {
		return nil, fmt.Errorf("placement covers %d operations, catalog has %d", len(p.Locations), ops.Len())
	}

	out := ops.Clone()
	for _, op := range out.Operations() {
		op.Location = p.Location(op.ID)
		op.Placed = true
		if op.Kind == dmfb.KindMix {
			if size, ok := p.MixSizes[op.ID]; ok {
				op.Size = size
			}
		}
		if op.Kind.Orientable() && p.Rotated(op.ID) {
			op.Size = op.Size.Rotated()
			op.Rotated = true
		}
	}
	return out, nil
}
