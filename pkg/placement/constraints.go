package placement

import (
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"k8s.io/apimachinery/pkg/util/sets"
)

const (
	Satisfied = 0.0
	Violated  = -1.0
)

// ConstraintEvaluator builds the constraint vector of a placement:
//
//   - one overlap entry per interference edge, in graph order;
//   - then, per non-IO operation in catalog order, a boundary entry,
//     immediately followed by a capability entry for Sense, Detect and Heat.
type ConstraintEvaluator struct {
	arch         *dmfb.Architecture
	ops          *dmfb.Catalog
	interference *dmfb.Graph
	size         int
}

func NewConstraintEvaluator(arch *dmfb.Architecture, ops *dmfb.Catalog, interference *dmfb.Graph) *ConstraintEvaluator {
	return &ConstraintEvaluator{
		arch:         arch,
		ops:          ops,
		interference: interference,
		size:         interference.Len() + (ops.Len() - ops.CountIO()) + ops.CountSpecial(),
	}
}

// Len is the length of every vector returned by Evaluate.
func (c *ConstraintEvaluator) Len() int {
	return c.size
}

func (c *ConstraintEvaluator) Evaluate(p *Placement) []float64 {
	constraints := make([]float64, 0, c.size)

	for _, e := range c.interference.Edges() {
		constraints = append(constraints, check(!Overlaps(p, e.U, e.V)))
	}

	for _, op := range c.ops.Operations() {
		if op.Kind.IsIO() {
			continue
		}
		loc := p.Location(op.ID)
		constraints = append(constraints, check(c.arch.InBoundary(loc)))
		if op.Kind.IsSpecial() {
			reg, _ := op.Kind.Registry()
			constraints = append(constraints, check(c.arch.Contains(reg, loc)))
		}
	}
	return constraints
}

// Overlaps reports whether u and v share at least one cell in p.
func Overlaps(p *Placement, u, v *dmfb.Operation) bool {
	areaU := Occupied(p, u)
	for _, cell := range p.Footprint(v).Cells(p.Location(v.ID)) {
		if areaU.Has(cell) {
			return true
		}
	}
	return false
}

// Occupied returns the set of cells op covers in p.
func Occupied(p *Placement, op *dmfb.Operation) sets.Set[dmfb.Location] {
	return sets.New(p.Footprint(op).Cells(p.Location(op.ID))...)
}

func check(ok bool) float64 {
	if ok {
		return Satisfied
	}
	return Violated
}
