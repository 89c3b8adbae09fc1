package placement

import (
	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"gonum.org/v1/gonum/floats"
)

// maxLatency is both the latency of the default 2x2 mix and the reference
// the throughput reward is measured against.
const maxLatency = 10

// Latency of a mix operation for its footprint. The checks are ordered: 2x2
// first, then any side of 3, then any side of 1, and the remaining 2x4/4x2.
func Latency(fp dmfb.Footprint) int {
	switch {
	case fp.Height == 2 && fp.Width == 2:
		return 10
	case fp.Height == 3 || fp.Width == 3:
		return 6
	case fp.Height == 1 || fp.Width == 1:
		return 5
	default:
		return 3
	}
}

// CommunicationCost is the sum over communication edges (u, v, cost) of
// cost * MD(u, v).
func CommunicationCost(comm *dmfb.Graph, p *Placement) float64 {
	sum := 0.0
	for _, e := range comm.Edges() {
		d := dmfb.ManhattanDistance(p.Location(e.U.ID), p.Location(e.V.ID))
		sum += float64(e.Weight() * d)
	}
	return sum
}

// MixingThroughput is the sum over Mix operations of
// importance * (10 - latency(size)).
func MixingThroughput(ops *dmfb.Catalog, p *Placement) float64 {
	sum := 0.0
	for _, op := range ops.Operations() {
		if op.Kind != dmfb.KindMix {
			continue
		}
		size, ok := p.MixSizes[op.ID]
		if !ok {
			size = op.Size
		}
		sum += op.Importance * float64(maxLatency-Latency(size))
	}
	return sum
}

// Scalarize combines the objectives as alpha*D_comm + (1-alpha)*(-T_mix).
func Scalarize(alpha, dComm, tMix float64) float64 {
	return floats.Dot([]float64{alpha, 1 - alpha}, []float64{dComm, -tMix})
}

// Scorer computes the objectives of decoded placements.
type Scorer struct {
	ops   *dmfb.Catalog
	comm  *dmfb.Graph
	alpha float64
}

func NewScorer(ops *dmfb.Catalog, comm *dmfb.Graph, alpha float64) *Scorer {
	return &Scorer{
		ops:   ops,
		comm:  comm,
		alpha: alpha,
	}
}

func (s *Scorer) Alpha() float64 {
	return s.alpha
}

// Score fills in DComm, TMix and Obj.
func (s *Scorer) Score(p *Placement) {
	p.DComm = CommunicationCost(s.comm, p)
	p.TMix = MixingThroughput(s.ops, p)
	p.Obj = Scalarize(s.alpha, p.DComm, p.TMix)
}
