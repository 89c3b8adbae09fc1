package benchmarks

import "github.com/dmfb-tools/reconfig-placement/pkg/dmfb"

const (
	TwoMixName = "TwoMix"
)

// NewTwoMix is the smallest interesting instance: a 6x6 chip with two equally
// important Mix operations that must not overlap and communicate with cost 2.
func NewTwoMix(alpha float64) (*dmfb.Instance, error) {
	return blueprint{
		rows:    6,
		columns: 6,
		ops: []opSpec{
			{kind: dmfb.KindMix, payload: 1},
			{kind: dmfb.KindMix, payload: 1},
		},
		interference:  [][2]int{{1, 2}},
		communication: [][3]int{{1, 2, 2}},
	}.build(alpha)
}
