package benchmarks

import "github.com/dmfb-tools/reconfig-placement/pkg/dmfb"

const (
	PCRName = "PCR"
)

// NewPCR is the mixing stage of a polymerase chain reaction assay on a 10x10
// chip: four reagents are mixed pairwise, the two products mixed again, then
// the result is heated, detected and sent to the waste reservoir.
func NewPCR(alpha float64) (*dmfb.Instance, error) {
	return blueprint{
		rows:    10,
		columns: 10,
		registries: dmfb.Registries{
			Inputs:    []dmfb.Location{{X: 1, Y: 2}, {X: 1, Y: 5}, {X: 1, Y: 8}, {X: 10, Y: 2}},
			Outputs:   []dmfb.Location{{X: 10, Y: 8}},
			Sensors:   []dmfb.Location{{X: 5, Y: 5}},
			Detectors: []dmfb.Location{{X: 8, Y: 3}, {X: 8, Y: 7}},
			Heaters:   []dmfb.Location{{X: 3, Y: 8}, {X: 4, Y: 2}},
		},
		ops: []opSpec{
			{kind: dmfb.KindInput, payload: 1},  // 1
			{kind: dmfb.KindInput, payload: 2},  // 2
			{kind: dmfb.KindInput, payload: 3},  // 3
			{kind: dmfb.KindInput, payload: 4},  // 4
			{kind: dmfb.KindMix, payload: 1},    // 5
			{kind: dmfb.KindMix, payload: 1},    // 6
			{kind: dmfb.KindMix, payload: 2},    // 7
			{kind: dmfb.KindHeat},               // 8
			{kind: dmfb.KindDetect},             // 9
			{kind: dmfb.KindOutput, payload: 1}, // 10
		},
		interference: [][2]int{
			{5, 6}, {5, 7}, {6, 7}, {7, 8}, {8, 9},
		},
		communication: [][3]int{
			{1, 5, 1}, {2, 5, 1}, {3, 6, 1}, {4, 6, 1},
			{5, 7, 2}, {6, 7, 2}, {7, 8, 3}, {8, 9, 2}, {9, 10, 1},
		},
	}.build(alpha)
}
