package placement

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/benchmarks"
)

func twoMix(t *testing.T, alpha float64) *dmfb.Instance {
	t.Helper()
	inst, err := benchmarks.NewTwoMix(alpha)
	require.NoError(t, err)
	return inst
}

func pcr(t *testing.T, alpha float64) *dmfb.Instance {
	t.Helper()
	inst, err := benchmarks.NewPCR(alpha)
	require.NoError(t, err)
	return inst
}

// placementAt builds an unscored placement with default footprints.
func placementAt(locs ...dmfb.Location) *Placement {
	return &Placement{
		Locations:    locs,
		Orientations: make([]bool, len(locs)),
		MixSizes:     map[int]dmfb.Footprint{},
	}
}

// pcrGenes is a feasible layout for the PCR benchmark: the mixes at (2,2),
// (6,2) and (2,6), the heater at (4,2) and the detector at (8,3).
var pcrGenes = []Gene{
	4: {RawX: 0, RawY: 0},
	5: {RawX: 4, RawY: 0},
	6: {RawX: 0, RawY: 4},
	7: {RawX: 1},
	8: {RawX: 0},
}
