package dmfb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for v := 1; v <= 9; v++ {
		k, err := ParseKind(v)
		require.NoError(t, err)
		assert.Equal(t, Kind(v), k)
	}
	for _, v := range []int{0, 10, -1} {
		_, err := ParseKind(v)
		assert.ErrorIs(t, err, ErrUnknownKind)
	}
}

func TestKindClassification(t *testing.T) {
	tests := []struct {
		kind       Kind
		io         bool
		special    bool
		orientable bool
		footprint  Footprint
	}{
		{KindInput, true, false, false, Footprint{1, 1}},
		{KindOutput, true, false, false, Footprint{1, 1}},
		{KindMix, false, false, true, Footprint{2, 2}},
		{KindSplit, false, false, true, Footprint{1, 2}},
		{KindMerge, false, false, true, Footprint{1, 2}},
		{KindStore, false, false, false, Footprint{1, 1}},
		{KindSense, false, true, false, Footprint{1, 1}},
		{KindDetect, false, true, false, Footprint{1, 1}},
		{KindHeat, false, true, false, Footprint{1, 1}},
	}
	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.io, tc.kind.IsIO())
			assert.Equal(t, tc.special, tc.kind.IsSpecial())
			assert.Equal(t, tc.orientable, tc.kind.Orientable())
			assert.Equal(t, tc.footprint, tc.kind.DefaultFootprint())
		})
	}
}

func TestNewReservoirOperation(t *testing.T) {
	arch, err := NewArchitecture(6, 6, Registries{
		Inputs:  []Location{{1, 2}, {1, 4}},
		Outputs: []Location{{6, 3}},
	})
	require.NoError(t, err)

	in, err := NewReservoirOperation(1, KindInput, 2, arch)
	require.NoError(t, err)
	assert.Equal(t, Location{1, 4}, in.Location)
	assert.True(t, in.Placed)
	assert.Equal(t, Footprint{1, 1}, in.Size)

	out, err := NewReservoirOperation(2, KindOutput, 1, arch)
	require.NoError(t, err)
	assert.Equal(t, Location{6, 3}, out.Location)

	_, err = NewReservoirOperation(3, KindOutput, 2, arch)
	assert.Error(t, err)
	_, err = NewReservoirOperation(3, KindInput, 0, arch)
	assert.Error(t, err)
	_, err = NewReservoirOperation(3, KindMix, 1, arch)
	assert.Error(t, err)
}

func TestNewOperation(t *testing.T) {
	op, err := NewOperation(4, KindSplit)
	require.NoError(t, err)
	assert.Equal(t, Footprint{1, 2}, op.Size)
	assert.False(t, op.Placed)

	_, err = NewOperation(1, KindInput)
	assert.Error(t, err)
	_, err = NewOperation(1, Kind(42))
	assert.ErrorIs(t, err, ErrUnknownKind)

	mix := NewMix(2, 1.5)
	assert.Equal(t, KindMix, mix.Kind)
	assert.Equal(t, 1.5, mix.Importance)
	assert.Equal(t, Footprint{2, 2}, mix.Size)
}
