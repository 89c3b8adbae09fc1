package dmfb

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewArchitectureRejectsSmallGrids(t *testing.T) {
	for _, dims := range [][2]int{{2, 6}, {6, 2}, {0, 0}} {
		_, err := NewArchitecture(dims[0], dims[1], Registries{})
		assert.ErrorIs(t, err, ErrInvalidArchitecture, "%dx%d", dims[0], dims[1])
	}
	_, err := NewArchitecture(3, 3, Registries{})
	assert.NoError(t, err)
}

func TestArchitectureBits(t *testing.T) {
	tests := []struct {
		size int
		want int
	}{
		{3, 0},
		{4, 1},
		{5, 2},
		{6, 2},
		{7, 3},
		{10, 3},
		{11, 4},
		{18, 4},
		{19, 5},
	}
	for _, tc := range tests {
		arch, err := NewArchitecture(tc.size, tc.size, Registries{})
		require.NoError(t, err)
		assert.Equal(t, tc.want, arch.XBits(), "columns=%d", tc.size)
		assert.Equal(t, tc.want, arch.YBits(), "rows=%d", tc.size)
	}
}

func TestArchitectureBitsUseTheirOwnDimension(t *testing.T) {
	arch, err := NewArchitecture(6, 12, Registries{})
	require.NoError(t, err)
	assert.Equal(t, 4, arch.XBits())
	assert.Equal(t, 2, arch.YBits())
}

func TestInBoundary(t *testing.T) {
	arch, err := NewArchitecture(6, 6, Registries{})
	require.NoError(t, err)

	for _, loc := range []Location{{2, 2}, {5, 5}, {3, 4}} {
		assert.True(t, arch.InBoundary(loc), "%s", loc)
	}
	for _, loc := range []Location{{1, 3}, {3, 1}, {6, 3}, {3, 6}, {0, 0}, {7, 2}} {
		assert.False(t, arch.InBoundary(loc), "%s", loc)
	}
}

func TestRegistries(t *testing.T) {
	sensors := []Location{{4, 4}, {5, 2}}
	arch, err := NewArchitecture(8, 8, Registries{Sensors: sensors})
	require.NoError(t, err)

	// the architecture keeps its own copy
	sensors[0] = Location{7, 7}
	assert.Equal(t, []Location{{4, 4}, {5, 2}}, arch.Locations(Sensors))
	assert.True(t, arch.Contains(Sensors, Location{4, 4}))
	assert.False(t, arch.Contains(Sensors, Location{7, 7}))
	assert.False(t, arch.Contains(Heaters, Location{4, 4}))

	loc, err := arch.Select(Sensors, 3)
	require.NoError(t, err)
	assert.Equal(t, Location{5, 2}, loc)

	_, err = arch.Select(Heaters, 0)
	assert.ErrorIs(t, err, ErrEmptyRegistry)

	_, err = arch.Cell(Sensors, 2)
	assert.Error(t, err)
}
