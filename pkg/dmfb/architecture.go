package dmfb

import (
	"errors"
	"fmt"
	"math/bits"
	"slices"

	"k8s.io/apimachinery/pkg/util/sets"
)

var (
	ErrInvalidArchitecture = errors.New("invalid architecture")
	ErrEmptyRegistry       = errors.New("empty registry")
)

// Registry names one of the special-purpose cell lists of an Architecture.
type Registry int

const (
	Inputs Registry = iota
	Outputs
	Sensors
	Detectors
	Heaters

	numRegistries
)

func (r Registry) String() string {
	switch r {
	case Inputs:
		return "inputs"
	case Outputs:
		return "outputs"
	case Sensors:
		return "sensors"
	case Detectors:
		return "detectors"
	case Heaters:
		return "heaters"
	}
	return fmt.Sprintf("Registry(%d)", int(r))
}

// Registries groups the location lists used to build an Architecture.
type Registries struct {
	Inputs    []Location
	Outputs   []Location
	Sensors   []Location
	Detectors []Location
	Heaters   []Location
}

// Architecture is the static description of a biochip: its dimensions and the
// cells able to perform special operations. Registry order is significant,
// cells are selected by index.
type Architecture struct {
	rows    int
	columns int

	cells   [numRegistries][]Location
	members [numRegistries]sets.Set[Location]
}

// NewArchitecture validates the dimensions and copies the registries.
func NewArchitecture(rows, columns int, r Registries) (*Architecture, error) {
	if rows < 3 || columns < 3 {
		return nil, fmt.Errorf("%w: grid must be at least 3x3, got %dx%d", ErrInvalidArchitecture, rows, columns)
	}

	a := &Architecture{
		rows:    rows,
		columns: columns,
	}
	for reg, locs := range [numRegistries][]Location{r.Inputs, r.Outputs, r.Sensors, r.Detectors, r.Heaters} {
		a.cells[reg] = slices.Clone(locs)
		a.members[reg] = sets.New(locs...)
	}
	return a, nil
}

func (a *Architecture) Rows() int {
	return a.rows
}

func (a *Architecture) Columns() int {
	return a.columns
}

// Len is the number of cells in the registry.
func (a *Architecture) Len(r Registry) int {
	return len(a.cells[r])
}

// Cell returns the i-th (0-based) cell of the registry.
func (a *Architecture) Cell(r Registry, i int) (Location, error) {
	if i < 0 || i >= len(a.cells[r]) {
		return Location{}, fmt.Errorf("%s index %d out of range [0, %d)", r, i, len(a.cells[r]))
	}
	return a.cells[r][i], nil
}

// Select picks a cell by reducing raw modulo the registry size.
func (a *Architecture) Select(r Registry, raw uint64) (Location, error) {
	n := len(a.cells[r])
	if n == 0 {
		return Location{}, fmt.Errorf("%w: no %s on the architecture", ErrEmptyRegistry, r)
	}
	return a.cells[r][raw%uint64(n)], nil
}

// Contains reports whether loc is one of the registry's cells.
func (a *Architecture) Contains(r Registry, loc Location) bool {
	return a.members[r].Has(loc)
}

// Locations returns a copy of the registry.
func (a *Architecture) Locations(r Registry) []Location {
	return slices.Clone(a.cells[r])
}

// XBits is the number of chromosome bits encoding a column, ceil(log2(columns-2)).
func (a *Architecture) XBits() int {
	return ceilLog2(a.columns - 2)
}

// YBits is the number of chromosome bits encoding a row, ceil(log2(rows-2)).
func (a *Architecture) YBits() int {
	return ceilLog2(a.rows - 2)
}

// InBoundary reports whether loc lies strictly inside the outer ring of cells.
func (a *Architecture) InBoundary(loc Location) bool {
	return loc.X > 1 && loc.X < a.columns && loc.Y > 1 && loc.Y < a.rows
}

func (a *Architecture) String() string {
	return fmt.Sprintf("%dx%d (inputs=%d outputs=%d sensors=%d detectors=%d heaters=%d)",
		a.rows, a.columns,
		a.Len(Inputs), a.Len(Outputs), a.Len(Sensors), a.Len(Detectors), a.Len(Heaters))
}

func ceilLog2(n int) int {
	if n <= 1 {
		return 0
	}
	return bits.Len(uint(n - 1))
}
