package dmfb

import (
	"errors"
	"fmt"
)

var (
	ErrUnknownKind      = errors.New("unknown operation kind")
	ErrInvalidCatalog   = errors.New("invalid operation catalog")
	errNoArchitecture   = errors.New("architecture is required to resolve a reservoir")
	errInvalidOperation = errors.New("invalid operation")
)

// Kind identifies the fluidic operation performed. The numeric values are the
// ones used by the input file format.
type Kind int

const (
	KindInput Kind = iota + 1
	KindOutput
	KindMix
	KindSplit
	KindMerge
	KindStore
	KindSense
	KindDetect
	KindHeat
)

var kindNames = map[Kind]string{
	KindInput:  "Input",
	KindOutput: "Output",
	KindMix:    "Mix",
	KindSplit:  "Split",
	KindMerge:  "Merge",
	KindStore:  "Store",
	KindSense:  "Sense",
	KindDetect: "Detect",
	KindHeat:   "Heat",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind validates a numeric kind read from input.
func ParseKind(v int) (Kind, error) {
	k := Kind(v)
	if _, ok := kindNames[k]; !ok {
		return 0, fmt.Errorf("%w: %d", ErrUnknownKind, v)
	}
	return k, nil
}

// IsIO is true for reservoir-bound operations, whose placement is fixed.
func (k Kind) IsIO() bool {
	return k == KindInput || k == KindOutput
}

// IsSpecial is true for operations that must sit on a capable cell.
func (k Kind) IsSpecial() bool {
	return k == KindSense || k == KindDetect || k == KindHeat
}

// Orientable is true when the chromosome's orientation bit is honoured.
func (k Kind) Orientable() bool {
	return k == KindMix || k == KindSplit || k == KindMerge
}

// Registry maps IO and special kinds to the architecture registry they use.
func (k Kind) Registry() (Registry, bool) {
	switch k {
	case KindInput:
		return Inputs, true
	case KindOutput:
		return Outputs, true
	case KindSense:
		return Sensors, true
	case KindDetect:
		return Detectors, true
	case KindHeat:
		return Heaters, true
	}
	return 0, false
}

// DefaultFootprint is the nominal footprint of a freshly declared operation.
func (k Kind) DefaultFootprint() Footprint {
	switch k {
	case KindMix:
		return Footprint{Height: 2, Width: 2}
	case KindSplit, KindMerge:
		return Footprint{Height: 1, Width: 2}
	}
	return Footprint{Height: 1, Width: 1}
}

// Operation is a single node of the assay. Kind-specific payload lives in
// Importance (Mix) and Reservoir (Input/Output); the remaining fields are
// common to every kind.
type Operation struct {
	// ID is 1-based and equal to the operation's position in its Catalog.
	ID   int
	Kind Kind
	Size Footprint

	// Importance weighs a Mix operation's throughput reward.
	Importance float64
	// Reservoir is the 1-based index into the inputs or outputs registry.
	Reservoir int

	// Location is fixed at construction for Input/Output and assigned when a
	// placement is materialized for the rest.
	Location Location
	Placed   bool
	Rotated  bool
}

// NewOperation declares a non-IO, non-Mix operation with its default footprint.
func NewOperation(id int, kind Kind) (*Operation, error) {
	if _, ok := kindNames[kind]; !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownKind, int(kind))
	}
	if kind.IsIO() {
		return nil, fmt.Errorf("%w: %s %d needs a reservoir", errInvalidOperation, kind, id)
	}
	return &Operation{
		ID:   id,
		Kind: kind,
		Size: kind.DefaultFootprint(),
	}, nil
}

// NewMix declares a Mix operation weighted by importance.
func NewMix(id int, importance float64) *Operation {
	return &Operation{
		ID:         id,
		Kind:       KindMix,
		Size:       KindMix.DefaultFootprint(),
		Importance: importance,
	}
}

// NewReservoirOperation declares an Input or Output bound to the given
// 1-based reservoir, resolving its fixed location against arch.
func NewReservoirOperation(id int, kind Kind, reservoir int, arch *Architecture) (*Operation, error) {
	if !kind.IsIO() {
		return nil, fmt.Errorf("%w: %s is not a reservoir operation", errInvalidOperation, kind)
	}
	if arch == nil {
		return nil, errNoArchitecture
	}
	reg, _ := kind.Registry()
	loc, err := arch.Cell(reg, reservoir-1)
	if err != nil {
		return nil, fmt.Errorf("%s %d reservoir %d: %w", kind, id, reservoir, err)
	}
	return &Operation{
		ID:        id,
		Kind:      kind,
		Size:      kind.DefaultFootprint(),
		Reservoir: reservoir,
		Location:  loc,
		Placed:    true,
	}, nil
}

// Clone returns a shallow copy; Operation holds no references.
func (o *Operation) Clone() *Operation {
	c := *o
	return &c
}

func (o *Operation) String() string {
	if o.Placed {
		return fmt.Sprintf("%s#%d@%s", o.Kind, o.ID, o.Location)
	}
	return fmt.Sprintf("%s#%d", o.Kind, o.ID)
}
