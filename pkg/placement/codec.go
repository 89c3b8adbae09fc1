package placement

import (
	"fmt"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
	"github.com/dmfb-tools/reconfig-placement/pkg/multiobjective/framework"
)

const (
	orientationBits = 1
	sizeCodeBits    = 2
)

// mixFootprints maps the 2-bit mix size code to a footprint.
var mixFootprints = [1 << sizeCodeBits]dmfb.Footprint{
	{Height: 2, Width: 2},
	{Height: 2, Width: 3},
	{Height: 1, Width: 4},
	{Height: 2, Width: 4},
}

// MixFootprint decodes a mix size code. Only the low two bits are used.
func MixFootprint(code uint64) dmfb.Footprint {
	return mixFootprints[code&(1<<sizeCodeBits-1)]
}

// MixSizeCode is the inverse of MixFootprint.
func MixSizeCode(fp dmfb.Footprint) (uint64, bool) {
	for code, f := range mixFootprints {
		if f == fp {
			return uint64(code), true
		}
	}
	return 0, false
}

// Layout describes the fields of one chromosome variable, least significant
// first: x | y | orientation | mix size code.
type Layout struct {
	XBits int
	YBits int
}

func NewLayout(arch *dmfb.Architecture) Layout {
	return Layout{
		XBits: arch.XBits(),
		YBits: arch.YBits(),
	}
}

// Width is the number of bits of a variable.
func (l Layout) Width() int {
	return l.XBits + l.YBits + orientationBits + sizeCodeBits
}

func (l Layout) orientationOffset() int {
	return l.XBits + l.YBits
}

func (l Layout) sizeCodeOffset() int {
	return l.orientationOffset() + orientationBits
}

// Gene holds the raw fields of a variable before any kind-specific rule is
// applied.
type Gene struct {
	RawX     uint64
	RawY     uint64
	Rotated  bool
	SizeCode uint64
}

// Read extracts the raw fields of v.
func (l Layout) Read(v *framework.BinaryVariable) Gene {
	return Gene{
		RawX:     v.ReadBits(0, l.XBits),
		RawY:     v.ReadBits(l.XBits, l.YBits),
		Rotated:  v.ReadBits(l.orientationOffset(), orientationBits) == 1,
		SizeCode: v.ReadBits(l.sizeCodeOffset(), sizeCodeBits),
	}
}

// Write encodes g into v, truncating each field to its width.
func (l Layout) Write(v *framework.BinaryVariable, g Gene) {
	v.WriteBits(0, l.XBits, g.RawX)
	v.WriteBits(l.XBits, l.YBits, g.RawY)
	var orientation uint64
	if g.Rotated {
		orientation = 1
	}
	v.WriteBits(l.orientationOffset(), orientationBits, orientation)
	v.WriteBits(l.sizeCodeOffset(), sizeCodeBits, g.SizeCode)
}

// Codec turns chromosomes into placements.
type Codec struct {
	arch   *dmfb.Architecture
	ops    *dmfb.Catalog
	layout Layout
}

// NewCodec fails when an operation needs a special-cell registry that the
// architecture leaves empty, so that Decode never selects from one.
func NewCodec(arch *dmfb.Architecture, ops *dmfb.Catalog) (*Codec, error) {
	if err := ops.CheckRegistries(arch); err != nil {
		return nil, fmt.Errorf("building codec: %w", err)
	}
	return &Codec{
		arch:   arch,
		ops:    ops,
		layout: NewLayout(arch),
	}, nil
}

func (c *Codec) Layout() Layout {
	return c.layout
}

// Decode applies the kind-specific rules to every variable of sol, in catalog
// order. Variable i belongs to the operation with ID i+1; missing variables
// decode as all-zero. The returned placement is unscored.
func (c *Codec) Decode(sol *framework.BinarySolution) *Placement {
	n := c.ops.Len()
	p := &Placement{
		Locations:    make([]dmfb.Location, n),
		Orientations: make([]bool, n),
		MixSizes:     make(map[int]dmfb.Footprint),
	}

	for i, op := range c.ops.Operations() {
		g := c.layout.Read(sol.Variable(i))

		switch op.Kind {
		case dmfb.KindInput, dmfb.KindOutput:
			p.Locations[i] = op.Location
			continue
		case dmfb.KindMix:
			p.MixSizes[op.ID] = MixFootprint(g.SizeCode)
		}

		if op.Kind.Orientable() {
			p.Orientations[i] = g.Rotated
		}

		if reg, ok := op.Kind.Registry(); ok {
			// Only raw x selects the cell, raw y is not used.
			loc, err := c.arch.Select(reg, g.RawX)
			if err == nil {
				p.Locations[i] = loc
			}
			continue
		}
		p.Locations[i] = c.interior(g)
	}
	return p
}

// Encode builds a solution from one gene per operation, indexed by ID-1.
// Operations without a gene get an all-zero variable.
func (c *Codec) Encode(genes []Gene) *framework.BinarySolution {
	sol := framework.NewBinarySolution(c.ops.Len(), c.layout.Width())
	for i, g := range genes {
		if i >= len(sol.Variables) {
			break
		}
		c.layout.Write(sol.Variables[i], g)
	}
	return sol
}

// interior maps raw coordinates into [2, columns-1] x [2, rows-1].
func (c *Codec) interior(g Gene) dmfb.Location {
	return dmfb.Location{
		X: int(g.RawX%uint64(c.arch.Columns()-2)) + 2,
		Y: int(g.RawY%uint64(c.arch.Rows()-2)) + 2,
	}
}
