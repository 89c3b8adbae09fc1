package dmfb

import (
	"fmt"
)

// Catalog is the ordered list of operations of an assay. The operation at
// index i always has ID i+1, so every per-operation container can be indexed
// by ID-1.
type Catalog struct {
	ops []*Operation
}

// NewCatalog checks that IDs are dense and 1-based.
func NewCatalog(ops []*Operation) (*Catalog, error) {
	for i, op := range ops {
		if op == nil {
			return nil, fmt.Errorf("%w: operation at position %d is nil", ErrInvalidCatalog, i+1)
		}
		if op.ID != i+1 {
			return nil, fmt.Errorf("%w: operation at position %d has ID %d", ErrInvalidCatalog, i+1, op.ID)
		}
	}
	return &Catalog{ops: ops}, nil
}

func (c *Catalog) Len() int {
	return len(c.ops)
}

// Operations returns the operations in ID order. The slice must not be
// modified.
func (c *Catalog) Operations() []*Operation {
	return c.ops
}

// ByID returns the operation with the given 1-based ID.
func (c *Catalog) ByID(id int) (*Operation, bool) {
	if id < 1 || id > len(c.ops) {
		return nil, false
	}
	return c.ops[id-1], true
}

// IDsOf lists, in catalog order, the IDs of operations of the given kind.
func (c *Catalog) IDsOf(kind Kind) []int {
	var ids []int
	for _, op := range c.ops {
		if op.Kind == kind {
			ids = append(ids, op.ID)
		}
	}
	return ids
}

// CountIO is the number of Input and Output operations.
func (c *Catalog) CountIO() int {
	n := 0
	for _, op := range c.ops {
		if op.Kind.IsIO() {
			n++
		}
	}
	return n
}

// CountSpecial is the number of Sense, Detect and Heat operations.
func (c *Catalog) CountSpecial() int {
	n := 0
	for _, op := range c.ops {
		if op.Kind.IsSpecial() {
			n++
		}
	}
	return n
}

// CheckRegistries fails when an operation needs a registry the architecture
// leaves empty.
func (c *Catalog) CheckRegistries(arch *Architecture) error {
	for _, op := range c.ops {
		reg, ok := op.Kind.Registry()
		if !ok {
			continue
		}
		if arch.Len(reg) == 0 {
			return fmt.Errorf("%w: %s requires %s", ErrEmptyRegistry, op, reg)
		}
	}
	return nil
}

// Clone deep-copies the catalog.
func (c *Catalog) Clone() *Catalog {
	ops := make([]*Operation, len(c.ops))
	for i, op := range c.ops {
		ops[i] = op.Clone()
	}
	return &Catalog{ops: ops}
}
