package benchmarks

import (
	"fmt"
	"sort"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
)

// Builder creates a benchmark instance for the given objective weight.
type Builder func(alpha float64) (*dmfb.Instance, error)

var registry = map[string]Builder{
	TwoMixName: NewTwoMix,
	PCRName:    NewPCR,
}

// Names lists the available benchmarks.
func Names() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get builds the named benchmark.
func Get(name string, alpha float64) (*dmfb.Instance, error) {
	build, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown benchmark %q, known: %v", name, Names())
	}
	return build(alpha)
}

// blueprint is a compact description of a benchmark instance.
type blueprint struct {
	rows, columns int
	registries    dmfb.Registries
	// ops lists kinds in ID order; payload is the reservoir for IO and the
	// importance for Mix.
	ops []opSpec
	// interference and communication edges use 1-based IDs.
	interference  [][2]int
	communication [][3]int
}

type opSpec struct {
	kind    dmfb.Kind
	payload float64
}

func (s blueprint) build(alpha float64) (*dmfb.Instance, error) {
	arch, err := dmfb.NewArchitecture(s.rows, s.columns, s.registries)
	if err != nil {
		return nil, err
	}

	ops := make([]*dmfb.Operation, len(s.ops))
	for i, o := range s.ops {
		id := i + 1
		switch {
		case o.kind.IsIO():
			ops[i], err = dmfb.NewReservoirOperation(id, o.kind, int(o.payload), arch)
		case o.kind == dmfb.KindMix:
			ops[i] = dmfb.NewMix(id, o.payload)
		default:
			ops[i], err = dmfb.NewOperation(id, o.kind)
		}
		if err != nil {
			return nil, err
		}
	}
	catalog, err := dmfb.NewCatalog(ops)
	if err != nil {
		return nil, err
	}

	ig, err := dmfb.NewGraph(catalog)
	if err != nil {
		return nil, err
	}
	for _, e := range s.interference {
		if _, err := ig.AddEdge(dmfb.NewEdge(ops[e[0]-1], ops[e[1]-1])); err != nil {
			return nil, err
		}
	}
	cg, err := dmfb.NewGraph(catalog)
	if err != nil {
		return nil, err
	}
	for _, e := range s.communication {
		if _, err := cg.AddEdge(dmfb.NewWeightedEdge(ops[e[0]-1], ops[e[1]-1], e[2])); err != nil {
			return nil, err
		}
	}

	inst := &dmfb.Instance{
		Architecture:  arch,
		Operations:    catalog,
		Interference:  ig,
		Communication: cg,
		Alpha:         alpha,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}
