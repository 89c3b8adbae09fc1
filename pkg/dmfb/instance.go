package dmfb

import "fmt"

// Instance is a complete placement problem as produced by a loader.
type Instance struct {
	Architecture  *Architecture
	Operations    *Catalog
	Interference  *Graph
	Communication *Graph
	Alpha         float64
}

// Validate checks the cross references between the parts of the instance.
func (in *Instance) Validate() error {
	switch {
	case in.Architecture == nil:
		return fmt.Errorf("%w: missing architecture", ErrInvalidArchitecture)
	case in.Operations == nil:
		return fmt.Errorf("%w: missing operations", ErrInvalidCatalog)
	case in.Interference == nil || in.Communication == nil:
		return fmt.Errorf("%w: missing interference or communication graph", ErrInvalidCatalog)
	}
	if in.Interference.Vertices() != in.Operations || in.Communication.Vertices() != in.Operations {
		return fmt.Errorf("%w: graphs must be built over the instance catalog", ErrInvalidCatalog)
	}
	if in.Alpha < 0 || in.Alpha > 1 {
		return fmt.Errorf("alpha must be in [0, 1], got %v", in.Alpha)
	}
	return in.Operations.CheckRegistries(in.Architecture)
}
