package framework

// Evaluation is the result of scoring a single solution.
type Evaluation struct {
	// Objectives are minimised.
	Objectives []float64
	// Constraints hold 0 for a satisfied constraint and a negative value for
	// a violated one.
	Constraints []float64
}

// Feasible reports whether no constraint is violated.
func (e Evaluation) Feasible() bool {
	return Feasible(e.Constraints)
}

// Violations counts the negative entries of the constraint vector.
func (e Evaluation) Violations() int {
	n := 0
	for _, c := range e.Constraints {
		if c < 0 {
			n++
		}
	}
	return n
}

// Feasible reports whether no entry of constraints is negative.
func Feasible(constraints []float64) bool {
	for _, c := range constraints {
		if c < 0 {
			return false
		}
	}
	return true
}

// ObjectiveSpacePoint represents an N-dimensional point in the objective space.
// As an example, for a problem with 2 objective functions f1 and f2, a point
// in the objective space could be [f1(x'), f2(x')], for the input of x'.
type ObjectiveSpacePoint []float64
