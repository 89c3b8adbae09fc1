package framework

import (
	"fmt"
	"strings"
)

// Problem describes the contract a specific multi-objective problem needs to implement.
// The search engine owns the population; a Problem only builds empty solutions
// and evaluates the ones it is handed.
type Problem interface {
	Name() string

	NumVariables() int
	NumObjectives() int
	NumConstraints() int

	// NewSolution returns an all-zero solution with the problem's encoding.
	NewSolution() Solution
	// Evaluate scores a solution. It must be total over the solution's
	// encoding: infeasibility is reported in Evaluation.Constraints.
	Evaluate(Solution) Evaluation
}

type Solution interface {
	Clone() Solution
	String() string
}

// BinaryVariable is a fixed-width bit field. Bit 0 is the least significant
// bit of every value read from it.
type BinaryVariable struct {
	Bits []bool
}

func NewBinaryVariable(numBits int) *BinaryVariable {
	return &BinaryVariable{
		Bits: make([]bool, numBits),
	}
}

// ParseBinaryVariable reads a string of '0' and '1', bit 0 first.
func ParseBinaryVariable(s string) (*BinaryVariable, error) {
	v := NewBinaryVariable(len(s))
	for i, c := range s {
		switch c {
		case '0':
		case '1':
			v.Bits[i] = true
		default:
			return nil, fmt.Errorf("invalid bit %q at position %d", c, i)
		}
	}
	return v, nil
}

func (v *BinaryVariable) Len() int {
	return len(v.Bits)
}

// ReadBits returns the unsigned value of bits [offset, offset+width). Bits
// beyond the end of the variable read as 0, so an empty range yields 0.
func (v *BinaryVariable) ReadBits(offset, width int) uint64 {
	if width > 64 {
		width = 64
	}
	var val uint64
	for i := 0; i < width; i++ {
		pos := offset + i
		if pos < 0 || pos >= len(v.Bits) {
			continue
		}
		if v.Bits[pos] {
			val |= 1 << uint(i)
		}
	}
	return val
}

// WriteBits stores the low width bits of val at [offset, offset+width).
// Positions outside the variable are ignored.
func (v *BinaryVariable) WriteBits(offset, width int, val uint64) {
	for i := 0; i < width && i < 64; i++ {
		pos := offset + i
		if pos < 0 || pos >= len(v.Bits) {
			continue
		}
		v.Bits[pos] = val&(1<<uint(i)) != 0
	}
}

// Clone copies v. A nil variable clones to an empty one.
func (v *BinaryVariable) Clone() *BinaryVariable {
	if v == nil {
		return &BinaryVariable{}
	}
	newBits := make([]bool, len(v.Bits))
	copy(newBits, v.Bits)
	return &BinaryVariable{
		Bits: newBits,
	}
}

// String prints bit 0 first. A nil variable prints as the empty string.
func (v *BinaryVariable) String() string {
	if v == nil {
		return ""
	}
	var sb strings.Builder
	sb.Grow(len(v.Bits))
	for _, b := range v.Bits {
		if b {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// BinarySolution uses a binary encoding scheme, where each variable is a
// group of bits that can have a meaning in the context of the problem.
type BinarySolution struct {
	Variables []*BinaryVariable
}

// NewBinarySolution allocates numVars zeroed variables of bitsPerVar bits.
func NewBinarySolution(numVars, bitsPerVar int) *BinarySolution {
	vars := make([]*BinaryVariable, numVars)
	for i := range vars {
		vars[i] = NewBinaryVariable(bitsPerVar)
	}
	return &BinarySolution{
		Variables: vars,
	}
}

// ParseBinarySolution reads whitespace-separated variables, see ParseBinaryVariable.
func ParseBinarySolution(line string) (*BinarySolution, error) {
	fields := strings.Fields(line)
	sol := &BinarySolution{
		Variables: make([]*BinaryVariable, len(fields)),
	}
	for i, f := range fields {
		v, err := ParseBinaryVariable(f)
		if err != nil {
			return nil, fmt.Errorf("variable %d: %w", i, err)
		}
		sol.Variables[i] = v
	}
	return sol, nil
}

func (sol *BinarySolution) Clone() Solution {
	vars := make([]*BinaryVariable, len(sol.Variables))
	for i, v := range sol.Variables {
		vars[i] = v.Clone()
	}
	return &BinarySolution{
		Variables: vars,
	}
}

func (sol *BinarySolution) String() string {
	parts := make([]string, len(sol.Variables))
	for i, v := range sol.Variables {
		parts[i] = v.String()
	}
	return strings.Join(parts, " ")
}

// Variable returns the i-th variable, or an empty one when i is out of range.
func (sol *BinarySolution) Variable(i int) *BinaryVariable {
	if i < 0 || i >= len(sol.Variables) || sol.Variables[i] == nil {
		return &BinaryVariable{}
	}
	return sol.Variables[i]
}
