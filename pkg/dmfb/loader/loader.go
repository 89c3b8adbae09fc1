// Package loader reads placement instances from the arch.in, ops.in,
// graphs.in and alpha.in text files.
package loader

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/dmfb-tools/reconfig-placement/pkg/dmfb"
)

// Files names the four input files of an instance.
type Files struct {
	Arch   string
	Ops    string
	Graphs string
	Alpha  string
}

// Load reads and cross-validates an instance.
func Load(files Files) (*dmfb.Instance, error) {
	arch, err := parseFile(files.Arch, func(r *lineReader) (*dmfb.Architecture, error) {
		return parseArchitecture(r)
	})
	if err != nil {
		return nil, err
	}
	ops, err := parseFile(files.Ops, func(r *lineReader) (*dmfb.Catalog, error) {
		return parseOperations(r, arch)
	})
	if err != nil {
		return nil, err
	}
	graphs, err := parseFile(files.Graphs, func(r *lineReader) ([2]*dmfb.Graph, error) {
		ig, cg, err := parseGraphs(r, ops)
		return [2]*dmfb.Graph{ig, cg}, err
	})
	if err != nil {
		return nil, err
	}
	alpha, err := parseFile(files.Alpha, parseAlpha)
	if err != nil {
		return nil, err
	}

	inst := &dmfb.Instance{
		Architecture:  arch,
		Operations:    ops,
		Interference:  graphs[0],
		Communication: graphs[1],
		Alpha:         alpha,
	}
	if err := inst.Validate(); err != nil {
		return nil, err
	}
	return inst, nil
}

func parseFile[T any](path string, parse func(*lineReader) (T, error)) (T, error) {
	var zero T
	f, err := os.Open(path)
	if err != nil {
		return zero, err
	}
	defer f.Close()
	return parse(newLineReader(f, path))
}

// ParseArchitecture reads:
//
//	rows cols
//	numInputs numOutputs
//	numSensors numDetectors numHeaters
//	x y        (one line per input, output, sensor, detector, heater)
func ParseArchitecture(r io.Reader) (*dmfb.Architecture, error) {
	return parseArchitecture(newLineReader(r, "arch.in"))
}

// ParseOperations reads a count followed by one "<kind> [payload]" line per
// operation. Input/Output take a 1-based reservoir, Mix an importance.
func ParseOperations(r io.Reader, arch *dmfb.Architecture) (*dmfb.Catalog, error) {
	return parseOperations(newLineReader(r, "ops.in"), arch)
}

// ParseGraphs reads "numOps numInterference numCommunication", then the
// interference edges "u v" and the communication edges "u v cost".
func ParseGraphs(r io.Reader, ops *dmfb.Catalog) (interference, communication *dmfb.Graph, err error) {
	return parseGraphs(newLineReader(r, "graphs.in"), ops)
}

// ParseAlpha reads the single objective weight.
func ParseAlpha(r io.Reader) (float64, error) {
	return parseAlpha(newLineReader(r, "alpha.in"))
}

func parseArchitecture(r *lineReader) (*dmfb.Architecture, error) {
	dims, err := r.ints(2)
	if err != nil {
		return nil, err
	}
	ioCounts, err := r.ints(2)
	if err != nil {
		return nil, err
	}
	special, err := r.ints(3)
	if err != nil {
		return nil, err
	}

	counts := []int{ioCounts[0], ioCounts[1], special[0], special[1], special[2]}
	lists := make([][]dmfb.Location, len(counts))
	for i, n := range counts {
		if n < 0 {
			return nil, r.errorf("negative registry size %d", n)
		}
		lists[i] = make([]dmfb.Location, n)
		for j := range n {
			xy, err := r.ints(2)
			if err != nil {
				return nil, err
			}
			lists[i][j] = dmfb.Location{X: xy[0], Y: xy[1]}
		}
	}

	arch, err := dmfb.NewArchitecture(dims[0], dims[1], dmfb.Registries{
		Inputs:    lists[0],
		Outputs:   lists[1],
		Sensors:   lists[2],
		Detectors: lists[3],
		Heaters:   lists[4],
	})
	if err != nil {
		return nil, r.wrap(err)
	}
	return arch, nil
}

func parseOperations(r *lineReader, arch *dmfb.Architecture) (*dmfb.Catalog, error) {
	n, err := r.ints(1)
	if err != nil {
		return nil, err
	}
	if n[0] < 0 {
		return nil, r.errorf("negative operation count %d", n[0])
	}
	ops := make([]*dmfb.Operation, 0, n[0])
	for id := 1; id <= n[0]; id++ {
		fields, err := r.next()
		if err != nil {
			return nil, err
		}
		v, err := strconv.Atoi(fields[0])
		if err != nil {
			return nil, r.errorf("operation %d: bad kind %q", id, fields[0])
		}
		kind, err := dmfb.ParseKind(v)
		if err != nil {
			return nil, r.wrap(err)
		}

		var op *dmfb.Operation
		switch kind {
		case dmfb.KindInput, dmfb.KindOutput:
			if len(fields) < 2 {
				return nil, r.errorf("%s %d: missing reservoir", kind, id)
			}
			res, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, r.errorf("%s %d: bad reservoir %q", kind, id, fields[1])
			}
			op, err = dmfb.NewReservoirOperation(id, kind, res, arch)
			if err != nil {
				return nil, r.wrap(err)
			}
		case dmfb.KindMix:
			if len(fields) < 2 {
				return nil, r.errorf("Mix %d: missing importance", id)
			}
			importance, err := strconv.ParseFloat(fields[1], 64)
			if err != nil {
				return nil, r.errorf("Mix %d: bad importance %q", id, fields[1])
			}
			op = dmfb.NewMix(id, importance)
		default:
			op, err = dmfb.NewOperation(id, kind)
			if err != nil {
				return nil, r.wrap(err)
			}
		}
		ops = append(ops, op)
	}
	return dmfb.NewCatalog(ops)
}

func parseGraphs(r *lineReader, ops *dmfb.Catalog) (*dmfb.Graph, *dmfb.Graph, error) {
	header, err := r.ints(3)
	if err != nil {
		return nil, nil, err
	}
	if header[0] != ops.Len() {
		return nil, nil, r.errorf("graphs declare %d operations, catalog has %d", header[0], ops.Len())
	}

	interference, err := dmfb.NewGraph(ops)
	if err != nil {
		return nil, nil, err
	}
	for range header[1] {
		uv, err := r.ints(2)
		if err != nil {
			return nil, nil, err
		}
		u, v, err := r.endpoints(ops, uv[0], uv[1])
		if err != nil {
			return nil, nil, err
		}
		if _, err := interference.AddEdge(dmfb.NewEdge(u, v)); err != nil {
			return nil, nil, r.wrap(err)
		}
	}

	communication, err := dmfb.NewGraph(ops)
	if err != nil {
		return nil, nil, err
	}
	for range header[2] {
		uvc, err := r.ints(3)
		if err != nil {
			return nil, nil, err
		}
		u, v, err := r.endpoints(ops, uvc[0], uvc[1])
		if err != nil {
			return nil, nil, err
		}
		if _, err := communication.AddEdge(dmfb.NewWeightedEdge(u, v, uvc[2])); err != nil {
			return nil, nil, r.wrap(err)
		}
	}
	return interference, communication, nil
}

func parseAlpha(r *lineReader) (float64, error) {
	fields, err := r.next()
	if err != nil {
		return 0, err
	}
	alpha, err := strconv.ParseFloat(fields[0], 64)
	if err != nil {
		return 0, r.errorf("bad alpha %q", fields[0])
	}
	if alpha < 0 || alpha > 1 {
		return 0, r.errorf("alpha must be in [0, 1], got %v", alpha)
	}
	return alpha, nil
}

// lineReader yields whitespace-separated fields of non-blank lines and keeps
// track of the position for error messages.
type lineReader struct {
	sc   *bufio.Scanner
	name string
	line int
}

func newLineReader(r io.Reader, name string) *lineReader {
	return &lineReader{sc: bufio.NewScanner(r), name: name}
}

func (r *lineReader) next() ([]string, error) {
	for r.sc.Scan() {
		r.line++
		if fields := strings.Fields(r.sc.Text()); len(fields) > 0 {
			return fields, nil
		}
	}
	if err := r.sc.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", r.name, err)
	}
	return nil, fmt.Errorf("%s: %w", r.name, io.ErrUnexpectedEOF)
}

// ints reads the next line and parses its first n fields.
func (r *lineReader) ints(n int) ([]int, error) {
	fields, err := r.next()
	if err != nil {
		return nil, err
	}
	if len(fields) < n {
		return nil, r.errorf("expected %d values, got %d", n, len(fields))
	}
	out := make([]int, n)
	for i := range out {
		v, err := strconv.Atoi(fields[i])
		if err != nil {
			return nil, r.errorf("bad integer %q", fields[i])
		}
		out[i] = v
	}
	return out, nil
}

func (r *lineReader) endpoints(ops *dmfb.Catalog, u, v int) (*dmfb.Operation, *dmfb.Operation, error) {
	opU, ok := ops.ByID(u)
	if !ok {
		return nil, nil, r.errorf("unknown operation %d", u)
	}
	opV, ok := ops.ByID(v)
	if !ok {
		return nil, nil, r.errorf("unknown operation %d", v)
	}
	return opU, opV, nil
}

func (r *lineReader) errorf(format string, args ...any) error {
	return fmt.Errorf("%s:%d: %s", r.name, r.line, fmt.Sprintf(format, args...))
}

func (r *lineReader) wrap(err error) error {
	return fmt.Errorf("%s:%d: %w", r.name, r.line, err)
}
