package dmfb

import (
	"fmt"
	"strings"

	"k8s.io/apimachinery/pkg/util/sets"
	"k8s.io/utils/ptr"
)

// EdgeKey identifies an edge by its endpoint IDs.
type EdgeKey struct {
	U int
	V int
}

// Edge is the ordered pair (U, V) with an optional cost. Two edges are equal
// when their endpoints are equal; the cost is not part of the identity, so
// adding (u, v) twice with different costs yields a duplicate rather than a
// second edge.
type Edge struct {
	U    *Operation
	V    *Operation
	Cost *int
}

// NewEdge builds an unweighted edge.
func NewEdge(u, v *Operation) Edge {
	return Edge{U: u, V: v}
}

// NewWeightedEdge builds an edge carrying a cost.
func NewWeightedEdge(u, v *Operation, cost int) Edge {
	return Edge{U: u, V: v, Cost: ptr.To(cost)}
}

func (e Edge) Key() EdgeKey {
	return EdgeKey{U: e.U.ID, V: e.V.ID}
}

// Equal compares endpoints only.
func (e Edge) Equal(o Edge) bool {
	return e.Key() == o.Key()
}

// Weight is the edge cost, 0 for unweighted edges.
func (e Edge) Weight() int {
	return ptr.Deref(e.Cost, 0)
}

func (e Edge) String() string {
	if e.Cost != nil {
		return fmt.Sprintf("(%d, %d) with cost: %d", e.U.ID, e.V.ID, *e.Cost)
	}
	return fmt.Sprintf("(%d, %d)", e.U.ID, e.V.ID)
}

// Graph holds edges over the operations of a catalog, in insertion order.
type Graph struct {
	vertices *Catalog
	edges    []Edge
	keys     sets.Set[EdgeKey]
}

// NewGraph builds a graph over ops. Every edge endpoint must belong to ops;
// duplicate edges are dropped.
func NewGraph(ops *Catalog, edges ...Edge) (*Graph, error) {
	g := &Graph{
		vertices: ops,
		keys:     sets.New[EdgeKey](),
	}
	for _, e := range edges {
		if _, err := g.AddEdge(e); err != nil {
			return nil, err
		}
	}
	return g, nil
}

// AddEdge appends e unless an edge with the same endpoints already exists.
func (g *Graph) AddEdge(e Edge) (bool, error) {
	if e.U == nil || e.V == nil {
		return false, fmt.Errorf("%w: edge with missing endpoint", ErrInvalidCatalog)
	}
	for _, op := range []*Operation{e.U, e.V} {
		if known, ok := g.vertices.ByID(op.ID); !ok || known != op {
			return false, fmt.Errorf("%w: edge %s references operation %d outside the catalog", ErrInvalidCatalog, e, op.ID)
		}
	}
	if g.keys.Has(e.Key()) {
		return false, nil
	}
	g.keys.Insert(e.Key())
	g.edges = append(g.edges, e)
	return true, nil
}

func (g *Graph) Vertices() *Catalog {
	return g.vertices
}

// Edges returns the edges in insertion order. The slice must not be modified.
func (g *Graph) Edges() []Edge {
	return g.edges
}

func (g *Graph) Len() int {
	return len(g.edges)
}

func (g *Graph) String() string {
	var sb strings.Builder
	sb.WriteString("Vertices: [")
	for i, op := range g.vertices.Operations() {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%d", op.ID)
	}
	sb.WriteString("]\nEdges:\n")
	for _, e := range g.edges {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
