// File: types.go
// Role: Graph, node/edge records, construction options, sentinel errors.
// Determinism:
//   - nodes/edges/adjacency are insertion-ordered catalogs (see ordered.go).
// Concurrency:
//   - None. Single-writer, single-reader-at-a-time by contract (see doc.go).

package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyKey indicates an empty node or edge key where one is required.
	ErrEmptyKey = errors.New("core: empty key")

	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrDuplicateNode indicates AddNode was called with an existing key.
	ErrDuplicateNode = errors.New("core: duplicate node")

	// ErrDuplicateEdge indicates an edge key reuse, or a parallel edge of the
	// same orientation in a graph constructed without WithMulti.
	ErrDuplicateEdge = errors.New("core: duplicate edge")

	// ErrEdgeTypeNotAllowed indicates an edge orientation the graph type
	// forbids (e.g. an undirected edge in a Directed graph).
	ErrEdgeTypeNotAllowed = errors.New("core: edge type not allowed by graph type")

	// ErrInvalidArguments indicates a malformed iteration call: more than two
	// node arguments, or an EdgeKind outside the known views.
	ErrInvalidArguments = errors.New("core: invalid arguments")

	// ErrNilCallback indicates a nil visitor or predicate.
	ErrNilCallback = errors.New("core: nil callback")
)

// GraphType constrains which edge orientations a Graph may hold.
// It is fixed at construction.
type GraphType uint8

const (
	// Mixed permits both directed and undirected edges. Default.
	Mixed GraphType = iota

	// Directed permits directed edges only.
	Directed

	// Undirected permits undirected edges only.
	Undirected
)

// String returns the lowercase name of the graph type.
func (t GraphType) String() string {
	switch t {
	case Directed:
		return "directed"
	case Undirected:
		return "undirected"
	default:
		return "mixed"
	}
}

// node is a stored node record: identity, opaque attribute payload, and the
// three adjacency entry points. Owned exclusively by the Graph; the public
// identity is the key.
type node struct {
	key   string
	attrs map[string]any

	// Adjacency: neighbor key → bucket of incident edge records.
	// A directed self-loop appears in both out[key] and in[key]; the
	// directedSelfLoops counter corrects double-counting when both
	// directions are iterated in one pass.
	out        *orderedMap[*bucket]
	in         *orderedMap[*bucket]
	undirected *orderedMap[*bucket]

	directedSelfLoops int
}

// edge is a stored edge record. It holds non-owning references to its
// endpoint records; for a self-loop source and target are the same node.
type edge struct {
	key        string
	source     *node
	target     *node
	undirected bool
	attrs      map[string]any
}

// bucket holds the edge records of one adjacency slot in insertion order.
// Non-multi graphs keep at most one edge per orientation here.
type bucket struct {
	edges []*edge
}

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithType fixes the graph type (Mixed, Directed or Undirected).
func WithType(t GraphType) GraphOption {
	return func(g *Graph) { g.gtype = t }
}

// WithMulti permits parallel edges between the same endpoints.
func WithMulti() GraphOption {
	return func(g *Graph) { g.multi = true }
}

// Graph is the core in-memory graph data structure.
//
// It owns every node and edge record; adjacency holds only non-owning
// references into them. Node, edge, and per-node adjacency catalogs preserve
// insertion order, which is the iteration order of every query.
type Graph struct {
	// Configuration, immutable after construction.
	gtype GraphType
	multi bool

	// Storage.
	nodes *orderedMap[*node]
	edges *orderedMap[*edge]

	// Type-specific size counters; Size() == directedSize + undirectedSize.
	directedSize   int
	undirectedSize int

	// Monotonic counter for generated edge keys ("e1", "e2", ...).
	edgeSeq uint64
}

// NewGraph creates an empty Graph with the given options.
// By default the graph is Mixed and simple (no parallel edges).
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		nodes: newOrderedMap[*node](),
		edges: newOrderedMap[*edge](),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NewDirectedGraph creates an empty Graph restricted to directed edges.
// Caller options are applied after the type, in order.
func NewDirectedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithType(Directed)}, opts...)...)
}

// NewUndirectedGraph creates an empty Graph restricted to undirected edges.
func NewUndirectedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithType(Undirected)}, opts...)...)
}

// NewMixedGraph creates an empty Graph permitting both orientations.
// Equivalent to NewGraph; kept for symmetry with the typed constructors.
func NewMixedGraph(opts ...GraphOption) *Graph {
	return NewGraph(append([]GraphOption{WithType(Mixed)}, opts...)...)
}

// Type reports the construction-time graph type. O(1).
func (g *Graph) Type() GraphType { return g.gtype }

// Multi reports whether parallel edges are permitted. O(1).
func (g *Graph) Multi() bool { return g.multi }

// Order returns the number of nodes. O(1).
func (g *Graph) Order() int { return g.nodes.len() }

// Size returns the number of edges. O(1).
func (g *Graph) Size() int { return g.edges.len() }

// DirectedSize returns the number of directed edges. O(1).
func (g *Graph) DirectedSize() int { return g.directedSize }

// UndirectedSize returns the number of undirected edges. O(1).
func (g *Graph) UndirectedSize() int { return g.undirectedSize }
