// File: iterate.go
// Role: The edge-iteration engine. One traversal core parameterized by an
//       EdgeKind descriptor and by arity (0/1/2 node arguments), behind the
//       four access shapes: Edges, ForEachEdge, FindEdge, EdgeEntries.
// Determinism:
//   - Arity 0 follows edge insertion order; arities 1 and 2 follow adjacency
//     insertion order (in pass, then out pass, then undirected pass).
//   - Parallel edges flatten in bucket insertion order.
// Invariants:
//   - Each matching edge is visited exactly once per call, including
//     self-loops (see the suppression rules on visitNodeEdges/visitPairEdges).
//   - All argument errors are raised synchronously, before any visitation.

package core

import (
	"fmt"
	"iter"
)

// EdgeKind selects one of the seven edge views of the engine. Each view is a
// descriptor over two axes: which orientation subset is visited (directed,
// undirected or both) and which direction is requested at the directed part
// (in, out or both). Direction is meaningful at arity 1 and 2 only; at arity
// 0 every view degenerates to its orientation subset.
type EdgeKind uint8

const (
	// AllEdges visits directed and undirected edges, both directions.
	AllEdges EdgeKind = iota

	// InEdges visits directed edges pointing at the node.
	InEdges

	// OutEdges visits directed edges leaving the node.
	OutEdges

	// InboundEdges visits directed in-edges plus undirected edges.
	InboundEdges

	// OutboundEdges visits directed out-edges plus undirected edges.
	OutboundEdges

	// DirectedEdges visits directed edges, both directions.
	DirectedEdges

	// UndirectedEdges visits undirected edges only.
	UndirectedEdges

	numEdgeKinds // sentinel, keep last
)

// String returns the canonical name of the view.
func (k EdgeKind) String() string {
	switch k {
	case AllEdges:
		return "edges"
	case InEdges:
		return "inEdges"
	case OutEdges:
		return "outEdges"
	case InboundEdges:
		return "inboundEdges"
	case OutboundEdges:
		return "outboundEdges"
	case DirectedEdges:
		return "directedEdges"
	case UndirectedEdges:
		return "undirectedEdges"
	default:
		return "unknown"
	}
}

// direction restricts which directed adjacency passes run.
type direction uint8

const (
	dirBoth direction = iota
	dirIn
	dirOut
)

// edgeScope is the runtime descriptor one EdgeKind expands to.
type edgeScope struct {
	directed   bool // visit directed edges
	undirected bool // visit undirected edges
	dir        direction
}

// edgeScopes maps each EdgeKind to its descriptor. Indexed by EdgeKind.
var edgeScopes = [numEdgeKinds]edgeScope{
	AllEdges:        {directed: true, undirected: true, dir: dirBoth},
	InEdges:         {directed: true, undirected: false, dir: dirIn},
	OutEdges:        {directed: true, undirected: false, dir: dirOut},
	InboundEdges:    {directed: true, undirected: true, dir: dirIn},
	OutboundEdges:   {directed: true, undirected: true, dir: dirOut},
	DirectedEdges:   {directed: true, undirected: false, dir: dirBoth},
	UndirectedEdges: {directed: false, undirected: true, dir: dirBoth},
}

// EdgeView is the value tuple every access shape exposes per edge. Attribute
// maps are the live payloads, not copies.
type EdgeView struct {
	// Key uniquely identifies the edge within its graph.
	Key string

	// Attributes is the edge's opaque payload.
	Attributes map[string]any

	// Source and Target are the endpoint node keys. For a self-loop they
	// are equal. For an undirected edge they reflect insertion order, not
	// traversal direction.
	Source string
	Target string

	// SourceAttributes and TargetAttributes are the endpoint payloads.
	SourceAttributes map[string]any
	TargetAttributes map[string]any

	// Undirected reports the edge's orientation flag.
	Undirected bool
}

// EdgeVisitor consumes one EdgeView during ForEachEdge visitation.
type EdgeVisitor func(EdgeView)

// EdgePredicate tests one EdgeView; truthy stops FindEdge.
type EdgePredicate func(EdgeView) bool

// resolveEdgeQuery validates kind and the variadic node arguments, resolving
// node records up front so every NotFound/InvalidArguments error is raised
// before the first edge is visited.
func (g *Graph) resolveEdgeQuery(kind EdgeKind, nodes []string) (edgeScope, *node, *node, error) {
	if kind >= numEdgeKinds {
		return edgeScope{}, nil, nil, fmt.Errorf("%w: unknown edge kind %d", ErrInvalidArguments, kind)
	}
	if len(nodes) > 2 {
		return edgeScope{}, nil, nil, fmt.Errorf("%w: at most two node keys, got %d", ErrInvalidArguments, len(nodes))
	}
	var u, v *node
	var ok bool
	if len(nodes) >= 1 {
		if u, ok = g.nodes.get(nodes[0]); !ok {
			return edgeScope{}, nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, nodes[0])
		}
	}
	if len(nodes) == 2 {
		if v, ok = g.nodes.get(nodes[1]); !ok {
			return edgeScope{}, nil, nil, fmt.Errorf("%w: %q", ErrNodeNotFound, nodes[1])
		}
	}

	return edgeScopes[kind], u, v, nil
}

// visitEdges dispatches one resolved query to the arity-specific walker.
// yield returning false stops the walk.
func (g *Graph) visitEdges(sc edgeScope, u, v *node, yield func(*edge) bool) {
	switch {
	case u == nil:
		g.visitAllEdges(sc, yield)
	case v == nil:
		g.visitNodeEdges(sc, u, yield)
	default:
		g.visitPairEdges(sc, u, v, yield)
	}
}

// visitAllEdges walks the whole edge catalog in insertion order, filtered by
// orientation. Direction never restricts arity 0. Short-circuits when the
// requested orientation subset is structurally empty (an optimization — the
// filtered walk would yield nothing anyway).
func (g *Graph) visitAllEdges(sc edgeScope, yield func(*edge) bool) {
	if g.scopeSize(sc) == 0 {
		return
	}
	for _, e := range g.edges.seq() {
		if e.undirected {
			if !sc.undirected {
				continue
			}
		} else if !sc.directed {
			continue
		}
		if !yield(e) {
			return
		}
	}
}

// visitNodeEdges walks one node's relevant edges: in pass, out pass,
// undirected pass, each in adjacency insertion order.
//
// Self-loop correction: when both directions are requested, a directed
// self-loop sits in both in[u] and out[u]; the out pass skips the self slot
// so each loop is visited exactly once. A single requested direction visits
// the loop through that pass alone, so no correction applies.
func (g *Graph) visitNodeEdges(sc edgeScope, u *node, yield func(*edge) bool) {
	if sc.directed {
		if sc.dir != dirOut {
			for _, b := range u.in.seq() {
				if !emit(b, yield) {
					return
				}
			}
		}
		if sc.dir != dirIn {
			for nk, b := range u.out.seq() {
				if sc.dir == dirBoth && nk == u.key {
					continue // self-loops already seen in the in pass
				}
				if !emit(b, yield) {
					return
				}
			}
		}
	}
	if sc.undirected {
		for _, b := range u.undirected.seq() {
			if !emit(b, yield) {
				return
			}
		}
	}
}

// visitPairEdges walks the edges strictly between u and v. When u == v and
// both directions are requested, the directed out slot holds exactly the
// self-loops the in slot already yielded, so the out pass is skipped
// entirely; a single requested direction reaches the loops through its own
// slot.
func (g *Graph) visitPairEdges(sc edgeScope, u, v *node, yield func(*edge) bool) {
	if sc.directed {
		if sc.dir != dirOut {
			if b, ok := u.in.get(v.key); ok {
				if !emit(b, yield) {
					return
				}
			}
		}
		if sc.dir != dirIn && !(sc.dir == dirBoth && u == v) {
			if b, ok := u.out.get(v.key); ok {
				if !emit(b, yield) {
					return
				}
			}
		}
	}
	if sc.undirected {
		if b, ok := u.undirected.get(v.key); ok {
			if !emit(b, yield) {
				return
			}
		}
	}
}

// emit flattens one bucket in insertion order.
func emit(b *bucket, yield func(*edge) bool) bool {
	for _, e := range b.edges {
		if !yield(e) {
			return false
		}
	}

	return true
}

// scopeSize returns the number of stored edges matching the scope's
// orientation subset, from the O(1) type-specific counters.
func (g *Graph) scopeSize(sc edgeScope) int {
	total := 0
	if sc.directed {
		total += g.directedSize
	}
	if sc.undirected {
		total += g.undirectedSize
	}

	return total
}

// viewOf builds the public value tuple for one edge record.
func (g *Graph) viewOf(e *edge) EdgeView {
	return EdgeView{
		Key:              e.key,
		Attributes:       e.attrs,
		Source:           e.source.key,
		Target:           e.target.key,
		SourceAttributes: e.source.attrs,
		TargetAttributes: e.target.attrs,
		Undirected:       e.undirected,
	}
}

// Edges returns the matching edge keys eagerly.
//
// Arity is selected by the number of node arguments: none for the whole
// graph, one for a node's relevant edges, two for the edges between a pair.
// More than two is ErrInvalidArguments; absent nodes are ErrNodeNotFound.
// Complexity: O(E) at arity 0, O(deg) at arity 1, O(slot) at arity 2.
func (g *Graph) Edges(kind EdgeKind, nodes ...string) ([]string, error) {
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return nil, err
	}
	capacity := 0
	if u == nil {
		capacity = g.scopeSize(sc) // known a priori from the size counters
	}
	keys := make([]string, 0, capacity)
	g.visitEdges(sc, u, v, func(e *edge) bool {
		keys = append(keys, e.key)
		return true
	})

	return keys, nil
}

// ForEachEdge visits every matching edge with its full value tuple, in the
// engine's order, with no early termination.
// Returns ErrNilCallback for a nil visitor; arity errors as in Edges.
func (g *Graph) ForEachEdge(kind EdgeKind, visit EdgeVisitor, nodes ...string) error {
	if visit == nil {
		return ErrNilCallback
	}
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return err
	}
	g.visitEdges(sc, u, v, func(e *edge) bool {
		visit(g.viewOf(e))
		return true
	})

	return nil
}

// FindEdge visits matching edges until pred returns true, then stops and
// returns that edge's key with found == true. found == false means no match.
// Returns ErrNilCallback for a nil predicate; arity errors as in Edges.
func (g *Graph) FindEdge(kind EdgeKind, pred EdgePredicate, nodes ...string) (string, bool, error) {
	if pred == nil {
		return "", false, ErrNilCallback
	}
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return "", false, err
	}
	var key string
	var found bool
	g.visitEdges(sc, u, v, func(e *edge) bool {
		if pred(g.viewOf(e)) {
			key, found = e.key, true
			return false
		}

		return true
	})

	return key, found, nil
}

// EdgeEntries returns a lazy sequence of the matching edge tuples. Elements
// are produced one pull at a time; nothing is materialized up front, which
// is the shape to use on graphs too large to array-copy per query.
//
// Argument errors are raised here, before the sequence exists. The sequence
// itself is finite and consumer-driven; pair it with iter.Pull for an
// explicit cursor. Mutating the graph between pulls is undefined behavior.
func (g *Graph) EdgeEntries(kind EdgeKind, nodes ...string) (iter.Seq[EdgeView], error) {
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return nil, err
	}

	return func(yield func(EdgeView) bool) {
		g.visitEdges(sc, u, v, func(e *edge) bool {
			return yield(g.viewOf(e))
		})
	}, nil
}
