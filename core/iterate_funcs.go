// File: iterate_funcs.go
// Role: Combinators derived from the four access shapes: MapEdges,
//       FilterEdges, ReduceEdges, SomeEdge, EveryEdge.
// Notes:
//   - MapEdges and ReduceEdges are package-level functions because Go
//     methods cannot carry type parameters. The reduce seed is a required
//     argument: the compiler enforces what the original engine policed at
//     runtime.

package core

// MapEdges applies fn to every edge matching kind/arity and returns the
// results in visitation order. The result slice is pre-sized from the
// type-specific size counters at arity 0, grown dynamically otherwise.
// Errors as ForEachEdge.
func MapEdges[T any](g *Graph, kind EdgeKind, fn func(EdgeView) T, nodes ...string) ([]T, error) {
	if fn == nil {
		return nil, ErrNilCallback
	}
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return nil, err
	}
	capacity := 0
	if u == nil {
		capacity = g.scopeSize(sc)
	}
	out := make([]T, 0, capacity)
	g.visitEdges(sc, u, v, func(e *edge) bool {
		out = append(out, fn(g.viewOf(e)))
		return true
	})

	return out, nil
}

// ReduceEdges threads a single accumulator through the visitation order,
// starting from seed. Errors as ForEachEdge.
func ReduceEdges[A any](g *Graph, kind EdgeKind, fn func(A, EdgeView) A, seed A, nodes ...string) (A, error) {
	var zero A
	if fn == nil {
		return zero, ErrNilCallback
	}
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return zero, err
	}
	acc := seed
	g.visitEdges(sc, u, v, func(e *edge) bool {
		acc = fn(acc, g.viewOf(e))
		return true
	})

	return acc, nil
}

// FilterEdges returns the keys of the matching edges satisfying pred, in
// visitation order. Errors as ForEachEdge.
func (g *Graph) FilterEdges(kind EdgeKind, pred EdgePredicate, nodes ...string) ([]string, error) {
	if pred == nil {
		return nil, ErrNilCallback
	}
	sc, u, v, err := g.resolveEdgeQuery(kind, nodes)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0)
	g.visitEdges(sc, u, v, func(e *edge) bool {
		if pred(g.viewOf(e)) {
			keys = append(keys, e.key)
		}

		return true
	})

	return keys, nil
}

// SomeEdge reports whether at least one matching edge satisfies pred,
// short-circuiting on the first hit. Errors as FindEdge.
func (g *Graph) SomeEdge(kind EdgeKind, pred EdgePredicate, nodes ...string) (bool, error) {
	_, found, err := g.FindEdge(kind, pred, nodes...)
	if err != nil {
		return false, err
	}

	return found, nil
}

// EveryEdge reports whether every matching edge satisfies pred,
// short-circuiting on the first miss. Vacuously true when nothing matches.
// Errors as FindEdge.
func (g *Graph) EveryEdge(kind EdgeKind, pred EdgePredicate, nodes ...string) (bool, error) {
	if pred == nil {
		return false, ErrNilCallback
	}
	_, failed, err := g.FindEdge(kind, func(ev EdgeView) bool { return !pred(ev) }, nodes...)
	if err != nil {
		return false, err
	}

	return !failed, nil
}
