// File: methods_clone.go
// Role: Copy primitives used by subgraph extraction: EmptyCopy (same
//       settings, no contents) and Clone (deep structural copy).
// Determinism:
//   - Clone preserves node/edge insertion order and edge keys verbatim.

package core

import "maps"

// EmptyCopy returns a new empty Graph with the same type and multi settings.
// Complexity: O(1).
func (g *Graph) EmptyCopy() *Graph {
	opts := []GraphOption{WithType(g.gtype)}
	if g.multi {
		opts = append(opts, WithMulti())
	}

	return NewGraph(opts...)
}

// Clone returns a deep structural copy: same settings, same node and edge
// catalogs in the same insertion order, same keys and orientations.
// Attribute payloads are copied shallowly by value (one level of map copy;
// nested values stay shared, the engine never inspects them anyway).
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	clone := g.EmptyCopy()
	// Generated keys must not collide with the originals after cloning.
	clone.edgeSeq = g.edgeSeq

	for k, n := range g.nodes.seq() {
		// AddNode cannot fail here: keys are non-empty and unique by invariant.
		_ = clone.AddNode(k, maps.Clone(n.attrs))
	}
	for k, e := range g.edges.seq() {
		attrs := maps.Clone(e.attrs)
		if e.undirected {
			_, _ = clone.AddUndirectedEdge(k, e.source.key, e.target.key, attrs)
		} else {
			_, _ = clone.AddDirectedEdge(k, e.source.key, e.target.key, attrs)
		}
	}

	return clone
}
