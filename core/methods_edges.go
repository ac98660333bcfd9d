// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/AddDirectedEdge/AddUndirectedEdge,
//       RemoveEdge/HasEdge/EdgeAttributes, degree counters, Neighbors.
//       Also: nextEdgeKey().
// Determinism:
//   - Adjacency buckets keep parallel edges in insertion order.
//   - nextEdgeKey() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - None; see doc.go precondition.

package core

import (
	"fmt"
	"strconv"
)

// edgeKeyPrefix is the textual prefix of generated edge keys ("e1", "e2", ...).
const edgeKeyPrefix = "e"

// AddEdge inserts an edge using the graph's default orientation: directed for
// Directed and Mixed graphs, undirected for Undirected graphs. An empty key
// asks the graph to generate one.
//
// Fails with ErrNodeNotFound if either endpoint is absent, and with
// ErrDuplicateEdge if key is already taken or, in a non-multi graph, a
// parallel edge of the same orientation exists.
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(key, source, target string, attrs map[string]any) (string, error) {
	return g.addEdge(key, source, target, g.gtype != Undirected, attrs)
}

// AddDirectedEdge inserts a directed source→target edge.
// Fails with ErrEdgeTypeNotAllowed on an Undirected graph.
func (g *Graph) AddDirectedEdge(key, source, target string, attrs map[string]any) (string, error) {
	if g.gtype == Undirected {
		return "", fmt.Errorf("%w: directed edge in %s graph", ErrEdgeTypeNotAllowed, g.gtype)
	}

	return g.addEdge(key, source, target, false, attrs)
}

// AddUndirectedEdge inserts an undirected edge between source and target.
// Fails with ErrEdgeTypeNotAllowed on a Directed graph.
func (g *Graph) AddUndirectedEdge(key, source, target string, attrs map[string]any) (string, error) {
	if g.gtype == Directed {
		return "", fmt.Errorf("%w: undirected edge in %s graph", ErrEdgeTypeNotAllowed, g.gtype)
	}

	return g.addEdge(key, source, target, true, attrs)
}

// addEdge is the single insertion path behind the three public methods.
// Steps:
//  1. Validate endpoint keys and resolve both records (ErrNodeNotFound).
//  2. Reject a reused edge key (ErrDuplicateEdge).
//  3. Non-multi: reject a parallel edge of the same orientation.
//  4. Generate a key if none was given.
//  5. Store the record and link adjacency on both endpoints; mirror
//     undirected edges, bump the type-specific size counter and, for a
//     directed self-loop, the node's loop counter.
//
// No partial state is observable: every check precedes the first write.
func (g *Graph) addEdge(key, source, target string, undirected bool, attrs map[string]any) (string, error) {
	// 1) Endpoints must already exist; the store does not auto-create them.
	if source == "" || target == "" {
		return "", ErrEmptyKey
	}
	src, ok := g.nodes.get(source)
	if !ok {
		return "", fmt.Errorf("%w: source %q", ErrNodeNotFound, source)
	}
	tgt, ok := g.nodes.get(target)
	if !ok {
		return "", fmt.Errorf("%w: target %q", ErrNodeNotFound, target)
	}

	// 2) Key reuse is always a conflict, multi or not.
	if key != "" && g.edges.has(key) {
		return "", fmt.Errorf("%w: key %q", ErrDuplicateEdge, key)
	}

	// 3) Parallel-edge constraint. Only the same orientation conflicts: a
	//    mixed simple graph may hold one directed and one undirected edge
	//    between the same pair.
	if !g.multi {
		adj := src.out
		if undirected {
			adj = src.undirected
		}
		if b, found := adj.get(target); found && len(b.edges) > 0 {
			return "", fmt.Errorf("%w: %q-%q", ErrDuplicateEdge, source, target)
		}
	}

	// 4) Generated keys never collide with earlier generated ones; retry past
	//    caller-chosen keys that happen to match the pattern.
	if key == "" {
		for {
			key = g.nextEdgeKey()
			if !g.edges.has(key) {
				break
			}
		}
	}

	// 5) Store and link.
	e := &edge{key: key, source: src, target: tgt, undirected: undirected, attrs: attrs}
	if e.attrs == nil {
		e.attrs = make(map[string]any)
	}
	g.edges.set(key, e)
	if undirected {
		attach(src.undirected, target, e)
		if src != tgt {
			attach(tgt.undirected, source, e)
		}
		g.undirectedSize++
	} else {
		attach(src.out, target, e)
		attach(tgt.in, source, e)
		g.directedSize++
		if src == tgt {
			src.directedSelfLoops++
		}
	}

	return key, nil
}

// RemoveEdge deletes one edge, unlinking both adjacency sides.
// Returns ErrEdgeNotFound if no such edge exists.
// Complexity: O(parallel edges in the slot).
func (g *Graph) RemoveEdge(key string) error {
	e, ok := g.edges.get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrEdgeNotFound, key)
	}
	g.edges.del(key)
	if e.undirected {
		detach(e.source.undirected, e.target.key, e)
		if e.source != e.target {
			detach(e.target.undirected, e.source.key, e)
		}
		g.undirectedSize--
	} else {
		detach(e.source.out, e.target.key, e)
		detach(e.target.in, e.source.key, e)
		g.directedSize--
		if e.source == e.target {
			e.source.directedSelfLoops--
		}
	}

	return nil
}

// HasEdge reports whether an edge with the given key exists. O(1).
func (g *Graph) HasEdge(key string) bool {
	return g.edges.has(key)
}

// EdgeAttributes returns the opaque attribute payload of the edge.
// The returned map is the live payload, not a copy.
// Returns ErrEdgeNotFound if key is absent. O(1).
func (g *Graph) EdgeAttributes(key string) (map[string]any, error) {
	e, ok := g.edges.get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrEdgeNotFound, key)
	}

	return e.attrs, nil
}

// InDegree returns the number of directed edges pointing at key; a directed
// self-loop counts once here (and once more in OutDegree).
// Complexity: O(unique in-neighbors).
func (g *Graph) InDegree(key string) (int, error) {
	n, ok := g.nodes.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	return bucketTotal(n.in), nil
}

// OutDegree returns the number of directed edges leaving key; a directed
// self-loop counts once.
// Complexity: O(unique out-neighbors).
func (g *Graph) OutDegree(key string) (int, error) {
	n, ok := g.nodes.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	return bucketTotal(n.out), nil
}

// UndirectedDegree returns the number of undirected edge endpoints at key:
// each incident undirected edge counts once, an undirected self-loop twice.
// Complexity: O(unique undirected neighbors).
func (g *Graph) UndirectedDegree(key string) (int, error) {
	n, ok := g.nodes.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	deg := bucketTotal(n.undirected)
	// Self-loop bucket holds each loop once; the second endpoint is the
	// same node, so count it again.
	if b, found := n.undirected.get(key); found {
		deg += len(b.edges)
	}

	return deg, nil
}

// Degree returns the total degree of key: InDegree + OutDegree +
// UndirectedDegree, so every self-loop contributes two.
func (g *Graph) Degree(key string) (int, error) {
	in, err := g.InDegree(key)
	if err != nil {
		return 0, err
	}
	out, _ := g.OutDegree(key)
	und, _ := g.UndirectedDegree(key)

	return in + out + und, nil
}

// SelfLoopCount returns the number of self-loop edges (directed plus
// undirected) at key. O(1) for directed, O(1) map lookup for undirected.
func (g *Graph) SelfLoopCount(key string) (int, error) {
	n, ok := g.nodes.get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}
	count := n.directedSelfLoops
	if b, found := n.undirected.get(key); found {
		count += len(b.edges)
	}

	return count, nil
}

// Neighbors returns the deduplicated neighbor keys of key under the given
// view, in first-encounter order. A node with a self-loop is its own
// neighbor. Fails with ErrNodeNotFound / ErrInvalidArguments like the
// iteration shapes.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(kind EdgeKind, key string) ([]string, error) {
	sc, u, _, err := g.resolveEdgeQuery(kind, []string{key})
	if err != nil {
		return nil, err
	}
	seen := make(map[string]struct{})
	out := make([]string, 0)
	g.visitNodeEdges(sc, u, func(e *edge) bool {
		other := e.target.key
		if e.source != u {
			other = e.source.key
		}
		if _, dup := seen[other]; !dup {
			seen[other] = struct{}{}
			out = append(out, other)
		}

		return true
	})

	return out, nil
}

// nextEdgeKey generates a monotonic textual edge key without fmt allocations.
func (g *Graph) nextEdgeKey() string {
	g.edgeSeq++
	return edgeKeyPrefix + strconv.FormatUint(g.edgeSeq, 10)
}

// attach appends e to the adjacency slot for neighbor, creating the bucket
// on first use.
func attach(adj *orderedMap[*bucket], neighbor string, e *edge) {
	b, ok := adj.get(neighbor)
	if !ok {
		b = &bucket{}
		adj.set(neighbor, b)
	}
	b.edges = append(b.edges, e)
}

// detach removes e from the adjacency slot for neighbor, preserving the
// order of the remaining parallel edges, and drops the slot once empty.
func detach(adj *orderedMap[*bucket], neighbor string, e *edge) {
	b, ok := adj.get(neighbor)
	if !ok {
		return
	}
	for i, cur := range b.edges {
		if cur == e {
			b.edges = append(b.edges[:i], b.edges[i+1:]...)
			break
		}
	}
	if len(b.edges) == 0 {
		adj.del(neighbor)
	}
}

// bucketTotal sums bucket sizes across one adjacency map.
func bucketTotal(adj *orderedMap[*bucket]) int {
	total := 0
	for _, b := range adj.seq() {
		total += len(b.edges)
	}

	return total
}
