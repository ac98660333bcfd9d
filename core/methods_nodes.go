// File: methods_nodes.go
// Role: Node lifecycle and queries: AddNode/MergeNode/HasNode/RemoveNode,
//       attribute access, ordered key listing and visitation.
// Determinism:
//   - Nodes()/ForEachNode follow node insertion order.
// Concurrency:
//   - None; see doc.go precondition.

package core

import "fmt"

// AddNode inserts a new node with the given key and opaque attribute payload.
// A nil attrs map is normalized to an empty one so NodeAttributes never
// returns nil. attrs is attached as-is, not copied.
//
// Returns ErrEmptyKey for an empty key, ErrDuplicateNode for an existing one.
// Complexity: O(1) amortized.
func (g *Graph) AddNode(key string, attrs map[string]any) error {
	// 1) Input validation
	if key == "" {
		return ErrEmptyKey
	}
	// 2) Duplicate check
	if g.nodes.has(key) {
		return fmt.Errorf("%w: %q", ErrDuplicateNode, key)
	}
	// 3) Insert the record with its three adjacency entry points
	g.nodes.set(key, newNode(key, attrs))

	return nil
}

// MergeNode inserts key if absent, otherwise copies attrs entries into the
// existing node's payload (last write wins per attribute key). Reports
// whether the node was created.
//
// Returns ErrEmptyKey for an empty key.
// Complexity: O(len(attrs)) amortized.
func (g *Graph) MergeNode(key string, attrs map[string]any) (bool, error) {
	if key == "" {
		return false, ErrEmptyKey
	}
	n, ok := g.nodes.get(key)
	if !ok {
		g.nodes.set(key, newNode(key, attrs))
		return true, nil
	}
	for k, v := range attrs {
		n.attrs[k] = v
	}

	return false, nil
}

// HasNode reports whether a node with the given key exists. O(1).
func (g *Graph) HasNode(key string) bool {
	return g.nodes.has(key)
}

// NodeAttributes returns the opaque attribute payload of key.
// The returned map is the live payload, not a copy.
// Returns ErrNodeNotFound if key is absent. O(1).
func (g *Graph) NodeAttributes(key string) (map[string]any, error) {
	n, ok := g.nodes.get(key)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	return n.attrs, nil
}

// RemoveNode deletes the node and every incident edge (both adjacency sides,
// both orientations). The cascade is atomic from the caller's perspective:
// no partial state is observable afterwards.
//
// Returns ErrNodeNotFound if key is absent.
// Complexity: O(deg(v)).
func (g *Graph) RemoveNode(key string) error {
	n, ok := g.nodes.get(key)
	if !ok {
		return fmt.Errorf("%w: %q", ErrNodeNotFound, key)
	}

	// 1) Collect incident edge keys once. A directed self-loop sits in both
	//    in[key] and out[key], so dedupe while collecting.
	seen := make(map[string]struct{})
	incident := make([]string, 0)
	collect := func(adj *orderedMap[*bucket]) {
		for _, b := range adj.seq() {
			for _, e := range b.edges {
				if _, dup := seen[e.key]; dup {
					continue
				}
				seen[e.key] = struct{}{}
				incident = append(incident, e.key)
			}
		}
	}
	collect(n.out)
	collect(n.in)
	collect(n.undirected)

	// 2) Drop the edges first, then the record itself.
	for _, ek := range incident {
		if err := g.RemoveEdge(ek); err != nil {
			return err // unreachable while invariants hold
		}
	}
	g.nodes.del(key)

	return nil
}

// Nodes returns every node key in insertion order.
// Complexity: O(V).
func (g *Graph) Nodes() []string {
	return g.nodes.keys()
}

// ForEachNode visits every node in insertion order with its key and live
// attribute payload. Removing the visited node inside fn is safe; removing
// other nodes is not.
// Returns ErrNilCallback for a nil fn.
func (g *Graph) ForEachNode(fn func(key string, attrs map[string]any)) error {
	if fn == nil {
		return ErrNilCallback
	}
	for k, n := range g.nodes.seq() {
		fn(k, n.attrs)
	}

	return nil
}

// newNode allocates a node record with empty adjacency.
func newNode(key string, attrs map[string]any) *node {
	if attrs == nil {
		attrs = make(map[string]any)
	}

	return &node{
		key:        key,
		attrs:      attrs,
		out:        newOrderedMap[*bucket](),
		in:         newOrderedMap[*bucket](),
		undirected: newOrderedMap[*bucket](),
	}
}
