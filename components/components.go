// Package components: implementation of the connected-components family.
//
// All four entry points share one traversal primitive: collectComponent, an
// explicit-stack depth-first walk over the core.AllEdges view (directed and
// undirected edges, both directions). The engine is the only way this
// package touches adjacency.

package components

import (
	"errors"
	"maps"

	"github.com/katalvlaran/gryf/core"
)

// ErrNilGraph is returned when a nil *core.Graph is passed to any function
// in this package.
var ErrNilGraph = errors.New("components: graph is nil")

// ConnectedComponents partitions every node key of g into maximal sets
// reachable from one another while ignoring edge direction. Every node
// appears in exactly one component. Component order follows the node
// insertion order of the seeds; member order is the traversal pop order.
// Empty graphs return an empty list; zero-edge graphs short-circuit to one
// singleton per node.
// Complexity: O(V + E).
func ConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keys := g.Nodes()
	comps := make([][]string, 0)

	// No edges: every node is its own component, no traversal needed.
	if g.Size() == 0 {
		for _, k := range keys {
			comps = append(comps, []string{k})
		}

		return comps, nil
	}

	visited := make(map[string]struct{}, len(keys))
	for _, seed := range keys {
		if _, done := visited[seed]; done {
			continue
		}
		comps = append(comps, collectComponent(g, seed, visited))
	}

	return comps, nil
}

// LargestConnectedComponent returns the members of the largest component,
// discarding smaller ones as it goes. Early exit: once the best component is
// larger than the number of still-unvisited nodes, no later component can
// surpass it and traversal stops. On equal sizes the first component
// encountered wins.
// Complexity: O(V + E), often less due to the early exit.
func LargestConnectedComponent(g *core.Graph) ([]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	keys := g.Nodes()
	if len(keys) == 0 {
		return []string{}, nil
	}
	// No edges: all components are singletons, the first seed wins.
	if g.Size() == 0 {
		return []string{keys[0]}, nil
	}

	visited := make(map[string]struct{}, len(keys))
	var best []string
	for _, seed := range keys {
		if _, done := visited[seed]; done {
			continue
		}
		comp := collectComponent(g, seed, visited)
		if len(comp) > len(best) {
			best = comp
		}
		if len(best) > len(keys)-len(visited) {
			break // nothing left can surpass the current best
		}
	}

	return best, nil
}

// LargestConnectedComponentSubgraph builds a new graph with the same type
// and multi settings containing exactly the nodes of the largest component,
// inserted in component order with attributes copied by value, plus every
// edge of g whose source endpoint lies in the component (both endpoints of
// any qualifying edge are in the component by definition). Edge keys,
// orientation and attributes carry over verbatim, parallel edges included.
// Complexity: O(V + E).
func LargestConnectedComponentSubgraph(g *core.Graph) (*core.Graph, error) {
	comp, err := LargestConnectedComponent(g)
	if err != nil {
		return nil, err
	}

	sub := g.EmptyCopy()
	member := make(map[string]struct{}, len(comp))
	for _, k := range comp {
		member[k] = struct{}{}
		attrs, aerr := g.NodeAttributes(k)
		if aerr != nil {
			return nil, aerr
		}
		if aerr = sub.AddNode(k, maps.Clone(attrs)); aerr != nil {
			return nil, aerr
		}
	}

	var addErr error
	err = g.ForEachEdge(core.AllEdges, func(ev core.EdgeView) {
		if addErr != nil {
			return
		}
		if _, ok := member[ev.Source]; !ok {
			return
		}
		attrs := maps.Clone(ev.Attributes)
		if ev.Undirected {
			_, addErr = sub.AddUndirectedEdge(ev.Key, ev.Source, ev.Target, attrs)
		} else {
			_, addErr = sub.AddDirectedEdge(ev.Key, ev.Source, ev.Target, attrs)
		}
	})
	if err != nil {
		return nil, err
	}
	if addErr != nil {
		return nil, addErr
	}

	return sub, nil
}

// CropToLargestConnectedComponent mutates g in place: after the read-only
// largest-component computation has fully completed, every node outside the
// component (and thus every incident edge) is removed.
// Complexity: O(V + E).
func CropToLargestConnectedComponent(g *core.Graph) error {
	comp, err := LargestConnectedComponent(g)
	if err != nil {
		return err
	}
	keep := make(map[string]struct{}, len(comp))
	for _, k := range comp {
		keep[k] = struct{}{}
	}
	// Nodes() materializes the key list, so removal during the loop is safe.
	for _, k := range g.Nodes() {
		if _, ok := keep[k]; ok {
			continue
		}
		if err = g.RemoveNode(k); err != nil {
			return err
		}
	}

	return nil
}

// collectComponent runs the iterative depth-first walk from seed, marking
// nodes on push and recording them in pop (LIFO) order. The explicit stack
// is mandatory: a recursive formulation is bounded by call-stack depth and
// fails on long path-like graphs.
func collectComponent(g *core.Graph, seed string, visited map[string]struct{}) []string {
	stack := []string{seed}
	visited[seed] = struct{}{}
	comp := make([]string, 0)

	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		comp = append(comp, n)

		// Neighbors in adjacency insertion order; the node exists, so the
		// engine cannot fail here.
		_ = g.ForEachEdge(core.AllEdges, func(ev core.EdgeView) {
			other := ev.Target
			if other == n && ev.Source != n {
				other = ev.Source
			}
			if _, done := visited[other]; done {
				return
			}
			visited[other] = struct{}{}
			stack = append(stack, other)
		}, n)
	}

	return comp
}
