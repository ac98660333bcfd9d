// Package scc: path-based strongly-connected-components implementation.
//
// Traversal follows the core.OutboundEdges view: strictly directed
// out-edges plus undirected edges, which a directed walk may cross in either
// direction. Each search frame holds an iter.Pull cursor over that view, so
// the frame resumes exactly where the recursive formulation would.

package scc

import (
	"errors"
	"iter"

	"github.com/katalvlaran/gryf/core"
)

var (
	// ErrNilGraph is returned when a nil *core.Graph is passed.
	ErrNilGraph = errors.New("scc: graph is nil")

	// ErrUndirectedGraph is returned for purely undirected graphs, where
	// strongly connected components are undefined.
	ErrUndirectedGraph = errors.New("scc: undefined on purely undirected graph")
)

// frame is one simulated call frame of the depth-first search: the node
// being expanded and its suspended edge cursor.
type frame struct {
	node string
	next func() (core.EdgeView, bool)
	stop func()
}

// sccState carries the algorithm's bookkeeping across frames.
type sccState struct {
	g        *core.Graph
	preorder map[string]int      // node → discovery number
	counter  int                 // next preorder number
	roots    []string            // P: candidate roots, preorder-increasing
	pending  []string            // S: path nodes awaiting assignment
	assigned map[string]struct{} // nodes finalized into a component
	frames   []frame             // explicit call stack
	comps    [][]string
}

// StronglyConnectedComponents partitions the nodes of g into strongly
// connected components. Components are emitted in the order their roots
// finish; members are in LIFO pop order off the pending stack. Neither is
// sorted. On a graph with no edges every node is its own component.
//
// Fails with ErrUndirectedGraph before any traversal if g's declared type is
// Undirected, and with ErrNilGraph on a nil graph.
// Complexity: O(V + E).
func StronglyConnectedComponents(g *core.Graph) ([][]string, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if g.Type() == core.Undirected {
		return nil, ErrUndirectedGraph
	}

	keys := g.Nodes()
	comps := make([][]string, 0)

	// No edges: one singleton per node, no traversal needed.
	if g.Size() == 0 {
		for _, k := range keys {
			comps = append(comps, []string{k})
		}

		return comps, nil
	}

	st := &sccState{
		g:        g,
		preorder: make(map[string]int, len(keys)),
		assigned: make(map[string]struct{}, len(keys)),
		comps:    comps,
	}
	for _, seed := range keys {
		if _, seen := st.preorder[seed]; seen {
			continue
		}
		st.open(seed)
		st.run()
	}

	return st.comps, nil
}

// open enters a node for the first time: assign the next preorder number,
// push it onto both stacks, and suspend a cursor over its outbound edges.
func (st *sccState) open(n string) {
	st.preorder[n] = st.counter
	st.counter++
	st.roots = append(st.roots, n)
	st.pending = append(st.pending, n)

	// The node exists by construction, so the engine cannot fail here.
	entries, _ := st.g.EdgeEntries(core.OutboundEdges, n)
	next, stop := iter.Pull(entries)
	st.frames = append(st.frames, frame{node: n, next: next, stop: stop})
}

// run drains the frame stack. Each iteration resumes the topmost frame's
// edge cursor; discovering an unvisited neighbor opens a new frame on top
// (the recursive call), while exhausting the cursor closes the frame (the
// recursive return).
func (st *sccState) run() {
	for len(st.frames) > 0 {
		f := &st.frames[len(st.frames)-1]

		descended := false
		for {
			ev, ok := f.next()
			if !ok {
				break
			}
			w := opposite(ev, f.node)

			if _, seen := st.preorder[w]; !seen {
				st.open(w)
				descended = true
				break // resume this frame after w's subtree completes
			}
			if _, done := st.assigned[w]; done {
				continue
			}
			// A cycle back to w: contract P down to the earliest member.
			for len(st.roots) > 0 && st.preorder[st.roots[len(st.roots)-1]] > st.preorder[w] {
				st.roots = st.roots[:len(st.roots)-1]
			}
		}
		if descended {
			continue
		}

		// Frame exhausted: close it.
		f.stop()
		n := f.node
		st.frames = st.frames[:len(st.frames)-1]

		// Still on top of P means n was never contracted away: it is the
		// root of its component. Pop S down to and including n.
		if len(st.roots) > 0 && st.roots[len(st.roots)-1] == n {
			st.roots = st.roots[:len(st.roots)-1]
			var comp []string
			for {
				w := st.pending[len(st.pending)-1]
				st.pending = st.pending[:len(st.pending)-1]
				comp = append(comp, w)
				st.assigned[w] = struct{}{}
				if w == n {
					break
				}
			}
			st.comps = append(st.comps, comp)
		}
	}
}

// opposite resolves the endpoint of ev that is not n; for a self-loop it is
// n itself. Undirected edges store endpoints in insertion order, so either
// side may be the source.
func opposite(ev core.EdgeView, n string) string {
	if ev.Source == n {
		return ev.Target
	}

	return ev.Source
}
