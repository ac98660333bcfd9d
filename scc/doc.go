// Package scc computes strongly connected components: maximal sets of nodes
// such that a path exists from every member to every other member, honoring
// direction. Undirected edges in a mixed graph are traversable both ways and
// can therefore close a cycle.
//
// The algorithm is the path-based (Gabow) variant: one depth-first pass with
// a monotonically increasing preorder number per node and two auxiliary
// stacks — P, the candidate component roots in increasing preorder, and S,
// the nodes of the current search path awaiting assignment. Revisiting an
// unassigned node contracts P down to the earliest member of the discovered
// cycle; a node that survives on top of P after its subtree is exhausted is
// the root of a component, which is popped off S in LIFO order.
//
// The search is implemented iteratively with explicit frames (node plus a
// lazy edge cursor), never recursion, so its memory is bounded predictably
// and long path-like graphs cannot exhaust the call stack. Discovery and pop
// order are identical to the recursive formulation.
//
// Complexity:
//
//   - Time:   O(V + E), single pass.
//   - Memory: O(V) for the numbering, both stacks, and the frame stack.
//
// Errors:
//
//   - ErrNilGraph         if g is nil.
//   - ErrUndirectedGraph  if g is a purely undirected graph: with no
//     directed edges possible, strong connectivity degenerates and the
//     operation is rejected before any traversal begins.
package scc
