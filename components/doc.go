// Package components discovers connected components over undirected
// reachability: two nodes share a component when a path exists between them
// using both directed and undirected edges, ignoring direction.
//
// Key features:
//   - ConnectedComponents(g): full partition of the node keys
//   - LargestConnectedComponent(g): best component only, with an early exit
//     once no later component can surpass it
//   - LargestConnectedComponentSubgraph(g): materializes the largest
//     component into a fresh graph, attributes copied by value
//   - CropToLargestConnectedComponent(g): in-place removal of everything
//     outside the largest component
//
// Traversal is an iterative depth-first search with an explicit stack —
// never recursion — so long path-like graphs cannot exhaust the call stack.
// Seeds follow node insertion order and neighbors follow adjacency insertion
// order, which makes component order and member order deterministic for a
// fixed construction sequence. Ties for the largest component go to the
// first one encountered; callers must not expect a canonical tie-break.
//
// Complexity:
//
//   - Time:   O(V + E) for every function (crop adds the removal cost of the
//     discarded nodes and their incident edges).
//   - Memory: O(V) for the visited set and the explicit stack.
//
// Errors:
//
//   - ErrNilGraph if g is nil.
package components
