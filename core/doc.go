// Package core defines the central Graph type — an in-memory store of node
// and edge records with an adjacency index — and the edge-iteration engine
// that every traversal in this module is built on.
//
// Data model:
//
//   - A Graph has a fixed GraphType (Mixed, Directed or Undirected) and a
//     fixed multi flag, both set at construction and immutable afterwards.
//   - Nodes and edges are identified by string keys, unique per graph.
//     Attribute payloads are opaque map[string]any values: the engine stores
//     and returns them but never inspects their contents.
//   - Node and edge catalogs, and each node's adjacency, iterate in insertion
//     order. That order is the deterministic seed order the component
//     algorithms in components/ and scc/ rely on.
//   - Each node tracks in, out and undirected adjacency separately, plus a
//     directed self-loop counter used to avoid double-counting loops when
//     both directions are iterated at once.
//
// Edge iteration:
//
//   - One traversal core, parameterized by an EdgeKind (seven views over the
//     directed/undirected × in/out/both axes) and by arity: zero node
//     arguments iterate the whole graph, one iterates a node's relevant
//     edges, two iterate the edges between a specific pair.
//   - Four access shapes share identical semantics: Edges (eager keys),
//     ForEachEdge (callback), FindEdge (predicate with early exit), and
//     EdgeEntries (lazy iter.Seq pull sequence). MapEdges, FilterEdges,
//     ReduceEdges, SomeEdge and EveryEdge derive from them.
//
// Concurrency precondition:
//
// The engine is single-threaded and synchronous. It takes no locks. Callers
// must serialize mutation against traversal themselves; in particular,
// mutating the graph while an EdgeEntries sequence is suspended between
// pulls is undefined behavior and may observe a torn adjacency view.
//
// Errors:
//
//	ErrEmptyKey           - node or endpoint key is the empty string.
//	ErrNodeNotFound       - referenced node key is absent.
//	ErrEdgeNotFound       - referenced edge key is absent.
//	ErrDuplicateNode      - node key already present.
//	ErrDuplicateEdge      - edge key reused, or parallel edge in a non-multi graph.
//	ErrEdgeTypeNotAllowed - edge orientation conflicts with the graph type.
//	ErrInvalidArguments   - wrong arity or unknown EdgeKind.
//	ErrNilCallback        - nil visitor/predicate passed to an iteration shape.
package core
