// Package gryf is an in-memory graph storage engine: nodes and edges with
// opaque attribute payloads, uniform edge iteration, and the component
// algorithms built on top of it.
//
// 🚀 What is gryf?
//
//	A compact, dependency-light library that brings together:
//		• Core primitives: directed, undirected and mixed graphs, simple or multi,
//		  with insertion-ordered node/edge catalogs and self-loop accounting
//		• One edge-iteration engine: seven edge views × eager/callback/predicate/lazy
//		  access at whole-graph, per-node and per-node-pair arity
//		• Connected components: iterative traversal, largest-component extraction
//		  with early exit, subgraph materialization and in-place crop
//		• Strongly connected components: path-based (Gabow) single pass,
//		  implemented iteratively to survive long path-like graphs
//
// ✨ Why choose gryf?
//
//   - Deterministic – insertion order is the iteration order, everywhere
//   - Predictable failures – sentinel errors, raised at the point of the call
//   - Pure Go – no cgo, no hidden deps
//   - Lazy where it matters – edge entries stream via iter.Seq, no array copies
//
// Everything is organized under three subpackages:
//
//	core/       — Graph, node/edge records, adjacency index, edge iteration engine
//	components/ — connected components, largest component, subgraph, crop
//	scc/        — strongly connected components (path-based, iterative)
//
// The engine is single-threaded by contract: callers serialize mutation and
// traversal themselves. See core's package documentation for the precise
// precondition.
//
//	go get github.com/katalvlaran/gryf
package gryf
