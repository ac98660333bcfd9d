// Package core_test: contracts of the edge-iteration engine — the seven
// views across all three arities, self-loop correction, multi-edge
// flattening, lazy entries, and the derived combinators.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gryf/core"
)

// buildMixedFixture constructs the shared fixture:
//
//	a ─ab→ b          (directed)
//	b ──bc─ c         (undirected)
//	c ─ca→ a          (directed)
//	a ──ad─ d         (undirected)
func buildMixedFixture(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewMixedGraph()
	for _, k := range []string{"a", "b", "c", "d"} {
		require.NoError(t, g.AddNode(k, nil))
	}
	mustEdge := func(key, from, to string, undirected bool) {
		var err error
		if undirected {
			_, err = g.AddUndirectedEdge(key, from, to, nil)
		} else {
			_, err = g.AddDirectedEdge(key, from, to, nil)
		}
		require.NoError(t, err)
	}
	mustEdge("ab", "a", "b", false)
	mustEdge("bc", "b", "c", true)
	mustEdge("ca", "c", "a", false)
	mustEdge("ad", "a", "d", true)

	return g
}

func TestEdges_WholeGraph(t *testing.T) {
	g := buildMixedFixture(t)

	cases := []struct {
		kind core.EdgeKind
		want []string
	}{
		{core.AllEdges, []string{"ab", "bc", "ca", "ad"}},
		{core.InEdges, []string{"ab", "ca"}},
		{core.OutEdges, []string{"ab", "ca"}},
		{core.InboundEdges, []string{"ab", "bc", "ca", "ad"}},
		{core.OutboundEdges, []string{"ab", "bc", "ca", "ad"}},
		{core.DirectedEdges, []string{"ab", "ca"}},
		{core.UndirectedEdges, []string{"bc", "ad"}},
	}
	for _, tc := range cases {
		got, err := g.Edges(tc.kind)
		require.NoError(t, err, tc.kind.String())
		assert.Equal(t, tc.want, got, tc.kind.String())
	}
}

func TestEdges_PerNode(t *testing.T) {
	g := buildMixedFixture(t)

	// Order per view: in pass, then out pass, then undirected pass, each in
	// adjacency insertion order.
	cases := []struct {
		kind core.EdgeKind
		node string
		want []string
	}{
		{core.AllEdges, "a", []string{"ca", "ab", "ad"}},
		{core.InEdges, "a", []string{"ca"}},
		{core.OutEdges, "a", []string{"ab"}},
		{core.InboundEdges, "a", []string{"ca", "ad"}},
		{core.OutboundEdges, "a", []string{"ab", "ad"}},
		{core.DirectedEdges, "a", []string{"ca", "ab"}},
		{core.UndirectedEdges, "a", []string{"ad"}},
		{core.AllEdges, "b", []string{"ab", "bc"}},
		{core.OutEdges, "b", []string{}},
		{core.AllEdges, "d", []string{"ad"}},
	}
	for _, tc := range cases {
		got, err := g.Edges(tc.kind, tc.node)
		require.NoError(t, err, "%s(%s)", tc.kind, tc.node)
		assert.Equal(t, tc.want, got, "%s(%s)", tc.kind, tc.node)
	}
}

func TestEdges_PerPair(t *testing.T) {
	g := buildMixedFixture(t)

	cases := []struct {
		kind core.EdgeKind
		u, v string
		want []string
	}{
		{core.AllEdges, "a", "b", []string{"ab"}},
		{core.AllEdges, "b", "a", []string{"ab"}}, // direction-free view sees both orders
		{core.OutEdges, "a", "b", []string{"ab"}},
		{core.OutEdges, "b", "a", []string{}},
		{core.InEdges, "b", "a", []string{"ab"}},
		{core.AllEdges, "b", "c", []string{"bc"}},
		{core.UndirectedEdges, "c", "b", []string{"bc"}},
		{core.InboundEdges, "a", "c", []string{"ca"}},
		{core.AllEdges, "a", "c", []string{"ca"}},
		{core.AllEdges, "b", "d", []string{}},
	}
	for _, tc := range cases {
		got, err := g.Edges(tc.kind, tc.u, tc.v)
		require.NoError(t, err, "%s(%s,%s)", tc.kind, tc.u, tc.v)
		assert.Equal(t, tc.want, got, "%s(%s,%s)", tc.kind, tc.u, tc.v)
	}
}

func TestEdges_SelfLoopCorrection(t *testing.T) {
	// A node with exactly one directed self-loop and nothing else:
	// unrestricted-direction iteration must yield the loop once, not twice.
	g := core.NewDirectedGraph()
	require.NoError(t, g.AddNode("x", nil))
	_, err := g.AddEdge("loop", "x", "x", nil)
	require.NoError(t, err)

	for _, kind := range []core.EdgeKind{core.AllEdges, core.DirectedEdges, core.InEdges, core.OutEdges} {
		got, gerr := g.Edges(kind, "x")
		require.NoError(t, gerr, kind.String())
		assert.Equal(t, []string{"loop"}, got, "arity 1, %s", kind)

		got, gerr = g.Edges(kind, "x", "x")
		require.NoError(t, gerr, kind.String())
		assert.Equal(t, []string{"loop"}, got, "arity 2, %s", kind)
	}
}

func TestEdges_SelfLoopsMixed(t *testing.T) {
	g := core.NewMixedGraph()
	require.NoError(t, g.AddNode("x", nil))
	_, err := g.AddDirectedEdge("dl", "x", "x", nil)
	require.NoError(t, err)
	_, err = g.AddUndirectedEdge("ul", "x", "x", nil)
	require.NoError(t, err)

	got, err := g.Edges(core.AllEdges, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"dl", "ul"}, got)

	got, err = g.Edges(core.AllEdges, "x", "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"dl", "ul"}, got)

	got, err = g.Edges(core.UndirectedEdges, "x")
	require.NoError(t, err)
	assert.Equal(t, []string{"ul"}, got)
}

func TestEdges_MultiFlattening(t *testing.T) {
	g := core.NewDirectedGraph(core.WithMulti())
	require.NoError(t, g.AddNode("u", nil))
	require.NoError(t, g.AddNode("v", nil))
	for _, k := range []string{"p1", "p2", "p3"} {
		_, err := g.AddEdge(k, "u", "v", nil)
		require.NoError(t, err)
	}

	// Parallel edges flatten in slot insertion order at every arity.
	for _, nodes := range [][]string{{}, {"u"}, {"u", "v"}} {
		got, err := g.Edges(core.AllEdges, nodes...)
		require.NoError(t, err)
		assert.Equal(t, []string{"p1", "p2", "p3"}, got)
	}

	// Removal from the middle keeps the remaining order.
	require.NoError(t, g.RemoveEdge("p2"))
	got, err := g.Edges(core.AllEdges, "u", "v")
	require.NoError(t, err)
	assert.Equal(t, []string{"p1", "p3"}, got)
}

func TestEdges_StructuralEmptyShortCircuit(t *testing.T) {
	// Requesting the directed view of a purely undirected graph is an empty
	// result, not an error.
	g := core.NewUndirectedGraph()
	require.NoError(t, g.AddNode("a", nil))
	require.NoError(t, g.AddNode("b", nil))
	_, err := g.AddEdge("ab", "a", "b", nil)
	require.NoError(t, err)

	got, err := g.Edges(core.DirectedEdges)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = g.Edges(core.UndirectedEdges)
	require.NoError(t, err)
	assert.Equal(t, []string{"ab"}, got)
}

func TestEdges_ArgumentErrors(t *testing.T) {
	g := buildMixedFixture(t)

	_, err := g.Edges(core.AllEdges, "a", "b", "c")
	assert.ErrorIs(t, err, core.ErrInvalidArguments)

	_, err = g.Edges(core.EdgeKind(42), "a")
	assert.ErrorIs(t, err, core.ErrInvalidArguments)

	_, err = g.Edges(core.AllEdges, "ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	_, err = g.Edges(core.AllEdges, "a", "ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)

	assert.ErrorIs(t, g.ForEachEdge(core.AllEdges, nil), core.ErrNilCallback)
	_, _, err = g.FindEdge(core.AllEdges, nil)
	assert.ErrorIs(t, err, core.ErrNilCallback)
}

func TestForEachEdge_TupleAndNoEarlyTermination(t *testing.T) {
	g := buildMixedFixture(t)
	attrs, err := g.NodeAttributes("a")
	require.NoError(t, err)
	attrs["tag"] = "origin"

	var visits int
	err = g.ForEachEdge(core.AllEdges, func(ev core.EdgeView) {
		visits++
		if ev.Key == "ab" {
			assert.Equal(t, "a", ev.Source)
			assert.Equal(t, "b", ev.Target)
			assert.False(t, ev.Undirected)
			assert.Equal(t, "origin", ev.SourceAttributes["tag"], "live payload")
		}
		if ev.Key == "bc" {
			assert.True(t, ev.Undirected)
		}
	})
	require.NoError(t, err)
	assert.Equal(t, 4, visits, "forEach never terminates early")
}

func TestFindEdge_ShortCircuit(t *testing.T) {
	g := buildMixedFixture(t)

	var visits int
	key, found, err := g.FindEdge(core.AllEdges, func(ev core.EdgeView) bool {
		visits++
		return ev.Undirected
	})
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "bc", key)
	assert.Equal(t, 2, visits, "stops at the first match")

	_, found, err = g.FindEdge(core.AllEdges, func(core.EdgeView) bool { return false })
	require.NoError(t, err)
	assert.False(t, found)
}

func TestEdgeEntries_LazyPull(t *testing.T) {
	g := buildMixedFixture(t)

	entries, err := g.EdgeEntries(core.AllEdges)
	require.NoError(t, err)

	// Draining matches the eager shape element by element.
	var keys []string
	for ev := range entries {
		keys = append(keys, ev.Key)
	}
	assert.Equal(t, []string{"ab", "bc", "ca", "ad"}, keys)

	// Partial consumption is the point: pull once, stop, nothing else runs.
	entries, err = g.EdgeEntries(core.AllEdges)
	require.NoError(t, err)
	keys = keys[:0]
	for ev := range entries {
		keys = append(keys, ev.Key)
		break
	}
	assert.Equal(t, []string{"ab"}, keys)

	// Argument errors surface at the call, not on first pull.
	_, err = g.EdgeEntries(core.AllEdges, "ghost")
	assert.ErrorIs(t, err, core.ErrNodeNotFound)
}

func TestMapEdges(t *testing.T) {
	g := buildMixedFixture(t)

	pairs, err := core.MapEdges(g, core.UndirectedEdges, func(ev core.EdgeView) [2]string {
		return [2]string{ev.Source, ev.Target}
	})
	require.NoError(t, err)
	assert.Equal(t, [][2]string{{"b", "c"}, {"a", "d"}}, pairs)

	_, err = core.MapEdges[int](g, core.AllEdges, nil)
	assert.ErrorIs(t, err, core.ErrNilCallback)
}

func TestFilterEdges(t *testing.T) {
	g := buildMixedFixture(t)

	keys, err := g.FilterEdges(core.AllEdges, func(ev core.EdgeView) bool {
		return !ev.Undirected
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ca"}, keys)

	keys, err = g.FilterEdges(core.AllEdges, func(ev core.EdgeView) bool {
		return ev.Source == "a"
	}, "a")
	require.NoError(t, err)
	assert.Equal(t, []string{"ab", "ad"}, keys)
}

func TestReduceEdges(t *testing.T) {
	g := buildMixedFixture(t)

	count, err := core.ReduceEdges(g, core.AllEdges, func(acc int, _ core.EdgeView) int {
		return acc + 1
	}, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, count)

	joined, err := core.ReduceEdges(g, core.DirectedEdges, func(acc string, ev core.EdgeView) string {
		return acc + ev.Key
	}, "", "a")
	require.NoError(t, err)
	assert.Equal(t, "caab", joined, "accumulator follows visitation order")
}

func TestSomeEveryEdge(t *testing.T) {
	g := buildMixedFixture(t)

	some, err := g.SomeEdge(core.AllEdges, func(ev core.EdgeView) bool { return ev.Undirected })
	require.NoError(t, err)
	assert.True(t, some)

	some, err = g.SomeEdge(core.UndirectedEdges, func(ev core.EdgeView) bool { return !ev.Undirected })
	require.NoError(t, err)
	assert.False(t, some)

	every, err := g.EveryEdge(core.DirectedEdges, func(ev core.EdgeView) bool { return !ev.Undirected })
	require.NoError(t, err)
	assert.True(t, every)

	every, err = g.EveryEdge(core.AllEdges, func(ev core.EdgeView) bool { return !ev.Undirected })
	require.NoError(t, err)
	assert.False(t, every)

	// Vacuously true on an empty match set.
	empty := core.NewDirectedGraph()
	every, err = empty.EveryEdge(core.AllEdges, func(core.EdgeView) bool { return false })
	require.NoError(t, err)
	assert.True(t, every)
}

func TestEdgeKind_String(t *testing.T) {
	assert.Equal(t, "edges", core.AllEdges.String())
	assert.Equal(t, "inboundEdges", core.InboundEdges.String())
	assert.Equal(t, "unknown", core.EdgeKind(42).String())
}
