package clique_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcover/clique"
	"github.com/katalvlaran/eqcover/core"
)

func mustGraph(t testing.TB, vertices []string, edges ...[2]string) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, v := range vertices {
		require.NoError(t, g.AddVertex(v))
	}
	for _, e := range edges {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}
	return g
}

func triangle(t testing.TB) *core.Graph {
	return mustGraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "C"})
}

// completeGraph returns K_n over vertices "v00".."v(n-1)".
func completeGraph(t testing.TB, n int) *core.Graph {
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddVertex(fmt.Sprintf("v%02d", i)))
		for j := 0; j < i; j++ {
			_, err := g.AddEdge(fmt.Sprintf("v%02d", j), fmt.Sprintf("v%02d", i))
			require.NoError(t, err)
		}
	}
	return g
}

// TestMaximal covers triangle, isolated vertices and the empty graph.
func TestMaximal(t *testing.T) {
	ms, err := clique.Maximal(triangle(t))
	require.NoError(t, err)
	assert.Equal(t, []clique.Clique{{"A", "B", "C"}}, ms)

	g := mustGraph(t, []string{"Z", "Y"}, [2]string{"A", "B"}, [2]string{"B", "C"})
	ms, err = clique.Maximal(g)
	require.NoError(t, err)
	assert.Equal(t, []clique.Clique{{"A", "B"}, {"B", "C"}, {"Y"}, {"Z"}}, ms)

	ms, err = clique.Maximal(core.NewGraph())
	require.NoError(t, err)
	assert.Empty(t, ms)

	_, err = clique.Maximal(nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

// TestBuild_Triangle pins the exact catalog order of a triangle.
func TestBuild_Triangle(t *testing.T) {
	cat, err := clique.Build(triangle(t))
	require.NoError(t, err)

	want := []clique.Clique{
		{"A", "B", "C"}, {"A", "B"}, {"A", "C"}, {"B", "C"}, {"A"}, {"B"}, {"C"},
	}
	assert.Equal(t, want, cat.Cliques())
	require.Equal(t, 7, cat.Len())

	top := cat.At(0)
	assert.EqualValues(t, 3, top.Vertices.Count())
	assert.EqualValues(t, 3, top.Edges.GetCardinality())
	assert.Len(t, top.Pairs(), 3)

	single := cat.At(6)
	assert.Equal(t, 1, single.Size())
	assert.True(t, single.Edges.IsEmpty())

	ix := cat.Index()
	assert.Equal(t, 3, ix.VertexCount())
	assert.Equal(t, 3, ix.EdgeCount())
	eid, ok := ix.EdgeOrdinal("C", "B")
	require.True(t, ok)
	assert.Equal(t, core.NewPair("B", "C"), ix.Pair(eid))
}

// TestBuild_Path checks dedupe of the shared singleton {B}.
func TestBuild_Path(t *testing.T) {
	g := mustGraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	cat, err := clique.Build(g)
	require.NoError(t, err)
	assert.Equal(t,
		[]clique.Clique{{"A", "B"}, {"B", "C"}, {"A"}, {"B"}, {"C"}},
		cat.Cliques())
}

// TestBuild_Invariants checks distinctness, ordering, completeness and
// singleton coverage on K5 plus a pendant and an isolated vertex.
func TestBuild_Invariants(t *testing.T) {
	g := completeGraph(t, 5)
	_, err := g.AddEdge("v04", "w")
	require.NoError(t, err)
	require.NoError(t, g.AddVertex("x"))

	cat, err := clique.Build(g)
	require.NoError(t, err)
	// 31 subsets of K5 + {v04,w} + {w} + {x}.
	require.Equal(t, 34, cat.Len())

	seen := make(map[string]bool)
	for i, e := range cat.Entries() {
		assert.False(t, seen[e.Clique.Key()], "duplicate %s", e.Clique)
		seen[e.Clique.Key()] = true
		if i > 0 {
			assert.LessOrEqual(t, clique.Compare(cat.At(i-1).Clique, e.Clique), 0)
		}
		assert.True(t, core.InducedBy(g, e.Clique).IsComplete(), "%s not complete", e.Clique)
		assert.EqualValues(t, e.Size(), e.Vertices.Count())
		assert.EqualValues(t, e.Size()*(e.Size()-1)/2, e.Edges.GetCardinality())
	}
	for _, v := range g.Vertices() {
		assert.True(t, seen[clique.New(v).Key()], "singleton %s missing", v)
	}
}

// TestBuild_SeparatorInVertexID keeps every singleton when an ID embeds
// bytes that could glue two other IDs together.
func TestBuild_SeparatorInVertexID(t *testing.T) {
	g := mustGraph(t, []string{"a", "b", "a\x00b", "1:a1:b"}, [2]string{"a", "b"})

	cat, err := clique.Build(g)
	require.NoError(t, err)
	assert.Equal(t,
		[]clique.Clique{{"a", "b"}, {"1:a1:b"}, {"a"}, {"a\x00b"}, {"b"}},
		cat.Cliques())
}

// TestBuild_ParallelDeterminism compares catalogs across worker counts.
func TestBuild_ParallelDeterminism(t *testing.T) {
	g := completeGraph(t, 6)
	for _, e := range [][2]string{{"v00", "a"}, {"a", "b"}, {"b", "v05"}, {"a", "v05"}} {
		_, err := g.AddEdge(e[0], e[1])
		require.NoError(t, err)
	}

	ref, err := clique.Build(g, clique.WithParallelism(1))
	require.NoError(t, err)
	for _, n := range []int{2, 4, 16} {
		cat, err := clique.Build(g, clique.WithParallelism(n))
		require.NoError(t, err)
		assert.Equal(t, ref.Cliques(), cat.Cliques(), "parallelism %d", n)
	}
}

// TestBuild_Options covers the size guard, invalid options and cancellation.
func TestBuild_Options(t *testing.T) {
	g := completeGraph(t, 4)

	_, err := clique.Build(g, clique.WithMaxCliqueSize(3))
	assert.ErrorIs(t, err, clique.ErrCliqueTooLarge)

	_, err = clique.Build(g, clique.WithMaxCliqueSize(4))
	assert.NoError(t, err)

	_, err = clique.Build(g, clique.WithMaxCliqueSize(0))
	assert.ErrorIs(t, err, clique.ErrOptionViolation)

	_, err = clique.Build(g, clique.WithParallelism(0))
	assert.ErrorIs(t, err, clique.ErrOptionViolation)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = clique.Build(completeGraph(t, 12), clique.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)

	_, err = clique.Build(nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)

	cat, err := clique.Build(core.NewGraph())
	require.NoError(t, err)
	assert.Zero(t, cat.Len())
}

// TestFromCliques covers dedupe, ordering and validation errors.
func TestFromCliques(t *testing.T) {
	g := triangle(t)

	cat, err := clique.FromCliques(g, []clique.Clique{{"C"}, {"B", "A"}, {"A", "B"}, {"A", "B", "C"}})
	require.NoError(t, err)
	assert.Equal(t, []clique.Clique{{"A", "B", "C"}, {"A", "B"}, {"C"}}, cat.Cliques())

	_, err = clique.FromCliques(g, []clique.Clique{{"A", "Q"}})
	assert.ErrorIs(t, err, clique.ErrUnknownVertex)

	path := mustGraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"})
	_, err = clique.FromCliques(path, []clique.Clique{{"A", "C"}})
	assert.ErrorIs(t, err, clique.ErrNotClique)

	_, err = clique.FromCliques(g, []clique.Clique{{}})
	assert.ErrorIs(t, err, clique.ErrEmptyClique)

	_, err = clique.FromCliques(nil, nil)
	assert.ErrorIs(t, err, clique.ErrGraphNil)
}

// TestIndex_Matches detects graphs that drifted from the snapshot.
func TestIndex_Matches(t *testing.T) {
	g := triangle(t)
	ix, err := clique.NewIndex(g)
	require.NoError(t, err)
	assert.True(t, ix.Matches(g))
	assert.True(t, ix.Matches(g.Clone()))

	assert.EqualValues(t, 3, ix.AllVertices().Count())
	assert.EqualValues(t, 3, ix.AllEdges().GetCardinality())

	other := mustGraph(t, nil, [2]string{"A", "B"}, [2]string{"B", "C"}, [2]string{"A", "D"})
	assert.False(t, ix.Matches(other))
	assert.False(t, ix.Matches(nil))

	_, err = g.AddEdge("C", "D")
	require.NoError(t, err)
	assert.False(t, ix.Matches(g))
}
