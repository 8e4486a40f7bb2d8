package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcover/core"
)

// diamond builds A–B, A–C, B–C, B–D, C–D (two triangles sharing B–C).
func diamond(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for _, p := range [][2]string{{"A", "B"}, {"A", "C"}, {"B", "C"}, {"B", "D"}, {"C", "D"}} {
		_, err := g.AddEdge(p[0], p[1])
		require.NoError(t, err)
	}
	return g
}

// TestInducedSubgraph keeps only edges with both endpoints selected and preserves IDs.
func TestInducedSubgraph(t *testing.T) {
	g := diamond(t)

	sub := core.InducedBy(g, []string{"A", "B", "C"})
	assert.Equal(t, []string{"A", "B", "C"}, sub.Vertices())
	assert.Equal(t, 3, sub.EdgeCount())
	assert.True(t, sub.IsComplete())
	assert.InDelta(t, 1.0, sub.Density(), 1e-12)

	for _, e := range sub.Edges() {
		orig, err := g.GetEdge(e.ID)
		require.NoError(t, err)
		assert.Equal(t, orig.Pair(), e.Pair())
	}

	// A and D are not adjacent: the induced graph is not complete.
	sub = core.InducedBy(g, []string{"A", "D"})
	assert.Equal(t, 2, sub.VertexCount())
	assert.False(t, sub.IsComplete())
	assert.Zero(t, sub.Density())

	// Unknown vertices are ignored.
	sub = core.InducedBy(g, []string{"A", "ghost"})
	assert.Equal(t, []string{"A"}, sub.Vertices())

	// The source is not mutated, and new edges on the view get fresh IDs.
	_, err := sub.AddEdge("A", "Q")
	require.NoError(t, err)
	assert.False(t, g.HasVertex("Q"))
}

// TestDensityAndStats checks structural summaries.
func TestDensityAndStats(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.AddVertex("E"))

	st := g.Stats()
	assert.Equal(t, 5, st.VertexCount)
	assert.Equal(t, 5, st.EdgeCount)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.Equal(t, 3, st.MaxDegree)
	assert.InDelta(t, 0.5, st.Density, 1e-12)
	assert.InDelta(t, 0.5, g.Density(), 1e-12)
	assert.False(t, g.IsComplete())

	single := core.NewGraph()
	require.NoError(t, single.AddVertex("A"))
	assert.True(t, single.IsComplete())
	assert.Zero(t, single.Density())
	assert.True(t, core.NewGraph().IsComplete())
}
