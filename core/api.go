// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Read-only structural summaries (density, completeness, stats).
// Policy:
//   - No mutation, no hidden state.
//   - Every exported function documents complexity and locking strategy.

package core

// Density returns 2E / (V(V-1)), the fraction of possible pairs that are edges.
// Graphs with fewer than two vertices have density 0.
//
// Complexity: O(1). Concurrency: read locks on muVert then muEdgeAdj.
func (g *Graph) Density() float64 {
	n := g.VertexCount()
	if n < 2 {
		return 0
	}

	return float64(2*g.EdgeCount()) / float64(n*(n-1))
}

// IsComplete reports whether every pair of distinct vertices is adjacent.
// Integer arithmetic keeps the check exact; the single-vertex and empty
// graphs are complete.
//
// Complexity: O(1).
func (g *Graph) IsComplete() bool {
	g.muVert.RLock()
	n := len(g.vertices)
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	m := len(g.edges)
	g.muEdgeAdj.RUnlock()

	return m == n*(n-1)/2
}

// Stats produces a read-only snapshot of catalog sizes and degree summary.
//
// Implementation:
//   - Stage 1: Acquire muVert.RLock, snapshot flags and vertex count.
//   - Stage 2: Acquire muEdgeAdj.RLock, count edges and scan degrees.
//
// Complexity: O(V). Concurrency: never holds both locks at once.
func (g *Graph) Stats() *GraphStats {
	g.muVert.RLock()
	stats := GraphStats{
		VertexCount:     len(g.vertices),
		IdempotentEdges: g.idempotentEdges,
	}
	g.muVert.RUnlock()

	g.muEdgeAdj.RLock()
	stats.EdgeCount = len(g.edges)
	for _, nbrs := range g.adjacency {
		d := len(nbrs)
		if d == 0 {
			stats.IsolatedCount++
		}
		if d > stats.MaxDegree {
			stats.MaxDegree = d
		}
	}
	g.muEdgeAdj.RUnlock()

	if n := stats.VertexCount; n >= 2 {
		stats.Density = float64(2*stats.EdgeCount) / float64(n*(n-1))
	}

	return &stats
}
