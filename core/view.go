// File: view.go
// Role: Non-mutating graph views.
// Determinism:
//   - Preserves vertex and edge IDs.
// Concurrency:
//   - Read locks on source; result is a fresh graph instance.

package core

import "sync/atomic"

// InducedSubgraph returns a new Graph induced by the set "keep" of vertex IDs:
// the result contains only vertices v where keep[v] is true and present in g,
// and all edges whose endpoints are both kept. The input graph is not mutated.
// Edge IDs are preserved, so edges of the view can be matched against g.
//
// Complexity: O(V + E). Concurrency: read locks on source, held together.
func InducedSubgraph(g *Graph, keep map[string]bool) *Graph {
	out := NewGraph()

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out.idempotentEdges = g.idempotentEdges
	var id string
	var v *Vertex
	for id, v = range g.vertices {
		if keep[id] {
			out.vertices[id] = &Vertex{ID: v.ID, Metadata: v.Metadata}
			out.adjacency[id] = make(map[string]string)
		}
	}

	// Carry the counter forward so AddEdge on the view never reuses a source ID.
	srcNextEdgeID := atomic.LoadUint64(&g.nextEdgeID)
	var eid string
	var e *Edge
	for eid, e = range g.edges {
		if !keep[e.From] || !keep[e.To] {
			continue
		}
		out.edges[eid] = &Edge{ID: eid, From: e.From, To: e.To}
		out.adjacency[e.From][e.To] = eid
		out.adjacency[e.To][e.From] = eid
	}
	atomic.StoreUint64(&out.nextEdgeID, srcNextEdgeID)

	return out
}

// InducedBy is InducedSubgraph over an explicit vertex list.
func InducedBy(g *Graph, ids []string) *Graph {
	keep := make(map[string]bool, len(ids))
	for _, id := range ids {
		keep[id] = true
	}

	return InducedSubgraph(g, keep)
}
