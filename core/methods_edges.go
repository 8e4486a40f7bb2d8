// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/EdgeBetween/GetEdge/
//       Edges/Pairs/EdgeCount, plus nextEdgeID().
// Determinism:
//   - Edges() and Pairs() are sorted by (From, To).
//   - nextEdgeID() is monotonic and stable ("e" + decimal).
// Concurrency:
//   - Mutations under muEdgeAdj write lock; queries under its read lock.

package core

import (
	"sort"
	"strconv"
	"sync/atomic"
)

// edgeIDPrefix is the textual prefix of edge identifiers ("e1", "e2", ...).
const edgeIDPrefix = 'e'

// AddEdge connects two distinct vertices, creating missing endpoints.
//
// Steps:
//  1. Validate IDs and reject self-loops.
//  2. Canonicalize the endpoints (From < To).
//  3. Ensure endpoints via AddVertex.
//  4. Lock muEdgeAdj, check the parallel-edge constraint.
//  5. Generate the edge ID atomically, store, and mirror adjacency.
//
// Errors:
//   - ErrEmptyVertexID, ErrLoopNotAllowed.
//   - ErrMultiEdgeNotAllowed when the pair is already connected and the graph
//     was not created WithIdempotentEdges.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(from, to string) (string, error) {
	if from == "" || to == "" {
		return "", ErrEmptyVertexID
	}
	if from == to {
		return "", ErrLoopNotAllowed
	}
	p := NewPair(from, to)

	if err := g.AddVertex(p.U); err != nil {
		return "", err
	}
	if err := g.AddVertex(p.V); err != nil {
		return "", err
	}

	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	if eid, ok := g.adjacency[p.U][p.V]; ok {
		if g.idempotentEdges {
			return eid, nil
		}
		return "", ErrMultiEdgeNotAllowed
	}

	eid := nextEdgeID(g)
	g.edges[eid] = &Edge{ID: eid, From: p.U, To: p.V}
	ensureAdjacency(g, p.U)
	ensureAdjacency(g, p.V)
	g.adjacency[p.U][p.V] = eid
	g.adjacency[p.V][p.U] = eid

	return eid, nil
}

// RemoveEdge deletes one edge and its mirrored adjacency.
//
// Errors:
//   - ErrEdgeNotFound if eid is unknown.
//
// Complexity: O(1).
func (g *Graph) RemoveEdge(eid string) error {
	g.muEdgeAdj.Lock()
	defer g.muEdgeAdj.Unlock()

	e, ok := g.edges[eid]
	if !ok {
		return ErrEdgeNotFound
	}
	delete(g.edges, eid)
	removeAdjacency(g, e)

	return nil
}

// HasEdge reports whether u and v are adjacent. Symmetric; false for u == v.
// Complexity: O(1).
func (g *Graph) HasEdge(u, v string) bool {
	if u == "" || v == "" || u == v {
		return false
	}
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	_, ok := g.adjacency[u][v]

	return ok
}

// EdgeBetween returns the edge joining u and v.
//
// Errors:
//   - ErrEdgeNotFound when the vertices are not adjacent.
//
// Complexity: O(1).
func (g *Graph) EdgeBetween(u, v string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	eid, ok := g.adjacency[u][v]
	if !ok || u == v {
		return nil, ErrEdgeNotFound
	}

	return g.edges[eid], nil
}

// GetEdge returns the Edge with the given ID, or ErrEdgeNotFound.
// The returned *Edge must be treated as read-only.
func (g *Graph) GetEdge(edgeID string) (*Edge, error) {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()
	e, ok := g.edges[edgeID]
	if !ok {
		return nil, ErrEdgeNotFound
	}

	return e, nil
}

// Edges returns all edges sorted by (From, To).
// Complexity: O(E log E).
func (g *Graph) Edges() []*Edge {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make([]*Edge, 0, len(g.edges))
	var e *Edge
	for _, e = range g.edges {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pair().Less(out[j].Pair()) })

	return out
}

// Pairs returns the canonical endpoint pairs of all edges sorted by (U, V).
// Complexity: O(E log E).
func (g *Graph) Pairs() []Pair {
	edges := g.Edges()
	out := make([]Pair, len(edges))
	for i, e := range edges {
		out[i] = e.Pair()
	}

	return out
}

// EdgeCount returns the total number of edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.edges)
}

// nextEdgeID returns a new unique textual edge ID without fmt allocations.
// Safe for concurrent callers; the counter is advanced atomically.
func nextEdgeID(g *Graph) string {
	n := atomic.AddUint64(&g.nextEdgeID, 1)
	buf := make([]byte, 0, 1+20) // "e" + up to 20 digits for uint64
	buf = append(buf, edgeIDPrefix)
	buf = strconv.AppendUint(buf, n, 10)

	return string(buf)
}
