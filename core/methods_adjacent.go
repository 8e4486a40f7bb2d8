// File: methods_adjacent.go
// Role: Neighborhood APIs (NeighborIDs, AdjacencyList) and adjacency helpers.
// Determinism:
//   - NeighborIDs() returns unique IDs sorted lex asc.
//   - AdjacencyList() returns per-vertex neighbor slices sorted lex asc.
// Concurrency:
//   - Read operations hold muVert and muEdgeAdj read locks (in that order).
//   - Helpers are called only under the muEdgeAdj write lock by mutating code.

package core

import "sort"

// NeighborIDs returns the sorted IDs of all vertices adjacent to id.
//
// Errors:
//   - ErrEmptyVertexID: if id == "".
//   - ErrVertexNotFound: if the vertex does not exist.
//
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if id == "" {
		return nil, ErrEmptyVertexID
	}

	g.muVert.RLock()
	defer g.muVert.RUnlock()
	if _, ok := g.vertices[id]; !ok {
		return nil, ErrVertexNotFound
	}

	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	ids := make([]string, 0, len(g.adjacency[id]))
	for nbr := range g.adjacency[id] {
		ids = append(ids, nbr)
	}
	sort.Strings(ids)

	return ids, nil
}

// AdjacencyList returns vertex ID → sorted neighbor IDs for every vertex,
// isolated vertices included with an empty slice. Returned slices are
// independent of graph storage.
// Complexity: O(V + E log Δ).
func (g *Graph) AdjacencyList() map[string][]string {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	result := make(map[string][]string, len(g.adjacency))
	for from, nbrs := range g.adjacency {
		buf := make([]string, 0, len(nbrs))
		for to := range nbrs {
			buf = append(buf, to)
		}
		sort.Strings(buf)
		result[from] = buf
	}

	return result
}

// ensureAdjacency creates the adjacency bucket of id if missing.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, id string) {
	if g.adjacency[id] == nil {
		g.adjacency[id] = make(map[string]string)
	}
}

// removeAdjacency unlinks e from both endpoint buckets.
// Caller must hold muEdgeAdj for writing.
func removeAdjacency(g *Graph, e *Edge) {
	delete(g.adjacency[e.From], e.To)
	delete(g.adjacency[e.To], e.From)
}
