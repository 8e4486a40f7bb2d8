// Package core provides the thread-safe, in-memory undirected simple graph
// that every other eqcover package operates on.
//
// The Graph G = (V,E) models a pairwise compatibility relation:
//
//   - Vertices are identified by non-empty strings.
//   - Edges are unordered: AddEdge("A","B") and AddEdge("B","A") denote the same edge,
//     and the stored Edge always has From < To.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges (ErrMultiEdgeNotAllowed,
//     unless the graph was created WithIdempotentEdges, in which case re-adding an
//     existing pair returns the existing edge ID).
//   - Every edge receives a monotonic textual ID ("e1", "e2", ...).
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency (muEdgeAdj).
//
// Determinism:
//
//	Vertices() is sorted lexicographically, Edges() and Pairs() are sorted by
//	(From, To), NeighborIDs() is sorted. Algorithms built on core rely on these
//	orders for reproducible output.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id string) error            // O(1)
//	HasVertex(id string) bool             // O(1)
//	RemoveVertex(id string) error         // O(deg(v))
//
//	// Edge lifecycle
//	AddEdge(from, to string) (string, error) // O(1)
//	RemoveEdge(edgeID string) error          // O(1)
//	HasEdge(u, v string) bool                // O(1), symmetric
//	EdgeBetween(u, v string) (*Edge, error)  // O(1)
//
//	// Query
//	Vertices() []string        // O(V log V)
//	Edges() []*Edge            // O(E log E)
//	Pairs() []Pair             // O(E log E)
//	NeighborIDs(id) ([]string, error)
//	Degree(id) (int, error)
//	VertexCount(), EdgeCount() // O(1)
//
//	// Views and statistics
//	InducedSubgraph(g, keep) *Graph
//	Clone() *Graph
//	Density() float64, IsComplete() bool, Stats() *GraphStats
//
// Errors:
//
//	ErrEmptyVertexID       – zero-length vertex ID
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – AddEdge(v, v)
//	ErrMultiEdgeNotAllowed – second edge between the same pair
package core
