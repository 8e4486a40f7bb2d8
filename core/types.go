// Package core defines the central Graph, Vertex, Edge and Pair types,
// and provides thread-safe primitives for building, querying, and cloning graphs.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for vertices,
// muEdgeAdj for edges and adjacency), so graphs can be built across goroutines
// with minimal contention. Lock order is always muVert -> muEdgeAdj.
package core

import (
	"sync"

	"github.com/cockroachdb/errors"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted; simple graphs have none.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Vertex represents a node in the graph.
//
// Metadata stores arbitrary key-value data and is shared on clones.
type Vertex struct {
	// ID is the unique identifier for this Vertex.
	ID string

	// Metadata stores arbitrary user data. It is not deep-copied by Clone.
	Metadata map[string]interface{}
}

// Edge represents an unordered connection between two distinct vertices.
// From < To always holds for edges stored in a Graph.
type Edge struct {
	// ID uniquely identifies this edge in the Graph ("e1", "e2", ...).
	ID string

	// From is the lexicographically smaller endpoint.
	From string

	// To is the lexicographically larger endpoint.
	To string
}

// Pair returns the canonical unordered endpoint pair of e.
func (e *Edge) Pair() Pair { return Pair{U: e.From, V: e.To} }

// Pair is a canonical unordered vertex pair: U < V.
// Two pairs built from the same endpoints in any order compare equal with ==,
// so Pair is usable as a map key for edge sets.
type Pair struct {
	U, V string
}

// NewPair returns the canonical pair of a and b.
func NewPair(a, b string) Pair {
	if b < a {
		a, b = b, a
	}
	return Pair{U: a, V: b}
}

// Less orders pairs by (U, V).
func (p Pair) Less(q Pair) bool {
	if p.U != q.U {
		return p.U < q.U
	}
	return p.V < q.V
}

// String renders the pair as "U–V".
func (p Pair) String() string { return p.U + "–" + p.V }

// GraphOption configures behavior of a Graph before creation.
type GraphOption func(g *Graph)

// WithIdempotentEdges makes AddEdge on an already connected pair return the
// existing edge ID instead of ErrMultiEdgeNotAllowed. Useful when composing
// several fixtures that share edges.
func WithIdempotentEdges() GraphOption {
	return func(g *Graph) { g.idempotentEdges = true }
}

// Graph is an in-memory undirected simple graph.
//
// muVert protects the vertex catalog; muEdgeAdj protects the edge catalog
// and adjacency. nextEdgeID is an atomic counter for Edge.ID generation.
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edges and adjacency

	idempotentEdges bool // AddEdge on an existing pair is a no-op

	nextEdgeID uint64             // atomic edge ID generator
	vertices   map[string]*Vertex // vertex ID → Vertex
	edges      map[string]*Edge   // edge ID → Edge

	// adjacency[u][v] = edge ID, mirrored for both endpoints.
	adjacency map[string]map[string]string
}

// GraphStats is a read-only snapshot returned by Stats.
type GraphStats struct {
	VertexCount     int
	EdgeCount       int
	IsolatedCount   int     // vertices with degree 0
	MaxDegree       int     // largest vertex degree
	Density         float64 // 2E / (V(V-1)), 0 for V < 2
	IdempotentEdges bool
}

// NewGraph creates an empty undirected simple Graph.
// Complexity: O(1).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[string]*Vertex),
		edges:     make(map[string]*Edge),
		adjacency: make(map[string]map[string]string),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
