// File: gonum.go
// Role: core.Graph ⇄ gonum simple.UndirectedGraph.
// Determinism:
//   - Node IDs follow the sorted vertex order of core.Graph.Vertices().
// Complexity:
//   - ToGonum: O(V log V + E). FromGonum: O(V + E).

package converters

import (
	"strconv"

	"github.com/cockroachdb/errors"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/eqcover/core"
)

// Sentinel errors for conversions.
var (
	// ErrGraphNil is returned when a nil graph is passed to a converter.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrDuplicateLabel is returned when a labeling function maps two gonum
	// nodes to the same vertex ID.
	ErrDuplicateLabel = errors.New("converters: duplicate vertex label")
)

// IDMap translates between core vertex IDs and gonum node IDs.
// It is immutable after ToGonum returns.
type IDMap struct {
	ids   []string         // node ID → vertex ID
	nodes map[string]int64 // vertex ID → node ID
}

// Len returns the number of mapped vertices.
func (m *IDMap) Len() int { return len(m.ids) }

// VertexID returns the vertex ID of node id, or false if id is unmapped.
func (m *IDMap) VertexID(id int64) (string, bool) {
	if id < 0 || id >= int64(len(m.ids)) {
		return "", false
	}
	return m.ids[id], true
}

// NodeID returns the gonum node ID of vertex v, or false if v is unmapped.
func (m *IDMap) NodeID(v string) (int64, bool) {
	id, ok := m.nodes[v]
	return id, ok
}

// VertexIDs maps a gonum node slice to vertex IDs, keeping order.
// Unmapped nodes are skipped.
func (m *IDMap) VertexIDs(nodes []graph.Node) []string {
	out := make([]string, 0, len(nodes))
	for _, n := range nodes {
		if v, ok := m.VertexID(n.ID()); ok {
			out = append(out, v)
		}
	}
	return out
}

// ToGonum copies g into a new gonum undirected graph.
// Every vertex becomes a node (isolated vertices included); every edge
// becomes one undirected gonum edge.
//
// Errors:
//   - ErrGraphNil if g is nil.
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, *IDMap, error) {
	if g == nil {
		return nil, nil, ErrGraphNil
	}

	verts := g.Vertices()
	m := &IDMap{ids: verts, nodes: make(map[string]int64, len(verts))}
	u := simple.NewUndirectedGraph()
	for i, v := range verts {
		m.nodes[v] = int64(i)
		u.AddNode(simple.Node(i))
	}

	for _, p := range g.Pairs() {
		from, okF := m.nodes[p.U]
		to, okT := m.nodes[p.V]
		if !okF || !okT {
			// g was mutated between Vertices and Pairs.
			return nil, nil, errors.Wrapf(core.ErrVertexNotFound, "converters: edge %s", p)
		}
		u.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	return u, m, nil
}

// DecimalLabel renders a gonum node ID as its decimal string.
func DecimalLabel(id int64) string { return strconv.FormatInt(id, 10) }

// FromGonum copies an undirected gonum graph into a new core.Graph.
// label maps node IDs to vertex IDs; nil means DecimalLabel.
//
// Errors:
//   - ErrGraphNil if u is nil.
//   - ErrDuplicateLabel if label is not injective on u's nodes.
//   - core.ErrEmptyVertexID if label returns "".
func FromGonum(u graph.Undirected, label func(int64) string) (*core.Graph, error) {
	if u == nil {
		return nil, ErrGraphNil
	}
	if label == nil {
		label = DecimalLabel
	}

	g := core.NewGraph()
	nodes := graph.NodesOf(u.Nodes())
	names := make(map[int64]string, len(nodes))
	seen := make(map[string]int64, len(nodes))
	for _, n := range nodes {
		name := label(n.ID())
		if prev, dup := seen[name]; dup {
			return nil, errors.Wrapf(ErrDuplicateLabel, "%q for nodes %d and %d", name, prev, n.ID())
		}
		seen[name] = n.ID()
		names[n.ID()] = name
		if err := g.AddVertex(name); err != nil {
			return nil, errors.Wrapf(err, "converters: node %d", n.ID())
		}
	}

	for _, n := range nodes {
		for _, w := range graph.NodesOf(u.From(n.ID())) {
			a, b := names[n.ID()], names[w.ID()]
			if w.ID() == n.ID() || g.HasEdge(a, b) {
				continue
			}
			if _, err := g.AddEdge(a, b); err != nil {
				return nil, errors.Wrapf(err, "converters: edge %d–%d", n.ID(), w.ID())
			}
		}
	}

	return g, nil
}
