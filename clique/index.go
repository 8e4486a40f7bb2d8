// File: index.go
// Role: dense vertex and edge ordinals of one graph snapshot.
// Determinism:
//   - vertex ordinal = rank in g.Vertices(); edge ordinal = rank in g.Pairs().

package clique

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

// Index maps the vertices and edges of a graph snapshot to dense ordinals.
// Vertex sets are bitsets over vertex ordinals, edge sets are roaring
// bitmaps over edge ordinals.
type Index struct {
	vertices []string
	vertexOf map[string]uint
	pairs    []core.Pair
	edgeOf   map[core.Pair]uint32
}

// NewIndex snapshots the vertices and edges of g.
func NewIndex(g *core.Graph) (*Index, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	verts := g.Vertices()
	pairs := g.Pairs()
	ix := &Index{
		vertices: verts,
		vertexOf: make(map[string]uint, len(verts)),
		pairs:    pairs,
		edgeOf:   make(map[core.Pair]uint32, len(pairs)),
	}
	for i, v := range verts {
		ix.vertexOf[v] = uint(i)
	}
	for i, p := range pairs {
		ix.edgeOf[p] = uint32(i)
	}

	return ix, nil
}

// VertexCount returns |V| of the indexed snapshot.
func (ix *Index) VertexCount() int { return len(ix.vertices) }

// EdgeCount returns |E| of the indexed snapshot.
func (ix *Index) EdgeCount() int { return len(ix.pairs) }

// Vertex returns the vertex ID at ordinal i.
func (ix *Index) Vertex(i uint) string { return ix.vertices[i] }

// Pair returns the edge at ordinal i.
func (ix *Index) Pair(i uint32) core.Pair { return ix.pairs[i] }

// VertexOrdinal returns the ordinal of vertex id.
func (ix *Index) VertexOrdinal(id string) (uint, bool) {
	i, ok := ix.vertexOf[id]
	return i, ok
}

// EdgeOrdinal returns the ordinal of the edge joining u and v.
func (ix *Index) EdgeOrdinal(u, v string) (uint32, bool) {
	i, ok := ix.edgeOf[core.NewPair(u, v)]
	return i, ok
}

// AllVertices returns a fresh bitset with every vertex ordinal set.
func (ix *Index) AllVertices() *bitset.BitSet {
	return bitset.New(uint(len(ix.vertices))).SetAll()
}

// AllEdges returns a fresh bitmap with every edge ordinal set.
func (ix *Index) AllEdges() *roaring.Bitmap {
	b := roaring.New()
	b.AddRange(0, uint64(len(ix.pairs)))
	return b
}

// NewVertexSet returns an empty bitset sized for this index.
func (ix *Index) NewVertexSet() *bitset.BitSet {
	return bitset.New(uint(len(ix.vertices)))
}

// VertexSet returns the ordinals of c as a bitset.
//
// Errors:
//   - ErrUnknownVertex if c names a vertex outside the snapshot.
func (ix *Index) VertexSet(c Clique) (*bitset.BitSet, error) {
	bs := ix.NewVertexSet()
	for _, v := range c {
		i, ok := ix.vertexOf[v]
		if !ok {
			return nil, errors.Wrapf(ErrUnknownVertex, "%q in %s", v, c)
		}
		bs.Set(i)
	}
	return bs, nil
}

// EdgeSet returns the ordinals of every pair of c as a bitmap.
//
// Errors:
//   - ErrNotClique if some pair of c is not an edge of the snapshot.
func (ix *Index) EdgeSet(c Clique) (*roaring.Bitmap, error) {
	b := roaring.New()
	for _, p := range Pairs(c) {
		i, ok := ix.edgeOf[p]
		if !ok {
			return nil, errors.Wrapf(ErrNotClique, "%s lacks edge %s", c, p)
		}
		b.Add(i)
	}
	return b, nil
}

// Matches reports whether g currently has exactly the indexed vertices and edges.
func (ix *Index) Matches(g *core.Graph) bool {
	if g == nil || g.VertexCount() != len(ix.vertices) || g.EdgeCount() != len(ix.pairs) {
		return false
	}
	for _, v := range g.Vertices() {
		if _, ok := ix.vertexOf[v]; !ok {
			return false
		}
	}
	for _, p := range g.Pairs() {
		if _, ok := ix.edgeOf[p]; !ok {
			return false
		}
	}
	return true
}
