// File: verify.go
// Role: covering verification and summary statistics.

package cover

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/clique"
	"github.com/katalvlaran/eqcover/core"
)

// Verify reports whether c is a valid edge covering of g:
//
//  1. every group induces, in g, either a single existing vertex or a
//     complete subgraph; empty groups and unknown vertices are invalid;
//  2. the groups together contain every edge of g.
//
// Verify does not check that rounds are vertex partitions; see VerifyPartition.
// A nil graph never verifies. The empty covering verifies exactly when g has
// no edges.
//
// Complexity: O(Σ_groups (V + E)) for the induced views.
func Verify(c Covering, g *core.Graph) bool {
	if g == nil {
		return false
	}
	ix, err := clique.NewIndex(g)
	if err != nil {
		return false
	}

	covered := roaring.New()
	for _, r := range c {
		for _, grp := range r {
			if len(grp) == 0 {
				return false
			}
			for _, v := range grp {
				if !g.HasVertex(v) {
					return false
				}
			}
			sub := core.InducedBy(g, grp)
			if sub.VertexCount() != 1 && !sub.IsComplete() {
				return false
			}
			for _, p := range sub.Pairs() {
				if i, ok := ix.EdgeOrdinal(p.U, p.V); ok {
					covered.Add(i)
				}
			}
		}
	}

	return covered.GetCardinality() == uint64(g.EdgeCount())
}

// VerifyPartition checks that every round of c holds each vertex of g exactly
// once and nothing else.
//
// Errors:
//   - ErrGraphNil if g is nil.
//   - ErrNotPartition naming the round and the offending vertex.
func VerifyPartition(c Covering, g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	ix, err := clique.NewIndex(g)
	if err != nil {
		return err
	}
	all := ix.AllVertices()
	for ri, r := range c {
		seen := ix.NewVertexSet()
		for _, grp := range r {
			for _, v := range grp {
				i, ok := ix.VertexOrdinal(v)
				switch {
				case !ok:
					return errors.Wrapf(ErrNotPartition, "round %d: unknown vertex %q", ri, v)
				case seen.Test(i):
					return errors.Wrapf(ErrNotPartition, "round %d: vertex %q placed twice", ri, v)
				}
				seen.Set(i)
			}
		}
		if i, missing := all.Difference(seen).NextSet(0); missing {
			return errors.Wrapf(ErrNotPartition, "round %d: vertex %q missing", ri, ix.Vertex(i))
		}
	}

	return nil
}

// Summarize returns structural statistics of c.
func Summarize(c Covering) Stats {
	s := Stats{Rounds: len(c)}
	for _, r := range c {
		s.Groups += len(r)
		for _, grp := range r {
			if len(grp) > s.LargestGroup {
				s.LargestGroup = len(grp)
			}
			if len(grp) == 1 {
				s.Singletons++
			}
		}
	}
	return s
}
