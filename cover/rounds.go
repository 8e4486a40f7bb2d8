// File: rounds.go
// Role: greedy round builder (BuildRounds) and the one-shot Find.
// Determinism:
//   - Picks follow catalog order; no map iteration on the hot path.
// Concurrency:
//   - Sequential. All mutable state lives in one roundBuilder per call.

package cover

import (
	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/clique"
	"github.com/katalvlaran/eqcover/core"
)

// noPick marks an empty candidate slot.
const noPick = -1

// roundBuilder encapsulates the mutable state of one BuildRounds call.
type roundBuilder struct {
	opts Options
	cat  *clique.Catalog
	ix   *clique.Index

	allEdges *roaring.Bitmap // E
	covered  *roaring.Bitmap // edges inside some chosen clique so far

	// per-round state
	round    Round
	roundIdx int
	inRound  *bitset.BitSet // vertex ordinals already placed in the round
	used     *bitset.BitSet // catalog positions chosen in the round
}

// Find computes a covering of g from scratch: clique.Build followed by
// BuildRounds. Catalog options are passed via WithCatalogOptions.
func Find(g *core.Graph, opts ...Option) (Covering, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := resolve(opts)
	catOpts := append([]clique.Option{clique.WithContext(o.Ctx)}, o.CatalogOptions...)
	cat, err := clique.Build(g, catOpts...)
	if err != nil {
		return nil, errors.Wrap(err, "cover: building catalog")
	}
	if o.Logger != nil {
		o.Logger.Debugf("catalog: %d cliques over %d vertices, %d edges",
			cat.Len(), cat.Index().VertexCount(), cat.Index().EdgeCount())
	}

	return BuildRounds(g, cat, opts...)
}

// BuildRounds produces rounds until every edge of g is covered.
//
// Steps per pick:
//  1. missing = E − covered.
//  2. Scan the catalog once: stop at the first entry disjoint from the round
//     whose edges meet missing; remember the first disjoint unused entry.
//  3. Take the priority entry if found, else the filler entry, else fail.
//  4. Mark the entry used, add its vertices to the round and its edges to covered.
//
// A graph without edges yields an empty Covering. No partial covering is
// returned on error.
//
// Errors: ErrGraphNil, ErrCatalogNil, ErrCatalogMismatch,
// ErrNoSuitableClique (assertion failure), ctx.Err().
func BuildRounds(g *core.Graph, cat *clique.Catalog, opts ...Option) (Covering, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if cat == nil {
		return nil, ErrCatalogNil
	}
	ix := cat.Index()
	if !ix.Matches(g) {
		return nil, errors.Wrapf(ErrCatalogMismatch, "catalog over %d vertices/%d edges, graph has %d/%d",
			ix.VertexCount(), ix.EdgeCount(), g.VertexCount(), g.EdgeCount())
	}

	b := &roundBuilder{
		opts:     resolve(opts),
		cat:      cat,
		ix:       ix,
		allEdges: ix.AllEdges(),
		covered:  roaring.New(),
	}

	return b.run()
}

// run opens rounds while some edge is uncovered.
func (b *roundBuilder) run() (Covering, error) {
	total := uint64(b.ix.EdgeCount())
	var out Covering
	for b.covered.GetCardinality() < total {
		b.startRound(len(out))
		if err := b.fillRound(); err != nil {
			return nil, err
		}
		out = append(out, b.round)
		b.opts.OnRound(b.roundIdx, b.round)
		if l := b.opts.Logger; l != nil {
			l.Infof("round %d: %d groups, %d/%d edges covered",
				b.roundIdx, len(b.round), b.covered.GetCardinality(), total)
		}
	}

	return out, nil
}

func (b *roundBuilder) startRound(i int) {
	b.round = nil
	b.roundIdx = i
	b.inRound = b.ix.NewVertexSet()
	b.used = bitset.New(uint(b.cat.Len()))
}

// fillRound picks cliques until the round holds every vertex.
func (b *roundBuilder) fillRound() error {
	n := uint(b.ix.VertexCount())
	for b.inRound.Count() < n {
		select {
		case <-b.opts.Ctx.Done():
			return errors.Wrapf(b.opts.Ctx.Err(), "cover: round %d", b.roundIdx)
		default:
		}

		pos, priority := b.pick()
		if pos == noPick {
			err := errors.Newf("round %d: %d of %d vertices placed, %d edges missing",
				b.roundIdx, b.inRound.Count(), n, b.ix.EdgeCount()-int(b.covered.GetCardinality()))
			return errors.WithAssertionFailure(errors.Mark(err, ErrNoSuitableClique))
		}
		b.take(pos, priority)
	}

	return nil
}

// pick returns the catalog position to take next and whether it is a
// priority pick, or noPick.
func (b *roundBuilder) pick() (int, bool) {
	missing := roaring.AndNot(b.allEdges, b.covered)
	filler := noPick
	for i, e := range b.cat.Entries() {
		if e.Vertices.IntersectionCardinality(b.inRound) != 0 {
			continue
		}
		if e.Edges.Intersects(missing) {
			return i, true
		}
		if filler == noPick && !b.used.Test(uint(i)) {
			filler = i
		}
	}

	return filler, false
}

// take records entry pos as part of the current round.
func (b *roundBuilder) take(pos int, priority bool) {
	e := b.cat.At(pos)
	b.used.Set(uint(pos))
	b.inRound.InPlaceUnion(e.Vertices)
	b.covered.Or(e.Edges)
	b.round = append(b.round, e.Clique)

	b.opts.OnPick(b.roundIdx, e.Clique, priority)
	if l := b.opts.Logger; l != nil {
		l.Debugf("round %d: took %s (priority=%t)", b.roundIdx, e.Clique, priority)
	}
}
