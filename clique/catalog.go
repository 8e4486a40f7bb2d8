// File: catalog.go
// Role: Catalog construction (expand → dedupe → sort → precompute) and accessors.
// Determinism:
//   - Worker results land in per-index slots; merge and sort are sequential.
// Concurrency:
//   - errgroup bounded by Options.Parallelism; the result is immutable.

package clique

import (
	"context"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"
	"github.com/cockroachdb/errors"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/eqcover/core"
	"github.com/katalvlaran/eqcover/subset"
)

// ctxCheckEvery is how many subsets a worker emits between context checks.
const ctxCheckEvery = 1024

// Entry is one catalog clique with its precomputed vertex and edge sets.
type Entry struct {
	// Clique is the canonical vertex group.
	Clique Clique

	// Vertices holds the vertex ordinals of Clique.
	Vertices *bitset.BitSet

	// Edges holds the edge ordinals of every pair in Clique.
	Edges *roaring.Bitmap
}

// Size returns the number of vertices of the entry.
func (e Entry) Size() int { return len(e.Clique) }

// Pairs returns the vertex pairs covered by the entry.
func (e Entry) Pairs() []core.Pair { return Pairs(e.Clique) }

// Catalog is the ordered, duplicate-free list of candidate cliques of a graph.
type Catalog struct {
	index   *Index
	entries []Entry
}

// Build computes the full clique catalog of g.
//
// Steps:
//  1. Maximal(g), rejecting any clique larger than MaxCliqueSize.
//  2. Expand every maximal clique into its non-empty subsets, in parallel.
//  3. Deduplicate by Clique.Key and sort with Compare.
//  4. Precompute vertex bitsets and edge bitmaps, in parallel.
//
// Errors: ErrGraphNil, ErrOptionViolation, ErrCliqueTooLarge, ctx.Err().
func Build(g *core.Graph, opts ...Option) (*Catalog, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	ix, err := NewIndex(g)
	if err != nil {
		return nil, err
	}

	maximal, err := Maximal(g)
	if err != nil {
		return nil, err
	}
	for _, m := range maximal {
		if m.Size() > o.MaxCliqueSize {
			return nil, errors.Wrapf(ErrCliqueTooLarge, "%d vertices > max=%d", m.Size(), o.MaxCliqueSize)
		}
	}

	expanded, err := expand(o.Ctx, maximal, o.Parallelism)
	if err != nil {
		return nil, err
	}

	return assemble(o.Ctx, ix, merge(expanded), o.Parallelism)
}

// FromCliques builds a Catalog over an explicit list of cliques of g.
// Duplicates are removed and the catalog order is applied; the input list
// is not required to contain every subset or every singleton.
//
// Errors: ErrGraphNil, ErrEmptyClique, ErrUnknownVertex, ErrNotClique.
func FromCliques(g *core.Graph, cliques []Clique) (*Catalog, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ix, err := NewIndex(g)
	if err != nil {
		return nil, err
	}
	canon := make([]Clique, 0, len(cliques))
	for i, c := range cliques {
		if len(c) == 0 {
			return nil, errors.Wrapf(ErrEmptyClique, "at position %d", i)
		}
		canon = append(canon, New(c...))
	}

	return assemble(context.Background(), ix, merge([][]Clique{canon}), 1)
}

// expand returns, per maximal clique, all of its non-empty subsets.
func expand(ctx context.Context, maximal []Clique, workers int) ([][]Clique, error) {
	out := make([][]Clique, len(maximal))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, m := range maximal {
		i, m := i, m
		eg.Go(func() error {
			subs := make([]Clique, 0)
			var cerr error
			err := subset.Each(m, false, func(s []string) bool {
				// m is canonical, so every subset in bitmask order is too.
				subs = append(subs, Clique(s))
				if len(subs)%ctxCheckEvery == 0 {
					if cerr = ctx.Err(); cerr != nil {
						return false
					}
				}
				return true
			})
			if err != nil {
				return err
			}
			if cerr != nil {
				return cerr
			}
			out[i] = subs
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

// merge deduplicates by content and returns the cliques in catalog order.
func merge(groups [][]Clique) []Clique {
	seen := make(map[string]struct{})
	var out []Clique
	for _, g := range groups {
		for _, c := range g {
			k := c.Key()
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			out = append(out, c)
		}
	}
	sortCliques(out)

	return out
}

// assemble precomputes the entry sets and wraps them in a Catalog.
func assemble(ctx context.Context, ix *Index, cliques []Clique, workers int) (*Catalog, error) {
	entries := make([]Entry, len(cliques))
	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(workers)
	for i, c := range cliques {
		i, c := i, c
		eg.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			vs, err := ix.VertexSet(c)
			if err != nil {
				return err
			}
			es, err := ix.EdgeSet(c)
			if err != nil {
				return err
			}
			entries[i] = Entry{Clique: c, Vertices: vs, Edges: es}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return &Catalog{index: ix, entries: entries}, nil
}

// Len returns the number of entries.
func (c *Catalog) Len() int { return len(c.entries) }

// At returns entry i in catalog order.
func (c *Catalog) At(i int) Entry { return c.entries[i] }

// Entries returns the entries in catalog order. The slice is shared; do not modify.
func (c *Catalog) Entries() []Entry { return c.entries }

// Cliques returns the cliques in catalog order.
func (c *Catalog) Cliques() []Clique {
	out := make([]Clique, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.Clique
	}
	return out
}

// Index returns the vertex/edge index the catalog was built over.
func (c *Catalog) Index() *Index { return c.index }
