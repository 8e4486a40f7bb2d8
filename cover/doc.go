// Package cover builds and verifies clique-partition edge coverings.
//
// What
//
//   - A Round is a list of pairwise disjoint cliques whose union is every
//     vertex of the graph (singletons allowed).
//   - A Covering is a list of Rounds such that every edge lies inside some
//     clique of some round.
//   - BuildRounds(g, catalog, opts...) runs the greedy round builder over a
//     clique.Catalog; Find(g, opts...) builds the catalog first.
//   - Verify(c, g) checks that every group is a clique of g and that the
//     groups together cover every edge. VerifyPartition additionally checks
//     that each round partitions the vertex set.
//
// Greedy rule
//
//	Rounds are opened while some edge is uncovered. A round is filled while
//	some vertex is outside it. Each step takes, in catalog order:
//
//	  1. the first clique that covers a still-missing edge and shares no
//	     vertex with the round (priority pick), else
//	  2. the first clique not yet used in this round that shares no vertex
//	     with the round (filler pick).
//
//	Every singleton is in a catalog built by clique.Build, so step 2 always
//	succeeds there. A catalog without that property can exhaust both steps;
//	BuildRounds then fails with ErrNoSuitableClique, an assertion failure.
//	The builder is a heuristic: the number of rounds is not minimal.
//
// Complexity
//
//	One pick scans the catalog: O(|catalog| · (V/64 + edge-bitmap work)).
//	A round makes at most V picks; every round covers at least one new edge.
//
// Determinism
//
//	Catalog order is deterministic and the builder keeps all state in one
//	per-call value, so identical inputs always give identical coverings.
//
// Errors
//
//   - ErrGraphNil, ErrCatalogNil     nil inputs.
//   - ErrCatalogMismatch             catalog indexed over a different graph.
//   - ErrNoSuitableClique            catalog exhausted (assertion failure).
//   - ErrNotPartition                VerifyPartition found a defective round.
//   - ctx.Err()                      the context passed via WithContext is done.
//
// Verification failure is reported as false by Verify, never as an error.
package cover
