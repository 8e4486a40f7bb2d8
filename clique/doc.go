// Package clique enumerates the cliques of a core.Graph and arranges them in
// the prioritized Catalog consumed by the cover round builder.
//
// What
//
//   - Clique: an immutable, canonical (sorted, duplicate-free) set of vertex IDs.
//     Equality and deduplication are by content, never by identity.
//   - Index: dense ordinals for vertices (bitset positions) and edges
//     (roaring bitmap positions) of one graph.
//   - Maximal(g): the maximal cliques of g via gonum's Bron–Kerbosch.
//     Isolated vertices are reported as singleton cliques.
//   - Build(g, opts...): every non-empty subset of every maximal clique,
//     deduplicated, sorted, with per-entry vertex and edge sets precomputed.
//   - FromCliques(g, cliques): the same Catalog over an explicit clique list.
//
// Catalog order
//
//	Entries are sorted by size, largest first. Ties are broken by comparing
//	the canonical vertex-ID sequences lexicographically. The order is a pure
//	function of the graph; it does not depend on map iteration or on how the
//	parallel expansion was scheduled.
//
//	Triangle A–B–C: {A,B,C} {A,B} {A,C} {B,C} {A} {B} {C}
//
// Complexity
//
//	For maximal cliques of sizes k1..km the catalog holds up to Σ(2^ki − 1)
//	entries. The expansion is exponential in clique size; WithMaxCliqueSize
//	bounds it explicitly and fails fast with ErrCliqueTooLarge.
//
// Concurrency
//
//	Expansion and per-entry precomputation run on an errgroup bounded by
//	WithParallelism (default GOMAXPROCS). A Catalog is immutable once built
//	and safe for concurrent readers.
//
// Errors
//
//   - ErrGraphNil         nil graph.
//   - ErrCliqueTooLarge   a maximal clique exceeds the configured size bound.
//   - ErrUnknownVertex    FromCliques got a vertex absent from the graph.
//   - ErrNotClique        FromCliques got a group with a non-adjacent pair.
//   - ErrEmptyClique      FromCliques got an empty group.
//   - ErrOptionViolation  invalid Option (non-positive parallelism or size bound).
//   - ctx.Err()           when the context passed via WithContext is done.
package clique
