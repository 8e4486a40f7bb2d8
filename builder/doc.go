// Package builder provides deterministic graph fixtures for core.Graph:
// the topologies used to exercise clique catalogs and edge coverings in
// tests, examples and the eqcover command.
//
// Components
//
//   - Constructor and BuildGraph: compose any number of topology
//     constructors over one fresh graph, in order.
//   - Topologies (impl_*.go): Complete, Path, Cycle, Star, Wheel,
//     CompleteBipartite, Grid, PlatonicSolid, Empty, RandomSparse,
//     RandomRegular.
//   - ByName: resolve a topology by its command-line name.
//   - Functional options (BuilderOption) resolved into an immutable
//     builderConfig: ID scheme, RNG, bipartite prefixes, center label.
//   - Vertex-ID schemes (IDFn): decimal, letters, Excel columns, base-36,
//     hexadecimal, prefixed decimal.
//
// Guarantees
//
//   - Same inputs, options, seed and constructor order ⇒ identical graphs.
//   - Constructors never panic; they return errors wrapping the sentinels
//     of errors.go (check with errors.Is).
//   - Option constructors panic on meaningless input (nil IDFn, nil RNG).
//   - Graphs are simple and undirected; constructors that overlap on an
//     edge need a graph created with core.WithIdempotentEdges.
package builder
