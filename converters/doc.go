// Package converters provides two-way adapters between core.Graph and the
// gonum graph model (gonum.org/v1/gonum/graph).
//
// core.Graph identifies vertices by string; gonum identifies nodes by int64.
// ToGonum assigns node IDs 0..n−1 in sorted vertex order and returns an IDMap
// that translates in both directions, so results computed on the gonum side
// (cliques, components, orderings) can be mapped back to vertex IDs.
//
// Use converters to run gonum algorithms (for example topo.BronKerbosch)
// against graphs built with core and builder.
package converters
