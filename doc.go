// Package eqcover covers the edges of a simple undirected graph with rounds
// of vertex-disjoint cliques.
//
// A covering is a sequence of rounds. Each round partitions the vertex set
// into groups that are complete in the graph, and every edge lies inside some
// group of some round. Isolated vertices and leftovers travel as singletons.
//
// Layout
//
//	core/       — thread-safe simple undirected Graph, canonical Pair, induced views
//	subset/     — power-set enumeration in bitmask order
//	converters/ — core.Graph ⇄ gonum simple.UndirectedGraph
//	clique/     — maximal cliques (Bron–Kerbosch) and the full clique Catalog
//	cover/      — Round Builder (Find, BuildRounds) and the Verifier
//	builder/    — deterministic graph fixtures (complete, path, star, random, …)
//	logger/     — go-logging factory and the --log flag
//	cmd/eqcover — command line front end over builder + cover
//
// Quick start
//
//	g := core.NewGraph()
//	_, _ = g.AddEdge("A", "B")
//	_, _ = g.AddEdge("B", "C")
//	cov, err := cover.Find(g)
//	// cov == [[{A,B} {C}] [{B,C} {A}]]
//	ok := cover.Verify(cov, g) // true
//
// The covering is deterministic: catalog order is size descending then
// lexicographic, and each round takes the first catalog entry that fits.
// It is not guaranteed to use the fewest rounds.
package eqcover
