// File: impl_bipartite.go
// Role: CompleteBipartite(n1, n2) = K_{n1,n2}.
//
// Contract:
//   - n1, n2 ≥ 1 (else ErrTooFewVertices).
//   - Left IDs leftPrefix+i, right IDs rightPrefix+j; edges left-major.
//
// Complexity: O(n1+n2) vertices + O(n1·n2) edges.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodCompleteBipartite = "CompleteBipartite"
	minPartitionSize        = 1
)

// CompleteBipartite returns a Constructor that builds K_{n1,n2}. The graph
// is triangle-free, so every catalog clique is an edge or a singleton.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n1 < minPartitionSize || n2 < minPartitionSize {
			return errors.Wrapf(ErrTooFewVertices, "%s: n1=%d, n2=%d (each must be ≥ %d)",
				methodCompleteBipartite, n1, n2, minPartitionSize)
		}
		left, err := addVertices(g, methodCompleteBipartite, n1, SymbolNumberIDFn(cfg.leftPrefix))
		if err != nil {
			return err
		}
		right, err := addVertices(g, methodCompleteBipartite, n2, SymbolNumberIDFn(cfg.rightPrefix))
		if err != nil {
			return err
		}
		for _, u := range left {
			for _, v := range right {
				if err = addEdge(g, methodCompleteBipartite, u, v); err != nil {
					return err
				}
			}
		}
		return nil
	}
}
