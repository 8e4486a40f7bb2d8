// File: impl_star.go
// Role: Star(n), a hub joined to n-1 leaves.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Hub is cfg.centerID; leaves are idFn(1..n-1).
//
// Complexity: O(n).

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds K_{1,n-1}. Every round of a star
// covering contains exactly one spoke, so it needs n-1 rounds.
func Star(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return tooFew(methodStar, "n", n, minStarNodes)
		}
		if err := g.AddVertex(cfg.centerID); err != nil {
			return errors.Wrapf(err, "%s: AddVertex(%s)", methodStar, cfg.centerID)
		}
		for i := 1; i < n; i++ {
			leaf := cfg.idFn(i)
			if err := addEdge(g, methodStar, cfg.centerID, leaf); err != nil {
				return err
			}
		}
		return nil
	}
}
