// File: impl_path.go
// Role: Path(n), the simple path P_n.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices).
//   - Edges idFn(i-1)–idFn(i) for i = 1..n-1.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/eqcover/core"

const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path returns a Constructor that builds P_n.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minPathNodes {
			return tooFew(methodPath, "n", n, minPathNodes)
		}
		ids, err := addVertices(g, methodPath, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err = addEdge(g, methodPath, ids[i-1], ids[i]); err != nil {
				return err
			}
		}
		return nil
	}
}
