// File: impl_empty.go
// Role: Empty(n), n isolated vertices.
//
// Contract:
//   - n ≥ 0; n = 0 is a no-op.
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/eqcover/core"

const methodEmpty = "Empty"

// Empty returns a Constructor that adds n isolated vertices. Such a graph
// needs no rounds at all.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return tooFew(methodEmpty, "n", n, 0)
		}
		_, err := addVertices(g, methodEmpty, n, cfg.idFn)
		return err
	}
}
