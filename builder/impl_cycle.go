// File: impl_cycle.go
// Role: Cycle(n), the simple cycle C_n.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices).
//   - Edges idFn(i)–idFn((i+1) mod n).
//
// Complexity: O(n).

package builder

import "github.com/katalvlaran/eqcover/core"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns a Constructor that builds C_n. C_3 is the triangle.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCycleNodes {
			return tooFew(methodCycle, "n", n, minCycleNodes)
		}
		ids, err := addVertices(g, methodCycle, n, cfg.idFn)
		if err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			if err = addEdge(g, methodCycle, ids[i], ids[(i+1)%n]); err != nil {
				return err
			}
		}
		return nil
	}
}
