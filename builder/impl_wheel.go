// File: impl_wheel.go
// Role: Wheel(n) = C_{n-1} + hub.
//
// Contract:
//   - n ≥ 4 (else ErrTooFewVertices), so the rim is at least a triangle.
//   - Rim idFn(0..n-2) as in Cycle(n-1); hub cfg.centerID joined to every rim vertex.
//
// Complexity: O(n).

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodWheel   = "Wheel"
	minWheelNodes = 4
)

// Wheel returns a Constructor that builds W_n. Its maximal cliques are the
// n-1 hub triangles (K_4 when n = 4).
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minWheelNodes {
			return tooFew(methodWheel, "n", n, minWheelNodes)
		}
		if err := Cycle(n-1)(g, cfg); err != nil {
			return errors.Wrapf(err, "%s: rim C_%d", methodWheel, n-1)
		}
		for i := 0; i < n-1; i++ {
			if err := addEdge(g, methodWheel, cfg.centerID, cfg.idFn(i)); err != nil {
				return err
			}
		}
		return nil
	}
}
