// File: impl_complete.go
// Role: Complete(n), the complete graph K_n.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices).
//   - Vertices idFn(0..n-1); one edge per unordered pair {i,j}, i<j.
//
// Complexity: O(n) vertices + O(n²) edges.
// Determinism: pair order is lexicographic by (i,j).

package builder

import "github.com/katalvlaran/eqcover/core"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns a Constructor that builds K_n. Its clique catalog is the
// full power set of the vertices minus the empty set.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < minCompleteNodes {
			return tooFew(methodComplete, "n", n, minCompleteNodes)
		}
		ids, err := addVertices(g, methodComplete, n, cfg.idFn)
		if err != nil {
			return err
		}
		return addCompleteEdges(g, methodComplete, ids)
	}
}
