// File: helpers.go
// Role: shared vertex/edge emission helpers for impl_*.go.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

// chord is an index pair of a fixed edge table (PlatonicSolid).
type chord struct{ U, V int }

// addVertices inserts idFn(0..n-1) and returns the IDs in index order.
func addVertices(g *core.Graph, method string, n int, idFn IDFn) ([]string, error) {
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		ids[i] = idFn(i)
		if err := g.AddVertex(ids[i]); err != nil {
			return nil, errors.Wrapf(err, "%s: AddVertex(%s)", method, ids[i])
		}
	}
	return ids, nil
}

// addEdge connects u and v, tagging failures with the constructor name.
func addEdge(g *core.Graph, method, u, v string) error {
	if _, err := g.AddEdge(u, v); err != nil {
		return errors.Wrapf(err, "%s: AddEdge(%s–%s)", method, u, v)
	}
	return nil
}

// addCompleteEdges connects every unordered pair of ids in (i<j) order.
func addCompleteEdges(g *core.Graph, method string, ids []string) error {
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if err := addEdge(g, method, ids[i], ids[j]); err != nil {
				return err
			}
		}
	}
	return nil
}

// tooFew reports a size parameter below its minimum.
func tooFew(method, param string, got, min int) error {
	return errors.Wrapf(ErrTooFewVertices, "%s: %s=%d < min=%d", method, param, got, min)
}
