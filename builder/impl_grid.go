// File: impl_grid.go
// Role: Grid(rows, cols), the 4-neighborhood lattice.
//
// Contract:
//   - rows, cols ≥ 1 (else ErrTooFewVertices).
//   - Vertex IDs "r,c" (fixed scheme, idFn is not used); right and down edges.
//
// Complexity: O(rows·cols).

package builder

import (
	"strconv"

	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const (
	methodGrid = "Grid"
	minGridDim = 1
)

func gridID(r, c int) string { return strconv.Itoa(r) + "," + strconv.Itoa(c) }

// Grid returns a Constructor that builds a rows×cols grid graph.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return errors.Wrapf(ErrTooFewVertices, "%s: rows=%d, cols=%d (each must be ≥ %d)",
				methodGrid, rows, cols, minGridDim)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := gridID(r, c)
				if err := g.AddVertex(id); err != nil {
					return errors.Wrapf(err, "%s: AddVertex(%s)", methodGrid, id)
				}
			}
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := gridID(r, c)
				if c+1 < cols {
					if err := addEdge(g, methodGrid, u, gridID(r, c+1)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(g, methodGrid, u, gridID(r+1, c)); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
