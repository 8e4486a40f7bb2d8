// File: impl_platonic.go
// Role: PlatonicSolid(name, withCenter), the five Platonic skeletons.
//
// Contract:
//   - Unknown name → ErrOptionViolation.
//   - Vertices idFn(0..V-1); edges from a fixed table in stable order.
//   - withCenter adds cfg.centerID joined to every shell vertex.
//
// Complexity: O(V+E) of the chosen solid.

package builder

import (
	"github.com/cockroachdb/errors"

	"github.com/katalvlaran/eqcover/core"
)

const methodPlatonicSolid = "PlatonicSolid"

// PlatonicName selects one of the five Platonic solids.
type PlatonicName int

const (
	Tetrahedron  PlatonicName = iota // V=4,  E=6,  K4
	Cube                             // V=8,  E=12, triangle-free
	Octahedron                       // V=6,  E=12, K_{2,2,2}
	Dodecahedron                     // V=20, E=30, triangle-free
	Icosahedron                      // V=12, E=30, 20 triangular faces
)

// String returns the solid's name.
func (p PlatonicName) String() string {
	switch p {
	case Tetrahedron:
		return "Tetrahedron"
	case Cube:
		return "Cube"
	case Octahedron:
		return "Octahedron"
	case Dodecahedron:
		return "Dodecahedron"
	case Icosahedron:
		return "Icosahedron"
	default:
		return "Unknown"
	}
}

type platonicSpec struct {
	vertices int
	edges    []chord
}

var platonicSolids = map[PlatonicName]platonicSpec{
	Tetrahedron: {4, []chord{
		{0, 1}, {0, 2}, {0, 3},
		{1, 2}, {1, 3},
		{2, 3},
	}},
	Cube: {8, []chord{
		{0, 1}, {1, 2}, {2, 3}, {3, 0},
		{0, 4}, {1, 5}, {2, 6}, {3, 7},
		{4, 5}, {4, 7}, {5, 6}, {6, 7},
	}},
	Octahedron: {6, []chord{
		{0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 3}, {1, 4}, {1, 5},
		{2, 4}, {2, 5}, {3, 4}, {3, 5},
	}},
	Dodecahedron: {20, []chord{
		{0, 1}, {0, 4}, {1, 2}, {2, 3}, {3, 4},
		{5, 6}, {5, 9}, {6, 7}, {7, 8}, {8, 9},
		{10, 11}, {10, 19}, {11, 12}, {12, 13}, {13, 14},
		{14, 15}, {15, 16}, {16, 17}, {17, 18}, {18, 19},
		{0, 10}, {1, 12}, {2, 14}, {3, 16}, {4, 18},
		{5, 11}, {6, 13}, {7, 15}, {8, 17}, {9, 19},
	}},
	Icosahedron: {12, []chord{
		{0, 1}, {0, 2}, {0, 3}, {0, 4}, {0, 5},
		{1, 2}, {1, 5}, {2, 3}, {3, 4}, {4, 5},
		{1, 6}, {1, 7}, {2, 7}, {2, 8}, {3, 8},
		{3, 9}, {4, 9}, {4, 10}, {5, 6}, {5, 10},
		{6, 7}, {6, 10}, {7, 8}, {8, 9}, {9, 10},
		{6, 11}, {7, 11}, {8, 11}, {9, 11}, {10, 11},
	}},
}

// PlatonicSolid returns a Constructor that builds the skeleton of name,
// optionally with a hub joined to every vertex.
func PlatonicSolid(name PlatonicName, withCenter bool) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		solid, ok := platonicSolids[name]
		if !ok {
			return errors.Wrapf(ErrOptionViolation, "%s: unknown solid %d", methodPlatonicSolid, int(name))
		}
		ids, err := addVertices(g, methodPlatonicSolid, solid.vertices, cfg.idFn)
		if err != nil {
			return err
		}
		for _, ch := range solid.edges {
			if err = addEdge(g, methodPlatonicSolid, ids[ch.U], ids[ch.V]); err != nil {
				return err
			}
		}
		if !withCenter {
			return nil
		}
		for _, id := range ids {
			if err = addEdge(g, methodPlatonicSolid, cfg.centerID, id); err != nil {
				return err
			}
		}
		return nil
	}
}
