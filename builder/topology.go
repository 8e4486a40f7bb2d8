// File: topology.go
// Role: name → Constructor resolution for command-line front ends.

package builder

import (
	"sort"
	"strings"

	"github.com/cockroachdb/errors"
)

// Params carries the numeric knobs a named topology may read.
// N is the primary size; M is the second size (bipartite right side, grid
// columns, regular degree); P is the edge probability of "random".
type Params struct {
	N int
	M int
	P float64
}

var topologies = map[string]func(Params) Constructor{
	"complete":     func(p Params) Constructor { return Complete(p.N) },
	"path":         func(p Params) Constructor { return Path(p.N) },
	"cycle":        func(p Params) Constructor { return Cycle(p.N) },
	"star":         func(p Params) Constructor { return Star(p.N) },
	"wheel":        func(p Params) Constructor { return Wheel(p.N) },
	"bipartite":    func(p Params) Constructor { return CompleteBipartite(p.N, p.M) },
	"grid":         func(p Params) Constructor { return Grid(p.N, p.M) },
	"empty":        func(p Params) Constructor { return Empty(p.N) },
	"random":       func(p Params) Constructor { return RandomSparse(p.N, p.P) },
	"regular":      func(p Params) Constructor { return RandomRegular(p.N, p.M) },
	"tetrahedron":  platonic(Tetrahedron),
	"cube":         platonic(Cube),
	"octahedron":   platonic(Octahedron),
	"dodecahedron": platonic(Dodecahedron),
	"icosahedron":  platonic(Icosahedron),
}

func platonic(name PlatonicName) func(Params) Constructor {
	return func(Params) Constructor { return PlatonicSolid(name, false) }
}

// ByName resolves a topology name (case-insensitive) to a Constructor.
//
// Errors:
//   - ErrUnknownTopology for names not listed by Topologies.
func ByName(name string, p Params) (Constructor, error) {
	mk, ok := topologies[strings.ToLower(name)]
	if !ok {
		return nil, errors.Wrapf(ErrUnknownTopology, "%q (known: %s)", name, strings.Join(Topologies(), ", "))
	}
	return mk(p), nil
}

// Topologies returns the known topology names in sorted order.
func Topologies() []string {
	names := make([]string, 0, len(topologies))
	for name := range topologies {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
