// File: maximal.go
// Role: maximal clique enumeration on top of gonum's Bron–Kerbosch.
// Complexity:
//   - O(3^(V/3)) worst case (Moon–Moser bound), plus O(V log V + E) conversion.

package clique

import (
	"sort"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/eqcover/converters"
	"github.com/katalvlaran/eqcover/core"
)

// Maximal returns every maximal clique of g in catalog order (see Compare).
// Isolated vertices appear as singleton cliques; the empty graph yields none.
func Maximal(g *core.Graph) ([]Clique, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	u, ids, err := converters.ToGonum(g)
	if err != nil {
		return nil, err
	}
	if ids.Len() == 0 {
		return nil, nil
	}

	found := topo.BronKerbosch(u)
	out := make([]Clique, 0, len(found))
	for _, nodes := range found {
		out = append(out, New(ids.VertexIDs(nodes)...))
	}
	sortCliques(out)

	return out, nil
}

func sortCliques(cs []Clique) {
	sort.Slice(cs, func(i, j int) bool { return Compare(cs[i], cs[j]) < 0 })
}
