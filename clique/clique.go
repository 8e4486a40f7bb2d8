// File: clique.go
// Role: the Clique value type: canonical form, content key, ordering, pairs.

package clique

import (
	"sort"
	"strconv"
	"strings"

	"github.com/katalvlaran/eqcover/core"
)

// Clique is a canonical set of vertex IDs: sorted ascending, no duplicates.
// Values produced by this package are never mutated after construction;
// callers must treat them as read-only.
type Clique []string

// New returns the canonical Clique of ids. Order and repetition of ids are
// irrelevant; the input slice is not modified.
func New(ids ...string) Clique {
	c := make(Clique, len(ids))
	copy(c, ids)
	sort.Strings(c)

	out := c[:0]
	for i, id := range c {
		if i > 0 && id == c[i-1] {
			continue
		}
		out = append(out, id)
	}

	return out
}

// Size returns the number of vertices in c.
func (c Clique) Size() int { return len(c) }

// Key returns a content key: equal cliques have equal keys and distinct
// cliques distinct ones. Each ID is written as "<len>:<id>", so IDs may hold
// any byte.
func (c Clique) Key() string {
	var sb strings.Builder
	for _, id := range c {
		sb.WriteString(strconv.Itoa(len(id)))
		sb.WriteByte(':')
		sb.WriteString(id)
	}
	return sb.String()
}

// Equal reports whether c and d contain the same vertices.
func (c Clique) Equal(d Clique) bool {
	if len(c) != len(d) {
		return false
	}
	for i := range c {
		if c[i] != d[i] {
			return false
		}
	}
	return true
}

// Contains reports whether id is a member of c. O(log |c|).
func (c Clique) Contains(id string) bool {
	i := sort.SearchStrings(c, id)
	return i < len(c) && c[i] == id
}

// String renders c as "{A,B,C}".
func (c Clique) String() string {
	return "{" + strings.Join(c, ",") + "}"
}

// Compare orders cliques the way a Catalog does: larger first, then
// lexicographically by vertex sequence. It returns −1, 0 or +1.
func Compare(a, b Clique) int {
	if len(a) != len(b) {
		if len(a) > len(b) {
			return -1
		}
		return 1
	}
	for i := range a {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Pairs returns every unordered vertex pair of c in canonical (U, V) order.
// A clique of size k has k(k−1)/2 pairs; singletons have none.
func Pairs(c Clique) []core.Pair {
	if len(c) < 2 {
		return nil
	}
	out := make([]core.Pair, 0, len(c)*(len(c)-1)/2)
	for i := 0; i < len(c); i++ {
		for j := i + 1; j < len(c); j++ {
			out = append(out, core.NewPair(c[i], c[j]))
		}
	}
	return out
}
