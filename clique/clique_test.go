package clique_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/eqcover/clique"
	"github.com/katalvlaran/eqcover/core"
)

// TestNew_Canonical checks sorting, deduplication and input isolation.
func TestNew_Canonical(t *testing.T) {
	in := []string{"C", "A", "B", "A"}
	c := clique.New(in...)
	assert.Equal(t, clique.Clique{"A", "B", "C"}, c)
	assert.Equal(t, []string{"C", "A", "B", "A"}, in)

	assert.True(t, c.Equal(clique.New("B", "C", "A")))
	assert.False(t, c.Equal(clique.New("A", "B")))
	assert.Equal(t, c.Key(), clique.New("C", "B", "A").Key())
	assert.NotEqual(t, clique.New("AB").Key(), clique.New("A", "B").Key())
	assert.NotEqual(t, clique.New("a\x00b").Key(), clique.New("a", "b").Key())
	assert.NotEqual(t, clique.New("1:a").Key(), clique.New("a").Key())
	assert.NotEqual(t, clique.New("1:a1:b").Key(), clique.New("a", "b").Key())

	assert.True(t, c.Contains("B"))
	assert.False(t, c.Contains("D"))
	assert.Equal(t, "{A,B,C}", c.String())
	assert.Empty(t, clique.New())
}

// TestCompare checks size-descending then lexicographic order.
func TestCompare(t *testing.T) {
	abc := clique.New("A", "B", "C")
	ab := clique.New("A", "B")
	ac := clique.New("A", "C")

	assert.Equal(t, -1, clique.Compare(abc, ab))
	assert.Equal(t, 1, clique.Compare(ab, abc))
	assert.Equal(t, -1, clique.Compare(ab, ac))
	assert.Equal(t, 1, clique.Compare(ac, ab))
	assert.Equal(t, 0, clique.Compare(ab, clique.New("B", "A")))
}

// TestPairs lists the k(k−1)/2 pairs in canonical order.
func TestPairs(t *testing.T) {
	assert.Nil(t, clique.Pairs(clique.New("A")))
	assert.Equal(t,
		[]core.Pair{core.NewPair("A", "B"), core.NewPair("A", "C"), core.NewPair("B", "C")},
		clique.Pairs(clique.New("C", "B", "A")))
	assert.Len(t, clique.Pairs(clique.New("1", "2", "3", "4", "5")), 10)
}
