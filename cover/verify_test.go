package cover_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcover/cover"
)

// TestVerify covers accepted and rejected coverings.
func TestVerify(t *testing.T) {
	g := path3(t)

	cases := []struct {
		name string
		c    cover.Covering
		want bool
	}{
		{"greedy", cover.Covering{{{"A", "B"}, {"C"}}, {{"B", "C"}, {"A"}}}, true},
		{"single round with overlap", cover.Covering{{{"A", "B"}, {"B", "C"}}}, true},
		{"missing edge", cover.Covering{{{"A", "B"}, {"C"}}}, false},
		{"non-clique group", cover.Covering{{{"A", "B", "C"}}}, false},
		{"empty group", cover.Covering{{{"A", "B"}, {}}, {{"B", "C"}}}, false},
		{"unknown vertex", cover.Covering{{{"A", "B"}, {"Q"}}, {{"B", "C"}}}, false},
		{"no rounds", nil, false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, cover.Verify(tc.c, g))
		})
	}

	assert.False(t, cover.Verify(nil, nil))
	assert.True(t, cover.Verify(nil, mustGraph(t, []string{"A"})))
}

// TestVerifyPartition reports the defective round and vertex.
func TestVerifyPartition(t *testing.T) {
	g := path3(t)

	require.NoError(t, cover.VerifyPartition(cover.Covering{{{"A", "B"}, {"C"}}}, g))

	err := cover.VerifyPartition(cover.Covering{{{"A", "B"}, {"C"}}, {{"B", "C"}}}, g)
	assert.ErrorIs(t, err, cover.ErrNotPartition)
	assert.Contains(t, err.Error(), `round 1: vertex "A" missing`)

	err = cover.VerifyPartition(cover.Covering{{{"A", "B"}, {"B", "C"}}}, g)
	assert.ErrorIs(t, err, cover.ErrNotPartition)
	assert.Contains(t, err.Error(), `"B" placed twice`)

	err = cover.VerifyPartition(cover.Covering{{{"A", "B", "C", "Z"}}}, g)
	assert.ErrorIs(t, err, cover.ErrNotPartition)
	assert.Contains(t, err.Error(), `unknown vertex "Z"`)

	// The first missing vertex in sorted order is reported.
	err = cover.VerifyPartition(cover.Covering{{{"B"}}}, g)
	assert.ErrorIs(t, err, cover.ErrNotPartition)
	assert.Contains(t, err.Error(), `round 0: vertex "A" missing`)

	require.NoError(t, cover.VerifyPartition(nil, g))
	assert.ErrorIs(t, cover.VerifyPartition(nil, nil), cover.ErrGraphNil)
}

// TestSummarize counts rounds, groups and singletons.
func TestSummarize(t *testing.T) {
	c := cover.Covering{{{"A", "B"}, {"C"}}, {{"B", "C"}, {"A"}}}
	assert.Equal(t, cover.Stats{Rounds: 2, Groups: 4, LargestGroup: 2, Singletons: 2}, cover.Summarize(c))
	assert.Equal(t, cover.Stats{}, cover.Summarize(nil))
}
