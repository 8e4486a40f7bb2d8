package subset_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcover/subset"
)

// TestAll_Order checks bitmask order and per-subset item order.
func TestAll_Order(t *testing.T) {
	got, err := subset.All([]string{"A", "B", "C"}, false)
	require.NoError(t, err)
	want := [][]string{
		{"A"}, {"B"}, {"A", "B"}, {"C"}, {"A", "C"}, {"B", "C"}, {"A", "B", "C"},
	}
	assert.Equal(t, want, got)

	withEmpty, err := subset.All([]string{"A", "B", "C"}, true)
	require.NoError(t, err)
	require.Len(t, withEmpty, 8)
	assert.Empty(t, withEmpty[0])
	assert.Equal(t, want, withEmpty[1:])
}

// TestAll_EdgeCases covers n = 0 and n = 1.
func TestAll_EdgeCases(t *testing.T) {
	got, err := subset.All([]int{}, false)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = subset.All([]int(nil), true)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Empty(t, got[0])

	got, err = subset.All([]int{7}, false)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{7}}, got)
}

// TestAll_Count verifies 2^n − 1 distinct non-empty subsets.
func TestAll_Count(t *testing.T) {
	items := []int{1, 2, 3, 4, 5, 6, 7, 8}
	got, err := subset.All(items, false)
	require.NoError(t, err)
	require.Len(t, got, 255)

	seen := make(map[string]struct{}, len(got))
	for _, s := range got {
		require.NotEmpty(t, s)
		seen[fmt.Sprint(s)] = struct{}{}
	}
	assert.Len(t, seen, 255)
}

// TestAll_NoAliasing mutates one result and checks nothing else changes.
func TestAll_NoAliasing(t *testing.T) {
	items := []string{"x", "y"}
	got, err := subset.All(items, false)
	require.NoError(t, err)
	got[0][0] = "mutated"
	assert.Equal(t, []string{"x", "y"}, items)
	assert.Equal(t, []string{"x", "y"}, got[2])
}

// TestEach_EarlyStop confirms fn returning false stops the stream.
func TestEach_EarlyStop(t *testing.T) {
	calls := 0
	err := subset.Each([]int{1, 2, 3, 4}, false, func(s []int) bool {
		calls++
		return calls < 3
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

// TestCount and the MaxItems guard.
func TestCount(t *testing.T) {
	n, err := subset.Count(0, false)
	require.NoError(t, err)
	assert.Zero(t, n)

	n, err = subset.Count(3, true)
	require.NoError(t, err)
	assert.EqualValues(t, 8, n)

	n, err = subset.Count(subset.MaxItems, false)
	require.NoError(t, err)
	assert.Equal(t, uint64(1)<<subset.MaxItems-1, n)

	_, err = subset.Count(subset.MaxItems+1, false)
	assert.ErrorIs(t, err, subset.ErrTooManyItems)

	_, err = subset.All(make([]int, subset.MaxItems+1), false)
	assert.ErrorIs(t, err, subset.ErrTooManyItems)
}

func ExampleAll() {
	subs, _ := subset.All([]string{"A", "B", "C"}, false)
	fmt.Println(subs)

	// Output:
	// [[A] [B] [A B] [C] [A C] [B C] [A B C]]
}

func BenchmarkAll16(b *testing.B) {
	items := make([]int, 16)
	for i := range items {
		items[i] = i
	}
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_, _ = subset.All(items, false)
	}
}
