package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eqcover/builder"
)

// TestIDFns verifies each IDFn for outputs on valid inputs and panics on invalid ones.
func TestIDFns(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		fn          builder.IDFn
		input       int
		want        string
		shouldPanic bool
	}{
		{"DefaultIDFn_zero", builder.DefaultIDFn, 0, "0", false},
		{"DefaultIDFn_multi", builder.DefaultIDFn, 123, "123", false},
		{"SymbolIDFn_min", builder.SymbolIDFn, 0, "A", false},
		{"SymbolIDFn_max", builder.SymbolIDFn, 25, "Z", false},
		{"SymbolIDFn_over", builder.SymbolIDFn, 26, "", true},
		{"ExcelColumnIDFn_Z", builder.ExcelColumnIDFn, 25, "Z", false},
		{"ExcelColumnIDFn_AA", builder.ExcelColumnIDFn, 26, "AA", false},
		{"ExcelColumnIDFn_ZZ", builder.ExcelColumnIDFn, 701, "ZZ", false},
		{"ExcelColumnIDFn_neg", builder.ExcelColumnIDFn, -1, "", true},
		{"AlphanumericIDFn_z", builder.AlphanumericIDFn, 35, "z", false},
		{"AlphanumericIDFn_neg", builder.AlphanumericIDFn, -1, "", true},
		{"HexIDFn_ff", builder.HexIDFn, 255, "ff", false},
		{"HexIDFn_neg", builder.HexIDFn, -2, "", true},
		{"PaddedIDFn", builder.PaddedIDFn("v", 3), 7, "v007", false},
		{"PaddedIDFn_neg", builder.PaddedIDFn("v", 3), -7, "", true},
		{"SymbolNumberIDFn", builder.SymbolNumberIDFn("n"), 12, "n12", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if tc.shouldPanic {
				assert.Panics(t, func() { tc.fn(tc.input) })
				return
			}
			assert.Equal(t, tc.want, tc.fn(tc.input))
		})
	}
}

// TestIDScheme resolves scheme names.
func TestIDScheme(t *testing.T) {
	for name, want := range map[string]string{"": "27", "decimal": "27", "letters": "AB", "Excel": "AB", "alnum": "r", "hex": "1b"} {
		fn, err := builder.IDScheme(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, fn(27), name)
	}
	fn, err := builder.IDScheme("symbols")
	require.NoError(t, err)
	assert.Equal(t, "C", fn(2))

	_, err = builder.IDScheme("roman")
	assert.ErrorIs(t, err, builder.ErrOptionViolation)
}
