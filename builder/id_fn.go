// File: id_fn.go
// Role: vertex-ID schemes (index → vertex ID) and their option shorthands.
// Determinism:
//   - Every IDFn is pure. Schemes that preserve index order under string
//     comparison (prefixed, zero-padded) keep catalog tie-breaks readable.

package builder

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
)

// IDFn generates a vertex identifier from its zero-based index.
// Implementations panic on negative or out-of-range indices.
type IDFn func(idx int) string

// DefaultIDFn returns the decimal string of idx: 0→"0", 42→"42".
func DefaultIDFn(idx int) string {
	return strconv.Itoa(idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25]: 0→"A".
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("SymbolIDFn: idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// ExcelColumnIDFn returns the spreadsheet column name: 0→"A", 25→"Z", 26→"AA".
func ExcelColumnIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("ExcelColumnIDFn: idx must be ≥ 0, got %d", idx))
	}
	var runes []rune
	for i := idx; i >= 0; i = i/26 - 1 {
		runes = append(runes, 'A'+rune(i%26))
	}
	for i, j := 0, len(runes)-1; i < j; i, j = i+1, j-1 {
		runes[i], runes[j] = runes[j], runes[i]
	}
	return string(runes)
}

// AlphanumericIDFn returns idx in base 36: 10→"a", 36→"10".
func AlphanumericIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("AlphanumericIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 36)
}

// HexIDFn returns idx in lowercase hexadecimal: 255→"ff".
func HexIDFn(idx int) string {
	if idx < 0 {
		panic(fmt.Sprintf("HexIDFn: idx must be ≥ 0, got %d", idx))
	}
	return strconv.FormatInt(int64(idx), 16)
}

// PaddedIDFn returns prefix + idx zero-padded to width digits: ("v",3)(7)→"v007".
// Lexicographic order of the IDs then matches index order for idx < 10^width.
func PaddedIDFn(prefix string, width int) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("PaddedIDFn: idx must be ≥ 0, got %d", idx))
		}
		return fmt.Sprintf("%s%0*d", prefix, width, idx)
	}
}

// SymbolNumberIDFn returns prefix + decimal index: "v0", "v1", ...
func SymbolNumberIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("SymbolNumberIDFn: idx must be ≥ 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// IDScheme resolves a scheme by name: "decimal", "letters" (Excel columns,
// unbounded), "symbols" (A..Z only), "alnum", "hex".
func IDScheme(name string) (IDFn, error) {
	switch strings.ToLower(name) {
	case "", "decimal":
		return DefaultIDFn, nil
	case "letters", "excel":
		return ExcelColumnIDFn, nil
	case "symbols":
		return SymbolIDFn, nil
	case "alnum":
		return AlphanumericIDFn, nil
	case "hex":
		return HexIDFn, nil
	default:
		return nil, errors.Wrapf(ErrOptionViolation, "unknown ID scheme %q", name)
	}
}

// WithSymbNumb sets the ID scheme to SymbolNumberIDFn(prefix).
func WithSymbNumb(prefix string) BuilderOption {
	return WithIDScheme(SymbolNumberIDFn(prefix))
}

// WithDefaultIDs resets the ID scheme to DefaultIDFn.
func WithDefaultIDs() BuilderOption { return WithIDScheme(DefaultIDFn) }

// WithSymbolIDs sets the ID scheme to SymbolIDFn.
func WithSymbolIDs() BuilderOption { return WithIDScheme(SymbolIDFn) }

// WithExcelColumnIDs sets the ID scheme to ExcelColumnIDFn.
func WithExcelColumnIDs() BuilderOption { return WithIDScheme(ExcelColumnIDFn) }
