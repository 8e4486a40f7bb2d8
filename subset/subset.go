package subset

import (
	"math/bits"

	"github.com/cockroachdb/errors"
)

// MaxItems is the largest input size whose subsets can be indexed by a uint64 mask.
const MaxItems = 63

// ErrTooManyItems is returned when the input has more than MaxItems elements.
var ErrTooManyItems = errors.New("subset: too many items")

// Count returns the number of subsets of an n-element set: 2^n with the
// empty set, 2^n − 1 without.
func Count(n int, includeEmpty bool) (uint64, error) {
	if err := checkSize(n); err != nil {
		return 0, err
	}
	total := uint64(1) << uint(n)
	if !includeEmpty {
		total--
	}

	return total, nil
}

// All returns every subset of items as a distinct slice, in bitmask order.
// Returned slices never share backing storage with items or with each other.
func All[T any](items []T, includeEmpty bool) ([][]T, error) {
	total, err := Count(len(items), includeEmpty)
	if err != nil {
		return nil, err
	}

	out := make([][]T, 0, total)
	err = Each(items, includeEmpty, func(s []T) bool {
		out = append(out, s)
		return true
	})

	return out, err
}

// Each calls fn once per subset of items, in bitmask order, until fn returns
// false. Every subset passed to fn is a freshly allocated slice the callee
// may retain.
func Each[T any](items []T, includeEmpty bool, fn func([]T) bool) error {
	n := len(items)
	if err := checkSize(n); err != nil {
		return err
	}

	var mask uint64
	if !includeEmpty {
		mask = 1
	}
	limit := uint64(1) << uint(n)
	for ; mask < limit; mask++ {
		if !fn(pick(items, mask)) {
			return nil
		}
	}

	return nil
}

// pick returns the elements of items selected by mask.
func pick[T any](items []T, mask uint64) []T {
	s := make([]T, 0, bits.OnesCount64(mask))
	for k := range items {
		if mask&(uint64(1)<<uint(k)) != 0 {
			s = append(s, items[k])
		}
	}

	return s
}

func checkSize(n int) error {
	if n > MaxItems {
		return errors.Wrapf(ErrTooManyItems, "n=%d > max=%d", n, MaxItems)
	}
	return nil
}
