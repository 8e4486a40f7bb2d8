// Package subset enumerates every subset of a finite set.
//
// What
//
//   - All(items, includeEmpty) materializes the power set of items.
//   - Each(items, includeEmpty, fn) streams the same sequence without
//     materializing it; fn may stop early by returning false.
//   - Count(n, includeEmpty) reports how many subsets either call yields.
//
// Order
//
//	Subsets are produced in bitmask order: mask m = 0, 1, …, 2^n−1, where
//	bit k of m selects items[k]. Every subset preserves the relative order
//	of items. The empty subset (m = 0) is skipped unless includeEmpty is set.
//	For items [A B C]: [A] [B] [A B] [C] [A C] [B C] [A B C].
//
// Cost
//
//	Θ(n·2^n) time and, for All, memory. This is intended for clique-sized
//	inputs only; n > MaxItems is rejected with ErrTooManyItems because the
//	64-bit mask cannot represent it.
//
// Edge cases
//
//   - n = 0: All returns [[]] with includeEmpty, nothing without.
//   - n = 1: All returns [[x]] (plus [] with includeEmpty).
package subset
