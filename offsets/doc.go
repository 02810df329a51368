// Package offsets maps logical row or column indices to cumulative pixel
// offsets and back.
//
// [Storage] keeps one non-negative weight (a row height, a column width) per
// index in a power-of-two backing array, alongside a bottom-up sum tree.
// Prefix sums, inverse lookups and single-value updates are O(log n);
// structural inserts and removals shift the array and rebuild the tree in
// O(n).
//
// # Precision
//
// Weights are stored as fixed-point int64 values scaled by a precision
// multiplier, [DefaultPrecision] (1000) unless [WithPrecision] says
// otherwise. With the default, values resolve to three decimal digits and
// anything finer is rounded up. Positive infinity is stored as
// math.MaxInt64 and marks an unbounded cell; sums saturate at that value.
//
// # Checked and unchecked builds
//
// Negative weights and out-of-range indices are programming errors. They are
// detected only when built with the layoutdebug tag:
//
//	go test -tags layoutdebug ./offsets/...
//
// Release builds skip the checks. [Storage.OffsetFromIndex] clamps its
// argument; other accessors fall through to the Go runtime bounds checks.
package offsets
