// Package conv provides checked integer conversions for counters and sizes.
//
// The helpers panic on overflow since a negative length or an out-of-range
// count indicates a programming error, not bad input.
package conv

// IntToUint64 converts a non-negative int to uint64.
// Panics if n < 0.
//
//go:inline
func IntToUint64(n int) uint64 {
	if n < 0 {
		panic("integer overflow: negative int converted to uint64")
	}
	return uint64(n)
}
