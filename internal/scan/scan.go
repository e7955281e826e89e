// Package scan provides byte and substring search for the prefilters and the
// symbol matcher.
//
// Memchr uses SWAR (SIMD Within A Register): eight haystack bytes are loaded
// as one little-endian uint64 and tested for the needle in a handful of
// integer operations. Memmem anchors on the last needle byte with Memchr and
// verifies candidates.
package scan

import (
	"bytes"
	"encoding/binary"
	"math/bits"
)

const (
	lo8 = 0x0101010101010101
	hi8 = 0x8080808080808080
)

// Memchr returns the index of the first instance of needle in haystack,
// or -1 if needle is not present.
func Memchr(haystack []byte, needle byte) int {
	n := len(haystack)
	if n < 8 {
		for i := 0; i < n; i++ {
			if haystack[i] == needle {
				return i
			}
		}
		return -1
	}

	// Broadcast needle: 0x62 -> 0x6262626262626262.
	mask := uint64(needle) * lo8

	i := 0
	for ; i+8 <= n; i += 8 {
		// Matching bytes become 0x00 after the xor.
		x := binary.LittleEndian.Uint64(haystack[i:]) ^ mask

		// Hacker's Delight zero-byte test; the lowest set high bit marks
		// the first zero byte in little-endian order.
		if z := (x - lo8) & ^x & hi8; z != 0 {
			return i + bits.TrailingZeros64(z)/8
		}
	}
	for ; i < n; i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// MemchrFrom is Memchr over haystack[start:], returning an absolute index.
func MemchrFrom(haystack []byte, needle byte, start int) int {
	if start >= len(haystack) {
		return -1
	}
	pos := Memchr(haystack[start:], needle)
	if pos < 0 {
		return -1
	}
	return start + pos
}

// Memmem returns the index of the first instance of needle in haystack,
// or -1 if needle is not present. An empty needle matches at 0.
func Memmem(haystack, needle []byte) int {
	m := len(needle)
	switch {
	case m == 0:
		return 0
	case m > len(haystack):
		return -1
	case m == 1:
		return Memchr(haystack, needle[0])
	}

	// The last byte tends to be more selective than the first.
	last := m - 1
	rare := needle[last]
	for from := last; from < len(haystack); {
		cand := MemchrFrom(haystack, rare, from)
		if cand < 0 {
			return -1
		}
		start := cand - last
		if bytes.Equal(haystack[start:cand+1], needle) {
			return start
		}
		from = cand + 1
	}
	return -1
}
