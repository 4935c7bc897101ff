// Package conv provides offset conversion helpers for the matching engines.
//
// regexp2 reports match positions as rune indices into the decoded input,
// while the public API follows stdlib regexp and reports byte offsets.
// These helpers bridge the two. They panic on out-of-range input since this
// indicates a programming error (an engine returning an index past the input).
package conv

import "unicode/utf8"

// RuneOffsets maps rune indices of s to byte offsets.
// The result has utf8.RuneCountInString(s)+1 entries; the last one is len(s),
// so an end index equal to the rune count converts cleanly.
func RuneOffsets(s string) []int {
	offsets := make([]int, 0, utf8.RuneCountInString(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	return append(offsets, len(s))
}

// Offsets converts rune-indexed positions to byte offsets using a table
// built by RuneOffsets.
type Offsets []int

// Byte returns the byte offset of rune index r.
// Negative r is passed through unchanged (unmatched groups use -1).
//
//go:inline
func (o Offsets) Byte(r int) int {
	if r < 0 {
		return r
	}
	if r >= len(o) {
		panic("offset overflow: rune index out of input range")
	}
	return o[r]
}

// Span converts a rune start/length pair to a byte [start, end) pair.
func (o Offsets) Span(start, length int) (int, int) {
	return o.Byte(start), o.Byte(start + length)
}

// ASCII reports whether s contains only single-byte runes, in which case
// rune and byte offsets coincide and no table is needed.
func ASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
