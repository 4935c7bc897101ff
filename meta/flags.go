package meta

import "github.com/dlclark/regexp2"

// Flags is the set of compile-time matching modes.
type Flags uint8

const (
	// FlagIgnoreCase enables case-insensitive matching.
	FlagIgnoreCase Flags = 1 << iota
	// FlagMultiLine makes ^ and $ match at internal line boundaries.
	FlagMultiLine
)

// Has reports whether all bits of f2 are set in f.
func (f Flags) Has(f2 Flags) bool {
	return f&f2 == f2
}

// inline renders f as an RE2 inline flag group, e.g. "(?im)".
// Returns "" when no flag is set.
func (f Flags) inline() string {
	if f == 0 {
		return ""
	}
	s := "(?"
	if f.Has(FlagIgnoreCase) {
		s += "i"
	}
	if f.Has(FlagMultiLine) {
		s += "m"
	}
	return s + ")"
}

// options renders f as regexp2 options on top of RE2 compatibility mode.
func (f Flags) options() regexp2.RegexOptions {
	opts := regexp2.RegexOptions(regexp2.RE2)
	if f.Has(FlagIgnoreCase) {
		opts |= regexp2.IgnoreCase
	}
	if f.Has(FlagMultiLine) {
		opts |= regexp2.Multiline
	}
	return opts
}
