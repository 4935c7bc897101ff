package verbex

// Characters with special meaning in a pattern, outside and inside a
// bracketed character class. Everything else is emitted as is.
const (
	specialOutsideClass = `\.^$*+?()[{`
	specialInsideClass  = `\^-]`
)

// QuoteLiteral escapes s for use as literal text outside a character class.
//
// Only the characters that would otherwise start a construct are escaped:
// backslash and . ^ $ * + ? ( ) [ {. Closing brackets and | are left alone.
//
// Example:
//
//	verbex.QuoteLiteral("1+1=2?") // `1\+1=2\?`
func QuoteLiteral(s string) string {
	return escapeSpecial(s, specialOutsideClass)
}

// QuoteClass escapes s for use inside a bracketed character class, where
// only backslash, ^, - and ] are special.
//
// Example:
//
//	verbex.QuoteClass("a-z") // `a\-z`
func QuoteClass(s string) string {
	return escapeSpecial(s, specialInsideClass)
}

func escapeSpecial(s string, special string) string {
	n := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			n++
		}
	}
	if n == 0 {
		return s
	}

	buf := make([]byte, len(s)+n)
	j := 0
	for i := 0; i < len(s); i++ {
		if isSpecial(s[i], special) {
			buf[j] = '\\'
			j++
		}
		buf[j] = s[i]
		j++
	}
	return string(buf)
}

// isSpecial returns true if c is in the special characters string.
// All special characters are ASCII, so scanning bytes never splits a
// multi-byte rune.
func isSpecial(c byte, special string) bool {
	for i := 0; i < len(special); i++ {
		if c == special[i] {
			return true
		}
	}
	return false
}
