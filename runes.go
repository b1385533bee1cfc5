package textdiff

import "unicode/utf8"

// Small rune-slice helpers shared across the package. The diff core works
// on []rune throughout, so these stand in for the strings-package
// equivalents.

// runesEqual reports whether a and b hold the same runes.
func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i, r := range a {
		if b[i] != r {
			return false
		}
	}
	return true
}

// runesIndex returns the index of the first occurrence of pattern in
// text, or -1 if pattern is not present. Plain quadratic scan; patterns
// here are short or searched rarely.
func runesIndex(text, pattern []rune) int {
	if len(pattern) == 0 {
		return 0
	}
	for i := 0; i+len(pattern) <= len(text); i++ {
		if runesEqual(text[i:i+len(pattern)], pattern) {
			return i
		}
	}
	return -1
}

// runesHasPrefix reports whether text begins with prefix.
func runesHasPrefix(text, prefix []rune) bool {
	return len(text) >= len(prefix) && runesEqual(text[:len(prefix)], prefix)
}

// runesHasSuffix reports whether text ends with suffix.
func runesHasSuffix(text, suffix []rune) bool {
	return len(text) >= len(suffix) && runesEqual(text[len(text)-len(suffix):], suffix)
}

// copyRunes returns an owned copy of text.
func copyRunes(text []rune) []rune {
	out := make([]rune, len(text))
	copy(out, text)
	return out
}

// concatRunes returns a fresh slice holding a followed by b. Always
// allocates; edit texts may be views into shared backing arrays, so
// in-place appends are never safe here.
func concatRunes(a, b []rune) []rune {
	out := make([]rune, 0, len(a)+len(b))
	out = append(out, a...)
	return append(out, b...)
}

// runeLen returns the length of s in runes.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// b2i converts a bool to 0 or 1 for flag counting.
func b2i(b bool) int {
	if b {
		return 1
	}
	return 0
}
