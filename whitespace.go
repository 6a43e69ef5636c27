package jptext

import "strings"

// IsWhitespace reports whether r is ASCII whitespace (space, \t, \n, \v, \f,
// \r) or the ideographic space U+3000. Other Unicode spaces such as U+00A0
// are not included.
func IsWhitespace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\v', '\f', '\r', ideographicSpace:
		return true
	}
	return false
}

// RemoveWhitespace deletes every code point for which [IsWhitespace]
// reports true.
func RemoveWhitespace(str string) string {
	return strings.Map(func(r rune) rune {
		if IsWhitespace(r) {
			return -1
		}
		return r
	}, str)
}

// NormalizeWhitespace replaces every ideographic space U+3000 with an ASCII
// space. Nothing else is changed.
func NormalizeWhitespace(str string) string {
	return strings.ReplaceAll(str, string(ideographicSpace), " ")
}

// TrimWhitespace removes leading and trailing whitespace as defined by
// [IsWhitespace]. Interior whitespace is kept.
func TrimWhitespace(str string) string {
	return strings.TrimFunc(str, IsWhitespace)
}
