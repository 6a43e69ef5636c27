package jptext

import "unicode/utf8"

// Half-width sound marks. In half-width katakana, voiced and semi-voiced
// syllables are written as a base letter followed by one of these.
const (
	HalfwidthVoicedMark     = 'ﾞ' // U+FF9E
	HalfwidthSemiVoicedMark = 'ﾟ' // U+FF9F
)

// isHalfwidthSoundMark reports whether r is ﾞ or ﾟ.
func isHalfwidthSoundMark(r rune) bool {
	return r == HalfwidthVoicedMark || r == HalfwidthSemiVoicedMark
}

// FirstKanaCluster returns the first kana cluster found in the given byte
// slice. A kana cluster is a single code point, extended by the code point
// following it if that one is a half-width sound mark ([HalfwidthVoicedMark]
// or [HalfwidthSemiVoicedMark]). Any code point can start a cluster, including
// a sound mark itself, so "ﾞﾞ" is a single cluster.
//
// The "base" return value is the first code point of the cluster and "mark"
// is the attached sound mark, or 0 if there is none. Invalid UTF-8 yields
// [utf8.RuneError] as the base for a one-byte cluster.
//
// The "rest" slice is the sub-slice of the original byte slice "b" starting
// after the last byte of the identified cluster. If the length of the "rest"
// slice is 0, the entire byte slice "b" has been processed.
//
// Given an empty byte slice "b", the function returns nil values.
//
// This function can be called continuously to extract all clusters from a
// byte slice:
//
//	for len(b) > 0 {
//		var base, mark rune
//		_, b, base, mark = jptext.FirstKanaCluster(b)
//		// ...
//	}
func FirstKanaCluster(b []byte) (cluster, rest []byte, base, mark rune) {
	// An empty byte slice returns nothing.
	if len(b) == 0 {
		return
	}

	// Extract the first rune.
	base, length := utf8.DecodeRune(b)
	if len(b) <= length { // Nothing left to look ahead into.
		return b, nil, base, 0
	}

	// Attach a following sound mark.
	if r, l := utf8.DecodeRune(b[length:]); isHalfwidthSoundMark(r) {
		return b[:length+l], b[length+l:], base, r
	}
	return b[:length], b[length:], base, 0
}

// FirstKanaClusterInString is like [FirstKanaCluster] but its input and
// outputs are strings.
func FirstKanaClusterInString(str string) (cluster, rest string, base, mark rune) {
	// An empty string returns nothing.
	if len(str) == 0 {
		return
	}

	// Extract the first rune.
	base, length := utf8.DecodeRuneInString(str)
	if len(str) <= length { // Nothing left to look ahead into.
		return str, "", base, 0
	}

	// Attach a following sound mark.
	if r, l := utf8.DecodeRuneInString(str[length:]); isHalfwidthSoundMark(r) {
		return str[:length+l], str[length+l:], base, r
	}
	return str[:length], str[length:], base, 0
}
