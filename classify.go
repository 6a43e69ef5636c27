package jptext

import (
	"errors"
	"fmt"
	"unicode/utf8"
)

// Script is the script category of a single code point.
type Script int

// Script categories. A code point belongs to at most one of hiragana,
// katakana, and kanji; everything else is ScriptOther.
const (
	ScriptOther Script = iota
	ScriptHiragana
	ScriptKatakana
	ScriptKanji
)

var scriptNames = [...]string{
	ScriptOther:    "other",
	ScriptHiragana: "hiragana",
	ScriptKatakana: "katakana",
	ScriptKanji:    "kanji",
}

// String returns the lower-case name of the script.
func (s Script) String() string {
	if s < 0 || int(s) >= len(scriptNames) {
		return fmt.Sprintf("Script(%d)", int(s))
	}
	return scriptNames[s]
}

// ErrUnknownScript is returned by [ParseScript] for unrecognized names.
var ErrUnknownScript = errors.New("unknown script")

// ParseScript returns the Script whose [Script.String] value is name.
func ParseScript(name string) (Script, error) {
	for s, n := range scriptNames {
		if n == name {
			return Script(s), nil
		}
	}
	return ScriptOther, fmt.Errorf("%w: %q", ErrUnknownScript, name)
}

// Width is the presentation width category of a single code point.
type Width int

// Width categories.
const (
	HalfWidth Width = iota
	FullWidth
)

// String returns "half" or "full".
func (w Width) String() string {
	if w == FullWidth {
		return "full"
	}
	return "half"
}

// ScriptOf returns the script category of r.
func ScriptOf(r rune) Script {
	switch propertyScript(r) {
	case prHiragana:
		return ScriptHiragana
	case prKatakana:
		return ScriptKatakana
	case prKanji:
		return ScriptKanji
	}
	return ScriptOther
}

// WidthOf returns the width category of r. See [IsFullWidth].
func WidthOf(r rune) Width {
	if IsFullWidth(r) {
		return FullWidth
	}
	return HalfWidth
}

// IsHiragana reports whether r is in the Hiragana block (U+3040..U+309F).
func IsHiragana(r rune) bool {
	return r >= hiraganaFirst && r <= hiraganaLast
}

// IsKatakana reports whether r is in the Katakana block (U+30A0..U+30FF).
// Half-width katakana (U+FF65..U+FF9F) are not included.
func IsKatakana(r rune) bool {
	return r >= katakanaFirst && r <= katakanaLast
}

// IsKanji reports whether r is a CJK Unified Ideograph from the basic block
// (up to U+9FAF), Extension A, or Extension B.
func IsKanji(r rune) bool {
	return propertyScript(r) == prKanji
}

// IsFullWidth reports whether r is above U+00FF.
//
// This is a simple threshold and not the East Asian Width property. Many
// narrow characters above Latin-1 (symbols, Latin Extended, emoji) are
// reported as full-width, and [DisplayWidth] and [Stats] inherit this.
func IsFullWidth(r rune) bool {
	return r > halfWidthLimit
}

// IsHalfWidth is the negation of [IsFullWidth].
func IsHalfWidth(r rune) bool {
	return !IsFullWidth(r)
}

// firstRune returns the first code point of str. ok is false if str is empty
// or starts with an invalid UTF-8 sequence.
func firstRune(str string) (r rune, ok bool) {
	r, size := utf8.DecodeRuneInString(str)
	if r == utf8.RuneError && size <= 1 {
		return r, false
	}
	return r, true
}

// IsHiraganaInString is like [IsHiragana] but examines only the first code
// point of str. It returns false for an empty string.
func IsHiraganaInString(str string) bool {
	r, ok := firstRune(str)
	return ok && IsHiragana(r)
}

// IsKatakanaInString is like [IsKatakana] but examines only the first code
// point of str. It returns false for an empty string.
func IsKatakanaInString(str string) bool {
	r, ok := firstRune(str)
	return ok && IsKatakana(r)
}

// IsKanjiInString is like [IsKanji] but examines only the first code point of
// str. It returns false for an empty string.
func IsKanjiInString(str string) bool {
	r, ok := firstRune(str)
	return ok && IsKanji(r)
}

// IsFullWidthInString is like [IsFullWidth] but examines only the first code
// point of str. It returns false for an empty string.
func IsFullWidthInString(str string) bool {
	r, ok := firstRune(str)
	return ok && IsFullWidth(r)
}

// IsHalfWidthInString is like [IsHalfWidth] but examines only the first code
// point of str. Unlike the rune version, it is not the negation of
// [IsFullWidthInString]: both return false for an empty string.
func IsHalfWidthInString(str string) bool {
	r, ok := firstRune(str)
	return ok && IsHalfWidth(r)
}

// isAll reports whether str is non-empty and every code point in it
// satisfies is.
func isAll(str string, is func(rune) bool) bool {
	if str == "" {
		return false
	}
	for _, r := range str {
		if !is(r) {
			return false
		}
	}
	return true
}

// IsAllHiragana reports whether str is non-empty and consists of hiragana
// only. The empty string is not considered all hiragana.
func IsAllHiragana(str string) bool {
	return isAll(str, IsHiragana)
}

// IsAllKatakana reports whether str is non-empty and consists of katakana
// only.
func IsAllKatakana(str string) bool {
	return isAll(str, IsKatakana)
}

// IsAllKanji reports whether str is non-empty and consists of kanji only.
func IsAllKanji(str string) bool {
	return isAll(str, IsKanji)
}
