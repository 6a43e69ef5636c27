package jptext

import "strings"

// The range covered by [halfwidthKatakana].
const (
	halfwidthFirst = 0xff61
	halfwidthLast  = 0xff9f
)

// narrowKatakana is the inverse of the half-width tables. Voiced and
// semi-voiced letters map to two code points.
var narrowKatakana = invertHalfwidthKatakana()

func invertHalfwidthKatakana() map[rune]string {
	m := make(map[rune]string, len(halfwidthKatakana)+len(voicedKatakana)+len(semiVoicedKatakana))
	for i, wide := range halfwidthKatakana {
		m[wide] = string(rune(halfwidthFirst + i))
	}
	for base, voiced := range voicedKatakana {
		m[voiced] = m[base] + string(HalfwidthVoicedMark)
	}
	for base, semiVoiced := range semiVoicedKatakana {
		m[semiVoiced] = m[base] + string(HalfwidthSemiVoicedMark)
	}
	return m
}

// widenKana returns the full-width form of a half-width katakana letter,
// sound mark, or punctuation. Other code points are returned unchanged.
func widenKana(r rune) rune {
	if r >= halfwidthFirst && r <= halfwidthLast {
		return halfwidthKatakana[r-halfwidthFirst]
	}
	return r
}

// widenCluster returns the full-width form of a cluster as returned by
// [FirstKanaCluster]. The base is widened first and the mark is then combined
// with the result if a voiced or semi-voiced form exists. Otherwise the mark
// is dropped.
func widenCluster(base, mark rune) rune {
	wide := widenKana(base)
	var combined map[rune]rune
	switch mark {
	case HalfwidthVoicedMark:
		combined = voicedKatakana
	case HalfwidthSemiVoicedMark:
		combined = semiVoicedKatakana
	default:
		return wide
	}
	if r, ok := combined[wide]; ok {
		return r
	}
	return wide
}

// HalfToFullKatakana converts half-width katakana, sound marks, and
// punctuation (U+FF61..U+FF9F) to their full-width forms. A letter followed
// by ﾞ or ﾟ becomes a single voiced or semi-voiced letter:
//
//	HalfToFullKatakana("ｶﾞｷﾞｸﾞ") == "ガギグ"
//	HalfToFullKatakana("ﾊﾟﾋﾟﾌﾟ") == "パピプ"
//
// A sound mark following a code point that has no voiced or semi-voiced form
// is absorbed: "ｱﾞ" becomes "ア" and "Aﾞ" becomes "A". A sound mark that does
// not follow anything becomes ゛ or ゜. All other code points pass through.
func HalfToFullKatakana(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for len(str) > 0 {
		var base, mark rune
		_, str, base, mark = FirstKanaClusterInString(str)
		b.WriteRune(widenCluster(base, mark))
	}
	return b.String()
}

// FullToHalfKatakana is the inverse of [HalfToFullKatakana]. Full-width
// katakana, ゛, ゜ and the punctuation 。「」、・ are converted to their
// half-width forms; voiced and semi-voiced letters are split into a letter
// and ﾞ or ﾟ. Letters without a half-width form (ヰ, ヱ, ヮ, ヵ, ヶ, ヴ and
// the like) pass through unchanged.
func FullToHalfKatakana(str string) string {
	var b strings.Builder
	b.Grow(len(str))
	for _, r := range str {
		if narrow, ok := narrowKatakana[r]; ok {
			b.WriteString(narrow)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
