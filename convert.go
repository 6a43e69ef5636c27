package jptext

import "strings"

// toKatakana maps a hiragana syllable to katakana.
func toKatakana(r rune) rune {
	if r >= hiraganaSyllableFirst && r <= hiraganaSyllableLast {
		return r + kanaOffset
	}
	return r
}

// toHiragana maps a katakana syllable to hiragana.
func toHiragana(r rune) rune {
	if r >= katakanaSyllableFirst && r <= katakanaSyllableLast {
		return r - kanaOffset
	}
	return r
}

// widenAlphanumeric maps an ASCII letter or digit to its full-width form.
func widenAlphanumeric(r rune) rune {
	if r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z' || r >= '0' && r <= '9' {
		return r + wideOffset
	}
	return r
}

// narrowAlphanumeric maps a full-width letter or digit to ASCII.
func narrowAlphanumeric(r rune) rune {
	if r >= 'Ａ' && r <= 'Ｚ' || r >= 'ａ' && r <= 'ｚ' || r >= '０' && r <= '９' {
		return r - wideOffset
	}
	return r
}

// HiraganaToKatakana converts hiragana syllables (ぁ..ゖ, U+3041..U+3096) to
// katakana. Everything else, including the hiragana iteration marks and
// combining sound marks, is left as is.
func HiraganaToKatakana(str string) string {
	return strings.Map(toKatakana, str)
}

// KatakanaToHiragana converts katakana syllables (ァ..ヶ, U+30A1..U+30F6) to
// hiragana. Letters without a hiragana counterpart, such as ヷ..ヺ and the
// prolonged sound mark ー, are left as is.
func KatakanaToHiragana(str string) string {
	return strings.Map(toHiragana, str)
}

// FullToHalfAlphanumeric converts full-width Latin letters and digits
// (Ａ..Ｚ, ａ..ｚ, ０..９) to ASCII. Full-width punctuation is not affected.
func FullToHalfAlphanumeric(str string) string {
	return strings.Map(narrowAlphanumeric, str)
}

// HalfToFullAlphanumeric converts ASCII letters and digits to their
// full-width forms.
func HalfToFullAlphanumeric(str string) string {
	return strings.Map(widenAlphanumeric, str)
}
