package jptext

import "strings"

// Extract returns the code points of str that belong to the given script,
// in their original order. Passing [ScriptOther] keeps everything that is
// not hiragana, katakana, or kanji.
func Extract(str string, script Script) string {
	return strings.Map(keep(func(r rune) bool {
		return ScriptOf(r) == script
	}), str)
}

// ExtractHiragana returns the hiragana in str.
func ExtractHiragana(str string) string {
	return strings.Map(keep(IsHiragana), str)
}

// ExtractKatakana returns the katakana in str.
func ExtractKatakana(str string) string {
	return strings.Map(keep(IsKatakana), str)
}

// ExtractKanji returns the kanji in str.
func ExtractKanji(str string) string {
	return strings.Map(keep(IsKanji), str)
}

// keep turns a predicate into a strings.Map mapping that drops the code
// points not satisfying it.
func keep(is func(rune) bool) func(rune) rune {
	return func(r rune) rune {
		if is(r) {
			return r
		}
		return -1
	}
}
