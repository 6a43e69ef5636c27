package jptext

// CharacterStats holds code point counts for a string.
//
// Hiragana, Katakana, and Kanji are disjoint but not exhaustive, so their sum
// may be less than Total. FullWidth and HalfWidth always add up to Total.
type CharacterStats struct {
	Total        int `json:"total" yaml:"total"`
	Hiragana     int `json:"hiragana" yaml:"hiragana"`
	Katakana     int `json:"katakana" yaml:"katakana"`
	Kanji        int `json:"kanji" yaml:"kanji"`
	FullWidth    int `json:"fullWidth" yaml:"fullWidth"`
	HalfWidth    int `json:"halfWidth" yaml:"halfWidth"`
	DisplayWidth int `json:"displayWidth" yaml:"displayWidth"`
}

// RuneWidth returns the number of display columns of r: 2 if [IsFullWidth]
// reports true, 1 otherwise. Control characters and combining marks are not
// special-cased.
func RuneWidth(r rune) int {
	if IsFullWidth(r) {
		return 2
	}
	return 1
}

// DisplayWidth returns the sum of [RuneWidth] over all code points in str.
func DisplayWidth(str string) (width int) {
	for _, r := range str {
		width += RuneWidth(r)
	}
	return
}

// Stats counts the code points of str by script and width. Invalid UTF-8
// bytes count as one U+FFFD each.
func Stats(str string) (stats CharacterStats) {
	for _, r := range str {
		stats.Total++
		switch propertyScript(r) {
		case prHiragana:
			stats.Hiragana++
		case prKatakana:
			stats.Katakana++
		case prKanji:
			stats.Kanji++
		}
		if IsFullWidth(r) {
			stats.FullWidth++
		} else {
			stats.HalfWidth++
		}
		stats.DisplayWidth += RuneWidth(r)
	}
	return
}
