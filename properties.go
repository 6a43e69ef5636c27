package jptext

// Script properties used by the classifier. prOther must be 0 so that a
// failed table lookup yields it.
const (
	prOther = iota
	prHiragana
	prKatakana
	prKanji
)

// Block boundaries.
const (
	hiraganaFirst = 0x3040
	hiraganaLast  = 0x309f
	katakanaFirst = 0x30a0
	katakanaLast  = 0x30ff

	// kanaOffset is the distance between a hiragana syllable and its
	// katakana counterpart.
	kanaOffset = katakanaFirst - hiraganaFirst

	// Syllables that have a counterpart in the other block: ぁ..ゖ and ァ..ヶ.
	hiraganaSyllableFirst = 0x3041
	hiraganaSyllableLast  = 0x3096
	katakanaSyllableFirst = hiraganaSyllableFirst + kanaOffset
	katakanaSyllableLast  = hiraganaSyllableLast + kanaOffset

	// wideOffset is the distance between an ASCII character and its form in
	// the Halfwidth and Fullwidth Forms block.
	wideOffset = 0xfee0

	// halfWidthLimit is the last code point considered half-width. This is
	// a presentation heuristic, not the East Asian Width property: anything
	// above Latin-1 counts as full-width, including narrow symbols, Latin
	// Extended letters, and emoji.
	halfWidthLimit = 0xff

	ideographicSpace = '　'
)

// scriptCodePoints maps code point ranges to script properties. It must be
// sorted by first code point. Only CJK Unified Ideographs and Extensions A
// and B count as kanji; Extensions C and later are deliberately left out.
//
// Note that the CJK Unified Ideographs range stops at U+9FAF, not at the
// end of the block.
var scriptCodePoints = [][3]int{
	{0x3040, 0x309f, prHiragana}, // Hiragana
	{0x30a0, 0x30ff, prKatakana}, // Katakana
	{0x3400, 0x4dbf, prKanji},    // CJK Unified Ideographs Extension A
	{0x4e00, 0x9faf, prKanji},    // CJK Unified Ideographs
	{0x20000, 0x2a6df, prKanji},  // CJK Unified Ideographs Extension B
}

// propertySearch performs a binary search on a sorted property table.
// Each entry is [startCodePoint, endCodePoint, property].
// Returns the matching entry, or zero-initialized entry if not found.
func propertySearch(dictionary [][3]int, r rune) (result [3]int) {
	// Run a binary search.
	from := 0
	to := len(dictionary)
	for to > from {
		middle := (from + to) / 2
		cpRange := dictionary[middle]
		if int(r) < cpRange[0] {
			to = middle
			continue
		}
		if int(r) > cpRange[1] {
			from = middle + 1
			continue
		}
		return cpRange
	}
	return
}

// propertyScript returns the script property of the given code point while
// fast tracking everything below the hiragana block.
func propertyScript(r rune) int {
	if r < hiraganaFirst {
		return prOther
	}
	return propertySearch(scriptCodePoints, r)[2]
}
