package jptext

import (
	"errors"
	"testing"
	"unicode/utf8"
)

// TestClassifyRune checks range boundaries of the rune predicates.
func TestClassifyRune(t *testing.T) {
	tests := []struct {
		r        rune
		script   Script
		fullWide bool
	}{
		{'A', ScriptOther, false},
		{'~', ScriptOther, false},
		{0xff, ScriptOther, false},
		{0x100, ScriptOther, true},
		{0x303f, ScriptOther, true},
		{0x3040, ScriptHiragana, true},
		{'あ', ScriptHiragana, true},
		{'ゟ', ScriptHiragana, true},
		{0x30a0, ScriptKatakana, true},
		{'ア', ScriptKatakana, true},
		{'ー', ScriptKatakana, true},
		{'ヿ', ScriptKatakana, true},
		{0x3100, ScriptOther, true},
		{0x33ff, ScriptOther, true},
		{0x3400, ScriptKanji, true},
		{0x4dbf, ScriptKanji, true},
		{0x4dc0, ScriptOther, true},
		{0x4dff, ScriptOther, true},
		{'一', ScriptKanji, true},
		{'漢', ScriptKanji, true},
		{0x9faf, ScriptKanji, true},
		{0x9fb0, ScriptOther, true},
		{0x1ffff, ScriptOther, true},
		{0x20000, ScriptKanji, true},
		{'𠮷', ScriptKanji, true},
		{0x2a6df, ScriptKanji, true},
		{0x2a700, ScriptOther, true}, // Extension C
		{'ｱ', ScriptOther, true},
		{'Ａ', ScriptOther, true},
		{'é', ScriptOther, false},
		{'😀', ScriptOther, true},
	}

	for _, tt := range tests {
		t.Run(string(tt.r), func(t *testing.T) {
			if got := ScriptOf(tt.r); got != tt.script {
				t.Errorf("ScriptOf(%U) = %v, want %v", tt.r, got, tt.script)
			}
			if got := IsHiragana(tt.r); got != (tt.script == ScriptHiragana) {
				t.Errorf("IsHiragana(%U) = %v", tt.r, got)
			}
			if got := IsKatakana(tt.r); got != (tt.script == ScriptKatakana) {
				t.Errorf("IsKatakana(%U) = %v", tt.r, got)
			}
			if got := IsKanji(tt.r); got != (tt.script == ScriptKanji) {
				t.Errorf("IsKanji(%U) = %v", tt.r, got)
			}
			if got := IsFullWidth(tt.r); got != tt.fullWide {
				t.Errorf("IsFullWidth(%U) = %v, want %v", tt.r, got, tt.fullWide)
			}
			if IsFullWidth(tt.r) == IsHalfWidth(tt.r) {
				t.Errorf("IsFullWidth(%U) == IsHalfWidth(%U)", tt.r, tt.r)
			}
		})
	}
}

// TestClassifyInString checks that only the first code point is examined
// and that empty input is false everywhere.
func TestClassifyInString(t *testing.T) {
	predicates := []struct {
		name string
		fn   func(string) bool
	}{
		{"IsHiraganaInString", IsHiraganaInString},
		{"IsKatakanaInString", IsKatakanaInString},
		{"IsKanjiInString", IsKanjiInString},
		{"IsFullWidthInString", IsFullWidthInString},
		{"IsHalfWidthInString", IsHalfWidthInString},
	}
	for _, p := range predicates {
		if p.fn("") {
			t.Errorf("%s(\"\") = true, want false", p.name)
		}
		if p.fn("\xff") {
			t.Errorf("%s(invalid) = true, want false", p.name)
		}
	}

	tests := []struct {
		input string
		want  [5]bool // hiragana, katakana, kanji, full, half
	}{
		{"あア", [5]bool{true, false, false, true, false}},
		{"アあ", [5]bool{false, true, false, true, false}},
		{"漢a", [5]bool{false, false, true, true, false}},
		{"a漢", [5]bool{false, false, false, false, true}},
		{"ｶﾞ", [5]bool{false, false, false, true, false}},
	}
	for _, tt := range tests {
		for i, p := range predicates {
			if got := p.fn(tt.input); got != tt.want[i] {
				t.Errorf("%s(%q) = %v, want %v", p.name, tt.input, got, tt.want[i])
			}
		}
	}
}

func TestIsAll(t *testing.T) {
	tests := []struct {
		input                     string
		hiragana, katakana, kanji bool
	}{
		{"", false, false, false},
		{"ひらがな", true, false, false},
		{"カタカナ", false, true, false},
		{"ラーメン", false, true, false},
		{"漢字", false, false, true},
		{"𠮷野家", false, false, true},
		{"ひらがなカタカナ", false, false, false},
		{"漢字かな", false, false, false},
		{"ｶﾀｶﾅ", false, false, false},
		{"ひら がな", false, false, false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := IsAllHiragana(tt.input); got != tt.hiragana {
				t.Errorf("IsAllHiragana(%q) = %v, want %v", tt.input, got, tt.hiragana)
			}
			if got := IsAllKatakana(tt.input); got != tt.katakana {
				t.Errorf("IsAllKatakana(%q) = %v, want %v", tt.input, got, tt.katakana)
			}
			if got := IsAllKanji(tt.input); got != tt.kanji {
				t.Errorf("IsAllKanji(%q) = %v, want %v", tt.input, got, tt.kanji)
			}
		})
	}
}

// TestScriptTableSorted guards the binary search.
func TestScriptTableSorted(t *testing.T) {
	for i := 1; i < len(scriptCodePoints); i++ {
		if scriptCodePoints[i][0] <= scriptCodePoints[i-1][1] {
			t.Errorf("entry %d (%#x) overlaps or precedes entry %d (%#x)", i, scriptCodePoints[i][0], i-1, scriptCodePoints[i-1][1])
		}
	}
}

// TestPropertyScriptExhaustive compares the table lookup with the rune
// predicates over the whole code space.
func TestPropertyScriptExhaustive(t *testing.T) {
	for r := rune(0); r <= utf8.MaxRune; r++ {
		want := ScriptOther
		switch {
		case r >= 0x3040 && r <= 0x309f:
			want = ScriptHiragana
		case r >= 0x30a0 && r <= 0x30ff:
			want = ScriptKatakana
		case r >= 0x4e00 && r <= 0x9faf, r >= 0x3400 && r <= 0x4dbf, r >= 0x20000 && r <= 0x2a6df:
			want = ScriptKanji
		}
		if got := ScriptOf(r); got != want {
			t.Fatalf("ScriptOf(%U) = %v, want %v", r, got, want)
		}
	}
}

func TestParseScript(t *testing.T) {
	for _, s := range []Script{ScriptOther, ScriptHiragana, ScriptKatakana, ScriptKanji} {
		got, err := ParseScript(s.String())
		if err != nil {
			t.Fatalf("ParseScript(%q): %v", s.String(), err)
		}
		if got != s {
			t.Errorf("ParseScript(%q) = %v, want %v", s.String(), got, s)
		}
	}
	if _, err := ParseScript("hangul"); !errors.Is(err, ErrUnknownScript) {
		t.Errorf("ParseScript(\"hangul\") error = %v, want ErrUnknownScript", err)
	}
	if got := Script(42).String(); got != "Script(42)" {
		t.Errorf("Script(42).String() = %q", got)
	}
}
