/*
Package jptext implements character classification, script and width
conversion, and simple statistics for Japanese text.

All functions are pure and safe for concurrent use. They work on Unicode code
points (runes), not on grapheme clusters, and never return errors: empty or
malformed input yields false, zero, or an unchanged string.

# Overview

Using this package, you can:
  - Classify a code point as hiragana, katakana, kanji, or other
  - Convert between hiragana and katakana
  - Convert half-width katakana to full-width and back
  - Convert between ASCII and full-width letters and digits
  - Count characters by script and width, and compute display width
  - Extract the characters of one script
  - Remove, normalize, or trim ASCII and ideographic spaces

# Classification

The script of a code point is decided by range only:

	hiragana  U+3040..U+309F
	katakana  U+30A0..U+30FF
	kanji     U+4E00..U+9FAF, U+3400..U+4DBF, U+20000..U+2A6DF

Half-width katakana (U+FF65..U+FF9F) are not katakana, and the rarer CJK
extensions (C and later) are not kanji. Use [ScriptOf], the Is* predicates,
or [IsAllHiragana], [IsAllKatakana], and [IsAllKanji]. The latter return false
for an empty string.

Functions with an "InString" suffix, such as [IsHiraganaInString], look at the
first code point of a string only.

# Width

Width is a single threshold: code points above U+00FF are full-width and
occupy two columns, everything else is half-width and occupies one. This is
not the East Asian Width property of Unicode Standard Annex #11. Many narrow
characters (symbols, accented Latin letters, emoji) count as full-width, and
combining marks and control characters count as one column. [IsFullWidth],
[RuneWidth], [DisplayWidth], and [Stats] all follow this rule.

# Half-width Katakana

Half-width katakana write voiced and semi-voiced syllables as two code
points, a letter followed by ﾞ (U+FF9E) or ﾟ (U+FF9F):

	jptext.HalfToFullKatakana("ｶﾞｷﾞｸﾞ") // "ガギグ"
	jptext.HalfToFullKatakana("ﾊﾟﾋﾟﾌﾟ") // "パピプ"

Dakuten combine with the KA, SA, TA, and HA columns, handakuten with the HA
column only. A mark that cannot combine with the letter before it is dropped.
[FirstKanaCluster] and [FirstKanaClusterInString] expose the underlying
letter-plus-mark segmentation.

# Streaming

Every conversion has a [Transformer] counterpart (for example [ToKatakana]
and [WidenKatakana]) that implements golang.org/x/text/transform.Transformer
and produces the same result over arbitrarily chunked input:

	r := transform.NewReader(os.Stdin, jptext.WidenKatakana)
*/
package jptext
