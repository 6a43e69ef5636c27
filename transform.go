package jptext

import (
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// Transformer implements the transform.Transformer interface. It lets the
// conversions of this package run over streams, for example with
// transform.NewReader or transform.NewWriter.
type Transformer struct {
	t transform.Transformer
}

// Reset implements the transform.Transformer interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the transform.Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

// Streaming counterparts of the string conversions. Each produces the same
// output as its string function, regardless of how the input is split into
// chunks. None of them keep state, so they may be shared.
var (
	// ToKatakana is the streaming form of [HiraganaToKatakana].
	ToKatakana = Transformer{runes.Map(toKatakana)}

	// ToHiragana is the streaming form of [KatakanaToHiragana].
	ToHiragana = Transformer{runes.Map(toHiragana)}

	// WidenAlphanumeric is the streaming form of [HalfToFullAlphanumeric].
	WidenAlphanumeric = Transformer{runes.Map(widenAlphanumeric)}

	// NarrowAlphanumeric is the streaming form of [FullToHalfAlphanumeric].
	NarrowAlphanumeric = Transformer{runes.Map(narrowAlphanumeric)}

	// WidenKatakana is the streaming form of [HalfToFullKatakana].
	WidenKatakana = Transformer{widenKatakanaTransformer{}}

	// NarrowKatakana is the streaming form of [FullToHalfKatakana].
	NarrowKatakana = Transformer{narrowKatakanaTransformer{}}

	// RemoveSpace is the streaming form of [RemoveWhitespace].
	RemoveSpace = Transformer{runes.Remove(runes.Predicate(IsWhitespace))}

	// NormalizeSpace is the streaming form of [NormalizeWhitespace].
	NormalizeSpace = Transformer{runes.Map(func(r rune) rune {
		if r == ideographicSpace {
			return ' '
		}
		return r
	})}
)

// Keep returns a Transformer that drops every code point not belonging to
// script. It is the streaming form of [Extract].
func Keep(script Script) Transformer {
	return Transformer{runes.Remove(runes.Predicate(func(r rune) bool {
		return ScriptOf(r) != script
	}))}
}

// widenKatakanaTransformer combines half-width letters with a following
// sound mark. It needs one code point of lookahead, so a chunk whose last
// complete code point could still take a mark is left for the next call.
type widenKatakanaTransformer struct{ transform.NopResetter }

func (widenKatakanaTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}
		cluster, rest, base, mark := FirstKanaCluster(src[nSrc:])
		if !atEOF && mark == 0 && (len(rest) == 0 || !utf8.FullRune(rest)) {
			// The next code point may be a sound mark.
			err = transform.ErrShortSrc
			break
		}
		r := widenCluster(base, mark)
		if nDst+utf8.RuneLen(r) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nSrc += len(cluster)
	}
	return
}

// narrowKatakanaTransformer maps one code point to up to two.
type narrowKatakanaTransformer struct{ transform.NopResetter }

func (narrowKatakanaTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		if !atEOF && !utf8.FullRune(src[nSrc:]) {
			err = transform.ErrShortSrc
			break
		}
		r, size := utf8.DecodeRune(src[nSrc:])
		narrow, ok := narrowKatakana[r]
		if !ok {
			narrow = string(r)
		}
		if nDst+len(narrow) > len(dst) {
			err = transform.ErrShortDst
			break
		}
		nDst += copy(dst[nDst:], narrow)
		nSrc += size
	}
	return
}
