package jptext_test

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/scalecode-solutions/jptext"
	"golang.org/x/text/transform"
)

func ExampleScriptOf() {
	for _, r := range "あア漢A" {
		fmt.Println(string(r), jptext.ScriptOf(r), jptext.WidthOf(r))
	}
	// Output: あ hiragana full
	//ア katakana full
	//漢 kanji full
	//A other half
}

func ExampleIsAllHiragana() {
	fmt.Println(jptext.IsAllHiragana("ひらがな"))
	fmt.Println(jptext.IsAllHiragana("ひらがなとカタカナ"))
	fmt.Println(jptext.IsAllHiragana(""))
	// Output: true
	//false
	//false
}

func ExampleHiraganaToKatakana() {
	fmt.Println(jptext.HiraganaToKatakana("にほんご"))
	// Output: ニホンゴ
}

func ExampleHalfToFullKatakana() {
	fmt.Println(jptext.HalfToFullKatakana("ｶﾞｷﾞｸﾞ"))
	fmt.Println(jptext.HalfToFullKatakana("ﾊﾟﾋﾟﾌﾟ"))
	fmt.Println(jptext.HalfToFullKatakana("ｺﾝﾆﾁﾊ｡"))
	// Output: ガギグ
	//パピプ
	//コンニチハ。
}

func ExampleFullToHalfKatakana() {
	fmt.Println(jptext.FullToHalfKatakana("ガッコウ"))
	// Output: ｶﾞｯｺｳ
}

func ExampleFirstKanaClusterInString() {
	str := "ﾊﾟﾝｶﾞ"
	var c string
	for len(str) > 0 {
		c, str, _, _ = jptext.FirstKanaClusterInString(str)
		fmt.Printf("(%s)", c)
	}
	fmt.Println()
	// Output: (ﾊﾟ)(ﾝ)(ｶﾞ)
}

func ExampleStats() {
	fmt.Printf("%+v\n", jptext.Stats("あアA漢"))
	// Output: {Total:4 Hiragana:1 Katakana:1 Kanji:1 FullWidth:3 HalfWidth:1 DisplayWidth:7}
}

func ExampleDisplayWidth() {
	fmt.Println(jptext.DisplayWidth("日本語abc"))
	// Output: 9
}

func ExampleExtractKanji() {
	fmt.Println(jptext.ExtractKanji("あア漢字A"))
	// Output: 漢字
}

func ExampleTrimWhitespace() {
	fmt.Printf("[%s]\n", jptext.TrimWhitespace("　　あいう　　"))
	// Output: [あいう]
}

func ExampleWidenKatakana() {
	r := transform.NewReader(strings.NewReader("ﾃﾞｰﾀﾍﾞｰｽ"), jptext.WidenKatakana)
	if _, err := io.Copy(os.Stdout, r); err != nil {
		panic(err)
	}
	fmt.Println()
	// Output: データベース
}
