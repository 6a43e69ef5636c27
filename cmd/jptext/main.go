// Command jptext classifies and converts Japanese text from the command line.
//
// Text is taken from the arguments, joined with single spaces, or from
// standard input:
//
//	jptext convert katakana ひらがな
//	cat input.txt | jptext convert wide-kana > output.txt
//	jptext stats --format yaml 東京タワー
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "jptext: %v\n", err)
		os.Exit(1)
	}
}
