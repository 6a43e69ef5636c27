//go:build generate

// This program generates the half-width katakana tables from the Unicode
// Character Database UnicodeData.txt file.
//
//go:generate go run gen_halfkana.go

package main

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"go/format"
	"log"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

const (
	unicodeDataURL = `https://www.unicode.org/Public/17.0.0/ucd/UnicodeData.txt`

	halfwidthFirst = 0xff61
	halfwidthLast  = 0xff9f

	combiningVoiced     = 0x3099
	combiningSemiVoiced = 0x309a
	spacingVoiced       = 0x309b
	spacingSemiVoiced   = 0x309c
)

// entry is one line of UnicodeData.txt reduced to what the tables need.
type entry struct {
	code          int
	name          string
	decomposition string
}

// pair is a table row: a key code point, its mapping, and a comment.
type pair struct {
	from, to int
	comment  string
}

func main() {
	log.SetPrefix("gen_halfkana: ")
	log.SetFlags(0)

	src, err := parse()
	if err != nil {
		log.Fatal(err)
	}

	// Format the Go code.
	formatted, err := format.Source([]byte(src))
	if err != nil {
		log.Fatal("gofmt:", err)
	}

	// Save it to the target file.
	log.Print("Writing to halfkanatables.go")
	if err := os.WriteFile("halfkanatables.go", formatted, 0644); err != nil {
		log.Fatal(err)
	}
}

func parse() (string, error) {
	log.Printf("Parsing %s", unicodeDataURL)
	res, err := http.Get(unicodeDataURL)
	if err != nil {
		return "", err
	}
	defer res.Body.Close()

	var (
		halfwidth  []pair
		voiced     []pair
		semiVoiced []pair
	)

	scanner := bufio.NewScanner(res.Body)
	num := 0
	for scanner.Scan() {
		num++
		e, err := parseEntry(scanner.Text())
		if err != nil {
			return "", fmt.Errorf("line %d: %v", num, err)
		}

		switch {
		case e.code >= halfwidthFirst && e.code <= halfwidthLast:
			to, err := narrowTarget(e.decomposition)
			if err != nil {
				return "", fmt.Errorf("line %d: %v", num, err)
			}
			// Lone marks become their spacing forms.
			switch to {
			case combiningVoiced:
				to = spacingVoiced
			case combiningSemiVoiced:
				to = spacingSemiVoiced
			}
			halfwidth = append(halfwidth, pair{from: e.code, to: to, comment: e.name})

		case strings.HasPrefix(e.name, "KATAKANA LETTER "):
			base, mark, ok := canonicalPair(e.decomposition)
			if !ok {
				continue
			}
			switch {
			case mark == combiningVoiced && takesVoicedMark(base):
				voiced = append(voiced, pair{from: base, to: e.code, comment: e.name})
			case mark == combiningSemiVoiced && takesSemiVoicedMark(base):
				semiVoiced = append(semiVoiced, pair{from: base, to: e.code, comment: e.name})
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return "", err
	}

	if len(halfwidth) != halfwidthLast-halfwidthFirst+1 {
		return "", fmt.Errorf("expected %d half-width entries, found %d", halfwidthLast-halfwidthFirst+1, len(halfwidth))
	}
	if len(voiced) == 0 || len(semiVoiced) == 0 {
		return "", errors.New("no voiced katakana found")
	}

	for _, table := range [][]pair{halfwidth, voiced, semiVoiced} {
		sort.Slice(table, func(i, j int) bool {
			return table[i].from < table[j].from
		})
	}

	// Header.
	var buf bytes.Buffer
	buf.WriteString(`// Code generated via go generate from gen_halfkana.go. DO NOT EDIT.

package jptext

// The tables below are taken from
// ` + unicodeDataURL + `
// on ` + time.Now().Format("January 2, 2006") + `. See https://www.unicode.org/license.html for the Unicode
// license agreement.

// halfwidthKatakana maps U+FF61..U+FF9F, indexed from U+FF61, to their
// full-width forms. The sound marks map to their spacing forms.
var halfwidthKatakana = [...]rune{
`)
	for _, p := range halfwidth {
		fmt.Fprintf(&buf, "\t0x%04x, // U+%04X %s\n", p.to, p.from, p.comment)
	}
	buf.WriteString("}\n\n")

	buf.WriteString("// voicedKatakana maps a katakana letter to its form with dakuten.\n")
	writeMap(&buf, "voicedKatakana", voiced)
	buf.WriteString("\n// semiVoicedKatakana maps a katakana letter to its form with handakuten.\n")
	writeMap(&buf, "semiVoicedKatakana", semiVoiced)

	return buf.String(), nil
}

// writeMap writes a map[rune]rune literal.
func writeMap(buf *bytes.Buffer, name string, pairs []pair) {
	fmt.Fprintf(buf, "var %s = map[rune]rune{\n", name)
	for _, p := range pairs {
		fmt.Fprintf(buf, "\t0x%04x: 0x%04x, // %s\n", p.from, p.to, p.comment)
	}
	buf.WriteString("}\n")
}

// parseEntry parses one semicolon-separated line of UnicodeData.txt.
func parseEntry(line string) (e entry, err error) {
	fields := strings.Split(line, ";")
	if len(fields) < 6 {
		err = errors.New("too few fields")
		return
	}
	code, err := strconv.ParseInt(fields[0], 16, 32)
	if err != nil {
		return
	}
	e.code = int(code)
	e.name = fields[1]
	e.decomposition = fields[5]
	return
}

// narrowTarget returns the code point of a "<narrow> XXXX" decomposition.
func narrowTarget(decomposition string) (int, error) {
	target, ok := strings.CutPrefix(decomposition, "<narrow> ")
	if !ok {
		return 0, fmt.Errorf("not a narrow decomposition: %q", decomposition)
	}
	code, err := strconv.ParseInt(target, 16, 32)
	return int(code), err
}

// canonicalPair splits a canonical two-code-point decomposition.
func canonicalPair(decomposition string) (base, mark int, ok bool) {
	fields := strings.Fields(decomposition)
	if len(fields) != 2 || strings.HasPrefix(fields[0], "<") {
		return
	}
	b, err := strconv.ParseInt(fields[0], 16, 32)
	if err != nil {
		return
	}
	m, err := strconv.ParseInt(fields[1], 16, 32)
	if err != nil {
		return
	}
	return int(b), int(m), true
}

// takesVoicedMark reports whether base is in the KA, SA, TA, or HA column.
// ウ, ワ and the iteration marks are deliberately excluded.
func takesVoicedMark(base int) bool {
	return base >= 0x30ab && base <= 0x30c8 || takesSemiVoicedMark(base)
}

// takesSemiVoicedMark reports whether base is in the HA column.
func takesSemiVoicedMark(base int) bool {
	return base >= 0x30cf && base <= 0x30db
}
