// SPDX-License-Identifier: AGPL-3.0-or-later

// Package token turns a commit header into an ordered stream of typed tokens.
//
// Every token carries a 1-based id, assigned in encounter order, and a
// half-open byte range into the text it was produced from. Tokens are values
// and are never mutated after Tokenize returns.
package token

import (
	"fmt"
	"unicode"
	"unicode/utf8"

	"github.com/bartekus/sven/internal/counter"
)

// Kind classifies a token.
type Kind uint8

const (
	// Word is any run of characters that is not one of the other kinds.
	Word Kind = iota + 1
	Whitespace
	OpenBracket
	CloseBracket
	ExclMark
	Colon
	EndOfLine
)

var kindNames = map[Kind]string{
	Word:         "Word",
	Whitespace:   "Whitespace",
	OpenBracket:  "OpenBracket",
	CloseBracket: "CloseBracket",
	ExclMark:     "ExclMark",
	Colon:        "Colon",
	EndOfLine:    "EndOfLine",
}

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Range is a half-open byte range [Start, End).
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Len returns the number of bytes covered by the range.
func (r Range) Len() int { return r.End - r.Start }

// Capture returns the substring of src covered by the range.
// It reports false when the range does not fit src.
func (r Range) Capture(src string) (string, bool) {
	if r.Start < 0 || r.End < r.Start || r.End > len(src) {
		return "", false
	}
	return src[r.Start:r.End], true
}

// Token is a single lexical element of a header.
type Token struct {
	ID    int   `json:"id"`
	Kind  Kind  `json:"kind"`
	Range Range `json:"range"`
}

// Capture returns the text of the token within src, or "" when the token's
// range does not belong to src.
func (t Token) Capture(src string) string {
	s, _ := t.Range.Capture(src)
	return s
}

// Tokenize splits text into tokens. Ids start at 1.
func Tokenize(text string) []Token {
	ids := counter.New(1)
	var out []Token

	wordStart := -1
	flushWord := func(end int) {
		if wordStart < 0 {
			return
		}
		out = append(out, Token{ID: ids.Stamp(), Kind: Word, Range: Range{Start: wordStart, End: end}})
		wordStart = -1
	}

	for i := 0; i < len(text); {
		r, width := utf8.DecodeRuneInString(text[i:])

		kind, size := classify(text, i, r, width)
		if kind == Word {
			if wordStart < 0 {
				wordStart = i
			}
			i += width
			continue
		}

		flushWord(i)
		out = append(out, Token{ID: ids.Stamp(), Kind: kind, Range: Range{Start: i, End: i + size}})
		i += size
	}
	flushWord(len(text))

	return out
}

// classify reports the kind of the token starting at text[i] and how many
// bytes it spans. Word is returned for characters that extend a word.
func classify(text string, i int, r rune, width int) (Kind, int) {
	switch r {
	case '\n':
		return EndOfLine, width
	case '\r':
		if i+1 < len(text) && text[i+1] == '\n' {
			return EndOfLine, 2
		}
		return Whitespace, width
	case '(':
		return OpenBracket, width
	case ')':
		return CloseBracket, width
	case '!':
		return ExclMark, width
	case ':':
		return Colon, width
	}
	if r != utf8.RuneError && unicode.IsSpace(r) {
		return Whitespace, width
	}
	return Word, width
}

// FirstLine returns the tokens that precede the first EndOfLine token.
func FirstLine(tokens []Token) []Token {
	for i, t := range tokens {
		if t.Kind == EndOfLine {
			return tokens[:i]
		}
	}
	return tokens
}
