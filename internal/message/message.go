// SPDX-License-Identifier: AGPL-3.0-or-later

// Package message splits a raw commit message into rows.
//
// Only the first row (the header) is analyzed by sven; the remaining rows are
// kept so callers can tell where the header ends and how the body is shaped.
package message

import (
	"strings"

	"github.com/bartekus/sven/internal/token"
)

// Row is a single line of a commit message, including its line break.
type Row struct {
	// Number is 1-based.
	Number int         `json:"number"`
	Range  token.Range `json:"range"`
	// Blank is set for rows that hold nothing but a line break.
	Blank bool `json:"blank"`
}

// Message is a commit message split into rows.
type Message struct {
	Text string
	Rows []Row
}

// Parse splits text into rows. An empty text has no rows.
func Parse(text string) *Message {
	m := &Message{Text: text}

	start := 0
	for start < len(text) {
		end := len(text)
		if i := strings.IndexByte(text[start:], '\n'); i >= 0 {
			end = start + i + 1
		}
		m.Rows = append(m.Rows, Row{
			Number: len(m.Rows) + 1,
			Range:  token.Range{Start: start, End: end},
			Blank:  isBlank(text[start:end]),
		})
		start = end
	}
	return m
}

// Header returns the first row including its line break, or "" when the
// message is empty.
func (m *Message) Header() string {
	if len(m.Rows) == 0 {
		return ""
	}
	s, _ := m.Rows[0].Range.Capture(m.Text)
	return s
}

// Capture returns the text of row r.
func (m *Message) Capture(r Row) string {
	s, _ := r.Range.Capture(m.Text)
	return s
}

// Header is shorthand for Parse(text).Header().
func Header(text string) string {
	return Parse(text).Header()
}

func isBlank(row string) bool {
	return row == "\n" || row == "\r\n"
}
