// SPDX-License-Identifier: AGPL-3.0-or-later

/*
Sven - Sven is a Conventional Commits linter that explains exactly what is wrong with a commit header and where the fix belongs.

Copyright (C) 2025  Bartek Kus

This program is free software licensed under the terms of the GNU AGPL v3 or later.

See https://www.gnu.org/licenses/ for license details.

*/

// Package report renders header analysis results as text, JSON or Markdown.
package report

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/bartekus/sven/internal/header"
)

// SchemaVersion is the version of the JSON document layout.
const SchemaVersion = 1

// Format is an output format.
type Format string

const (
	FormatText     Format = "text"
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatText, FormatJSON, FormatMarkdown:
		return f, nil
	default:
		return "", fmt.Errorf("unknown format %q (want text, json or markdown)", s)
	}
}

// Entry is one analyzed header and where it came from, such as a file name
// or a commit hash.
type Entry struct {
	Source string
	Result *header.Result
}

// Document is the rendered form of a batch of entries.
type Document struct {
	Version int      `json:"version"`
	Reports []Report `json:"reports"`
	Summary *Summary `json:"summary,omitempty"`
}

// Report is the outcome for one header.
type Report struct {
	Source   string    `json:"source"`
	Header   string    `json:"header"`
	Valid    bool      `json:"valid"`
	Findings []Finding `json:"issues"`
}

// Summary counts results over a batch.
type Summary struct {
	Total     int                    `json:"total"`
	Clean     int                    `json:"clean"`
	Failing   int                    `json:"failing"`
	BySubject map[header.Subject]int `json:"by_subject"`
}

// Subjects returns the subjects of s.BySubject, most frequent first.
func (s *Summary) Subjects() []header.Subject {
	out := make([]header.Subject, 0, len(s.BySubject))
	for subj := range s.BySubject {
		out = append(out, subj)
	}
	sort.Slice(out, func(i, j int) bool {
		if s.BySubject[out[i]] != s.BySubject[out[j]] {
			return s.BySubject[out[i]] > s.BySubject[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}

// Options tune rendering.
type Options struct {
	// Color enables ANSI styling of text output.
	Color bool
	// Summary appends batch totals.
	Summary bool
}

// Build converts entries into a Document.
func Build(entries []Entry, withSummary bool) Document {
	doc := Document{Version: SchemaVersion, Reports: make([]Report, 0, len(entries))}
	sum := &Summary{BySubject: map[header.Subject]int{}}

	for _, e := range entries {
		r := Report{
			Source:   e.Source,
			Header:   strings.TrimRight(e.Result.Header, "\r\n"),
			Valid:    e.Result.Valid(),
			Findings: Findings(e.Result),
		}
		doc.Reports = append(doc.Reports, r)

		sum.Total++
		if r.Valid {
			sum.Clean++
			continue
		}
		sum.Failing++
		for _, f := range r.Findings {
			sum.BySubject[f.Subject]++
		}
	}

	if withSummary {
		doc.Summary = sum
	}
	return doc
}

// Write renders entries to w in format f.
func Write(w io.Writer, f Format, entries []Entry, opts Options) error {
	doc := Build(entries, opts.Summary)
	switch f {
	case FormatJSON:
		return writeJSON(w, doc)
	case FormatMarkdown:
		_, err := io.WriteString(w, Markdown(doc))
		return err
	case FormatText, "":
		return writeText(w, doc, opts.Color)
	default:
		return fmt.Errorf("unknown format %q", f)
	}
}
