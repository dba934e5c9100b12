// SPDX-License-Identifier: AGPL-3.0-or-later

package report

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/bartekus/sven/internal/header"
	"github.com/bartekus/sven/internal/token"
)

// Finding is an issue together with its human wording.
type Finding struct {
	header.Issue
	Message string `json:"message"`
}

// Findings words every issue of res. Anchors are resolved against the
// header's tokens and against the issues emitted before.
func Findings(res *header.Result) []Finding {
	d := describer{
		src:    res.Header,
		tokens: make(map[int]token.Token, len(res.Tokens)),
		issues: make(map[int]header.Issue, len(res.Issues)),
	}
	for _, t := range res.Tokens {
		d.tokens[t.ID] = t
	}

	out := make([]Finding, 0, len(res.Issues))
	for _, is := range res.Issues {
		out = append(out, Finding{Issue: is, Message: d.message(is)})
		d.issues[is.ID] = is
	}
	return out
}

type describer struct {
	src    string
	tokens map[int]token.Token
	issues map[int]header.Issue
}

func (d describer) message(is header.Issue) string {
	subject := SubjectLabel(is.Subject)
	switch is.Data.Kind {
	case header.KindMissing:
		if is.Subject == header.SubjectHeader {
			return "header is empty"
		}
		return fmt.Sprintf("%s is missing, expected %s", subject, d.anchor(*is.Data.ExpectedAt))
	case header.KindMisplaced:
		return fmt.Sprintf("%s is misplaced, expected %s but found %s",
			subject, d.anchor(*is.Data.ExpectedAt), d.anchor(*is.Data.FoundAt))
	default:
		return fmt.Sprintf("unexpected %s %s", subject, d.anchor(*is.Data.FoundAt))
	}
}

// anchor words an At value, e.g. `after "fix" (column 1)`.
func (d describer) anchor(at header.At) string {
	var target string
	switch at.Target.Kind {
	case header.TargetRoot:
		return "at the start of the header"
	case header.TargetToken:
		target = d.token(at.Target.ID)
	case header.TargetIssue:
		target = d.issue(at.Target.ID)
	}

	switch at.Relation {
	case header.After:
		return "after " + target
	case header.Before:
		return "before " + target
	default:
		return "at " + target
	}
}

func (d describer) token(id int) string {
	t, ok := d.tokens[id]
	if !ok {
		return fmt.Sprintf("token %d", id)
	}
	return fmt.Sprintf("%s (column %d)", strconv.Quote(t.Capture(d.src)), Column(d.src, t))
}

func (d describer) issue(id int) string {
	is, ok := d.issues[id]
	if !ok {
		return fmt.Sprintf("issue #%d", id)
	}
	return fmt.Sprintf("the missing %s (#%d)", SubjectLabel(is.Subject), id)
}

// Column returns the 1-based rune column where t starts in src.
func Column(src string, t token.Token) int {
	start := min(max(t.Range.Start, 0), len(src))
	return utf8.RuneCountInString(src[:start]) + 1
}

// SubjectLabel returns the subject in words.
func SubjectLabel(s header.Subject) string {
	switch s {
	case header.SubjectDesc:
		return "description"
	case header.SubjectBreaking:
		return "breaking change mark"
	default:
		return strings.ReplaceAll(string(s), "_", " ")
	}
}
