// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"log/slog"

	"github.com/bartekus/sven/internal/counter"
	"github.com/bartekus/sven/internal/message"
	"github.com/bartekus/sven/internal/token"
)

// Analyzer runs the alignment pipeline for one header at a time.
// The zero value uses the AnyFirstSeq policy and does not log.
type Analyzer struct {
	Policy Policy
	Logger *slog.Logger
}

// Result is the outcome of analyzing one header.
type Result struct {
	Header string        `json:"header"`
	Tokens []token.Token `json:"tokens"`
	Issues []Issue       `json:"issues"`
	// Candidates is the number of complete alignments the search found.
	Candidates int `json:"candidates"`
	// Weight is the cost of the winning alignment.
	Weight int `json:"weight"`

	Winner Candidate `json:"-"`
	Layout Layout    `json:"-"`
}

// Valid reports whether the header has no issues.
func (r *Result) Valid() bool { return len(r.Issues) == 0 }

// Analyze aligns header with the grammar and returns the issues found.
// Only the first line of header is considered.
//
// A header without tokens gets a single Header issue. When the search finds
// no alignment at all the same Header issue is returned together with
// ErrNoAlignment.
func (a Analyzer) Analyze(header string) (*Result, error) {
	log := a.Logger
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	tokens := token.Tokenize(header)
	res := &Result{Header: header, Tokens: tokens}
	ids := counter.New(0)

	if len(token.FirstLine(tokens)) == 0 {
		res.Issues = headerMissing(ids)
		log.Debug("empty header", "issues", len(res.Issues))
		return res, nil
	}

	candidates := FindSolutions(header, a.Policy, NewCandidate(tokens))
	res.Candidates = len(candidates)

	winner, err := Select(candidates)
	if err != nil {
		res.Issues = headerMissing(ids)
		log.Debug("no alignment", "tokens", len(tokens))
		return res, err
	}

	res.Winner = winner
	res.Weight = winner.Weight
	res.Layout = Project(header, winner)
	res.Issues = Diagnose(res.Layout, ids)

	log.Debug("header analyzed",
		"policy", a.Policy.Kind().String(),
		"candidates", res.Candidates,
		"weight", res.Weight,
		"issues", len(res.Issues),
	)
	return res, nil
}

// AnalyzeMessage analyzes the header row of a full commit message.
func (a Analyzer) AnalyzeMessage(msg string) (*Result, error) {
	return a.Analyze(message.Header(msg))
}
