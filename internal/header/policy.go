// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"sort"

	"golang.org/x/text/cases"

	"github.com/bartekus/sven/internal/token"
)

// PolicyKind selects how the Type slot is matched.
type PolicyKind uint8

const (
	// PolicyAnyFirstSeq accepts any word as the type.
	PolicyAnyFirstSeq PolicyKind = iota
	// PolicyStrict accepts only words from the known set.
	PolicyStrict
	// PolicyLike accepts words within one edit of a known type, ignoring case.
	PolicyLike
)

func (k PolicyKind) String() string {
	switch k {
	case PolicyStrict:
		return "strict"
	case PolicyLike:
		return "like"
	default:
		return "any"
	}
}

// Policy decides whether a word qualifies as a commit type.
// The zero value is AnyFirstSeq.
type Policy struct {
	kind  PolicyKind
	known map[string]struct{}
}

// AnyFirstSeq returns a policy that accepts any word.
func AnyFirstSeq() Policy { return Policy{kind: PolicyAnyFirstSeq} }

// Strict returns a policy that accepts exactly the given types.
func Strict(types ...string) Policy { return newPolicy(PolicyStrict, types) }

// Like returns a policy that accepts types within edit distance 1 of the given
// ones after case folding.
func Like(types ...string) Policy { return newPolicy(PolicyLike, types) }

func newPolicy(kind PolicyKind, types []string) Policy {
	known := make(map[string]struct{}, len(types))
	for _, t := range types {
		if kind == PolicyLike {
			t = fold(t)
		}
		known[t] = struct{}{}
	}
	return Policy{kind: kind, known: known}
}

// Kind returns the matching mode.
func (p Policy) Kind() PolicyKind { return p.kind }

// Known returns the known types in sorted order. For Like the entries are
// case folded.
func (p Policy) Known() []string {
	out := make([]string, 0, len(p.known))
	for t := range p.known {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// Matches reports whether b can fill the Type slot of the header src.
func (p Policy) Matches(b Block, src string) bool {
	if b.Kind != token.Word {
		return false
	}
	if p.kind == PolicyAnyFirstSeq || b.Domain == DomainType {
		return true
	}

	text, ok := b.Capture(src)
	if !ok {
		return false
	}

	switch p.kind {
	case PolicyStrict:
		_, ok := p.known[text]
		return ok
	case PolicyLike:
		text = fold(text)
		if _, ok := p.known[text]; ok {
			return true
		}
		for k := range p.known {
			if withinOneEdit(text, k) {
				return true
			}
		}
	}
	return false
}

func fold(s string) string {
	return cases.Fold().String(s)
}

// withinOneEdit reports whether the Levenshtein distance between a and b,
// counted in runes, is at most 1.
func withinOneEdit(a, b string) bool {
	ra, rb := []rune(a), []rune(b)
	if len(ra) < len(rb) {
		ra, rb = rb, ra
	}
	if len(ra)-len(rb) > 1 {
		return false
	}

	i, j, edits := 0, 0, 0
	for i < len(ra) && j < len(rb) {
		if ra[i] == rb[j] {
			i++
			j++
			continue
		}
		edits++
		if edits > 1 {
			return false
		}
		if len(ra) == len(rb) {
			j++
		}
		i++
	}
	return edits+(len(ra)-i)+(len(rb)-j) <= 1
}
