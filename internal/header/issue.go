// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"fmt"

	"github.com/bartekus/sven/internal/token"
)

// Subject names the part of the header an Issue is about.
type Subject string

const (
	SubjectHeader       Subject = "header"
	SubjectType         Subject = "type"
	SubjectOpenBracket  Subject = "open_bracket"
	SubjectScope        Subject = "scope"
	SubjectCloseBracket Subject = "close_bracket"
	SubjectBreaking     Subject = "breaking"
	SubjectColon        Subject = "colon"
	SubjectSpace        Subject = "space"
	SubjectDesc         Subject = "desc"
	SubjectWhitespace   Subject = "whitespace"
)

var domainSubjects = map[Domain]Subject{
	DomainType:       SubjectType,
	DomainScopeOpen:  SubjectOpenBracket,
	DomainScope:      SubjectScope,
	DomainScopeClose: SubjectCloseBracket,
	DomainBreaking:   SubjectBreaking,
	DomainColon:      SubjectColon,
	DomainSpace:      SubjectSpace,
	DomainDesc:       SubjectDesc,
}

// subjectOf returns the subject reported for a slot.
func subjectOf(d Domain) Subject {
	s, ok := domainSubjects[d]
	if !ok {
		panic(fmt.Sprintf("header: no subject for domain %s", d))
	}
	return s
}

// extraSubject returns the subject reported for a token that belongs to no
// slot.
func extraSubject(k token.Kind) Subject {
	switch k {
	case token.Whitespace:
		return SubjectWhitespace
	case token.Colon:
		return SubjectColon
	case token.OpenBracket:
		return SubjectOpenBracket
	case token.CloseBracket:
		return SubjectCloseBracket
	case token.ExclMark:
		return SubjectBreaking
	default:
		return SubjectDesc
	}
}

// Relation places an anchor relative to its target.
type Relation string

const (
	Exact  Relation = "exact"
	After  Relation = "after"
	Before Relation = "before"
)

// TargetKind is what an anchor points at.
type TargetKind string

const (
	TargetRoot  TargetKind = "root"
	TargetToken TargetKind = "token"
	TargetIssue TargetKind = "issue"
)

// Target is the Root, a token id or an issue id.
type Target struct {
	Kind TargetKind `json:"kind"`
	ID   int        `json:"id"`
}

func (t Target) String() string {
	if t.Kind == TargetRoot {
		return "root"
	}
	return fmt.Sprintf("%s %d", t.Kind, t.ID)
}

// At is a relative location used in place of byte offsets.
type At struct {
	Relation Relation `json:"relation"`
	Target   Target   `json:"target"`
}

func (a At) String() string {
	return fmt.Sprintf("%s %s", a.Relation, a.Target)
}

// Start anchors at the very beginning of the header.
func Start() At { return At{Relation: Exact, Target: Target{Kind: TargetRoot}} }

func ExactToken(id int) At  { return At{Relation: Exact, Target: Target{Kind: TargetToken, ID: id}} }
func AfterToken(id int) At  { return At{Relation: After, Target: Target{Kind: TargetToken, ID: id}} }
func BeforeToken(id int) At { return At{Relation: Before, Target: Target{Kind: TargetToken, ID: id}} }
func AfterIssue(id int) At  { return At{Relation: After, Target: Target{Kind: TargetIssue, ID: id}} }

// DataKind is the kind of problem an Issue reports.
type DataKind string

const (
	KindMissing   DataKind = "missing"
	KindMisplaced DataKind = "misplaced"
	KindExtra     DataKind = "extra"
)

// Data describes the problem. Missing has only ExpectedAt, Extra has only
// FoundAt and Misplaced has both.
type Data struct {
	Kind       DataKind `json:"kind"`
	ExpectedAt *At      `json:"expected_at,omitempty"`
	FoundAt    *At      `json:"found_at,omitempty"`
}

func MissingAt(expected At) Data {
	return Data{Kind: KindMissing, ExpectedAt: &expected}
}

func MisplacedAt(expected, found At) Data {
	return Data{Kind: KindMisplaced, ExpectedAt: &expected, FoundAt: &found}
}

func ExtraAt(found At) Data {
	return Data{Kind: KindExtra, FoundAt: &found}
}

// Issue is one diagnostic about a header.
type Issue struct {
	ID      int     `json:"id"`
	Subject Subject `json:"subject"`
	Data    Data    `json:"data"`
}

func (i Issue) String() string {
	switch i.Data.Kind {
	case KindMissing:
		return fmt.Sprintf("#%d %s missing, expected %s", i.ID, i.Subject, i.Data.ExpectedAt)
	case KindMisplaced:
		return fmt.Sprintf("#%d %s misplaced, expected %s, found %s", i.ID, i.Subject, i.Data.ExpectedAt, i.Data.FoundAt)
	default:
		return fmt.Sprintf("#%d %s extra, found %s", i.ID, i.Subject, i.Data.FoundAt)
	}
}
