// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"fmt"

	"github.com/bartekus/sven/internal/token"
)

// Domain is the grammar slot a block resolves to.
//
// Apart from DomainNone, domains are declared in grammar order, so comparing
// two domains numerically compares their place in a header.
type Domain uint8

const (
	DomainNone Domain = iota
	DomainRoot
	DomainType
	DomainScopeOpen
	DomainScope
	DomainScopeClose
	DomainBreaking
	DomainColon
	DomainSpace
	DomainDesc
)

var domainNames = map[Domain]string{
	DomainNone:       "None",
	DomainRoot:       "Root",
	DomainType:       "Type",
	DomainScopeOpen:  "ScopeOpen",
	DomainScope:      "Scope",
	DomainScopeClose: "ScopeClose",
	DomainBreaking:   "Breaking",
	DomainColon:      "Colon",
	DomainSpace:      "Space",
	DomainDesc:       "Desc",
}

func (d Domain) String() string {
	if name, ok := domainNames[d]; ok {
		return name
	}
	return fmt.Sprintf("Domain(%d)", uint8(d))
}

// Before reports whether d comes earlier in a header than other.
func (d Domain) Before(other Domain) bool { return d < other }

// slot is one position of the expected grammar.
type slot struct {
	domain Domain
	kind   token.Kind
	// optional slots are skipped silently when the token at hand does not
	// fit them.
	optional bool
}

// grammar is the expected slot order. The scope value and closing bracket are
// only expected once an opening bracket was matched.
var grammar = []slot{
	{domain: DomainType, kind: token.Word},
	{domain: DomainScopeOpen, kind: token.OpenBracket, optional: true},
	{domain: DomainScope, kind: token.Word},
	{domain: DomainScopeClose, kind: token.CloseBracket},
	{domain: DomainBreaking, kind: token.ExclMark, optional: true},
	{domain: DomainColon, kind: token.Colon},
	{domain: DomainSpace, kind: token.Whitespace},
	{domain: DomainDesc, kind: token.Word},
}

const (
	slotType = iota
	slotScopeOpen
	slotScope
	slotScopeClose
	slotBreaking
	slotColon
	slotSpace
	slotDesc
)

// nextSlot returns the slot that follows cur. An unmatched opening bracket
// skips the whole scope group.
func nextSlot(cur int, matched bool) int {
	if cur == slotScopeOpen && !matched {
		return slotBreaking
	}
	return cur + 1
}

// slotOf returns the grammar slot of d. Asking for a domain that has no slot
// is a defect in the slot table.
func slotOf(d Domain) slot {
	for _, s := range grammar {
		if s.domain == d {
			return s
		}
	}
	panic(fmt.Sprintf("header: no grammar slot for domain %s", d))
}
