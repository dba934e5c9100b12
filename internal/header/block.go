// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"fmt"

	"github.com/bartekus/sven/internal/token"
)

// StatusKind is the lifecycle stage of a Block.
type StatusKind uint8

const (
	// Unsigned is the only state a block has before analysis.
	Unsigned StatusKind = iota
	// Settled blocks sit exactly where the grammar expects them.
	Settled
	// Missing blocks are synthesized for slots absent from the input.
	Missing
	// Extra blocks are present but belong to no slot.
	Extra
	// Portal blocks hold the place of a slot whose token appears elsewhere.
	Portal
	// Ref blocks are the misplaced tokens a Portal points to.
	Ref
)

var statusNames = map[StatusKind]string{
	Unsigned: "Unsigned",
	Settled:  "Settled",
	Missing:  "Missing",
	Extra:    "Extra",
	Portal:   "Portal",
	Ref:      "Ref",
}

func (k StatusKind) String() string {
	if name, ok := statusNames[k]; ok {
		return name
	}
	return fmt.Sprintf("StatusKind(%d)", uint8(k))
}

// noLink marks a Portal that has not been connected yet.
const noLink = -1

// Status is a StatusKind plus, for portals and refs, the index of the block
// at the other end of the pair. Links are plain indices into the owning
// candidate and are resolved on demand.
type Status struct {
	Kind StatusKind
	Link int
}

// Connected reports whether a Portal has found its Ref.
func (s Status) Connected() bool {
	return s.Kind == Portal && s.Link != noLink
}

func (s Status) String() string {
	switch s.Kind {
	case Portal:
		if s.Link == noLink {
			return "Portal(-)"
		}
		return fmt.Sprintf("Portal(%d)", s.Link)
	case Ref:
		return fmt.Sprintf("Ref(%d)", s.Link)
	default:
		return s.Kind.String()
	}
}

// Block is a token, or a synthetic placeholder for one, annotated with the
// slot it resolved to.
type Block struct {
	// Token is the zero Token for the Root block and for synthetic blocks.
	Token  token.Token
	Kind   token.Kind
	Domain Domain
	Status Status
}

// RootBlock returns the block every candidate starts with.
func RootBlock() Block {
	return Block{Domain: DomainRoot, Status: Status{Kind: Settled}}
}

// IsRoot reports whether b is the Root block.
func (b Block) IsRoot() bool { return b.Domain == DomainRoot }

// Synthetic reports whether b was produced by the analysis rather than read
// from the input. The Root block is not synthetic.
func (b Block) Synthetic() bool { return b.Token.ID == 0 && !b.IsRoot() }

// Capture returns the text of b within src. Root and synthetic blocks have
// no text.
func (b Block) Capture(src string) (string, bool) {
	if b.Token.ID == 0 {
		return "", false
	}
	return b.Token.Range.Capture(src)
}

func (b Block) String() string {
	if b.IsRoot() {
		return "Root"
	}
	if b.Synthetic() {
		return fmt.Sprintf("<%s %s %s>", b.Domain, b.Kind, b.Status)
	}
	return fmt.Sprintf("#%d %s %s %s", b.Token.ID, b.Kind, b.Domain, b.Status)
}
