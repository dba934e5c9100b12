// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"cmp"

	"github.com/bartekus/sven/internal/token"
)

// Stride is the distance between the positions of two consecutive real
// tokens. Synthetic blocks are placed in the gaps.
const Stride = 1000

// PositionKind tells a position taken from a real token apart from one
// computed for a synthetic block.
type PositionKind uint8

const (
	Real PositionKind = iota
	Synthesized
)

// Position is a sortable location in a projected candidate.
type Position struct {
	Kind  PositionKind
	Value int
}

// TokenPosition returns the position of a real token.
func TokenPosition(t token.Token) Position {
	return Position{Kind: Real, Value: t.ID * Stride}
}

// Compare orders positions by value. On equal values a real position sorts
// before a synthesized one.
func (p Position) Compare(o Position) int {
	if c := cmp.Compare(p.Value, o.Value); c != 0 {
		return c
	}
	return cmp.Compare(p.Kind, o.Kind)
}

// Placed is a block with its projected position.
type Placed struct {
	Block
	At Position
}

// SlotState is where a grammar slot ended up in the winning candidate.
type SlotState struct {
	Domain Domain
	// Status is Settled, Missing or Portal.
	Status StatusKind
	// Token is the token filling the slot. For a Portal it is the token of
	// its Ref. It is zero for a Missing slot.
	Token token.Token
	At    Position
}

// Layout is a projected candidate.
type Layout struct {
	Src    string
	Blocks []Placed
	// Slots lists the slots in grammar order. Optional slots only appear when
	// the header uses them.
	Slots []SlotState
	// Extras are the blocks that belong to no slot, in header order.
	Extras []Placed
}

// Project assigns a position to every block of c and resolves each grammar
// slot.
//
// Real blocks sit at their token id times Stride. A run of k synthetic blocks
// between lo and hi gets lo + (hi-lo)/(k+1)*n for the n-th block; at the end
// of the header hi is lo + Stride.
func Project(src string, c Candidate) Layout {
	l := Layout{Src: src, Blocks: place(c.Blocks)}
	for _, p := range l.Blocks {
		if p.Status.Kind == Extra {
			l.Extras = append(l.Extras, p)
		}
	}
	l.Slots = resolveSlots(l.Blocks)
	return l
}

func place(blocks []Block) []Placed {
	out := make([]Placed, len(blocks))
	lo := 0
	for i := 0; i < len(blocks); {
		b := blocks[i]
		if b.IsRoot() || !b.Synthetic() {
			at := Position{Kind: Real}
			if !b.IsRoot() {
				at = TokenPosition(b.Token)
			}
			out[i] = Placed{Block: b, At: at}
			lo = at.Value
			i++
			continue
		}

		end := i
		for end < len(blocks) && blocks[end].Synthetic() {
			end++
		}
		hi := lo + Stride
		if end < len(blocks) {
			hi = TokenPosition(blocks[end].Token).Value
		}
		k := end - i
		for n := 1; n <= k; n++ {
			out[i+n-1] = Placed{
				Block: blocks[i+n-1],
				At:    Position{Kind: Synthesized, Value: lo + (hi-lo)/(k+1)*n},
			}
		}
		i = end
	}
	return out
}

func resolveSlots(blocks []Placed) []SlotState {
	var out []SlotState
	prev := Position{Kind: Real}
	for _, s := range grammar {
		st, ok := resolveSlot(blocks, s.domain)
		if !ok {
			if s.optional || isScope(s.domain) {
				continue
			}
			st = SlotState{Domain: s.domain, Status: Missing, At: prev}
		}
		out = append(out, st)
		prev = st.At
	}
	return out
}

// resolveSlot finds the block standing for d. For the description the first
// non-whitespace block wins, and a Missing block wins over everything.
func resolveSlot(blocks []Placed, d Domain) (SlotState, bool) {
	var found *Placed
	for i := range blocks {
		p := &blocks[i]
		if p.Domain != d {
			continue
		}
		switch p.Status.Kind {
		case Missing:
			return SlotState{Domain: d, Status: Missing, At: p.At}, true
		case Portal:
			if found == nil {
				found = p
			}
		case Settled:
			if found == nil || d == DomainDesc && found.Kind == token.Whitespace && p.Kind != token.Whitespace {
				found = p
			}
		}
	}
	if found == nil {
		return SlotState{}, false
	}

	st := SlotState{Domain: d, Status: found.Status.Kind, Token: found.Token, At: found.At}
	if found.Status.Kind == Portal {
		ref := blocks[found.Status.Link]
		st.Token = ref.Token
	}
	return st, true
}

func isScope(d Domain) bool {
	return d == DomainScopeOpen || d == DomainScope || d == DomainScopeClose
}
