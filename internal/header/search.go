// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import "github.com/bartekus/sven/internal/token"

// engine holds the read-only inputs shared by every branch of a search.
type engine struct {
	src    string
	policy Policy
}

// branch is one in-progress walk over a private copy of the blocks.
type branch struct {
	blocks []Block
	// i is the index of the next block to resolve.
	i int
	// slot is the index into grammar of the slot expected next.
	slot int
	// head is set once the description started and leading blocks may still
	// close open portals.
	head bool
}

// FindSolutions returns every complete alignment of c against the grammar for
// the header src.
//
// Blocks of c that were resolved by an earlier run keep their domain, so a
// Strict policy still recognizes a type it accepted before. Synthetic blocks
// of c are discarded and every status is reset.
//
// The search is an explicit depth-first worklist. Each mismatch forks the
// walk into a missing-slot branch and a misplaced-token branch, and both
// consume the slot, so the depth is bounded by the number of grammar slots.
func FindSolutions(src string, policy Policy, c Candidate) []Candidate {
	e := &engine{src: src, policy: policy}

	stack := []branch{{blocks: reset(c.Blocks), i: 1, slot: slotType}}
	var out []Candidate
	for len(stack) > 0 {
		b := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		forks, done := e.walk(b)
		if done != nil {
			out = append(out, *done)
		}
		stack = append(stack, forks...)
	}
	return out
}

// reset copies blocks without synthetic entries and with every status set to
// Unsigned. The Root block is guaranteed to be first.
func reset(blocks []Block) []Block {
	out := make([]Block, 0, len(blocks)+1)
	out = append(out, RootBlock())
	for _, b := range blocks {
		if b.IsRoot() || b.Synthetic() {
			continue
		}
		b.Status = Status{Kind: Unsigned}
		out = append(out, b)
	}
	return out
}

// walk advances b until it either forks, dies, or completes. Forks are
// returned so the missing-slot branch is popped first.
func (e *engine) walk(b branch) ([]branch, *Candidate) {
	for b.i < len(b.blocks) {
		cur := b.blocks[b.i]

		if p := e.openPortal(b.blocks[:b.i], cur); p >= 0 {
			connect(b.blocks, p, b.i)
			b.i++
			continue
		}

		if relocatedTwice(b.blocks[:b.i], cur) {
			b.blocks[b.i].Status = Status{Kind: Extra}
			b.i++
			continue
		}

		if b.head {
			if !e.descHead(&b) {
				return nil, nil
			}
			continue
		}

		s := grammar[b.slot]
		switch {
		case s.domain == DomainDesc:
			b.head = true
		case e.accepts(s, cur):
			settle(&b.blocks[b.i], s.domain)
			b.slot = nextSlot(b.slot, true)
			b.i++
		case s.optional:
			b.slot = nextSlot(b.slot, false)
		default:
			return []branch{
				b.fork(s, Status{Kind: Portal, Link: noLink}),
				b.fork(s, Status{Kind: Missing}),
			}, nil
		}
	}

	if hasOpenPortal(b.blocks) {
		return nil, nil
	}
	blocks := appendMissing(b.blocks, b.slot)
	return nil, &Candidate{Blocks: blocks, Weight: weigh(blocks)}
}

// relocatedTwice reports whether b is a punctuation block whose kind was
// already relocated through a portal. Its slot is taken, so b is extra.
// Whitespace is left to the description.
func relocatedTwice(before []Block, b Block) bool {
	switch b.Kind {
	case token.Word, token.Whitespace:
		return false
	}
	return hasConnectedPortal(before, b.Kind)
}

// descHead resolves the block at b.i while the description is still at its
// head. It reports false when the branch is a dead end.
func (e *engine) descHead(b *branch) bool {
	if b.blocks[b.i].Kind == token.Whitespace {
		settle(&b.blocks[b.i], DomainDesc)
		b.i++
		return true
	}

	if hasOpenPortal(b.blocks[:b.i]) {
		return false
	}
	for ; b.i < len(b.blocks); b.i++ {
		settle(&b.blocks[b.i], DomainDesc)
	}
	return true
}

// fork returns a copy of b with a synthetic block for s inserted before the
// current block. The current block is then matched against the next slot.
func (b branch) fork(s slot, status Status) branch {
	blocks := make([]Block, 0, len(b.blocks)+1)
	blocks = append(blocks, b.blocks[:b.i]...)
	blocks = append(blocks, Block{Kind: s.kind, Domain: s.domain, Status: status})
	blocks = append(blocks, b.blocks[b.i:]...)

	return branch{
		blocks: blocks,
		i:      b.i + 1,
		slot:   nextSlot(b.slot, true),
	}
}

// accepts reports whether b can fill slot s.
func (e *engine) accepts(s slot, b Block) bool {
	if s.domain == DomainType {
		return e.policy.Matches(b, e.src)
	}
	return b.Kind == s.kind
}

func settle(b *Block, d Domain) {
	b.Domain = d
	b.Status = Status{Kind: Settled}
}

// appendMissing adds a Missing block for every required slot from slot on
// that the input ran out before. A description made only of whitespace counts
// as missing.
func appendMissing(blocks []Block, from int) []Block {
	for cur := from; cur < len(grammar); {
		s := grammar[cur]
		switch {
		case s.optional:
			cur = nextSlot(cur, false)
			continue
		case s.domain == DomainDesc:
			if !hasDescription(blocks) {
				blocks = append(blocks, Block{Kind: s.kind, Domain: s.domain, Status: Status{Kind: Missing}})
			}
		default:
			blocks = append(blocks, Block{Kind: s.kind, Domain: s.domain, Status: Status{Kind: Missing}})
		}
		cur = nextSlot(cur, true)
	}
	return blocks
}

func hasDescription(blocks []Block) bool {
	for _, b := range blocks {
		if b.Domain == DomainDesc && b.Status.Kind == Settled && b.Kind != token.Whitespace {
			return true
		}
	}
	return false
}
