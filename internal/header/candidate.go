// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"errors"

	"github.com/bartekus/sven/internal/token"
)

// ErrNoAlignment is returned when no candidate survives the search, meaning
// the header has no interpretable structure.
var ErrNoAlignment = errors.New("header has no interpretable structure")

// Candidate is one hypothesis of how a header's tokens map onto the grammar.
type Candidate struct {
	Blocks []Block
	// Weight is the number of Missing, Extra and Portal blocks. A connected
	// portal and its ref count once.
	Weight int
}

// NewCandidate returns the starting candidate for tokens: a Root block
// followed by one Unsigned block per token of the first line.
func NewCandidate(tokens []token.Token) Candidate {
	line := token.FirstLine(tokens)
	blocks := make([]Block, 0, len(line)+1)
	blocks = append(blocks, RootBlock())
	for _, t := range line {
		blocks = append(blocks, Block{Token: t, Kind: t.Kind})
	}
	return Candidate{Blocks: blocks}
}

// Count returns how many blocks of c have the given status.
func (c Candidate) Count(kind StatusKind) int {
	n := 0
	for _, b := range c.Blocks {
		if b.Status.Kind == kind {
			n++
		}
	}
	return n
}

// Complete reports whether every portal in c is connected to a ref that
// points back at it, and no block is left Unsigned.
func (c Candidate) Complete() bool {
	for i, b := range c.Blocks {
		switch b.Status.Kind {
		case Unsigned:
			return false
		case Portal:
			if !b.Status.Connected() || b.Status.Link >= len(c.Blocks) {
				return false
			}
			ref := c.Blocks[b.Status.Link].Status
			if ref.Kind != Ref || ref.Link != i {
				return false
			}
		}
	}
	return true
}

func weigh(blocks []Block) int {
	w := 0
	for _, b := range blocks {
		switch b.Status.Kind {
		case Missing, Extra, Portal:
			w++
		}
	}
	return w
}

// Select returns the cheapest candidate.
//
// Ties on weight go to the candidate with fewer Missing blocks, so an
// explanation that uses a token present in the header beats one that invents
// the slot. Remaining ties go to the candidate found first.
func Select(candidates []Candidate) (Candidate, error) {
	if len(candidates) == 0 {
		return Candidate{}, ErrNoAlignment
	}

	best := 0
	bestMissing := candidates[0].Count(Missing)
	for i := 1; i < len(candidates); i++ {
		c := candidates[i]
		missing := c.Count(Missing)
		switch {
		case c.Weight < candidates[best].Weight:
		case c.Weight == candidates[best].Weight && missing < bestMissing:
		default:
			continue
		}
		best, bestMissing = i, missing
	}
	return candidates[best], nil
}
