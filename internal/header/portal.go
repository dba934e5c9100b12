// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import "github.com/bartekus/sven/internal/token"

// A portal says "the grammar expects this slot here, but its token sits
// further on". Portals are opened by the search on a mismatch and closed by
// the first later block that fits the slot. Both ends of the pair only store
// the index of the other end.

// openPortal returns the index of the earliest unconnected portal in blocks
// whose slot accepts b, or -1.
func (e *engine) openPortal(blocks []Block, b Block) int {
	for i, p := range blocks {
		if p.Status.Kind != Portal || p.Status.Connected() {
			continue
		}
		if e.accepts(slotOf(p.Domain), b) {
			return i
		}
	}
	return -1
}

// connect pairs the portal at index portal with the block at index ref.
// ref must come after portal.
func connect(blocks []Block, portal, ref int) {
	blocks[portal].Status = Status{Kind: Portal, Link: ref}
	blocks[ref].Domain = blocks[portal].Domain
	blocks[ref].Status = Status{Kind: Ref, Link: portal}
}

// hasOpenPortal reports whether any portal in blocks is still waiting for its
// token.
func hasOpenPortal(blocks []Block) bool {
	for _, b := range blocks {
		if b.Status.Kind == Portal && !b.Status.Connected() {
			return true
		}
	}
	return false
}

// hasConnectedPortal reports whether a portal for tokens of the given kind
// has already been connected. A second token of that kind cannot be
// relocated too.
func hasConnectedPortal(blocks []Block, kind token.Kind) bool {
	for _, b := range blocks {
		if b.Status.Connected() && b.Kind == kind {
			return true
		}
	}
	return false
}
