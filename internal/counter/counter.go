// SPDX-License-Identifier: AGPL-3.0-or-later

// Package counter provides an owned, monotonically increasing id source.
//
// A Counter is passed explicitly to every function that needs fresh ids, so
// two analyses never share numbering state.
package counter

// Counter hands out consecutive integer ids starting from a fixed value.
// The zero value starts at 0.
type Counter struct {
	next int
}

// New returns a Counter whose first Stamp returns start.
func New(start int) *Counter {
	return &Counter{next: start}
}

// Stamp returns the next id and advances the counter.
func (c *Counter) Stamp() int {
	id := c.next
	c.next++
	return id
}

// Peek returns the id the next Stamp call would return.
func (c *Counter) Peek() int { return c.next }
