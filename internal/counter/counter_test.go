// SPDX-License-Identifier: AGPL-3.0-or-later

package counter

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCounter_Stamp(t *testing.T) {
	c := New(1)
	assert.Equal(t, 1, c.Peek())
	assert.Equal(t, 1, c.Stamp())
	assert.Equal(t, 2, c.Stamp())
	assert.Equal(t, 3, c.Peek())
}

func TestCounter_ZeroValue(t *testing.T) {
	var c Counter
	assert.Equal(t, 0, c.Stamp())
	assert.Equal(t, 1, c.Stamp())
}

func TestCounter_Independent(t *testing.T) {
	a, b := New(0), New(0)
	a.Stamp()
	a.Stamp()
	assert.Equal(t, 0, b.Stamp())
}
