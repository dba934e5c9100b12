// SPDX-License-Identifier: AGPL-3.0-or-later

package message

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/sven/internal/token"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []Row
	}{
		{
			name:     "empty",
			input:    "",
			expected: nil,
		},
		{
			name:  "single line",
			input: "fix(app)!: me",
			expected: []Row{
				{Number: 1, Range: token.Range{Start: 0, End: 13}},
			},
		},
		{
			name:  "multiline",
			input: "one\n\ntwo\n\nthree",
			expected: []Row{
				{Number: 1, Range: token.Range{Start: 0, End: 4}},
				{Number: 2, Range: token.Range{Start: 4, End: 5}, Blank: true},
				{Number: 3, Range: token.Range{Start: 5, End: 9}},
				{Number: 4, Range: token.Range{Start: 9, End: 10}, Blank: true},
				{Number: 5, Range: token.Range{Start: 10, End: 15}},
			},
		},
		{
			name:  "multiline utf8",
			input: "раз\nдва",
			expected: []Row{
				{Number: 1, Range: token.Range{Start: 0, End: 7}},
				{Number: 2, Range: token.Range{Start: 7, End: 13}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Parse(tt.input).Rows)
		})
	}
}

func TestHeader(t *testing.T) {
	commit := "fix(refs)!: a simple fix\n\nРаз два три\n\nRefs: #1001\n"
	assert.Equal(t, "fix(refs)!: a simple fix\n", Header(commit))
	assert.Equal(t, "", Header(""))
	assert.Equal(t, "\n", Header("\n"))
	assert.Equal(t, "no eol", Header("no eol"))
}

func TestMessage_Capture(t *testing.T) {
	m := Parse("a\n\nb")
	assert.Equal(t, "b", m.Capture(m.Rows[2]))
}
