// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bartekus/sven/internal/token"
)

func word(src string) Block {
	return Block{
		Token: token.Token{ID: 1, Kind: token.Word, Range: token.Range{Start: 0, End: len(src)}},
		Kind:  token.Word,
	}
}

func TestPolicy_Matches(t *testing.T) {
	tests := []struct {
		name     string
		policy   Policy
		input    string
		expected bool
	}{
		{"any accepts any word", AnyFirstSeq(), "whatever", true},
		{"zero value accepts any word", Policy{}, "whatever", true},
		{"strict accepts known type", Strict("feat", "fix"), "fix", true},
		{"strict rejects unknown type", Strict("feat", "fix"), "fox", false},
		{"strict is case sensitive", Strict("feat", "fix"), "Fix", false},
		{"like accepts exact type", Like("feat"), "feat", true},
		{"like ignores case", Like("feat"), "FEAT", true},
		{"like accepts a substitution", Like("feat"), "feet", true},
		{"like accepts an insertion", Like("fix"), "fixx", true},
		{"like accepts a deletion", Like("chore"), "chor", true},
		{"like rejects two edits", Like("feat"), "fit", false},
		{"like folds known types", Like("Docs"), "docs", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.policy.Matches(word(tt.input), tt.input))
		})
	}
}

func TestPolicy_MatchesOnlyWords(t *testing.T) {
	b := Block{Token: token.Token{ID: 1, Kind: token.Colon, Range: token.Range{Start: 0, End: 1}}, Kind: token.Colon}
	assert.False(t, AnyFirstSeq().Matches(b, ":"))
	assert.False(t, Strict(":").Matches(b, ":"))
}

func TestPolicy_StrictKeepsResolvedType(t *testing.T) {
	b := word("custom")
	b.Domain = DomainType
	assert.True(t, Strict("fix").Matches(b, "custom"))
}

func TestPolicy_Known(t *testing.T) {
	assert.Equal(t, []string{"feat", "fix"}, Strict("fix", "feat").Known())
	assert.Equal(t, []string{"docs"}, Like("DOCS").Known())
	assert.Equal(t, PolicyLike, Like().Kind())
	assert.Equal(t, "strict", PolicyStrict.String())
}

func TestWithinOneEdit(t *testing.T) {
	tests := []struct {
		a, b     string
		expected bool
	}{
		{"", "", true},
		{"a", "", true},
		{"", "ab", false},
		{"feat", "feat", true},
		{"feat", "fat", true},
		{"feat", "feats", true},
		{"feat", "taef", false},
		{"ab", "ba", false},
		{"abc", "abd", true},
		{"рад", "рад!", true},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, withinOneEdit(tt.a, tt.b), "%q vs %q", tt.a, tt.b)
		assert.Equal(t, tt.expected, withinOneEdit(tt.b, tt.a), "%q vs %q", tt.b, tt.a)
	}
}
