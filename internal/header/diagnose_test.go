// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bartekus/sven/internal/counter"
	"github.com/bartekus/sven/internal/token"
)

func TestDiagnose_Extra(t *testing.T) {
	l := Layout{
		Slots: []SlotState{
			{Domain: DomainType, Status: Settled, Token: token.Token{ID: 1}, At: Position{Real, 1000}},
			{Domain: DomainColon, Status: Settled, Token: token.Token{ID: 2}, At: Position{Real, 2000}},
			{Domain: DomainSpace, Status: Settled, Token: token.Token{ID: 3}, At: Position{Real, 3000}},
			{Domain: DomainDesc, Status: Settled, Token: token.Token{ID: 5}, At: Position{Real, 5000}},
		},
		Extras: []Placed{
			{Block: Block{Token: token.Token{ID: 4, Kind: token.Colon}, Kind: token.Colon, Status: Status{Kind: Extra}}, At: Position{Real, 4000}},
		},
	}

	got := Diagnose(l, counter.New(0))
	assert.Equal(t, []Issue{{ID: 0, Subject: SubjectColon, Data: ExtraAt(ExactToken(4))}}, got)
}

func TestDiagnose_IssueIDsContinueFromCounter(t *testing.T) {
	l := project(t, AnyFirstSeq(), "fix me")
	got := Diagnose(l, counter.New(10))
	require.Len(t, got, 1)
	assert.Equal(t, 10, got[0].ID)
}

func TestIssue_JSON(t *testing.T) {
	is := Issue{ID: 1, Subject: SubjectColon, Data: MisplacedAt(AfterToken(3), ExactToken(1))}
	raw, err := json.Marshal(is)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 1,
		"subject": "colon",
		"data": {
			"kind": "misplaced",
			"expected_at": {"relation": "after", "target": {"kind": "token", "id": 3}},
			"found_at": {"relation": "exact", "target": {"kind": "token", "id": 1}}
		}
	}`, string(raw))

	raw, err = json.Marshal(Issue{Subject: SubjectHeader, Data: MissingAt(Start())})
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"id": 0,
		"subject": "header",
		"data": {"kind": "missing", "expected_at": {"relation": "exact", "target": {"kind": "root", "id": 0}}}
	}`, string(raw))
}

func TestIssue_String(t *testing.T) {
	assert.Equal(t, "#0 colon missing, expected after token 1",
		Issue{Subject: SubjectColon, Data: MissingAt(AfterToken(1))}.String())
	assert.Equal(t, "#2 type misplaced, expected exact root, found exact token 3",
		Issue{ID: 2, Subject: SubjectType, Data: MisplacedAt(Start(), ExactToken(3))}.String())
	assert.Equal(t, "before token 4", BeforeToken(4).String())
	assert.Equal(t, "after issue 0", AfterIssue(0).String())
}
