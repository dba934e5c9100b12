// SPDX-License-Identifier: AGPL-3.0-or-later

package header

import "github.com/bartekus/sven/internal/counter"

// anchor is the last slot Diagnose resolved, as later issues refer to it.
type anchor struct {
	target Target
	at     Position
}

func (a anchor) next() At {
	if a.target.Kind == TargetRoot {
		return Start()
	}
	return At{Relation: After, Target: a.target}
}

// Diagnose walks the slots of l in grammar order and reports every slot that
// is missing or misplaced, then every extra token. Issue ids come from ids.
//
// A slot is expected right after the previous slot. When the previous slot is
// itself missing the anchor is that issue, so fixes can be applied in order.
func Diagnose(l Layout, ids *counter.Counter) []Issue {
	var issues []Issue
	prev := anchor{target: Target{Kind: TargetRoot}}

	for _, s := range l.Slots {
		expected := prev.next()
		subject := subjectOf(s.Domain)

		switch s.Status {
		case Missing:
			id := ids.Stamp()
			issues = append(issues, Issue{ID: id, Subject: subject, Data: MissingAt(expected)})
			prev = anchor{target: Target{Kind: TargetIssue, ID: id}, at: s.At}
		case Portal:
			issues = append(issues, Issue{
				ID:      ids.Stamp(),
				Subject: subject,
				Data:    MisplacedAt(expected, ExactToken(s.Token.ID)),
			})
			prev = anchor{target: Target{Kind: TargetToken, ID: s.Token.ID}, at: TokenPosition(s.Token)}
		default:
			if s.At.Compare(prev.at) < 0 {
				issues = append(issues, Issue{
					ID:      ids.Stamp(),
					Subject: subject,
					Data:    MisplacedAt(expected, ExactToken(s.Token.ID)),
				})
			}
			prev = anchor{target: Target{Kind: TargetToken, ID: s.Token.ID}, at: s.At}
		}
	}

	for _, p := range l.Extras {
		issues = append(issues, Issue{
			ID:      ids.Stamp(),
			Subject: extraSubject(p.Kind),
			Data:    ExtraAt(ExactToken(p.Token.ID)),
		})
	}
	return issues
}

// headerMissing is the single issue reported for a header without tokens.
func headerMissing(ids *counter.Counter) []Issue {
	return []Issue{{ID: ids.Stamp(), Subject: SubjectHeader, Data: MissingAt(Start())}}
}
