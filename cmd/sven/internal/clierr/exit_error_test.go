// SPDX-License-Identifier: AGPL-3.0-or-later

package clierr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExitCodeOf(t *testing.T) {
	cause := errors.New("disk full")

	tests := []struct {
		name string
		err  error
		code int
	}{
		{"nil", nil, 0},
		{"plain error", cause, ExitInternal},
		{"new", New(ExitIssues, "2 issues"), ExitIssues},
		{"wrapped exit error", fmt.Errorf("outer: %w", Wrap(ExitUsage, "bad flag", cause)), ExitUsage},
		{"zero code", New(0, "oops"), ExitInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, ExitCodeOf(tt.err))
		})
	}
}

func TestExitError_Message(t *testing.T) {
	cause := errors.New("disk full")
	err := Wrapf(ExitInternal, cause, "writing %s", "out.md")

	assert.Equal(t, "writing out.md: disk full", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "2 issues", Newf(ExitIssues, "%d issues", 2).Error())
	assert.Equal(t, "x", Wrap(ExitUsage, "x", nil).Error())
}
