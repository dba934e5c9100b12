// SPDX-License-Identifier: AGPL-3.0-or-later

package golden

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadMissingFileIsEmpty(t *testing.T) {
	assert.Equal(t, "", Read(t, t.TempDir(), "absent"))
}

func TestWriteThenRead(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "testdata")
	Write(t, dir, "sample", "fix: me\n")

	data, err := os.ReadFile(filepath.Join(dir, "sample.golden"))
	require.NoError(t, err)
	assert.Equal(t, "fix: me\n", string(data))
	assert.Equal(t, "fix: me\n", Read(t, dir, "sample"))
}

func TestAssertUpdate(t *testing.T) {
	dir := t.TempDir()
	prev := *Update
	*Update = true
	t.Cleanup(func() { *Update = prev })

	Assert(t, dir, "out", "rendered")
	assert.Equal(t, "rendered", Read(t, dir, "out"))
}

func TestTestdataDir(t *testing.T) {
	assert.Equal(t, "testdata", filepath.Base(TestdataDir(t)))
}
