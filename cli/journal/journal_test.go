package journal

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJournalRecord(t *testing.T) {
	var buf bytes.Buffer
	j := NewCustom(&buf, 0)
	j.Record("move", "template/a.py", "template/b py")
	j.Record("stage")
	require.NoError(t, j.Close())

	assert.Equal(t, "move \"template/a.py\" \"template/b py\"\nstage\n", buf.String())
}

func TestJournalFile(t *testing.T) {
	tmpDir := t.TempDir()
	fileName := filepath.Join(tmpDir, "populate.journal")

	j := New(Opts{Filename: fileName})
	j.Record("remove", "populate.ini")
	j.Record("stage")
	assert.FileExists(t, fileName)
	require.NoError(t, j.Close())

	files, err := os.ReadDir(tmpDir)
	require.NoError(t, err)
	assert.Len(t, files, 1)

	content, err := os.ReadFile(fileName)
	require.NoError(t, err)
	assert.Contains(t, string(content), j.RunID+" remove \"populate.ini\"\n")
	assert.Contains(t, string(content), j.RunID+" stage")
}
