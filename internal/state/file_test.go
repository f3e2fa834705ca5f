package state

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFiles_LoadMissingRecord(t *testing.T) {
	files := testFiles(t)

	var out map[string]string
	loaded, err := files.Load("absent", &out)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestFiles_SaveThenLoad(t *testing.T) {
	files := testFiles(t)

	in := map[string]int{"answer": 42}
	require.NoError(t, files.Save("sample", in))

	var out map[string]int
	loaded, err := files.Load("sample", &out)
	require.NoError(t, err)
	assert.True(t, loaded)
	assert.Equal(t, in, out)
}

func TestFiles_CorruptRecordTreatedAsAbsent(t *testing.T) {
	dir := t.TempDir()
	files, err := NewFiles(dir)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte("{not json"), 0o644))

	var out map[string]string
	loaded, err := files.Load("broken", &out)
	require.NoError(t, err)
	assert.False(t, loaded)
}

func TestFiles_ClearRemovesRecords(t *testing.T) {
	files := testFiles(t)

	require.NoError(t, files.Save("one", 1))
	require.NoError(t, files.Save("two", 2))
	require.NoError(t, files.Clear())

	var out int
	loaded, err := files.Load("one", &out)
	require.NoError(t, err)
	assert.False(t, loaded)
}
