package buffer

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileIsNewDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	f := NewFile()

	content, err := f.Load(path)
	require.NoError(t, err)
	assert.Empty(t, content)
	assert.Equal(t, path, f.Path())
	assert.False(t, f.IsModified())
}

func TestLoadSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sheet.txt")
	require.NoError(t, os.WriteFile(path, []byte("a = 1\r\na * 2\r\n"), 0644))

	f := NewFile()
	content, err := f.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\na * 2\n", content)

	f.MarkModified()
	assert.True(t, f.IsModified())
	require.NoError(t, f.Save(content+"a * 3"))
	assert.False(t, f.IsModified())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "a = 1\na * 2\na * 3", string(data))
}

func TestSaveWithoutPath(t *testing.T) {
	f := NewFile()
	assert.ErrorIs(t, f.Save("x"), ErrNoPath)

	path := filepath.Join(t.TempDir(), "new.txt")
	require.NoError(t, f.SaveAs(path, "x"))
	assert.Equal(t, path, f.Path())
}

func TestIOError(t *testing.T) {
	dir := t.TempDir()
	f := NewFile()

	// A directory cannot be read as a document.
	_, err := f.Load(dir)
	var ioErr *IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.Equal(t, dir, ioErr.Path)

	err = f.SaveAs(filepath.Join(dir, "missing", "sheet.txt"), "x")
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestReadAll(t *testing.T) {
	got, err := ReadAll(strings.NewReader("1 + 1\r\n"), "-")
	require.NoError(t, err)
	assert.Equal(t, "1 + 1\n", got)
}
