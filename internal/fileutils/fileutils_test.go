package fileutils_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"fjacquet/tdstatement/internal/fileutils"
	"fjacquet/tdstatement/internal/parsererror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileExists(t *testing.T) {
	tmpDir := t.TempDir()

	testFile := filepath.Join(tmpDir, "test.txt")
	err := os.WriteFile(testFile, []byte("test"), 0600)
	assert.NoError(t, err)

	assert.True(t, fileutils.FileExists(testFile))
	assert.False(t, fileutils.FileExists(filepath.Join(tmpDir, "nonexistent.txt")))
	assert.False(t, fileutils.FileExists(tmpDir))
	assert.True(t, fileutils.DirectoryExists(tmpDir))
	assert.False(t, fileutils.DirectoryExists(testFile))
}

func TestCreateFile(t *testing.T) {
	tmpDir := t.TempDir()

	path := filepath.Join(tmpDir, "out", "nested", "doc.csv")
	f, err := fileutils.CreateFile(path)
	require.NoError(t, err)
	_, err = f.WriteString("a,b\n")
	require.NoError(t, err)
	require.NoError(t, f.Close())

	assert.True(t, fileutils.FileExists(path))
}

func TestHash(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "statement.txt")
	require.NoError(t, os.WriteFile(path, []byte("hello"), 0600))

	hash, err := fileutils.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, "5d41402abc4b2a76b9719d911017c592", hash)
	assert.Equal(t, hash, fileutils.HashBytes([]byte("hello")))

	_, err = fileutils.HashFile(filepath.Join(tmpDir, "missing.pdf"))
	assert.Error(t, err)
}

func TestExpandInputs(t *testing.T) {
	tmpDir := t.TempDir()
	for _, name := range []string{"b.pdf", "a.pdf", "c.txt", "notes.md"} {
		require.NoError(t, os.WriteFile(filepath.Join(tmpDir, name), []byte("x"), 0600))
	}

	files, err := fileutils.ExpandInputs([]string{
		filepath.Join(tmpDir, "*.pdf"),
		filepath.Join(tmpDir, "a.pdf"),
		filepath.Join(tmpDir, "c.txt"),
		"  ",
	})
	require.NoError(t, err)
	assert.Equal(t, []string{
		filepath.Join(tmpDir, "a.pdf"),
		filepath.Join(tmpDir, "b.pdf"),
		filepath.Join(tmpDir, "c.txt"),
	}, files)

	// A literal path without matches is passed through for the caller to report.
	files, err = fileutils.ExpandInputs([]string{filepath.Join(tmpDir, "missing.pdf")})
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(tmpDir, "missing.pdf")}, files)

	files, err = fileutils.ExpandInputs(nil)
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestExpandInputs_Unsupported(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "notes.md")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0600))

	_, err := fileutils.ExpandInputs([]string{path})
	var formatErr *parsererror.InvalidFormatError
	require.ErrorAs(t, err, &formatErr)
	assert.Equal(t, path, formatErr.FilePath)

	_, err = fileutils.ExpandInputs([]string{"[bad"})
	assert.Error(t, err)
}

func TestIsSupported(t *testing.T) {
	assert.True(t, fileutils.IsSupported("x.pdf"))
	assert.True(t, fileutils.IsSupported("X.PDF"))
	assert.True(t, fileutils.IsSupported("x.txt"))
	assert.False(t, fileutils.IsSupported("x.csv"))
	assert.False(t, fileutils.IsSupported("pdf"))
}

func TestReadPathList(t *testing.T) {
	paths, err := fileutils.ReadPathList(strings.NewReader("a.pdf\n\n  b.pdf  \r\nc.txt"))
	require.NoError(t, err)
	assert.Equal(t, []string{"a.pdf", "b.pdf", "c.txt"}, paths)
}
