package services

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStorage(t *testing.T) (StorageService, string) {
	t.Helper()
	root := t.TempDir()
	exportDir := filepath.Join(root, "exports")
	storage := NewStorageService(filepath.Join(root, "uploads"), exportDir)
	require.NoError(t, storage.EnsureDirs())
	return storage, exportDir
}

func TestSaveAndResolveExport(t *testing.T) {
	storage, exportDir := newTestStorage(t)

	path, err := storage.SaveExport([]byte("<html></html>"))
	require.NoError(t, err)
	assert.Equal(t, exportDir, filepath.Dir(path))
	assert.True(t, strings.HasPrefix(filepath.Base(path), exportPrefix))

	resolved, err := storage.ResolveExport(path)
	require.NoError(t, err)
	assert.Equal(t, path, resolved)
}

func TestResolveExport_RejectsOtherPaths(t *testing.T) {
	storage, exportDir := newTestStorage(t)

	other := filepath.Join(exportDir, "notes.html")
	require.NoError(t, os.WriteFile(other, []byte("x"), 0644))

	for _, path := range []string{"", other, "/etc/passwd", filepath.Join(exportDir, exportPrefix+"missing.html")} {
		_, err := storage.ResolveExport(path)
		assert.ErrorIs(t, err, ErrFileNotFound, path)
	}
}

func TestSweepExports(t *testing.T) {
	storage, exportDir := newTestStorage(t)

	oldPath, err := storage.SaveExport([]byte("old"))
	require.NoError(t, err)
	past := time.Now().Add(-48 * time.Hour)
	require.NoError(t, os.Chtimes(oldPath, past, past))

	freshPath, err := storage.SaveExport([]byte("fresh"))
	require.NoError(t, err)

	unrelated := filepath.Join(exportDir, "keep.txt")
	require.NoError(t, os.WriteFile(unrelated, []byte("x"), 0644))
	require.NoError(t, os.Chtimes(unrelated, past, past))

	removed, err := storage.SweepExports(24 * time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	assert.NoFileExists(t, oldPath)
	assert.FileExists(t, freshPath)
	assert.FileExists(t, unrelated)
}

func TestCreateTempFileAndRemove(t *testing.T) {
	storage, _ := newTestStorage(t)

	path, err := storage.CreateTempFile(".webm", []byte("audio"))
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(path, ".webm"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "audio", string(data))

	storage.RemoveFile(path)
	assert.NoFileExists(t, path)

	storage.RemoveFile(path)
	storage.RemoveFile("")
}
