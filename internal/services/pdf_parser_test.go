package services

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCleanText(t *testing.T) {
	in := "  \n  Jane Doe  \n\n\n   Software Engineer\n\t\n"
	assert.Equal(t, "Jane Doe\nSoftware Engineer", CleanText(in))
	assert.Equal(t, "", CleanText(" \n \n"))
}

func TestExtractResume_MissingFile(t *testing.T) {
	_, err := NewPDFParserService().ExtractResume(filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "file does not exist")
}

func TestExtractResume_NotAPDF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "resume.pdf")
	require.NoError(t, os.WriteFile(path, []byte("plain text, not a pdf"), 0o644))

	_, err := NewPDFParserService().ExtractResume(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open PDF")
}
