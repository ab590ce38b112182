package plaintext

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

func TestExtractor_Metadata(t *testing.T) {
	e := New()
	assert.Equal(t, "plaintext", e.Name())
	assert.Contains(t, e.SupportedExtensions(), ".txt")
	assert.Contains(t, e.SupportedExtensions(), ".md")
	assert.Equal(t, 90, e.Priority())
}

func TestExtract(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notes.txt")
	require.NoError(t, os.WriteFile(path, []byte("Machine Learning Basics\n\nGradient descent."), 0600))

	text, err := New().Extract(context.Background(), path)
	require.NoError(t, err)
	assert.Contains(t, text, "Machine Learning Basics")
	assert.Contains(t, text, "Gradient descent.")
}

func TestExtract_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	require.NoError(t, os.WriteFile(path, []byte("   \n\t\n"), 0600))

	_, err := New().Extract(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrNoExtractableText)
}

func TestExtract_MissingFile(t *testing.T) {
	_, err := New().Extract(context.Background(), "/nonexistent/notes.txt")
	assert.Error(t, err)
}
