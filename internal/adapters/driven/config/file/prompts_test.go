package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

func TestPromptStore_LoadDefault(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptKeywordExtraction)
	require.NoError(t, err)
	assert.Contains(t, prompt, "%d")
	assert.Contains(t, prompt, "%s")
	assert.Contains(t, prompt, "separated by commas")
}

func TestPromptStore_CreatesDefaultFiles(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	// Constructor performs no I/O.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = store.Load(driven.PromptKeywordExtraction)
	require.NoError(t, err)

	assert.FileExists(t, filepath.Join(dir, "keyword_extraction.txt"))
	assert.FileExists(t, filepath.Join(dir, "connection_probe.txt"))
	assert.FileExists(t, filepath.Join(dir, "README.md"))
}

func TestPromptStore_CustomFileWins(t *testing.T) {
	dir := t.TempDir()
	custom := `List %d to %d tags for: %s`
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "keyword_extraction.txt"), []byte(custom), 0600))

	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	prompt, err := store.Load(driven.PromptKeywordExtraction)
	require.NoError(t, err)
	assert.Equal(t, custom, prompt)
}

func TestPromptStore_ReloadPicksUpEdits(t *testing.T) {
	dir := t.TempDir()
	store, err := NewPromptStore(dir)
	require.NoError(t, err)

	original, err := store.Load(driven.PromptConnectionProbe)
	require.NoError(t, err)

	edited := "A different probe."
	require.NoError(t, os.WriteFile(
		filepath.Join(dir, "connection_probe.txt"), []byte(edited), 0600))

	// Cached value survives until Reload.
	cached, err := store.Load(driven.PromptConnectionProbe)
	require.NoError(t, err)
	assert.Equal(t, original, cached)

	store.Reload()
	fresh, err := store.Load(driven.PromptConnectionProbe)
	require.NoError(t, err)
	assert.Equal(t, edited, fresh)
}

func TestPromptStore_UnknownName(t *testing.T) {
	store, err := NewPromptStore(t.TempDir())
	require.NoError(t, err)

	_, err = store.Load("no_such_prompt")
	assert.Error(t, err)
}
