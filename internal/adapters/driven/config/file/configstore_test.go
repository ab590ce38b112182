package file

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigStore_SetAndGet(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))
	require.NoError(t, store.Set("keywords.max", 5))
	require.NoError(t, store.Set("verbose", true))

	assert.Equal(t, "ollama", store.GetString("llm.provider"))
	assert.Equal(t, 5, store.GetInt("keywords.max"))
	assert.True(t, store.GetBool("verbose"))

	_, ok := store.Get("missing.key")
	assert.False(t, ok)
}

func TestConfigStore_TypeMismatch(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("llm.provider", "ollama"))

	assert.Equal(t, 0, store.GetInt("llm.provider"))
	assert.False(t, store.GetBool("llm.provider"))
	assert.Equal(t, "", store.GetString("missing"))
}

func TestConfigStore_PersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("ollama.model", "llama3.2"))

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "llama3.2", reopened.GetString("ollama.model"))
}

func TestConfigStore_FlattensNestedTables(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")

	content := `
[ollama]
host = "http://localhost:11434"
model = "llama3.2"

[keywords]
min = 3
max = 5
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:11434", store.GetString("ollama.host"))
	assert.Equal(t, 3, store.GetInt("keywords.min"))
	assert.Equal(t, 5, store.GetInt("keywords.max"))
}

func TestConfigStore_MissingFileStartsEmpty(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "", store.GetString("anything"))
	assert.NoError(t, store.Load())
}
