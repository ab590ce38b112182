package cli

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecommendCmd_Use(t *testing.T) {
	assert.Equal(t, "recommend [text]", recommendCmd.Use)
}

func TestRecommendCmd_RequiresArgs(t *testing.T) {
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"recommend"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	assert.Error(t, err)
}

func TestRecommendCmd_MatchesSeededCatalog(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "python", "programming", "basics"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Python Programming")
}

func TestRecommendCmd_CoursesOnlyFlag(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "--courses", "python", "programming"})
	defer func() {
		rootCmd.SetArgs(nil)
		recommendCourses = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "Recommended Courses")
	assert.NotContains(t, buf.String(), "Recommended Documents")
}

func TestRecommendCmd_JSONOutput(t *testing.T) {
	cleanup := setupTestServices(t)
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"recommend", "--json", "python", "programming"})
	defer func() {
		rootCmd.SetArgs(nil)
		recommendJSON = false
	}()

	err := rootCmd.Execute()
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "\"Courses\"")
}

func TestRecommendCmd_ServiceNotConfigured(t *testing.T) {
	oldService := recommendService
	recommendService = nil
	defer func() {
		recommendService = oldService
	}()

	rootCmd.SetArgs([]string{"recommend", "anything"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not configured")
}

func TestResolveTarget(t *testing.T) {
	defer func() {
		recommendCourses = false
		recommendDocuments = false
	}()

	recommendCourses, recommendDocuments = false, false
	assert.Equal(t, "both", string(resolveTarget()))

	recommendCourses, recommendDocuments = true, false
	assert.Equal(t, "courses", string(resolveTarget()))

	recommendCourses, recommendDocuments = false, true
	assert.Equal(t, "documents", string(resolveTarget()))

	recommendCourses, recommendDocuments = true, true
	assert.Equal(t, "both", string(resolveTarget()))
}
