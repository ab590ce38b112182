package memory

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

func testDoc(filename string) *domain.Document {
	now := time.Now().UTC()
	return &domain.Document{
		ID:         uuid.New().String(),
		Filename:   filename,
		Title:      "Title",
		Keywords:   "mobile,android",
		Summary:    "mobile development notes",
		UploadedAt: now,
		AnalyzedAt: now,
		Status:     domain.StatusCompleted,
	}
}

func TestMemoryAddAndListCourses(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	_, err := store.AddCourse(ctx, "Zig Basics", "Zig fundamentals", "zig")
	require.NoError(t, err)
	course, err := store.AddCourse(ctx, "Ada Basics", "Ada fundamentals", "ada")
	require.NoError(t, err)
	assert.Equal(t, int64(2), course.ID)

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Ada Basics", courses[0].Name)
}

func TestMemorySearchCourses_Dedup(t *testing.T) {
	store := NewStore()
	ctx := context.Background()
	require.NoError(t, store.Seed(ctx))

	// Both terms match Android Development; it appears once.
	courses, err := store.SearchCourses(ctx, []string{"mobile", "android"})
	require.NoError(t, err)

	seen := map[string]int{}
	for _, c := range courses {
		seen[c.Name]++
	}
	assert.Equal(t, 1, seen["Android Development"])
}

func TestMemoryUpsert_ReplaceKeepsIdentity(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	first := testDoc("a.pdf")
	require.NoError(t, store.UpsertDocument(ctx, first))

	second := testDoc("a.pdf")
	second.Title = "Replaced"
	require.NoError(t, store.UpsertDocument(ctx, second))

	docs, err := store.ListDocuments(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, first.ID, docs[0].ID)
	assert.Equal(t, "Replaced", docs[0].Title)
}

func TestMemoryGetDocument(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	doc := testDoc("a.pdf")
	require.NoError(t, store.UpsertDocument(ctx, doc))

	got, err := store.GetDocument(ctx, doc.ID)
	require.NoError(t, err)
	assert.Equal(t, "a.pdf", got.Filename)

	_, err = store.GetDocument(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestMemoryStatistics(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	stats, err := store.Statistics(ctx)
	require.NoError(t, err)
	assert.Zero(t, stats.Total)
	assert.Zero(t, stats.AnalysisRate)

	done := testDoc("done.pdf")
	require.NoError(t, store.UpsertDocument(ctx, done))

	pending := testDoc("pending.pdf")
	pending.Status = domain.StatusPending
	require.NoError(t, store.UpsertDocument(ctx, pending))

	stats, err = store.Statistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.Total)
	assert.Equal(t, 1, stats.Analyzed)
	assert.Equal(t, 1, stats.Pending)
	assert.InDelta(t, 50.0, stats.AnalysisRate, 0.01)
}

func TestMemorySeed_Idempotent(t *testing.T) {
	store := NewStore()
	ctx := context.Background()

	require.NoError(t, store.Seed(ctx))
	require.NoError(t, store.Seed(ctx))

	courses, err := store.ListCourses(ctx)
	require.NoError(t, err)
	assert.Len(t, courses, len(domain.SeedCourses()))
}
