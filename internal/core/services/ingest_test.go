package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/theatilgan/courserec-cli/internal/adapters/driven/storage/memory"
	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// stubExtractor is a configurable TextExtractor double.
type stubExtractor struct {
	name     string
	exts     []string
	priority int
	text     string
	err      error
	calls    int
}

func (s *stubExtractor) Name() string                  { return s.name }
func (s *stubExtractor) SupportedExtensions() []string { return s.exts }
func (s *stubExtractor) Priority() int                 { return s.priority }

func (s *stubExtractor) Extract(_ context.Context, _ string) (string, error) {
	s.calls++
	return s.text, s.err
}

// writeTestFile creates a file under a temp dir and returns its path.
func writeTestFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0600))
	return path
}

func TestIngest_HappyPath(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"machine", "learning"}}
	extractor := &stubExtractor{
		name: "stub", exts: []string{".txt"}, priority: 90,
		text: "Machine Learning Basics\nGradient descent and loss functions.",
	}
	pipeline := NewIngestionPipeline(store, kw, extractor)

	path := writeTestFile(t, "ml_notes.txt", "irrelevant, extractor is stubbed")
	ok := pipeline.Ingest(context.Background(), path)
	require.True(t, ok)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)

	doc := docs[0]
	assert.Equal(t, "ml_notes.txt", doc.Filename)
	assert.Equal(t, "Machine Learning Basics", doc.Title)
	assert.Equal(t, "machine,learning", doc.Keywords)
	assert.Equal(t, domain.StatusCompleted, doc.Status)
	assert.NotEmpty(t, doc.ID)
	assert.NotEmpty(t, doc.Summary)
	assert.False(t, doc.UploadedAt.IsZero())
}

func TestIngest_MissingFile(t *testing.T) {
	store := memory.NewStore()
	pipeline := NewIngestionPipeline(store, &stubKeywords{})

	ok := pipeline.Ingest(context.Background(), "/nonexistent/file.pdf")
	assert.False(t, ok)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Empty(t, docs)
}

func TestIngest_CascadeFallsThrough(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"data"}}

	first := &stubExtractor{
		name: "first", exts: []string{".txt"}, priority: 90,
		err: domain.ErrNoExtractableText,
	}
	second := &stubExtractor{
		name: "second", exts: []string{".txt"}, priority: 60,
		text: "Recovered content from second strategy.",
	}
	// Registration order must not matter: priority decides.
	pipeline := NewIngestionPipeline(store, kw, second, first)

	path := writeTestFile(t, "data.txt", "content")
	require.True(t, pipeline.Ingest(context.Background(), path))

	assert.Equal(t, 1, first.calls)
	assert.Equal(t, 1, second.calls)

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0].Text, "Recovered content")
}

func TestIngest_ExtractorErrorFallsThrough(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"notes"}}

	broken := &stubExtractor{
		name: "broken", exts: []string{".txt"}, priority: 90,
		err: errors.New("parser exploded"),
	}
	pipeline := NewIngestionPipeline(store, kw, broken)

	path := writeTestFile(t, "lecture_notes.txt", "content")
	require.True(t, pipeline.Ingest(context.Background(), path))

	// All strategies failed, so the filename becomes the signal.
	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "lecture notes", docs[0].Text)
	assert.Equal(t, domain.StatusCompleted, docs[0].Status)
	assert.NotEmpty(t, docs[0].Summary)
}

func TestIngest_UnsupportedExtensionSkipsExtractor(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"report"}}

	pdfOnly := &stubExtractor{
		name: "pdf-only", exts: []string{".pdf"}, priority: 90,
		text: "should never be used",
	}
	pipeline := NewIngestionPipeline(store, kw, pdfOnly)

	path := writeTestFile(t, "report.txt", "content")
	require.True(t, pipeline.Ingest(context.Background(), path))

	assert.Zero(t, pdfOnly.calls)
	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "report", docs[0].Text)
}

func TestIngest_ReingestReplacesByFilename(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"draft"}}
	extractor := &stubExtractor{
		name: "stub", exts: []string{".txt"}, priority: 90,
		text: "First draft content here.",
	}
	pipeline := NewIngestionPipeline(store, kw, extractor)

	path := writeTestFile(t, "draft.txt", "content")
	require.True(t, pipeline.Ingest(context.Background(), path))

	extractor.text = "Second revision content here."
	require.True(t, pipeline.Ingest(context.Background(), path))

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Contains(t, docs[0].Text, "Second revision")
}

func TestIngestAll_BatchIsolation(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"topic"}}
	extractor := &stubExtractor{
		name: "stub", exts: []string{".txt"}, priority: 90,
		text: "Some extracted content.",
	}
	pipeline := NewIngestionPipeline(store, kw, extractor)

	good := writeTestFile(t, "good.txt", "content")
	results := pipeline.IngestAll(context.Background(), []string{
		good,
		"/nonexistent/bad.txt",
	})

	require.Len(t, results, 2)
	assert.True(t, results["good.txt"])
	assert.False(t, results["bad.txt"])

	docs, err := store.ListDocuments(context.Background())
	require.NoError(t, err)
	assert.Len(t, docs, 1)
}

func TestStatistics_Delegates(t *testing.T) {
	store := memory.NewStore()
	kw := &stubKeywords{terms: []string{"x"}}
	extractor := &stubExtractor{name: "stub", priority: 90, text: "content body"}
	pipeline := NewIngestionPipeline(store, kw, extractor)

	path := writeTestFile(t, "doc.txt", "content")
	require.True(t, pipeline.Ingest(context.Background(), path))

	stats, err := pipeline.Statistics(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, stats.Total)
	assert.Equal(t, 1, stats.Analyzed)
	assert.InDelta(t, 100.0, stats.AnalysisRate, 0.01)
}

func TestNormalizeText(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"collapses whitespace", "a  b\t\nc", "a b c"},
		{"strips disallowed characters", "hello @#$ world", "hello world"},
		{"keeps allowed punctuation", "Done. Really? Yes!", "Done. Really? Yes!"},
		{
			"keeps accented and non-Latin letters",
			"Gösterge paneli tasarımı ve veri görselleştirme",
			"Gösterge paneli tasarımı ve veri görselleştirme",
		},
		{"keeps non-Latin scripts", "データ 分析 入門", "データ 分析 入門"},
		{"trims edges", "  padded  ", "padded"},
		{"empty", "   ", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeText(tt.in))
		})
	}
}

func TestFilenameToText(t *testing.T) {
	assert.Equal(t, "machine learning notes", FilenameToText("machine_learning_notes.pdf"))
	assert.Equal(t, "web dev guide", FilenameToText("web-dev-guide.txt"))
	assert.Equal(t, "syllabus", FilenameToText("syllabus"))
}

func TestDeriveTitle(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		filename string
		want     string
	}{
		{
			name:     "first plausible line",
			raw:      "Intro to Databases\n\nRelational algebra.",
			filename: "db.pdf",
			want:     "Intro to Databases",
		},
		{
			name:     "skips short and blank lines",
			raw:      "\nab\nActual Title Line\nmore",
			filename: "doc.pdf",
			want:     "Actual Title Line",
		},
		{
			name:     "falls back to title-cased filename",
			raw:      "",
			filename: "study_plan.pdf",
			want:     "Study Plan",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, deriveTitle(tt.raw, tt.filename))
		})
	}
}

func TestDeriveSummary(t *testing.T) {
	short := "brief text"
	assert.Equal(t, short, deriveSummary(short))

	long := ""
	for len(long) < 300 {
		long += "0123456789"
	}
	got := deriveSummary(long)
	assert.Len(t, got, 203)
	assert.Equal(t, "...", got[200:])
}

func TestDeriveSummary_MultiByteText(t *testing.T) {
	long := strings.Repeat("ü", 250)

	got := deriveSummary(long)
	assert.True(t, utf8.ValidString(got))
	assert.Equal(t, strings.Repeat("ü", 200)+"...", got)
}

func TestTruncateRunes(t *testing.T) {
	assert.Equal(t, "short", truncateRunes("short", 10))
	assert.Equal(t, "öğr...", truncateRunes("öğrenci", 3))
	assert.True(t, utf8.ValidString(truncateRunes(strings.Repeat("ş", 5000), maxPromptChars)))
}
