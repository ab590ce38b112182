package services

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driving"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

// Ensure IngestionPipeline implements the interface.
var _ driving.IngestService = (*IngestionPipeline)(nil)

// Analysis limits.
const (
	// maxPromptChars bounds the text handed to the keyword extractor,
	// respecting backend input limits.
	maxPromptChars = 4000

	// summaryChars is the summary length before the ellipsis marker.
	summaryChars = 200

	// Title plausibility window for candidate lines.
	minTitleChars = 3
	maxTitleChars = 100
)

// disallowedChars matches characters outside the conservative allow-list
// (letters and digits in any script, underscore, whitespace and a small
// punctuation set). They are removed so extracted text is safe to embed
// in prompts and to store. \p{L}\p{N} rather than \w: Go's \w is
// ASCII-only and would strip accented and non-Latin letters.
var disallowedChars = regexp.MustCompile(`[^\p{L}\p{N}_\s.,!?;:\-()]`)

// whitespaceRuns collapses consecutive whitespace to single spaces.
var whitespaceRuns = regexp.MustCompile(`\s+`)

// IngestionPipeline turns uploaded documents into searchable catalog
// entries: extraction cascade, keyword/summary analysis, upsert.
type IngestionPipeline struct {
	store      driven.DocumentStore
	keywords   driving.KeywordService
	extractors []driven.TextExtractor
}

// NewIngestionPipeline creates an ingestion pipeline. Extractors are
// tried in descending priority order.
func NewIngestionPipeline(
	store driven.DocumentStore,
	keywords driving.KeywordService,
	extractors ...driven.TextExtractor,
) *IngestionPipeline {
	sorted := make([]driven.TextExtractor, len(extractors))
	copy(sorted, extractors)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Priority() > sorted[j].Priority()
	})

	return &IngestionPipeline{
		store:      store,
		keywords:   keywords,
		extractors: sorted,
	}
}

// Ingest processes a single document and reports success. Every failure
// is logged and converted to false; nothing propagates to the caller.
func (p *IngestionPipeline) Ingest(ctx context.Context, path string) bool {
	logger.Section("Ingestion")
	logger.Debug("Ingesting %s", path)

	info, err := os.Stat(path)
	if err != nil {
		logger.Warn("Ingest %s: file not accessible: %v", path, err)
		return false
	}

	filename := filepath.Base(path)
	raw := p.extractText(ctx, path, filename)

	text := NormalizeText(raw)
	if text == "" {
		// Filename-derived pseudo-text keeps the searchable-signal
		// invariant: a document never persists with zero signal.
		text = NormalizeText(FilenameToText(filename))
		logger.Info("Ingest %s: no extractable text, using filename-derived signal", filename)
	}

	now := time.Now().UTC()
	doc := &domain.Document{
		ID:         uuid.New().String(),
		Filename:   filename,
		Path:       path,
		Title:      deriveTitle(raw, filename),
		Text:       text,
		Keywords:   domain.JoinKeywords(p.analyzeKeywords(ctx, text)),
		Summary:    deriveSummary(text),
		Size:       info.Size(),
		UploadedAt: now,
		AnalyzedAt: now,
		Status:     domain.StatusCompleted,
	}

	if err := p.store.UpsertDocument(ctx, doc); err != nil {
		logger.Warn("Ingest %s: persist failed: %v", filename, err)
		return false
	}

	logger.Info("Ingested %s (%d chars, %d keywords)", filename, len(text), len(doc.KeywordList()))
	return true
}

// IngestAll processes each path independently, strictly in input order.
// One failing document never aborts the batch.
func (p *IngestionPipeline) IngestAll(ctx context.Context, paths []string) map[string]bool {
	results := make(map[string]bool, len(paths))
	succeeded := 0

	for _, path := range paths {
		ok := p.Ingest(ctx, path)
		results[filepath.Base(path)] = ok
		if ok {
			succeeded++
		}
	}

	logger.Info("Batch ingestion: %d/%d documents succeeded", succeeded, len(paths))
	return results
}

// Statistics summarizes the analysis state of the persisted corpus.
func (p *IngestionPipeline) Statistics(ctx context.Context) (domain.Statistics, error) {
	return p.store.Statistics(ctx)
}

// extractText runs the extraction cascade: each strategy in priority
// order until one yields non-empty content, then the filename-derived
// pseudo-text that never fails.
func (p *IngestionPipeline) extractText(ctx context.Context, path, filename string) string {
	ext := strings.ToLower(filepath.Ext(path))

	for _, extractor := range p.extractors {
		if !supportsExtension(extractor, ext) {
			continue
		}

		text, err := extractor.Extract(ctx, path)
		switch {
		case errors.Is(err, domain.ErrNoExtractableText):
			logger.Debug("Extractor %s: no content in %s", extractor.Name(), filename)
			continue
		case err != nil:
			logger.Warn("Extractor %s failed on %s: %v", extractor.Name(), filename, err)
			continue
		}

		if strings.TrimSpace(text) != "" {
			logger.Debug("Extractor %s yielded %d chars from %s", extractor.Name(), len(text), filename)
			return text
		}
	}

	logger.Info("All extraction strategies exhausted for %s, deriving text from filename", filename)
	return FilenameToText(filename)
}

// analyzeKeywords derives keyword tags from the normalized text,
// truncated to the backend input budget. The untruncated text is kept
// for storage and summary derivation.
func (p *IngestionPipeline) analyzeKeywords(ctx context.Context, text string) []string {
	return p.keywords.Extract(ctx, truncateRunes(text, maxPromptChars))
}

// supportsExtension reports whether the extractor handles the extension.
// An empty support list means all files.
func supportsExtension(extractor driven.TextExtractor, ext string) bool {
	supported := extractor.SupportedExtensions()
	if len(supported) == 0 {
		return true
	}
	for _, s := range supported {
		if s == ext {
			return true
		}
	}
	return false
}

// NormalizeText collapses whitespace runs to single spaces and removes
// characters outside the conservative allow-list.
func NormalizeText(text string) string {
	text = disallowedChars.ReplaceAllString(text, "")
	text = whitespaceRuns.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}

// FilenameToText turns a filename into pseudo-text: extension stripped,
// separators replaced with spaces. Never empty for a non-empty filename.
func FilenameToText(filename string) string {
	name := strings.TrimSuffix(filename, filepath.Ext(filename))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name
}

// deriveTitle picks the first line of the raw extracted text within the
// plausible title window, falling back to the title-cased filename. It
// reads the raw text because normalization collapses line structure.
func deriveTitle(raw, filename string) string {
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)
		if len(line) > minTitleChars && len(line) < maxTitleChars {
			return line
		}
	}
	return titleFromFilename(filename)
}

// deriveSummary returns the first summaryChars characters of the
// normalized text with an ellipsis marker if truncated.
func deriveSummary(text string) string {
	return truncateRunes(text, summaryChars)
}

// truncateRunes caps text at limit characters, appending an ellipsis
// marker when truncated. Counting runes rather than bytes keeps
// multi-byte text intact at the cut point.
func truncateRunes(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// titleFromFilename builds a title-cased, separator-stripped title from
// the filename.
func titleFromFilename(filename string) string {
	words := strings.Fields(FilenameToText(filename))
	for i, w := range words {
		r := []rune(w)
		r[0] = []rune(strings.ToUpper(string(r[0])))[0]
		words[i] = string(r)
	}
	return strings.Join(words, " ")
}
