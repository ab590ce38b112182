package services

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driving"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

// Ensure RecommendationEngine implements the interface.
var _ driving.RecommenderService = (*RecommendationEngine)(nil)

// missingSummary is shown for documents that ended up without a summary.
const missingSummary = "Summary not available"

// RecommendationEngine orchestrates keyword extraction and corpus queries
// to answer "given this text, which catalog items match?".
type RecommendationEngine struct {
	keywords  driving.KeywordService
	courses   driven.CourseStore
	documents driven.DocumentStore
}

// NewRecommendationEngine creates a recommendation engine.
func NewRecommendationEngine(
	keywords driving.KeywordService,
	courses driven.CourseStore,
	documents driven.DocumentStore,
) *RecommendationEngine {
	return &RecommendationEngine{
		keywords:  keywords,
		courses:   courses,
		documents: documents,
	}
}

// Recommend matches the user text against the corpus selected by target.
// Blank input and empty keyword sets short-circuit to an empty result:
// the corpus is never scanned without keywords, since an unconstrained
// scan would defeat keyword targeting.
func (e *RecommendationEngine) Recommend(
	ctx context.Context, userText string, target domain.Target,
) (domain.RecommendationSet, error) {
	logger.Section("Recommendation")
	logger.Debug("Input: %q target: %s", userText, target)

	var set domain.RecommendationSet

	if !target.IsValid() {
		return set, fmt.Errorf("%w: unknown target %q", domain.ErrInvalidInput, target)
	}

	if strings.TrimSpace(userText) == "" {
		logger.Info("Empty input, returning no recommendations")
		return set, nil
	}

	terms := e.keywords.Extract(ctx, userText)
	if len(terms) == 0 {
		logger.Info("No keywords extracted for %q, returning no recommendations", userText)
		return set, nil
	}
	logger.Debug("Keywords: %v", terms)

	if target == domain.TargetCourses || target == domain.TargetBoth {
		courses, err := e.matchCourses(ctx, terms)
		if err != nil {
			return domain.RecommendationSet{}, err
		}
		set.Courses = courses
	}

	if target == domain.TargetDocuments || target == domain.TargetBoth {
		documents, err := e.matchDocuments(ctx, terms)
		if err != nil {
			return domain.RecommendationSet{}, err
		}
		set.Documents = documents
	}

	logger.Info("Recommended %d courses and %d documents", len(set.Courses), len(set.Documents))
	return set, nil
}

// TestConnection probes the language-understanding backend.
func (e *RecommendationEngine) TestConnection(ctx context.Context) bool {
	return e.keywords.TestConnection(ctx)
}

// matchCourses runs the store query and formats matches for display,
// sorted by name for a deterministic order.
func (e *RecommendationEngine) matchCourses(ctx context.Context, terms []string) ([]domain.Recommendation, error) {
	courses, err := e.courses.SearchCourses(ctx, terms)
	if err != nil {
		return nil, fmt.Errorf("search courses: %w", err)
	}

	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Name < courses[j].Name
	})

	recs := make([]domain.Recommendation, len(courses))
	for i, c := range courses {
		recs[i] = domain.Recommendation{Name: c.Name, Body: c.Description}
	}
	return recs, nil
}

// matchDocuments runs the store query and formats matches for display,
// sorted by display title for a deterministic order.
func (e *RecommendationEngine) matchDocuments(ctx context.Context, terms []string) ([]domain.Recommendation, error) {
	documents, err := e.documents.SearchDocuments(ctx, terms)
	if err != nil {
		return nil, fmt.Errorf("search documents: %w", err)
	}

	sort.Slice(documents, func(i, j int) bool {
		return documents[i].DisplayTitle() < documents[j].DisplayTitle()
	})

	recs := make([]domain.Recommendation, len(documents))
	for i, d := range documents {
		body := d.Summary
		if body == "" {
			body = missingSummary
		}
		recs[i] = domain.Recommendation{Name: d.DisplayTitle(), Body: body}
	}
	return recs, nil
}
