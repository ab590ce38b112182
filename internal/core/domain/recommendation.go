package domain

import "fmt"

// Target selects which part of the catalog a recommendation query covers.
type Target string

const (
	// TargetCourses matches catalog courses only.
	TargetCourses Target = "courses"

	// TargetDocuments matches ingested documents only.
	TargetDocuments Target = "documents"

	// TargetBoth matches courses and documents as two labeled lists.
	// The lists are never cross-merged or re-ranked.
	TargetBoth Target = "both"
)

// IsValid reports whether the target is one of the known values.
func (t Target) IsValid() bool {
	switch t {
	case TargetCourses, TargetDocuments, TargetBoth:
		return true
	}
	return false
}

// ParseTarget converts a user-supplied string into a Target.
func ParseTarget(s string) (Target, error) {
	switch Target(s) {
	case TargetCourses, TargetDocuments, TargetBoth:
		return Target(s), nil
	}
	return "", fmt.Errorf("%w: unknown target %q", ErrInvalidInput, s)
}

// Recommendation is a single matched catalog item prepared for display.
type Recommendation struct {
	// Name is the display name (course name or document title).
	Name string

	// Body is the display body (course description or document summary).
	Body string
}

// RecommendationSet holds the labeled results of a combined query.
type RecommendationSet struct {
	Courses   []Recommendation
	Documents []Recommendation
}

// Empty reports whether the set contains no recommendations at all.
func (r RecommendationSet) Empty() bool {
	return len(r.Courses) == 0 && len(r.Documents) == 0
}

// Statistics summarizes the analysis state of the persisted corpus.
type Statistics struct {
	// Total is the number of persisted documents.
	Total int

	// Analyzed is the number of documents with completed analysis.
	Analyzed int

	// Pending is the number of documents not yet analyzed.
	Pending int

	// AnalysisRate is Analyzed/Total as a percentage, 0 for an empty corpus.
	AnalysisRate float64
}
