package domain

import (
	"strings"
	"time"
)

// Course is a catalog course with free-text keyword tags.
// Identity is immutable; description and keywords are mutated only through
// explicit updates. Courses are never auto-deleted.
type Course struct {
	// ID is the stable identifier assigned by the store.
	ID int64

	// Name is the human-readable course name.
	Name string

	// Description is the free-text course description.
	Description string

	// Keywords is the comma-joined keyword-tag string used for substring
	// matching (e.g. "mobile,android,java").
	Keywords string

	// CreatedAt is when the course was first added.
	CreatedAt time.Time

	// UpdatedAt is when the course was last modified.
	UpdatedAt time.Time
}

// KeywordList splits the comma-joined keyword tags into individual terms.
// Empty fragments are dropped.
func (c Course) KeywordList() []string {
	return SplitKeywords(c.Keywords)
}

// SplitKeywords splits a comma-joined keyword-tag string into trimmed,
// non-empty terms, preserving order.
func SplitKeywords(joined string) []string {
	if joined == "" {
		return nil
	}
	parts := strings.Split(joined, ",")
	terms := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			terms = append(terms, t)
		}
	}
	return terms
}

// JoinKeywords joins keyword terms into the comma-joined storage form.
func JoinKeywords(terms []string) string {
	return strings.Join(terms, ",")
}
