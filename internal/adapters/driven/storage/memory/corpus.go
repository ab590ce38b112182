// Package memory provides an in-memory implementation of the corpus
// store. It backs tests and the no-persistence mode.
package memory

import (
	"context"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.CorpusStore = (*Store)(nil)

// Store is an in-memory corpus store.
type Store struct {
	mu           sync.RWMutex
	courses      []domain.Course
	nextCourseID int64
	documents    map[string]domain.Document // keyed by filename
}

// NewStore creates a new in-memory corpus store.
func NewStore() *Store {
	return &Store{
		nextCourseID: 1,
		documents:    make(map[string]domain.Document),
	}
}

// AddCourse stores a new course and returns it with its assigned ID.
func (s *Store) AddCourse(_ context.Context, name, description, keywords string) (*domain.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	course := domain.Course{
		ID:          s.nextCourseID,
		Name:        name,
		Description: description,
		Keywords:    keywords,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	s.nextCourseID++
	s.courses = append(s.courses, course)
	return &course, nil
}

// ListCourses returns all courses ordered by name.
func (s *Store) ListCourses(_ context.Context) ([]domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	courses := make([]domain.Course, len(s.courses))
	copy(courses, s.courses)
	sort.Slice(courses, func(i, j int) bool {
		return courses[i].Name < courses[j].Name
	})
	return courses, nil
}

// SearchCourses returns courses matching any term over name, description
// or keyword tags. Each matching course appears once.
func (s *Store) SearchCourses(_ context.Context, keywords []string) ([]domain.Course, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Course
	seen := make(map[int64]bool)

	for _, course := range s.courses {
		if seen[course.ID] {
			continue
		}
		for _, term := range keywords {
			if containsFold(course.Name, term) ||
				containsFold(course.Description, term) ||
				containsFold(course.Keywords, term) {
				matches = append(matches, course)
				seen[course.ID] = true
				break
			}
		}
	}
	return matches, nil
}

// UpsertDocument stores a document, replacing any record with the same
// filename. The prior identity and upload time survive replacement.
func (s *Store) UpsertDocument(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := *doc
	if prior, ok := s.documents[doc.Filename]; ok {
		stored.ID = prior.ID
		stored.UploadedAt = prior.UploadedAt
	}
	s.documents[doc.Filename] = stored
	return nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, doc := range s.documents {
		if doc.ID == id {
			return &doc, nil
		}
	}
	return nil, domain.ErrNotFound
}

// ListDocuments returns all documents, newest upload first.
func (s *Store) ListDocuments(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		docs = append(docs, doc)
	}
	sort.Slice(docs, func(i, j int) bool {
		return docs[i].UploadedAt.After(docs[j].UploadedAt)
	})
	return docs, nil
}

// SearchDocuments returns documents matching any term over title, summary
// or keyword tags. Each matching document appears once.
func (s *Store) SearchDocuments(_ context.Context, keywords []string) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var matches []domain.Document
	for _, doc := range s.documents {
		for _, term := range keywords {
			if containsFold(doc.Title, term) ||
				containsFold(doc.Summary, term) ||
				containsFold(doc.Keywords, term) {
				matches = append(matches, doc)
				break
			}
		}
	}
	return matches, nil
}

// Statistics counts persisted documents by analysis status.
func (s *Store) Statistics(_ context.Context) (domain.Statistics, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	stats := domain.Statistics{Total: len(s.documents)}
	for _, doc := range s.documents {
		if doc.Status == domain.StatusCompleted {
			stats.Analyzed++
		} else {
			stats.Pending++
		}
	}
	if stats.Total > 0 {
		stats.AnalysisRate = float64(stats.Analyzed) / float64(stats.Total) * 100
	}
	return stats, nil
}

// Seed inserts the built-in sample courses, skipping existing names.
func (s *Store) Seed(ctx context.Context) error {
	existing := make(map[string]bool)

	s.mu.RLock()
	for _, course := range s.courses {
		existing[course.Name] = true
	}
	s.mu.RUnlock()

	for _, seed := range domain.SeedCourses() {
		if existing[seed.Name] {
			continue
		}
		if _, err := s.AddCourse(ctx, seed.Name, seed.Description, seed.Keywords); err != nil {
			return err
		}
	}
	return nil
}

// Close releases resources. Nothing to release for the in-memory store.
func (s *Store) Close() error {
	return nil
}

// containsFold reports whether haystack contains needle, ignoring case.
func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}
