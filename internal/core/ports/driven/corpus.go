package driven

import (
	"context"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// CourseStore persists the course catalog and answers keyword queries.
// Backed by SQLite for metadata storage.
type CourseStore interface {
	// AddCourse stores a new course and returns it with its assigned ID.
	AddCourse(ctx context.Context, name, description, keywords string) (*domain.Course, error)

	// ListCourses returns all courses ordered by name.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// SearchCourses returns courses whose name, description or keyword tags
	// contain any of the given terms (case-insensitive substring, OR per
	// term, union across terms). Each matching course appears once.
	SearchCourses(ctx context.Context, keywords []string) ([]domain.Course, error)
}

// DocumentStore persists ingested documents and answers keyword queries.
// Filename is the natural key: UpsertDocument replaces a prior record
// with the same filename.
type DocumentStore interface {
	// UpsertDocument stores a document, replacing any record with the
	// same filename.
	UpsertDocument(ctx context.Context, doc *domain.Document) error

	// GetDocument retrieves a document by ID.
	GetDocument(ctx context.Context, id string) (*domain.Document, error)

	// ListDocuments returns all documents, newest upload first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)

	// SearchDocuments returns documents whose title, summary or keyword
	// tags contain any of the given terms (case-insensitive substring, OR
	// per term, union across terms). Each matching document appears once.
	SearchDocuments(ctx context.Context, keywords []string) ([]domain.Document, error)

	// Statistics counts persisted documents by analysis status.
	Statistics(ctx context.Context) (domain.Statistics, error)
}

// CorpusStore is the combined persistence boundary. A single adapter
// (SQLite, memory) provides both halves plus one-time setup.
type CorpusStore interface {
	CourseStore
	DocumentStore

	// Seed inserts the built-in sample courses. Idempotent: existing
	// courses with the same name are left untouched.
	Seed(ctx context.Context) error

	// Close releases the underlying storage.
	Close() error
}
