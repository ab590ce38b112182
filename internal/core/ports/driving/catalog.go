package driving

import (
	"context"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
)

// CatalogService manages the course catalog and document listing.
type CatalogService interface {
	// AddCourse stores a new course.
	AddCourse(ctx context.Context, name, description, keywords string) (*domain.Course, error)

	// ListCourses returns all courses ordered by name.
	ListCourses(ctx context.Context) ([]domain.Course, error)

	// ListDocuments returns all ingested documents, newest first.
	ListDocuments(ctx context.Context) ([]domain.Document, error)
}
