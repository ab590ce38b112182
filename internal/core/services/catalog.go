package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driving"
	"github.com/theatilgan/courserec-cli/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService manages the course catalog and document listing.
type CatalogService struct {
	courses   driven.CourseStore
	documents driven.DocumentStore
}

// NewCatalogService creates a catalog service.
func NewCatalogService(courses driven.CourseStore, documents driven.DocumentStore) *CatalogService {
	return &CatalogService{
		courses:   courses,
		documents: documents,
	}
}

// AddCourse validates and stores a new course.
func (s *CatalogService) AddCourse(
	ctx context.Context, name, description, keywords string,
) (*domain.Course, error) {
	if strings.TrimSpace(name) == "" || strings.TrimSpace(description) == "" {
		return nil, fmt.Errorf("%w: course name and description are required", domain.ErrInvalidInput)
	}

	course, err := s.courses.AddCourse(ctx, name, description, keywords)
	if err != nil {
		return nil, fmt.Errorf("add course: %w", err)
	}

	logger.Info("Added course %q", course.Name)
	return course, nil
}

// ListCourses returns all courses ordered by name.
func (s *CatalogService) ListCourses(ctx context.Context) ([]domain.Course, error) {
	return s.courses.ListCourses(ctx)
}

// ListDocuments returns all ingested documents, newest first.
func (s *CatalogService) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	return s.documents.ListDocuments(ctx)
}
