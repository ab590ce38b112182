package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/theatilgan/courserec-cli/internal/adapters/driven/storage/sqlite/migrations"
	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

// Store is the SQLite-backed corpus store holding both the course catalog
// and the ingested document metadata.
type Store struct {
	db   *sql.DB
	path string
}

var _ driven.CorpusStore = (*Store)(nil)

// NewStore creates a new SQLite store at the specified data directory.
// If dataDir is empty, defaults to ~/.courserec/data/corpus.db.
func NewStore(dataDir string) (*Store, error) {
	if dataDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("getting home directory: %w", err)
		}
		dataDir = filepath.Join(home, ".courserec", "data")
	}

	// Ensure directory exists
	if err := os.MkdirAll(dataDir, 0700); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}

	dbPath := filepath.Join(dataDir, "corpus.db")

	// Open database with WAL mode for better concurrency
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(WAL)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// Enable foreign keys
	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling foreign keys: %w", err)
	}

	s := &Store{
		db:   db,
		path: dbPath,
	}

	// Run migrations
	if err := s.migrate(migrations.FS); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Path returns the database file path.
func (s *Store) Path() string {
	return s.path
}

// migrate runs all pending migrations.
func (s *Store) migrate(fsys embed.FS) error {
	// Ensure schema_migrations table exists
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_migrations (
			version INTEGER PRIMARY KEY,
			applied_at DATETIME DEFAULT CURRENT_TIMESTAMP
		)
	`)
	if err != nil {
		return fmt.Errorf("creating schema_migrations table: %w", err)
	}

	// Get current version
	var currentVersion int
	row := s.db.QueryRow("SELECT COALESCE(MAX(version), 0) FROM schema_migrations")
	if err := row.Scan(&currentVersion); err != nil {
		return fmt.Errorf("getting current version: %w", err)
	}

	// Find all up migrations
	entries, err := fs.ReadDir(fsys, ".")
	if err != nil {
		return fmt.Errorf("reading migrations directory: %w", err)
	}

	var upFiles []string
	for _, entry := range entries {
		name := entry.Name()
		if strings.HasSuffix(name, ".up.sql") {
			upFiles = append(upFiles, name)
		}
	}
	sort.Strings(upFiles)

	for _, name := range upFiles {
		// Extract version number (e.g., "001_initial.up.sql" -> 1)
		var version int
		if _, err := fmt.Sscanf(name, "%d_", &version); err != nil {
			continue // Skip files that don't match pattern
		}

		if version <= currentVersion {
			continue // Already applied
		}

		content, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("reading migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(string(content)); err != nil {
			return fmt.Errorf("executing migration %s: %w", name, err)
		}

		if _, err := s.db.Exec(
			"INSERT INTO schema_migrations (version) VALUES (?)", version); err != nil {
			return fmt.Errorf("recording migration %s: %w", name, err)
		}
	}

	return nil
}

// ==================== Course Store ====================

// AddCourse stores a new course and returns it with its assigned ID.
func (s *Store) AddCourse(ctx context.Context, name, description, keywords string) (*domain.Course, error) {
	now := time.Now().UTC()

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO courses (name, description, keywords, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, name, description, keywords, now, now)
	if err != nil {
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			return nil, fmt.Errorf("%w: course %q", domain.ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("adding course: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("getting course id: %w", err)
	}

	return &domain.Course{
		ID:          id,
		Name:        name,
		Description: description,
		Keywords:    keywords,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// ListCourses returns all courses ordered by name.
func (s *Store) ListCourses(ctx context.Context) ([]domain.Course, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, description, keywords, created_at, updated_at
		FROM courses ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying courses: %w", err)
	}
	defer rows.Close()

	return scanCourses(rows)
}

// SearchCourses returns courses matching any of the given terms by
// case-insensitive substring over name, description and keyword tags.
// Each matching course appears once regardless of how many terms hit.
func (s *Store) SearchCourses(ctx context.Context, keywords []string) ([]domain.Course, error) {
	seen := make(map[int64]bool)
	var matches []domain.Course

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}

		rows, err := s.db.QueryContext(ctx, `
			SELECT id, name, description, keywords, created_at, updated_at
			FROM courses
			WHERE LOWER(name) LIKE '%' || LOWER(?) || '%'
			   OR LOWER(description) LIKE '%' || LOWER(?) || '%'
			   OR LOWER(keywords) LIKE '%' || LOWER(?) || '%'
		`, kw, kw, kw)
		if err != nil {
			return nil, fmt.Errorf("searching courses: %w", err)
		}

		courses, err := scanCourses(rows)
		rows.Close()
		if err != nil {
			return nil, err
		}

		for _, c := range courses {
			if seen[c.ID] {
				continue
			}
			seen[c.ID] = true
			matches = append(matches, c)
		}
	}

	return matches, nil
}

// ==================== Document Store ====================

// UpsertDocument stores a document, replacing any record with the same
// filename. A replaced record keeps its original id and uploaded_at.
func (s *Store) UpsertDocument(ctx context.Context, doc *domain.Document) error {
	if doc.Filename == "" {
		return fmt.Errorf("%w: empty filename", domain.ErrInvalidInput)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO documents
			(id, filename, path, title, text, keywords, summary, size, uploaded_at, analyzed_at, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(filename) DO UPDATE SET
			path = excluded.path,
			title = excluded.title,
			text = excluded.text,
			keywords = excluded.keywords,
			summary = excluded.summary,
			size = excluded.size,
			analyzed_at = excluded.analyzed_at,
			status = excluded.status
	`, doc.ID, doc.Filename, doc.Path, doc.Title, doc.Text, doc.Keywords,
		doc.Summary, doc.Size, doc.UploadedAt, nullTime(doc.AnalyzedAt), string(doc.Status))

	if err != nil {
		return fmt.Errorf("upserting document: %w", err)
	}
	return nil
}

// GetDocument retrieves a document by ID.
func (s *Store) GetDocument(ctx context.Context, id string) (*domain.Document, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, filename, path, title, text, keywords, summary, size, uploaded_at, analyzed_at, status
		FROM documents WHERE id = ?
	`, id)

	doc, err := scanDocument(row)
	if err != nil {
		return nil, err
	}
	return doc, nil
}

// ListDocuments returns all documents, newest upload first.
func (s *Store) ListDocuments(ctx context.Context) ([]domain.Document, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, filename, path, title, text, keywords, summary, size, uploaded_at, analyzed_at, status
		FROM documents ORDER BY uploaded_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	return scanDocuments(rows)
}

// SearchDocuments returns documents matching any of the given terms by
// case-insensitive substring over title, summary and keyword tags.
// Each matching document appears once regardless of how many terms hit.
func (s *Store) SearchDocuments(ctx context.Context, keywords []string) ([]domain.Document, error) {
	seen := make(map[string]bool)
	var matches []domain.Document

	for _, kw := range keywords {
		kw = strings.TrimSpace(kw)
		if kw == "" {
			continue
		}

		rows, err := s.db.QueryContext(ctx, `
			SELECT id, filename, path, title, text, keywords, summary, size, uploaded_at, analyzed_at, status
			FROM documents
			WHERE LOWER(title) LIKE '%' || LOWER(?) || '%'
			   OR LOWER(summary) LIKE '%' || LOWER(?) || '%'
			   OR LOWER(keywords) LIKE '%' || LOWER(?) || '%'
		`, kw, kw, kw)
		if err != nil {
			return nil, fmt.Errorf("searching documents: %w", err)
		}

		docs, err := scanDocuments(rows)
		rows.Close()
		if err != nil {
			return nil, err
		}

		for _, d := range docs {
			if seen[d.ID] {
				continue
			}
			seen[d.ID] = true
			matches = append(matches, d)
		}
	}

	return matches, nil
}

// Statistics counts persisted documents by analysis status.
func (s *Store) Statistics(ctx context.Context) (domain.Statistics, error) {
	var stats domain.Statistics

	row := s.db.QueryRowContext(ctx, `
		SELECT
			COUNT(*),
			COALESCE(SUM(CASE WHEN status = ? THEN 1 ELSE 0 END), 0)
		FROM documents
	`, string(domain.StatusCompleted))

	if err := row.Scan(&stats.Total, &stats.Analyzed); err != nil {
		return domain.Statistics{}, fmt.Errorf("counting documents: %w", err)
	}

	stats.Pending = stats.Total - stats.Analyzed
	if stats.Total > 0 {
		stats.AnalysisRate = float64(stats.Analyzed) / float64(stats.Total) * 100
	}

	return stats, nil
}

// ==================== Seeding ====================

// Seed inserts the built-in sample courses. Existing courses with the
// same name are left untouched.
func (s *Store) Seed(ctx context.Context) error {
	now := time.Now().UTC()

	for _, c := range domain.SeedCourses() {
		_, err := s.db.ExecContext(ctx, `
			INSERT OR IGNORE INTO courses (name, description, keywords, created_at, updated_at)
			VALUES (?, ?, ?, ?, ?)
		`, c.Name, c.Description, c.Keywords, now, now)
		if err != nil {
			return fmt.Errorf("seeding course %q: %w", c.Name, err)
		}
	}

	return nil
}

// ==================== Helper Functions ====================

// nullTime maps a zero time to SQL NULL.
func nullTime(t time.Time) any {
	if t.IsZero() {
		return nil
	}
	return t
}

// scanCourses scans multiple course rows.
func scanCourses(rows *sql.Rows) ([]domain.Course, error) {
	var courses []domain.Course //nolint:prealloc // size unknown from query
	for rows.Next() {
		var c domain.Course
		if err := rows.Scan(&c.ID, &c.Name, &c.Description, &c.Keywords,
			&c.CreatedAt, &c.UpdatedAt); err != nil {
			return nil, fmt.Errorf("scanning course: %w", err)
		}
		courses = append(courses, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating courses: %w", err)
	}

	return courses, nil
}

// scanDocument scans a single document row.
func scanDocument(row *sql.Row) (*domain.Document, error) {
	var doc domain.Document
	var analyzedAt sql.NullTime
	var status string

	if err := row.Scan(&doc.ID, &doc.Filename, &doc.Path, &doc.Title, &doc.Text,
		&doc.Keywords, &doc.Summary, &doc.Size, &doc.UploadedAt, &analyzedAt, &status); err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("scanning document: %w", err)
	}

	if analyzedAt.Valid {
		doc.AnalyzedAt = analyzedAt.Time
	}
	doc.Status = domain.AnalysisStatus(status)

	return &doc, nil
}

// scanDocuments scans multiple document rows.
func scanDocuments(rows *sql.Rows) ([]domain.Document, error) {
	var docs []domain.Document //nolint:prealloc // size unknown from query
	for rows.Next() {
		var doc domain.Document
		var analyzedAt sql.NullTime
		var status string

		if err := rows.Scan(&doc.ID, &doc.Filename, &doc.Path, &doc.Title, &doc.Text,
			&doc.Keywords, &doc.Summary, &doc.Size, &doc.UploadedAt, &analyzedAt, &status); err != nil {
			return nil, fmt.Errorf("scanning document: %w", err)
		}

		if analyzedAt.Valid {
			doc.AnalyzedAt = analyzedAt.Time
		}
		doc.Status = domain.AnalysisStatus(status)

		docs = append(docs, doc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating documents: %w", err)
	}

	return docs, nil
}
