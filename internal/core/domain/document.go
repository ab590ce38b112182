package domain

import "time"

// AnalysisStatus is the lifecycle flag on an ingested document indicating
// whether keyword/summary derivation has completed.
type AnalysisStatus string

const (
	// StatusPending means the document was stored but not yet analyzed.
	StatusPending AnalysisStatus = "pending"

	// StatusCompleted means keyword and summary derivation finished.
	// Filename-only documents still reach this state because
	// filename-derived metadata is always obtainable.
	StatusCompleted AnalysisStatus = "completed"

	// StatusFailed means analysis could not be completed.
	StatusFailed AnalysisStatus = "failed"
)

// IsValid reports whether the status is one of the known lifecycle states.
func (s AnalysisStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusCompleted, StatusFailed:
		return true
	}
	return false
}

// Document is an ingested catalog document with derived search metadata.
// Filename is the natural key: re-ingesting the same filename replaces the
// prior record. Only the ingestion pipeline mutates documents; the search
// path reads them.
type Document struct {
	// ID is the unique identifier for the document.
	ID string

	// Filename is the source file name, unique within the corpus.
	Filename string

	// Path is the storage location of the original file.
	Path string

	// Title is the derived human-readable title, if any.
	Title string

	// Text is the full normalized extracted text.
	Text string

	// Keywords is the comma-joined derived keyword-tag string.
	Keywords string

	// Summary is the derived short summary.
	Summary string

	// Size is the original file size in bytes.
	Size int64

	// UploadedAt is when the document was first ingested.
	UploadedAt time.Time

	// AnalyzedAt is when analysis last ran.
	AnalyzedAt time.Time

	// Status is the analysis lifecycle flag.
	Status AnalysisStatus
}

// DisplayTitle returns the title, falling back to the filename when no
// title was derived.
func (d Document) DisplayTitle() string {
	if d.Title != "" {
		return d.Title
	}
	return d.Filename
}

// KeywordList splits the comma-joined keyword tags into individual terms.
func (d Document) KeywordList() []string {
	return SplitKeywords(d.Keywords)
}

// DocumentCourseLink records a derived relation between a document and a
// course. The link table is schema-only for now: no read path consumes it.
type DocumentCourseLink struct {
	DocumentID string
	CourseID   int64
	Relevance  float64
}
