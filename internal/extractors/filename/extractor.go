// Package filename provides the terminal text extraction strategy: when
// no other strategy yields content, the filename itself becomes the
// searchable pseudo-text. It never fails for a non-empty filename.
package filename

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor derives pseudo-text from the file's name.
type Extractor struct{}

// New creates a new filename extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the strategy in logs.
func (e *Extractor) Name() string {
	return "filename"
}

// SupportedExtensions returns nil: the fallback handles every file.
func (e *Extractor) SupportedExtensions() []string {
	return nil
}

// Priority returns the selection priority. Lowest so the cascade only
// reaches it after every content-based strategy failed.
func (e *Extractor) Priority() int {
	return 1
}

// Extract turns the base filename into pseudo-text: extension stripped,
// separators replaced with spaces.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, filepath.Ext(name))
	name = strings.ReplaceAll(name, "_", " ")
	name = strings.ReplaceAll(name, "-", " ")
	return name, nil
}
