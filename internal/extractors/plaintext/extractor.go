// Package plaintext provides a text extraction strategy for files that
// already contain readable text.
package plaintext

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

// Ensure Extractor implements the interface.
var _ driven.TextExtractor = (*Extractor)(nil)

// Extractor reads plain-text files as-is.
type Extractor struct{}

// New creates a new plain text extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the strategy in logs.
func (e *Extractor) Name() string {
	return "plaintext"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".txt", ".md", ".text", ".log", ".csv"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 90
}

// Extract reads the file content directly.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read file: %w", err)
	}

	text := string(data)
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoExtractableText
	}

	return text, nil
}
