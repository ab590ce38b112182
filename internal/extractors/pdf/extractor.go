// Package pdf provides text extraction strategies for PDF documents.
//
// Two strategies are available: a native Go extractor that parses the PDF
// content streams directly, and a fallback that shells out to the
// pdftotext tool from Poppler. The native extractor is preferred; the
// Poppler extractor catches documents the native parser cannot handle.
package pdf

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/ledongthuc/pdf"

	"github.com/theatilgan/courserec-cli/internal/core/domain"
	"github.com/theatilgan/courserec-cli/internal/core/ports/driven"
)

// Ensure both strategies implement the interface.
var (
	_ driven.TextExtractor = (*Extractor)(nil)
	_ driven.TextExtractor = (*PopplerExtractor)(nil)
)

// Extractor extracts text from PDFs using a native Go parser.
type Extractor struct{}

// New creates the native PDF extractor.
func New() *Extractor {
	return &Extractor{}
}

// Name identifies the strategy in logs.
func (e *Extractor) Name() string {
	return "pdf-native"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *Extractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Priority returns the selection priority.
func (e *Extractor) Priority() int {
	return 90
}

// Extract parses the PDF and returns its plain text content.
// Encrypted or image-only PDFs typically yield nothing; that is reported
// as domain.ErrNoExtractableText so the cascade can fall through.
func (e *Extractor) Extract(_ context.Context, path string) (string, error) {
	file, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer file.Close()

	textReader, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, textReader); err != nil {
		return "", fmt.Errorf("copy pdf text: %w", err)
	}

	text := buf.String()
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoExtractableText
	}

	return text, nil
}

// CommandRunner abstracts external command execution for testing.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) ([]byte, error)
}

// execRunner runs commands via os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// PopplerExtractor extracts text by invoking the pdftotext binary.
// It only works when Poppler is installed on the host.
type PopplerExtractor struct {
	runner CommandRunner
}

// NewPoppler creates the pdftotext-based extractor.
func NewPoppler() *PopplerExtractor {
	return &PopplerExtractor{runner: execRunner{}}
}

// NewPopplerWithRunner creates the extractor with a custom command runner.
func NewPopplerWithRunner(runner CommandRunner) *PopplerExtractor {
	return &PopplerExtractor{runner: runner}
}

// Name identifies the strategy in logs.
func (e *PopplerExtractor) Name() string {
	return "pdf-poppler"
}

// SupportedExtensions returns the extensions this extractor handles.
func (e *PopplerExtractor) SupportedExtensions() []string {
	return []string{".pdf"}
}

// Priority returns the selection priority.
func (e *PopplerExtractor) Priority() int {
	return 60
}

// Extract runs pdftotext and returns its stdout. The file must exist;
// a missing binary surfaces as a command error so the cascade moves on.
func (e *PopplerExtractor) Extract(ctx context.Context, path string) (string, error) {
	if _, err := os.Stat(path); err != nil {
		return "", fmt.Errorf("stat pdf: %w", err)
	}

	// "-" writes extracted text to stdout.
	output, err := e.runner.Run(ctx, "pdftotext", path, "-")
	if err != nil {
		return "", fmt.Errorf("pdftotext: %w", err)
	}

	text := string(output)
	if strings.TrimSpace(text) == "" {
		return "", domain.ErrNoExtractableText
	}

	return text, nil
}

// InstallInstructions returns user guidance for installing pdftotext.
func InstallInstructions() string {
	return `pdftotext is part of Poppler:
  macOS:         brew install poppler
  Debian/Ubuntu: sudo apt install poppler-utils
  Fedora:        sudo dnf install poppler-utils`
}
