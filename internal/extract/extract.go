// Package extract pulls plain text out of PDF files. The core only depends
// on the Extractor interface: bytes in, UTF-8 text out, with empty results
// reported as failures.
package extract

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/ledongthuc/pdf"
)

var (
	// ErrNotPDF indicates the file does not look like a PDF (wrong
	// extension or missing magic header). Nothing was extracted.
	ErrNotPDF = errors.New("not a PDF file")

	// ErrNoText indicates the PDF contained no recoverable text.
	ErrNoText = errors.New("no text content found in PDF")
)

// Extractor converts a document on disk into plain text.
type Extractor interface {
	// Extract returns the document's text, one page per line group,
	// joined with newlines. A whitespace-only result is an error.
	Extract(ctx context.Context, path string) (string, error)
}

// PDFExtractor extracts text with a pure-Go PDF parser.
type PDFExtractor struct{}

var _ Extractor = PDFExtractor{}

// Extract validates the file is a PDF, then concatenates per-page text in
// page order with newline separators. Pages that fail to decode are
// skipped; the whole extraction fails only when no text survives.
func (PDFExtractor) Extract(ctx context.Context, path string) (string, error) {
	if err := ValidatePDF(path); err != nil {
		return "", err
	}

	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	var pages []string
	for i := 1; i <= reader.NumPage(); i++ {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		page := reader.Page(i)
		if page.V.IsNull() {
			continue
		}
		text, err := page.GetPlainText(nil)
		if err != nil {
			continue
		}
		pages = append(pages, text)
	}

	full := strings.Join(pages, "\n")
	if strings.TrimSpace(full) == "" {
		return "", ErrNoText
	}
	return full, nil
}

// ValidatePDF rejects files that don't carry the .pdf extension and the
// %PDF- magic header. Rejection happens before any extraction work.
func ValidatePDF(path string) error {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return ErrNotPDF
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	header := make([]byte, 5)
	if _, err := io.ReadFull(f, header); err != nil {
		return ErrNotPDF
	}
	if string(header) != "%PDF-" {
		return ErrNotPDF
	}
	return nil
}
