package extract

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestValidatePDFWrongExtension(t *testing.T) {
	path := writeFile(t, "notes.txt", []byte("%PDF-1.7 content"))

	if err := ValidatePDF(path); !errors.Is(err, ErrNotPDF) {
		t.Errorf("err = %v, want ErrNotPDF", err)
	}
}

func TestValidatePDFWrongMagic(t *testing.T) {
	path := writeFile(t, "fake.pdf", []byte("hello, not a pdf at all"))

	if err := ValidatePDF(path); !errors.Is(err, ErrNotPDF) {
		t.Errorf("err = %v, want ErrNotPDF", err)
	}
}

func TestValidatePDFTooShort(t *testing.T) {
	path := writeFile(t, "tiny.pdf", []byte("%PD"))

	if err := ValidatePDF(path); !errors.Is(err, ErrNotPDF) {
		t.Errorf("err = %v, want ErrNotPDF", err)
	}
}

func TestValidatePDFAcceptsHeader(t *testing.T) {
	path := writeFile(t, "real.pdf", []byte("%PDF-1.4\nrest of file"))

	if err := ValidatePDF(path); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestValidatePDFCaseInsensitiveExtension(t *testing.T) {
	path := writeFile(t, "NOTES.PDF", []byte("%PDF-1.4\n"))

	if err := ValidatePDF(path); err != nil {
		t.Errorf("err = %v, want nil", err)
	}
}

func TestValidatePDFMissingFile(t *testing.T) {
	err := ValidatePDF(filepath.Join(t.TempDir(), "absent.pdf"))
	if err == nil {
		t.Error("validated a missing file")
	}
	if errors.Is(err, ErrNotPDF) {
		t.Error("missing file misreported as ErrNotPDF")
	}
}

func TestExtractRejectsNonPDF(t *testing.T) {
	path := writeFile(t, "fake.pdf", []byte("plain text body"))

	_, err := PDFExtractor{}.Extract(context.Background(), path)
	if !errors.Is(err, ErrNotPDF) {
		t.Errorf("err = %v, want ErrNotPDF", err)
	}
}

func TestExtractMalformedPDF(t *testing.T) {
	// Valid magic but garbage structure.
	path := writeFile(t, "broken.pdf", []byte("%PDF-1.4\ngarbage body with no xref"))

	if _, err := (PDFExtractor{}).Extract(context.Background(), path); err == nil {
		t.Error("extracted text from a malformed PDF")
	}
}
