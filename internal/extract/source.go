// Package extract provides the content source: best-effort text
// extraction from local files. Extraction failure is never fatal; the
// classifier falls back to filename-only analysis.
package extract

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ledongthuc/pdf"
)

// DefaultMaxBytes caps how much text one file may contribute.
const DefaultMaxBytes = 256 * 1024

// Extraction is the outcome of one extraction attempt. Err is diagnostic
// only; callers treat Success=false as "analyze the filename instead".
type Extraction struct {
	Err     error
	Text    string
	Success bool
}

// Source extracts text from a file.
type Source interface {
	Extract(ctx context.Context, path string) Extraction
}

// LocalSource reads plain-text and PDF files from disk.
type LocalSource struct {
	maxBytes int64
}

// NewLocalSource creates a content source with the given byte cap,
// or DefaultMaxBytes when maxBytes <= 0.
func NewLocalSource(maxBytes int64) *LocalSource {
	if maxBytes <= 0 {
		maxBytes = DefaultMaxBytes
	}
	return &LocalSource{maxBytes: maxBytes}
}

var textExtensions = map[string]bool{
	".txt":  true,
	".md":   true,
	".csv":  true,
	".json": true,
	".yaml": true,
	".yml":  true,
	".log":  true,
	".fdx":  true,
	".html": true,
	".xml":  true,
}

// Extract returns the file's text content when the format is supported.
func (s *LocalSource) Extract(ctx context.Context, path string) Extraction {
	if err := ctx.Err(); err != nil {
		return Extraction{Err: err}
	}

	ext := strings.ToLower(filepath.Ext(path))
	switch {
	case ext == ".pdf":
		return s.extractPDF(path)
	case textExtensions[ext]:
		return s.extractText(path)
	default:
		return Extraction{Err: fmt.Errorf("no extractor for %s files", ext)}
	}
}

func (s *LocalSource) extractText(path string) Extraction {
	f, err := os.Open(path) // #nosec G304 -- operator-supplied file path
	if err != nil {
		return Extraction{Err: fmt.Errorf("failed to open file: %w", err)}
	}
	defer func() { _ = f.Close() }()

	buf := make([]byte, s.maxBytes)
	n, err := f.Read(buf)
	if n == 0 && err != nil {
		return Extraction{Err: fmt.Errorf("failed to read file: %w", err)}
	}

	text := string(buf[:n])
	if !utf8.ValidString(text) {
		return Extraction{Err: fmt.Errorf("file is not valid text")}
	}

	return Extraction{Success: true, Text: text}
}

func (s *LocalSource) extractPDF(path string) (ex Extraction) {
	// The pdf package panics on some malformed documents.
	defer func() {
		if r := recover(); r != nil {
			ex = Extraction{Err: fmt.Errorf("pdf extraction panicked: %v", r)}
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return Extraction{Err: fmt.Errorf("failed to open pdf: %w", err)}
	}
	defer func() { _ = f.Close() }()

	plain, err := reader.GetPlainText()
	if err != nil {
		return Extraction{Err: fmt.Errorf("failed to extract pdf text: %w", err)}
	}

	var buf bytes.Buffer
	if _, err := buf.ReadFrom(plain); err != nil {
		return Extraction{Err: fmt.Errorf("failed to read pdf text: %w", err)}
	}

	text := buf.String()
	if int64(len(text)) > s.maxBytes {
		text = text[:s.maxBytes]
	}
	if strings.TrimSpace(text) == "" {
		return Extraction{Err: fmt.Errorf("pdf contains no extractable text")}
	}

	return Extraction{Success: true, Text: text}
}
