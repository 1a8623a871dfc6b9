// Package extract converts uploaded documents into plain text plus
// whatever metadata the format exposes. The section heuristics
// downstream only ever see the text.
package extract

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Metadata describes the source document, as far as the format
// exposes it. Fields stay zero when unknown.
type Metadata struct {
	Pages   int    `json:"pages"`
	Author  string `json:"author,omitempty"`
	Title   string `json:"title,omitempty"`
	Subject string `json:"subject,omitempty"`
}

// Result is the outcome of text extraction.
type Result struct {
	Text string
	Meta Metadata
}

// Extractor converts raw document bytes into a Result.
type Extractor interface {
	Extract(r io.Reader, filename string) (Result, error)
}

// SupportedExtensions lists file extensions this service can handle.
var SupportedExtensions = map[string]bool{
	".pdf":      true,
	".txt":      true,
	".md":       true,
	".markdown": true,
	".html":     true,
	".htm":      true,
	".docx":     true,
}

// ForFile returns the extractor for a filename. pdfFallback enables
// the pdftotext fallback for PDFs the Go library cannot read.
func ForFile(filename string, pdfFallback bool) (Extractor, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".pdf":
		return &PDFExtractor{FallbackPdftotext: pdfFallback}, nil
	case ".txt":
		return &TextExtractor{}, nil
	case ".md", ".markdown":
		return &MarkdownExtractor{}, nil
	case ".html", ".htm":
		return &HTMLExtractor{}, nil
	case ".docx":
		return &DOCXExtractor{}, nil
	default:
		return nil, fmt.Errorf("unsupported file extension: %s", ext)
	}
}

// IsSupportedExtension checks if a file extension is supported.
func IsSupportedExtension(filename string) bool {
	return SupportedExtensions[strings.ToLower(filepath.Ext(filename))]
}

// baseTitle derives a display title from a filename.
func baseTitle(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// writePara appends a paragraph to the buffer, separating it from the
// previous one with a blank line.
func writePara(buf *strings.Builder, text string) {
	text = strings.TrimSpace(text)
	if text == "" {
		return
	}
	if buf.Len() > 0 {
		buf.WriteString("\n\n")
	}
	buf.WriteString(text)
}
