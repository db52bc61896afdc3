package docproc

import (
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/ledongthuc/pdf"
	"github.com/nguyenthenguyen/docx"
)

// Converter is the document-conversion capability: it turns a non-plain-text
// file into plain text. Implementations are substitutable; a nil Converter
// on the Processor means the capability is unavailable and only .txt files
// can be processed.
type Converter interface {
	Convert(path string) (string, error)
}

// FormatConverter converts PDF and DOCX files using pure-Go readers.
type FormatConverter struct{}

// NewFormatConverter returns the default Converter.
func NewFormatConverter() *FormatConverter {
	return &FormatConverter{}
}

// Convert extracts plain text from a .pdf or .docx file.
func (c *FormatConverter) Convert(path string) (string, error) {
	switch normalizedExt(path) {
	case ".pdf":
		return convertPDF(path)
	case ".docx":
		return convertDOCX(path)
	default:
		return "", fmt.Errorf("no converter for %s", path)
	}
}

func convertPDF(path string) (string, error) {
	f, reader, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer func() { _ = f.Close() }()

	r, err := reader.GetPlainText()
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	text, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("read pdf text: %w", err)
	}
	return string(text), nil
}

var (
	docxParagraphEnd = regexp.MustCompile(`</w:p>`)
	docxTag          = regexp.MustCompile(`<[^>]+>`)
	docxEntities     = strings.NewReplacer(
		"&amp;", "&",
		"&lt;", "<",
		"&gt;", ">",
		"&quot;", `"`,
		"&apos;", "'",
	)
)

func convertDOCX(path string) (string, error) {
	r, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("open docx: %w", err)
	}
	defer func() { _ = r.Close() }()

	// The reader exposes the raw document XML; paragraphs become lines and
	// the remaining markup is stripped.
	content := r.Editable().GetContent()
	content = docxParagraphEnd.ReplaceAllString(content, "\n")
	content = docxTag.ReplaceAllString(content, "")
	return docxEntities.Replace(content), nil
}
