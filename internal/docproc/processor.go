// Package docproc extracts plain text from resume documents and applies
// best-effort PII redaction before the text reaches any extraction step.
package docproc

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

var supportedExtensions = map[string]bool{
	".pdf":  true,
	".docx": true,
	".txt":  true,
}

// Processor turns a resume file into cleaned, optionally redacted text.
// Capability availability is resolved once at construction: a nil converter
// restricts processing to .txt files, a nil redactor disables redaction.
type Processor struct {
	converter Converter
	redactor  Redactor
	log       *zap.Logger
}

// NewProcessor builds a Processor. converter and redactor may be nil.
func NewProcessor(converter Converter, redactor Redactor, log *zap.Logger) *Processor {
	if log == nil {
		log = zap.NewNop()
	}
	return &Processor{converter: converter, redactor: redactor, log: log}
}

// RedactionAvailable reports whether a redaction capability was injected.
func (p *Processor) RedactionAvailable() bool {
	return p.redactor != nil
}

// Process extracts and redacts a resume file, returning the source-file
// identifier (base filename) and the text.
func (p *Processor) Process(path string) (string, string, error) {
	text, err := p.ExtractText(path)
	if err != nil {
		return "", "", err
	}
	return filepath.Base(path), p.RedactPII(text), nil
}

// ExtractText extracts cleaned plain text from a supported resume file.
// Returns *UnsupportedFormatError or *ExtractionError on failure.
func (p *Processor) ExtractText(path string) (string, error) {
	ext := normalizedExt(path)
	if !supportedExtensions[ext] {
		return "", &UnsupportedFormatError{Path: path, Extension: ext}
	}

	var text string
	switch {
	case ext == ".txt":
		data, err := os.ReadFile(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "read file", Cause: err}
		}
		text = string(data)
	case p.converter == nil:
		return "", &ExtractionError{Path: path, Message: "document conversion capability unavailable"}
	default:
		converted, err := p.converter.Convert(path)
		if err != nil {
			return "", &ExtractionError{Path: path, Message: "convert document", Cause: err}
		}
		text = converted
	}

	text = CleanText(text)
	if strings.TrimSpace(text) == "" {
		return "", &ExtractionError{Path: path, Message: "document yielded no text"}
	}
	return text, nil
}

// RedactPII applies the redaction capability. Extraction must never fail
// because redaction failed, so any error degrades to the original text with
// a warning.
func (p *Processor) RedactPII(text string) string {
	if p.redactor == nil {
		return text
	}
	redacted, err := p.redactor.Redact(text)
	if err != nil {
		p.log.Warn("PII redaction failed, continuing with unredacted text", zap.Error(err))
		return text
	}
	return redacted
}

func normalizedExt(path string) string {
	return strings.ToLower(filepath.Ext(path))
}

var multiSpace = regexp.MustCompile(`[ \t]+`)

// CleanText normalizes extracted text: unified line endings, collapsed
// runs of spaces, at most one blank line between paragraphs.
func CleanText(content string) string {
	if content == "" {
		return ""
	}

	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.ReplaceAll(content, "\r", "\n")

	lines := strings.Split(content, "\n")
	cleaned := make([]string, 0, len(lines))
	blanks := 0
	for _, line := range lines {
		line = strings.TrimSpace(multiSpace.ReplaceAllString(line, " "))
		if line == "" {
			blanks++
			if blanks > 1 {
				continue
			}
		} else {
			blanks = 0
		}
		cleaned = append(cleaned, line)
	}

	return strings.TrimSpace(strings.Join(cleaned, "\n"))
}
