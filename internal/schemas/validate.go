// Package schemas validates LLM extraction output against the JSON Schemas
// embedded in this package. A schema-non-conforming response is rejected
// before any unmarshalling happens, so downstream code only ever sees
// conforming records.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// Schema names accepted by Validate.
const (
	JobRequirements = "job_requirements"
	Resume          = "resume"
	Judgement       = "judgement"
	DegreeCategory  = "degree_category"
)

// FieldError is a single validation failure at a specific field path.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates all field-level failures for one document.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		parts[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return fmt.Sprintf("document does not conform to schema %s: %s", e.Schema, strings.Join(parts, "; "))
}

// Validate checks a JSON document against the named embedded schema.
// Returns *ValidationError when the document is well-formed JSON but does
// not conform.
func Validate(name string, doc []byte) error {
	data, err := schemaFiles.ReadFile(name + ".schema.json")
	if err != nil {
		return fmt.Errorf("unknown schema %q: %w", name, err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(data),
		gojsonschema.NewBytesLoader(doc),
	)
	if err != nil {
		return fmt.Errorf("validate against schema %s: %w", name, err)
	}
	if result.Valid() {
		return nil
	}

	verr := &ValidationError{Schema: name}
	for _, re := range result.Errors() {
		verr.Errors = append(verr.Errors, FieldError{
			Field:   re.Field(),
			Message: re.Description(),
		})
	}
	return verr
}
