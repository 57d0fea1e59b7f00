// Package schemas validates generative responses against the JSON Schemas
// that define each operation's output contract. Validation runs after fence
// stripping and before decoding into typed results, so a structurally wrong
// response never produces a partially-typed object downstream.
package schemas

import (
	"embed"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed *.schema.json
var schemaFiles embed.FS

// FieldError is a single validation error at a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError aggregates schema validation errors with field paths.
type ValidationError struct {
	Schema string
	Errors []FieldError
}

func (ve *ValidationError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("response does not match %s schema:\n", ve.Schema))
	for i, err := range ve.Errors {
		sb.WriteString(fmt.Sprintf("  %d. %s: %s\n", i+1, err.Field, err.Message))
	}
	return sb.String()
}

// ValidateAnalysis validates a full-analysis response body.
func ValidateAnalysis(jsonText string) error {
	return validate("analysis.schema.json", jsonText)
}

// ValidateRewrite validates a rewrite response body.
func ValidateRewrite(jsonText string) error {
	return validate("rewrite.schema.json", jsonText)
}

func validate(schemaName, jsonText string) error {
	schemaBytes, err := schemaFiles.ReadFile(schemaName)
	if err != nil {
		return fmt.Errorf("failed to read schema %s: %w", schemaName, err)
	}

	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)
	documentLoader := gojsonschema.NewStringLoader(jsonText)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return fmt.Errorf("schema validation failed for %s: %w", schemaName, err)
	}
	if result.Valid() {
		return nil
	}

	ve := &ValidationError{Schema: strings.TrimSuffix(schemaName, ".schema.json")}
	for _, desc := range result.Errors() {
		ve.Errors = append(ve.Errors, FieldError{
			Field:   desc.Field(),
			Message: desc.Description(),
		})
	}
	return ve
}
