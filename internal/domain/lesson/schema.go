// internal/domain/lesson/schema.go
package lesson

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// SchemaError reports a document that does not match any known lesson shape.
// Callers decide whether to render an empty state; the error never takes the
// rest of the site down.
type SchemaError struct {
	Reason string
	Cause  error
}

func (e *SchemaError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("lesson schema: %s: %v", e.Reason, e.Cause)
	}
	return "lesson schema: " + e.Reason
}

func (e *SchemaError) Unwrap() error { return e.Cause }

// documentSchema is the structural gate shared by every historical document
// shape: a sections array whose entries carry string id and type. Everything
// shape-specific beyond that (renamed fields, card-type synonyms, the
// type/mediaType discriminant split) is handled by the normalizer itself.
const documentSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["sections"],
  "properties": {
    "metadata": { "type": "object" },
    "header":   { "type": "object" },
    "sections": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "type"],
        "properties": {
          "id":   { "type": "string", "minLength": 1 },
          "type": { "type": "string", "minLength": 1 }
        }
      }
    }
  }
}`

var compiledDocumentSchema *gojsonschema.Schema

func init() {
	var err error
	compiledDocumentSchema, err = gojsonschema.NewSchema(gojsonschema.NewStringLoader(documentSchema))
	if err != nil {
		panic(fmt.Sprintf("lesson: compile document schema: %v", err))
	}
}

// validateShape checks raw JSON against the structural gate and converts
// validator output into a single SchemaError.
func validateShape(raw []byte) error {
	result, err := compiledDocumentSchema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return &SchemaError{Reason: "document is not valid JSON", Cause: err}
	}
	if result.Valid() {
		return nil
	}

	first := result.Errors()[0]
	field := first.Field()
	if field == "" {
		field = "(root)"
	}
	return &SchemaError{Reason: fmt.Sprintf("%s: %s", field, first.Description())}
}
