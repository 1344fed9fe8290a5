package filter

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/constraints.json
var embeddedSchema []byte

const schemaURL = "https://feedback-browser.local/schemas/filters.json"

var (
	schemaOnce     sync.Once
	compiledSchema *jsonschema.Schema
	schemaInitErr  error
)

// ValidationError is a single schema violation in a filters payload.
type ValidationError struct {
	Path    string `json:"path"`
	Type    string `json:"type"`
	Message string `json:"message"`
}

func getCompiledSchema() (*jsonschema.Schema, error) {
	schemaOnce.Do(func() {
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(embeddedSchema))
		if err != nil {
			schemaInitErr = fmt.Errorf("failed to parse embedded schema: %w", err)
			return
		}

		compiler := jsonschema.NewCompiler()
		if err := compiler.AddResource(schemaURL, doc); err != nil {
			schemaInitErr = fmt.Errorf("failed to add schema resource: %w", err)
			return
		}

		compiledSchema, err = compiler.Compile(schemaURL)
		if err != nil {
			schemaInitErr = fmt.Errorf("failed to compile schema: %w", err)
		}
	})
	return compiledSchema, schemaInitErr
}

// ValidateJSON checks a raw filters payload against the embedded schema. It
// returns the violations found, or an error when the payload is not JSON at all.
// An empty payload is valid.
func ValidateJSON(raw []byte) ([]ValidationError, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return nil, nil
	}

	schema, err := getCompiledSchema()
	if err != nil {
		return nil, err
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(trimmed))
	if err != nil {
		return nil, &ConstraintError{Err: ErrInvalidShape, Detail: "filters are not valid JSON"}
	}

	if err := schema.Validate(doc); err != nil {
		var detailed *jsonschema.ValidationError
		if errors.As(err, &detailed) {
			return flattenValidationError(detailed), nil
		}
		return []ValidationError{{Path: "/", Type: "validation", Message: err.Error()}}, nil
	}
	return nil, nil
}

// flattenValidationError keeps only the leaves of the cause tree; inner nodes
// just restate their children.
func flattenValidationError(err *jsonschema.ValidationError) []ValidationError {
	if len(err.Causes) > 0 {
		var out []ValidationError
		for _, cause := range err.Causes {
			out = append(out, flattenValidationError(cause)...)
		}
		return out
	}

	return []ValidationError{{
		Path:    formatInstanceLocation(err.InstanceLocation),
		Type:    errorType(err),
		Message: err.Error(),
	}}
}

func formatInstanceLocation(loc []string) string {
	if len(loc) == 0 {
		return "/"
	}
	return "/" + strings.Join(loc, "/")
}

func errorType(err *jsonschema.ValidationError) string {
	if err.ErrorKind == nil {
		return "validation"
	}
	path := err.ErrorKind.KeywordPath()
	if len(path) == 0 {
		return "validation"
	}
	return path[len(path)-1]
}
