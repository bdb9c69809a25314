// Package validation checks JSON request bodies against JSON schemas before
// they are decoded into request structs.
package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// MaxBodyBytes caps the size of a request body read by DecodeJSON.
const MaxBodyBytes = 1 << 16

// Error lists every schema violation of a document.
type Error struct {
	Schema string
	Issues []string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s: %s", e.Schema, strings.Join(e.Issues, "; "))
}

// Schema is a compiled JSON schema.
type Schema struct {
	name   string
	schema *gojsonschema.Schema
}

// Compile parses a JSON schema document.
func Compile(name, src string) (*Schema, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(src))
	if err != nil {
		return nil, fmt.Errorf("compile schema %s: %w", name, err)
	}
	return &Schema{name: name, schema: s}, nil
}

// MustCompile is Compile for package-level schemas.
func MustCompile(name, src string) *Schema {
	s, err := Compile(name, src)
	if err != nil {
		panic(err)
	}
	return s
}

// Validate checks doc against the schema. Malformed JSON is reported as an
// error as well.
func (s *Schema) Validate(doc []byte) error {
	result, err := s.schema.Validate(gojsonschema.NewBytesLoader(doc))
	if err != nil {
		return fmt.Errorf("validate %s: %w", s.name, err)
	}

	if !result.Valid() {
		issues := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			issues[i] = desc.String()
		}
		return &Error{Schema: s.name, Issues: issues}
	}

	return nil
}

// DecodeJSON reads the request body, validates it against s and decodes it
// into dst.
func DecodeJSON(w http.ResponseWriter, r *http.Request, s *Schema, dst any) error {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	if err := s.Validate(body); err != nil {
		return err
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("decode %s: %w", s.name, err)
	}
	return nil
}

// IsSchemaError reports whether err carries schema violations.
func IsSchemaError(err error) bool {
	var verr *Error
	return errors.As(err, &verr)
}
