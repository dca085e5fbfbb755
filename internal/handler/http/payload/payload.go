// Package payload validates request bodies against JSON schemas before they are decoded.
//
// Article writes accept nested region and author descriptors that are either a
// reference ({"id": 3}) or a complete set of fields for a new row. The schema expresses
// this as an anyOf, so handlers only ever see one of the two shapes.
package payload

import (
	"embed"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"articles-api/internal/domain/entity"
)

// Schema names. Each corresponds to schemas/<name>.json.
const (
	Article = "article"
	Region  = "region"
	Author  = "author"
)

const rootContext = "(root)"

//go:embed schemas/*.json
var schemaFS embed.FS

// Validator holds compiled schemas keyed by name.
type Validator struct {
	schemas map[string]*gojsonschema.Schema
}

// NewValidator compiles every schema under schemas/.
func NewValidator() (*Validator, error) {
	files, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return nil, fmt.Errorf("read schemas: %w", err)
	}

	v := &Validator{schemas: make(map[string]*gojsonschema.Schema, len(files))}
	for _, f := range files {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		raw, err := schemaFS.ReadFile("schemas/" + f.Name())
		if err != nil {
			return nil, fmt.Errorf("read schema %s: %w", f.Name(), err)
		}
		s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
		if err != nil {
			return nil, fmt.Errorf("compile schema %s: %w", f.Name(), err)
		}
		v.schemas[strings.TrimSuffix(f.Name(), ".json")] = s
	}
	return v, nil
}

// MustValidator is NewValidator for package-level initialisation.
func MustValidator() *Validator {
	v, err := NewValidator()
	if err != nil {
		panic(err)
	}
	return v
}

var defaultValidator = sync.OnceValue(MustValidator)

// Decode validates the request body with the embedded schemas and unmarshals it into dst.
//
//	var req regionRequest
//	if err := payload.Decode(r, payload.Region, &req); err != nil { ... }
func Decode(r *http.Request, name string, dst any) error {
	return defaultValidator().Decode(r, name, dst)
}

// Validate checks raw JSON against the named schema.
// Violations are reported as *entity.ValidationError for the first failing field.
func (v *Validator) Validate(name string, raw []byte) error {
	s, ok := v.schemas[name]
	if !ok {
		return fmt.Errorf("unknown schema %q", name)
	}

	result, err := s.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		// 不正なJSONはスキーマ検証前に失敗する
		return &entity.ValidationError{Field: "body", Message: "malformed JSON"}
	}
	if result.Valid() {
		return nil
	}

	errs := result.Errors()
	first := pick(errs)
	return &entity.ValidationError{Field: fieldName(first), Message: first.Description()}
}

// Decode reads the request body, validates it against the named schema and unmarshals it into dst.
func (v *Validator) Decode(r *http.Request, name string, dst any) error {
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		var mbe *http.MaxBytesError
		if errors.As(err, &mbe) {
			return &entity.ValidationError{Field: "body", Message: fmt.Sprintf("must not exceed %d bytes", mbe.Limit)}
		}
		return fmt.Errorf("read body: %w", err)
	}
	if len(raw) == 0 {
		return &entity.ValidationError{Field: "body", Message: "is required"}
	}

	if err := v.Validate(name, raw); err != nil {
		return err
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return &entity.ValidationError{Field: "body", Message: "malformed JSON"}
	}
	return nil
}

// pick prefers a concrete property error over the summary errors anyOf produces,
// so "title is required" wins over "must validate at least one schema".
func pick(errs []gojsonschema.ResultError) gojsonschema.ResultError {
	for _, e := range errs {
		switch e.Type() {
		case "number_any_of", "number_not":
			continue
		}
		return e
	}
	return errs[0]
}

// fieldName renders gojsonschema's "(root).regions.0" as "regions[0]" and names missing
// properties after the property itself.
func fieldName(e gojsonschema.ResultError) string {
	field := strings.TrimPrefix(strings.TrimPrefix(e.Context().String(), rootContext), ".")
	if e.Type() == "required" {
		if prop, ok := e.Details()["property"].(string); ok {
			if field == "" {
				field = prop
			} else {
				field = field + "." + prop
			}
		}
	}
	if field == "" {
		return "body"
	}

	parts := strings.Split(field, ".")
	var b strings.Builder
	for i, p := range parts {
		if isIndex(p) {
			b.WriteString("[" + p + "]")
			continue
		}
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(p)
	}
	return b.String()
}

func isIndex(s string) bool {
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}
