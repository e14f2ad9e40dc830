package schema

import (
	"encoding/json"
	"fmt"
	"path"
	"reflect"

	"github.com/invopop/jsonschema"
)

// Generate reflects v into a JSON Schema keyed by its yaml field names.
// Unknown properties are rejected and the root struct is inlined.
func Generate(v interface{}, title, description string) ([]byte, error) {
	r := &jsonschema.Reflector{
		AllowAdditionalProperties: false,
		ExpandedStruct:            true,
		FieldNameTag:              "yaml",
		Anonymous:                 true,
		Namer:                     qualifiedName,
	}

	s := r.Reflect(v)
	s.Title = title
	s.Description = description

	return json.MarshalIndent(s, "", "  ")
}

// qualifiedName keys definitions by package and type so two packages may
// both export a Config.
func qualifiedName(t reflect.Type) string {
	if t.Name() == "" || t.PkgPath() == "" {
		return ""
	}
	return path.Base(t.PkgPath()) + "." + t.Name()
}

// WithoutRequired returns a copy of a generated schema whose root no longer
// requires the named properties.
func WithoutRequired(data []byte, properties ...string) ([]byte, error) {
	var doc map[string]interface{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to parse schema: %w", err)
	}

	drop := make(map[string]bool, len(properties))
	for _, p := range properties {
		drop[p] = true
	}

	if required, ok := doc["required"].([]interface{}); ok {
		kept := make([]interface{}, 0, len(required))
		for _, r := range required {
			if name, ok := r.(string); ok && drop[name] {
				continue
			}
			kept = append(kept, r)
		}
		if len(kept) == 0 {
			delete(doc, "required")
		} else {
			doc["required"] = kept
		}
	}

	return json.MarshalIndent(doc, "", "  ")
}
