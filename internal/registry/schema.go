package registry

// FieldKind tags the variant of a FieldSpec. Classification downstream is a
// table lookup on this tag; no runtime type inspection is involved.
type FieldKind string

const (
	KindString FieldKind = "string"
	KindNumber FieldKind = "number"
	KindBool   FieldKind = "bool"
	KindEnum   FieldKind = "enum"
)

// FieldSpec describes one configurable parameter of a composition.
// Constraint fields are meaningful only for the matching kind.
type FieldSpec struct {
	Kind    FieldKind `json:"kind"`
	Label   string    `json:"label"`
	Pattern string    `json:"pattern,omitempty"`
	MinLen  int       `json:"min_len,omitempty"`
	MaxLen  int       `json:"max_len,omitempty"`
	Min     *float64  `json:"min,omitempty"`
	Max     *float64  `json:"max,omitempty"`
	Options []string  `json:"options,omitempty"`
}

// Field pairs a parameter name with its spec. Schemas are slices so that
// declaration order survives into form materialization.
type Field struct {
	Name string    `json:"name"`
	Spec FieldSpec `json:"spec"`
}

func num(v float64) *float64 { return &v }

func stringField(label string, minLen, maxLen int, pattern string) FieldSpec {
	return FieldSpec{Kind: KindString, Label: label, MinLen: minLen, MaxLen: maxLen, Pattern: pattern}
}

func numberField(label string, min, max float64) FieldSpec {
	return FieldSpec{Kind: KindNumber, Label: label, Min: num(min), Max: num(max)}
}

func boolField(label string) FieldSpec {
	return FieldSpec{Kind: KindBool, Label: label}
}

func enumField(label string, options ...string) FieldSpec {
	return FieldSpec{Kind: KindEnum, Label: label, Options: options}
}

// hexColorPattern matches the six-digit hex colors the renderers expect.
const hexColorPattern = "^#[0-9A-Fa-f]{6}$"

func colorField(label string) FieldSpec {
	return stringField(label, 0, 0, hexColorPattern)
}

// JSONSchema exports the template schema as a JSON Schema document so the
// validation layer can run gojsonschema against a ParameterSet. Every field
// is required; defaults are total over the schema.
func (t *CompositionTemplate) JSONSchema() map[string]interface{} {
	props := make(map[string]interface{}, len(t.Schema))
	required := make([]string, 0, len(t.Schema))

	for _, f := range t.Schema {
		props[f.Name] = f.Spec.jsonSchemaProperty()
		required = append(required, f.Name)
	}

	return map[string]interface{}{
		"type":       "object",
		"title":      t.DisplayName,
		"properties": props,
		"required":   required,
	}
}

func (s FieldSpec) jsonSchemaProperty() map[string]interface{} {
	prop := map[string]interface{}{"description": s.Label}

	switch s.Kind {
	case KindString:
		prop["type"] = "string"
		if s.MinLen > 0 {
			prop["minLength"] = s.MinLen
		}
		if s.MaxLen > 0 {
			prop["maxLength"] = s.MaxLen
		}
		if s.Pattern != "" {
			prop["pattern"] = s.Pattern
		}
	case KindNumber:
		prop["type"] = "number"
		if s.Min != nil {
			prop["minimum"] = *s.Min
		}
		if s.Max != nil {
			prop["maximum"] = *s.Max
		}
	case KindBool:
		prop["type"] = "boolean"
	case KindEnum:
		prop["type"] = "string"
		opts := make([]interface{}, len(s.Options))
		for i, o := range s.Options {
			opts[i] = o
		}
		prop["enum"] = opts
	}

	return prop
}
