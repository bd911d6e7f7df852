package registry

import "errors"

var ErrNotFound = errors.New("composition template not found")

type Category string

const (
	CategoryIntro  Category = "intro"
	CategoryOutro  Category = "outro"
	CategoryBRoll  Category = "broll"
	CategoryMotion Category = "motion"
	CategorySocial Category = "social"
)

type CategoryInfo struct {
	Value Category `json:"value"`
	Label string   `json:"label"`
}

// Categories returns the closed category set with display labels, in a
// stable order.
func Categories() []CategoryInfo {
	return []CategoryInfo{
		{Value: CategoryIntro, Label: "Intros"},
		{Value: CategoryOutro, Label: "Outros"},
		{Value: CategoryBRoll, Label: "B-Rolls"},
		{Value: CategoryMotion, Label: "Motion Graphics"},
		{Value: CategorySocial, Label: "Social Media"},
	}
}

// CompositionTemplate is one video-template kind: its parameter schema,
// human-facing metadata and default values. Templates are defined once at
// build time and never mutated.
type CompositionTemplate struct {
	ID          string       `json:"id"`
	DisplayName string       `json:"display_name"`
	Description string       `json:"description"`
	Category    Category     `json:"category"`
	Schema      []Field      `json:"schema"`
	Defaults    ParameterSet `json:"defaults"`
}

// FieldSpec returns the spec for a named field and whether it exists.
func (t *CompositionTemplate) FieldSpec(name string) (FieldSpec, bool) {
	for _, f := range t.Schema {
		if f.Name == name {
			return f.Spec, true
		}
	}
	return FieldSpec{}, false
}

// Lookup resolves a composition id against the fixed template set.
func Lookup(id string) (*CompositionTemplate, error) {
	for _, t := range templates {
		if t.ID == id {
			return t, nil
		}
	}
	return nil, ErrNotFound
}

// All enumerates every template in declaration order. The returned slice is
// shared; callers must not mutate the templates.
func All() []*CompositionTemplate {
	return templates
}
