package form

import (
	"encoding/json"
	"math"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// FormField is one materialized control: label, widget classification and
// the current value. Fields come out in schema declaration order.
type FormField struct {
	Name    string      `json:"name"`
	Label   string      `json:"label"`
	Control Control     `json:"control"`
	Value   interface{} `json:"value"`
}

// Materialize builds the form for a template against the current parameter
// set. Missing values fall back to the template default. The component is
// fully controlled: it holds no state beyond what is passed in.
func Materialize(tpl *registry.CompositionTemplate, params registry.ParameterSet) []FormField {
	fields := make([]FormField, 0, len(tpl.Schema))
	for _, f := range tpl.Schema {
		value, ok := params[f.Name]
		if !ok {
			value = tpl.Defaults[f.Name]
		}
		fields = append(fields, FormField{
			Name:    f.Name,
			Label:   f.Spec.Label,
			Control: Classify(f.Name, f.Spec),
			Value:   value,
		})
	}
	return fields
}

// Apply processes one (field, value) change event and returns a fresh
// parameter set; the input set is never mutated. The second return reports
// whether the change took effect. Rejected edits (unknown field, value not
// in the enum, malformed raw JSON) keep the last good value without
// surfacing an error, matching the live-editing leniency of the form.
func Apply(tpl *registry.CompositionTemplate, params registry.ParameterSet, name string, value interface{}) (registry.ParameterSet, bool) {
	spec, ok := tpl.FieldSpec(name)
	if !ok {
		return params, false
	}

	ctrl := Classify(name, spec)
	coerced, ok := coerce(ctrl, value)
	if !ok {
		return params, false
	}

	next := params.Clone()
	next[name] = coerced
	return next, true
}

func coerce(ctrl Control, value interface{}) (interface{}, bool) {
	switch ctrl.Kind {
	case ControlRange:
		n, ok := toFloat(value)
		if !ok {
			return nil, false
		}
		return clampAndSnap(n, ctrl.Min, ctrl.Max, ctrl.Step), true

	case ControlToggle:
		b, ok := value.(bool)
		if !ok {
			return nil, false
		}
		return b, true

	case ControlChoice:
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		for _, opt := range ctrl.Options {
			if opt == s {
				return s, true
			}
		}
		return nil, false

	case ControlColor, ControlText:
		// No format validation here: invalid hex and transient empty strings
		// pass through, persistence-time validation catches them later.
		s, ok := value.(string)
		if !ok {
			return nil, false
		}
		return s, true

	case ControlRawJSON:
		raw, ok := value.(string)
		if !ok {
			return nil, false
		}
		var parsed interface{}
		if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
			return nil, false
		}
		return parsed, true
	}

	return nil, false
}

func clampAndSnap(v, min, max, step float64) float64 {
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	snapped := min + math.Round((v-min)/step)*step
	// Re-clamp: snapping at the upper edge can overshoot max by one step.
	if snapped > max {
		snapped = max
	}
	if snapped < min {
		snapped = min
	}
	// Avoid 0.30000000000000004-style artifacts from the 0.1 step.
	return math.Round(snapped*1e9) / 1e9
}

func toFloat(value interface{}) (float64, bool) {
	switch n := value.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
