package form

import (
	"strings"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// ControlKind is the widget class a field materializes as.
type ControlKind string

const (
	ControlChoice  ControlKind = "choice"
	ControlToggle  ControlKind = "toggle"
	ControlRange   ControlKind = "range"
	ControlColor   ControlKind = "color"
	ControlText    ControlKind = "text"
	ControlRawJSON ControlKind = "raw-json"
)

// Fallback bounds for numeric fields without explicit constraints.
const (
	defaultRangeMin = 0
	defaultRangeMax = 300
)

// Control is the normalized constraint bundle for one widget. Min/Max/Step
// are populated for range controls, Options for choice controls.
type Control struct {
	Kind    ControlKind `json:"kind"`
	Min     float64     `json:"min,omitempty"`
	Max     float64     `json:"max,omitempty"`
	Step    float64     `json:"step,omitempty"`
	Options []string    `json:"options,omitempty"`
}

// Classify maps a field spec to its widget. First match wins: enums become
// choices even when their values look like colors, booleans become toggles,
// numbers become ranges. Strings split into color and text by name and
// pattern. Anything unrecognized falls through to the raw JSON editor, so
// classification is total.
func Classify(name string, spec registry.FieldSpec) Control {
	switch spec.Kind {
	case registry.KindEnum:
		return Control{Kind: ControlChoice, Options: spec.Options}

	case registry.KindBool:
		return Control{Kind: ControlToggle}

	case registry.KindNumber:
		min := float64(defaultRangeMin)
		max := float64(defaultRangeMax)
		if spec.Min != nil {
			min = *spec.Min
		}
		if spec.Max != nil {
			max = *spec.Max
		}
		// Small ranges (e.g. a 0.5–3.0 speed multiplier) need sub-integer
		// precision; pixel and frame counts do not.
		step := float64(1)
		if max-min <= 5 {
			step = 0.1
		}
		return Control{Kind: ControlRange, Min: min, Max: max, Step: step}

	case registry.KindString:
		if isColorField(name, spec.Pattern) {
			return Control{Kind: ControlColor}
		}
		return Control{Kind: ControlText}
	}

	return Control{Kind: ControlRawJSON}
}

func isColorField(name, pattern string) bool {
	if strings.Contains(strings.ToLower(name), "color") {
		return true
	}
	return strings.Contains(pattern, "[0-9A-Fa-f]")
}
