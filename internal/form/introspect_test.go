package form

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

func numSpec(min, max float64) registry.FieldSpec {
	return registry.FieldSpec{Kind: registry.KindNumber, Min: &min, Max: &max}
}

func TestClassifyEnumWinsOverColorName(t *testing.T) {
	// Priority order: the enum kind decides even when the name says color.
	ctrl := Classify("themeColor", registry.FieldSpec{
		Kind:    registry.KindEnum,
		Options: []string{"#ffffff", "#000000"},
	})
	assert.Equal(t, ControlChoice, ctrl.Kind)
	assert.Equal(t, []string{"#ffffff", "#000000"}, ctrl.Options)
}

func TestClassifyToggle(t *testing.T) {
	ctrl := Classify("hasFlash", registry.FieldSpec{Kind: registry.KindBool})
	assert.Equal(t, ControlToggle, ctrl.Kind)
}

func TestClassifyRangeStepHeuristic(t *testing.T) {
	tests := []struct {
		name     string
		min, max float64
		step     float64
	}{
		{"wide pixel range", 20, 200, 1},
		{"narrow multiplier", 0.5, 3, 0.1},
		{"exactly five", 10, 15, 0.1},
		{"just over five", 10, 15.5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := Classify("n", numSpec(tt.min, tt.max))
			require.Equal(t, ControlRange, ctrl.Kind)
			assert.Equal(t, tt.min, ctrl.Min)
			assert.Equal(t, tt.max, ctrl.Max)
			assert.Equal(t, tt.step, ctrl.Step)
		})
	}
}

func TestClassifyRangeDefaultBounds(t *testing.T) {
	ctrl := Classify("n", registry.FieldSpec{Kind: registry.KindNumber})
	assert.Equal(t, float64(0), ctrl.Min)
	assert.Equal(t, float64(300), ctrl.Max)
	assert.Equal(t, float64(1), ctrl.Step)
}

func TestClassifyColorByName(t *testing.T) {
	for _, name := range []string{"textColor", "backgroundCOLOR", "colorAccent"} {
		ctrl := Classify(name, registry.FieldSpec{Kind: registry.KindString})
		assert.Equal(t, ControlColor, ctrl.Kind, name)
	}
}

func TestClassifyColorByPattern(t *testing.T) {
	ctrl := Classify("accent", registry.FieldSpec{
		Kind:    registry.KindString,
		Pattern: "^#[0-9A-Fa-f]{6}$",
	})
	assert.Equal(t, ControlColor, ctrl.Kind)
}

func TestClassifyPlainText(t *testing.T) {
	ctrl := Classify("title", registry.FieldSpec{Kind: registry.KindString, MinLen: 1})
	assert.Equal(t, ControlText, ctrl.Kind)
}

func TestClassifyFallbackIsTotal(t *testing.T) {
	ctrl := Classify("mystery", registry.FieldSpec{Kind: "tuple"})
	assert.Equal(t, ControlRawJSON, ctrl.Kind)
}
