package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceWisniewsky/MotionCut/internal/core/validation"
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

func TestLookupKnownTemplates(t *testing.T) {
	for _, id := range []string{"TextReveal", "WordSlam", "IntroSequence", "OutroSequence", "SocialHook"} {
		tpl, err := registry.Lookup(id)
		require.NoError(t, err, id)
		assert.Equal(t, id, tpl.ID)
		assert.NotEmpty(t, tpl.DisplayName)
		assert.NotEmpty(t, tpl.Schema)
	}
}

func TestLookupUnknown(t *testing.T) {
	_, err := registry.Lookup("DoesNotExist")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestAllIsStableAndOrdered(t *testing.T) {
	first := registry.All()
	second := registry.All()
	require.Equal(t, len(first), len(second))
	for i := range first {
		assert.Equal(t, first[i].ID, second[i].ID)
	}
	// Declaration order is part of the contract.
	assert.Equal(t, "TextReveal", first[0].ID)
	assert.Equal(t, "SocialHook", first[len(first)-1].ID)
}

// Every template's defaults must be a total, schema-conforming assignment.
func TestDefaultsSatisfySchema(t *testing.T) {
	v := validation.NewValidator()
	for _, tpl := range registry.All() {
		t.Run(tpl.ID, func(t *testing.T) {
			require.Equal(t, len(tpl.Schema), len(tpl.Defaults),
				"defaults must cover every schema field")
			for _, f := range tpl.Schema {
				_, ok := tpl.Defaults[f.Name]
				assert.True(t, ok, "missing default for %s", f.Name)
			}
			assert.NoError(t, v.ValidateParams(tpl.Defaults, tpl))
		})
	}
}

func TestTextRevealDefaultDuration(t *testing.T) {
	tpl, err := registry.Lookup("TextReveal")
	require.NoError(t, err)
	assert.Equal(t, float64(90), tpl.Defaults["durationInFrames"])
}

func TestCategoriesClosedSet(t *testing.T) {
	cats := registry.Categories()
	require.Len(t, cats, 5)
	assert.Equal(t, registry.CategoryIntro, cats[0].Value)
	assert.Equal(t, "Motion Graphics", cats[3].Label)

	seen := map[registry.Category]bool{}
	for _, c := range cats {
		seen[c.Value] = true
	}
	for _, tpl := range registry.All() {
		assert.True(t, seen[tpl.Category], "template %s has unknown category %s", tpl.ID, tpl.Category)
	}
}

func TestParameterSetClone(t *testing.T) {
	p := registry.ParameterSet{"a": 1.0}
	q := p.Clone()
	q["a"] = 2.0
	assert.Equal(t, 1.0, p["a"])
}
