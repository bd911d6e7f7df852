package preview

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

func TestResolveDimensions(t *testing.T) {
	cases := []struct {
		name   string
		id     string
		params registry.ParameterSet
		want   Dimensions
	}{
		{"social hook portrait", "SocialHook", registry.ParameterSet{"aspectRatio": "9:16"}, Dimensions{1080, 1920}},
		{"social hook square", "SocialHook", registry.ParameterSet{"aspectRatio": "1:1"}, Dimensions{1080, 1080}},
		{"social hook landscape", "SocialHook", registry.ParameterSet{"aspectRatio": "16:9"}, Dimensions{1920, 1080}},
		{"social hook missing ratio", "SocialHook", registry.ParameterSet{}, Dimensions{1920, 1080}},
		{"text reveal ignores ratio", "TextReveal", registry.ParameterSet{"aspectRatio": "9:16"}, Dimensions{1920, 1080}},
		{"intro sequence", "IntroSequence", registry.ParameterSet{}, Dimensions{1920, 1080}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Resolve(tc.id, tc.params))
		})
	}
}

func TestBindKnownCompositions(t *testing.T) {
	for _, tpl := range registry.All() {
		r, dims, err := Bind(tpl.ID, tpl.Defaults)
		require.NoError(t, err, tpl.ID)
		assert.NotNil(t, r, tpl.ID)
		assert.NotZero(t, dims.Width, tpl.ID)
		assert.NotZero(t, dims.Height, tpl.ID)
	}
}

func TestBindUnknownComposition(t *testing.T) {
	_, _, err := Bind("NoSuchComposition", registry.ParameterSet{})
	assert.ErrorIs(t, err, ErrRendererNotFound)
}

func TestRenderFrameProducesCanvasSizedImage(t *testing.T) {
	tpl, err := registry.Lookup("SocialHook")
	require.NoError(t, err)

	params := tpl.Defaults.Clone()
	params["aspectRatio"] = "9:16"

	r, dims, err := Bind("SocialHook", params)
	require.NoError(t, err)

	img, err := r.RenderFrame(params, 0)
	require.NoError(t, err)
	bounds := img.Bounds()
	assert.Equal(t, dims.Width, bounds.Dx())
	assert.Equal(t, dims.Height, bounds.Dy())
}

func TestRenderFrameAllTemplatesWithDefaults(t *testing.T) {
	for _, tpl := range registry.All() {
		r, _, err := Bind(tpl.ID, tpl.Defaults)
		require.NoError(t, err, tpl.ID)
		img, err := r.RenderFrame(tpl.Defaults, 10)
		require.NoError(t, err, tpl.ID)
		assert.NotNil(t, img, tpl.ID)
	}
}

func TestDurationInFrames(t *testing.T) {
	assert.Equal(t, 150, DurationInFrames(registry.ParameterSet{"durationInFrames": float64(150)}))
	assert.Equal(t, 90, DurationInFrames(registry.ParameterSet{}))
	assert.Equal(t, 90, DurationInFrames(registry.ParameterSet{"durationInFrames": "150"}))
	assert.Equal(t, 90, DurationInFrames(registry.ParameterSet{"durationInFrames": float64(0)}))
}
