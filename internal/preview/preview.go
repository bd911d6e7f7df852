// Package preview resolves a composition id to its renderer and to the
// canvas dimensions the current parameters call for.
package preview

import (
	"errors"
	"image"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// ErrRendererNotFound is recoverable: the UI shows a placeholder instead of
// failing the whole view.
var ErrRendererNotFound = errors.New("no renderer registered for composition")

// FPS is fixed across all compositions.
const FPS = 30

type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

var (
	landscape = Dimensions{Width: 1920, Height: 1080}
	portrait  = Dimensions{Width: 1080, Height: 1920}
	square    = Dimensions{Width: 1080, Height: 1080}
)

// Renderer draws one visual frame from a parameter set. The parameter set
// is handed over unmodified; each renderer interprets its own props.
type Renderer interface {
	RenderFrame(params registry.ParameterSet, frame int) (image.Image, error)
}

var renderers = map[string]Renderer{
	"TextReveal":    textRevealRenderer{},
	"WordSlam":      wordSlamRenderer{},
	"IntroSequence": introSequenceRenderer{},
	"OutroSequence": outroSequenceRenderer{},
	"SocialHook":    socialHookRenderer{},
}

// Bind resolves the renderer and canvas dimensions for a composition.
func Bind(id string, params registry.ParameterSet) (Renderer, Dimensions, error) {
	r, ok := renderers[id]
	if !ok {
		return nil, Dimensions{}, ErrRendererNotFound
	}
	return r, Resolve(id, params), nil
}

// Resolve is the dimension decision table. Only SocialHook reacts to its
// aspect-ratio parameter; everything else renders landscape.
func Resolve(id string, params registry.ParameterSet) Dimensions {
	if id == "SocialHook" {
		switch params["aspectRatio"] {
		case "9:16":
			return portrait
		case "1:1":
			return square
		}
	}
	return landscape
}

// DurationInFrames reads the composition length from the parameters,
// falling back to 90 frames.
func DurationInFrames(params registry.ParameterSet) int {
	if v, ok := params["durationInFrames"].(float64); ok && v > 0 {
		return int(v)
	}
	return 90
}
