package preview

import (
	"image"

	"github.com/fogleman/gg"
	"golang.org/x/image/font/basicfont"

	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// The built-in renderers draw static styled frames: background, brand
// colors and the text parameters. Per-frame animation (springs, easing) is
// template art direction and intentionally absent here.

func newCanvas(id string, params registry.ParameterSet, bgKey string) *gg.Context {
	d := Resolve(id, params)
	dc := gg.NewContext(d.Width, d.Height)
	dc.SetHexColor(stringParam(params, bgKey, "#0a0a0f"))
	dc.Clear()
	dc.SetFontFace(basicfont.Face7x13)
	return dc
}

func stringParam(params registry.ParameterSet, key, fallback string) string {
	if s, ok := params[key].(string); ok && s != "" {
		return s
	}
	return fallback
}

type textRevealRenderer struct{}

func (textRevealRenderer) RenderFrame(params registry.ParameterSet, frame int) (image.Image, error) {
	dc := newCanvas("TextReveal", params, "backgroundColor")
	dc.SetHexColor(stringParam(params, "textColor", "#e4e4e7"))
	dc.DrawStringAnchored(stringParam(params, "text", ""), float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
	return dc.Image(), nil
}

type wordSlamRenderer struct{}

func (wordSlamRenderer) RenderFrame(params registry.ParameterSet, frame int) (image.Image, error) {
	dc := newCanvas("WordSlam", params, "backgroundColor")
	dc.SetHexColor(stringParam(params, "textColor", "#f59e0b"))
	dc.DrawStringAnchored(stringParam(params, "word", ""), float64(dc.Width())/2, float64(dc.Height())/2, 0.5, 0.5)
	return dc.Image(), nil
}

type introSequenceRenderer struct{}

func (introSequenceRenderer) RenderFrame(params registry.ParameterSet, frame int) (image.Image, error) {
	dc := newCanvas("IntroSequence", params, "backgroundColor")
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetHexColor(stringParam(params, "primaryColor", "#00b4d8"))
	dc.DrawStringAnchored(stringParam(params, "title", ""), w/2, h/2-20, 0.5, 0.5)

	dc.SetHexColor(stringParam(params, "secondaryColor", "#f59e0b"))
	dc.DrawStringAnchored(stringParam(params, "subtitle", ""), w/2, h/2+20, 0.5, 0.5)
	return dc.Image(), nil
}

type outroSequenceRenderer struct{}

func (outroSequenceRenderer) RenderFrame(params registry.ParameterSet, frame int) (image.Image, error) {
	dc := newCanvas("OutroSequence", params, "backgroundColor")
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetHexColor(stringParam(params, "primaryColor", "#00b4d8"))
	dc.DrawStringAnchored(stringParam(params, "ctaText", ""), w/2, h/2-20, 0.5, 0.5)
	dc.DrawStringAnchored(stringParam(params, "channelName", ""), w/2, h/2+20, 0.5, 0.5)

	if show, ok := params["showSubscribe"].(bool); ok && show {
		dc.SetHexColor("#ef4444")
		dc.DrawRoundedRectangle(w/2-80, h/2+60, 160, 40, 8)
		dc.Fill()
	}
	return dc.Image(), nil
}

type socialHookRenderer struct{}

func (socialHookRenderer) RenderFrame(params registry.ParameterSet, frame int) (image.Image, error) {
	dc := newCanvas("SocialHook", params, "backgroundColor")
	w, h := float64(dc.Width()), float64(dc.Height())

	dc.SetHexColor(stringParam(params, "textColor", "#e4e4e7"))
	dc.DrawStringAnchored(stringParam(params, "mainText", ""), w/2, h/2-20, 0.5, 0.5)

	dc.SetHexColor(stringParam(params, "accentColor", "#f59e0b"))
	dc.DrawStringAnchored(stringParam(params, "accentText", ""), w/2, h/2+20, 0.5, 0.5)
	return dc.Image(), nil
}
