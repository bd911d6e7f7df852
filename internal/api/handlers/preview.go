package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"image/png"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/PatriceWisniewsky/MotionCut/internal/preview"
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

type PreviewHandler struct{}

func NewPreviewHandler() *PreviewHandler {
	return &PreviewHandler{}
}

// Frame renders one preview frame as PNG. Parameters default to the
// template's defaults; a params query argument overrides them. The frame
// index is clamped to the composition's duration.
func (h *PreviewHandler) Frame(c *gin.Context) {
	id := c.Param("id")

	tpl, err := registry.Lookup(id)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}

	params := tpl.Defaults.Clone()
	if raw := c.Query("params"); raw != "" {
		var given registry.ParameterSet
		if jsonErr := json.Unmarshal([]byte(raw), &given); jsonErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "params must be a JSON object"})
			return
		}
		params = given
	}

	renderer, dims, err := preview.Bind(id, params)
	if err != nil {
		if errors.Is(err, preview.ErrRendererNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	frame := 0
	if raw := c.Query("frame"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "frame must be a non-negative integer"})
			return
		}
		frame = n
	}
	if max := preview.DurationInFrames(params) - 1; frame > max {
		frame = max
	}

	img, err := renderer.RenderFrame(params, frame)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Header("X-Preview-Width", strconv.Itoa(dims.Width))
	c.Header("X-Preview-Height", strconv.Itoa(dims.Height))
	c.Data(http.StatusOK, "image/png", buf.Bytes())
}
