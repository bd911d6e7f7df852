package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatriceWisniewsky/MotionCut/internal/form"
	"github.com/PatriceWisniewsky/MotionCut/internal/registry"
)

// TemplateHandler serves the composition catalog and the materialized forms
// the dashboard renders its parameter editors from.
type TemplateHandler struct{}

func NewTemplateHandler() *TemplateHandler {
	return &TemplateHandler{}
}

type templateSummary struct {
	ID          string            `json:"id"`
	DisplayName string            `json:"display_name"`
	Description string            `json:"description"`
	Category    registry.Category `json:"category"`
}

func (h *TemplateHandler) List(c *gin.Context) {
	templates := registry.All()
	summaries := make([]templateSummary, 0, len(templates))
	for _, t := range templates {
		summaries = append(summaries, templateSummary{
			ID:          t.ID,
			DisplayName: t.DisplayName,
			Description: t.Description,
			Category:    t.Category,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"templates":  summaries,
		"categories": registry.Categories(),
	})
}

func (h *TemplateHandler) Get(c *gin.Context) {
	tpl, err := registry.Lookup(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, tpl)
}

// Form materializes the parameter editor for a template. With no params in
// the query, the defaults seed the form (the new-blueprint flow); a params
// query argument carries the current edit state as JSON.
func (h *TemplateHandler) Form(c *gin.Context) {
	tpl, err := registry.Lookup(c.Param("id"))
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

	c.JSON(http.StatusOK, gin.H{
		"template": tpl.ID,
		"fields":   form.Materialize(tpl, params),
	})
}

type applyChangeRequest struct {
	Params registry.ParameterSet `json:"params" binding:"required"`
	Field  string                `json:"field" binding:"required"`
	Value  interface{}           `json:"value"`
}

// ApplyChange runs one (field, value) change event through the form rules
// and returns the next parameter set. Rejected edits return the set
// unchanged with applied=false; that is form leniency, not an error.
func (h *TemplateHandler) ApplyChange(c *gin.Context) {
	tpl, err := registry.Lookup(c.Param("id"))
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var req applyChangeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	next, applied := form.Apply(tpl, req.Params, req.Field, req.Value)
	c.JSON(http.StatusOK, gin.H{
		"params":  next,
		"applied": applied,
	})
}
