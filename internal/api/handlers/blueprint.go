package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/PatriceWisniewsky/MotionCut/internal/api/middleware"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/blueprint"
	"github.com/PatriceWisniewsky/MotionCut/internal/core/validation"
)

type BlueprintHandler struct {
	blueprintService *blueprint.Service
}

func NewBlueprintHandler(blueprintService *blueprint.Service) *BlueprintHandler {
	return &BlueprintHandler{blueprintService: blueprintService}
}

func (h *BlueprintHandler) Create(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	var req blueprint.CreateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bp, err := h.blueprintService.Create(c.Request.Context(), userID, &req)
	if err != nil {
		respondBlueprintError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bp)
}

func (h *BlueprintHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}

	resp, err := h.blueprintService.List(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *BlueprintHandler) Get(c *gin.Context) {
	bp, err := h.blueprintService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBlueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, bp)
}

func (h *BlueprintHandler) Update(c *gin.Context) {
	var req blueprint.UpdateBlueprintRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	bp, err := h.blueprintService.Update(c.Request.Context(), c.Param("id"), &req)
	if err != nil {
		respondBlueprintError(c, err)
		return
	}

	c.JSON(http.StatusOK, bp)
}

func (h *BlueprintHandler) Delete(c *gin.Context) {
	if err := h.blueprintService.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondBlueprintError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *BlueprintHandler) Duplicate(c *gin.Context) {
	bp, err := h.blueprintService.Duplicate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondBlueprintError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bp)
}

func respondBlueprintError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, blueprint.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, blueprint.ErrTemplateNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case validation.IsValidationError(err):
		c.JSON(http.StatusUnprocessableEntity, gin.H{
			"error":  "validation failed",
			"fields": validation.GetValidationErrors(err).Errors,
		})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}
