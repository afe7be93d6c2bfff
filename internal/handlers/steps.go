package handlers

import (
	"io"
	"net/http"

	"freeze_dryer/internal/models"

	"github.com/gin-gonic/gin"
)

const maxStepDocumentBytes = 1 << 16 // 64 KB; a program is at most 8 steps

// @Summary      Import a step list
// @Description  Parses a step-list JSON document. Numeric fields given as strings are coerced; missing or unknown units default to Celsius/mBar; missing ids are assigned.
// @Tags         steps
// @Accept       json
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, steps"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/steps/import [post]
// @Security     BearerAuth
func (h *Handler) importSteps(c *gin.Context) {
	doc, err := io.ReadAll(io.LimitReader(c.Request.Body, maxStepDocumentBytes))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "failed to read request body"})
		return
	}

	steps, err := h.services.StepIO.Import(doc)
	if err != nil {
		if h.log != nil {
			h.log.Infow("step_import_rejected", "err", err)
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count": len(steps),
		"steps": steps,
	})
}

type exportRequest struct {
	Steps []models.DryingStep `json:"steps" binding:"required"`
}

// @Summary      Export a step list
// @Description  Emits the canonical JSON document for a drying program.
// @Tags         steps
// @Accept       json
// @Produce      json
// @Param        body  body  exportRequest  true  "Step list"
// @Success      200   {string}  string  "canonical step document"
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/steps/export [post]
// @Security     BearerAuth
func (h *Handler) exportSteps(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	doc, err := h.services.StepIO.Export(req.Steps)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.Data(http.StatusOK, "application/json", doc)
}
