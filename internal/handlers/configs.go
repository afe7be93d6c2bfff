package handlers

import (
	"errors"
	"net/http"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errSaveConfig   = "failed to save configuration"
	errLoadConfig   = "failed to load configuration"
	errListConfigs  = "failed to list configurations"
	errDeleteConfig = "failed to delete configuration"
)

// configStatus maps a service error to an HTTP status for config routes.
func configStatus(err error) int {
	switch {
	case errors.Is(err, service.ErrConfigNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrEmptyConfigName), errors.Is(err, service.ErrTooManySteps):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// @Summary      Save a named configuration
// @Description  Snapshots settings+steps under the caller's identity (anonymous bucket without a token). Overwrites an existing name.
// @Tags         configs
// @Accept       json
// @Produce      json
// @Param        name  path  string  true  "Configuration name"
// @Param        body  body  models.SettingsDocument  true  "Settings snapshot"
// @Success      200   {object}  models.SavedConfig
// @Failure      400   {object}  map[string]string
// @Failure      401   {object}  map[string]string
// @Router       /api/v1/configs/{name} [put]
// @Security     BearerAuth
func (h *Handler) saveConfig(c *gin.Context) {
	var doc models.SettingsDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	cfg, err := h.services.Configs.Save(c.Request.Context(), callerID(c), c.Param("name"), doc.ToSettings())
	if err != nil {
		status := configStatus(err)
		if status == http.StatusInternalServerError {
			h.logAndJSONError(c, status, errSaveConfig, "config_save_failed", err, "name", c.Param("name"))
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      Load a named configuration
// @Tags         configs
// @Produce      json
// @Param        name  path  string  true  "Configuration name"
// @Success      200   {object}  models.SavedConfig
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/configs/{name} [get]
// @Security     BearerAuth
func (h *Handler) loadConfig(c *gin.Context) {
	cfg, err := h.services.Configs.Load(c.Request.Context(), callerID(c), c.Param("name"))
	if err != nil {
		status := configStatus(err)
		if status == http.StatusInternalServerError {
			h.logAndJSONError(c, status, errLoadConfig, "config_load_failed", err, "name", c.Param("name"))
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, cfg)
}

// @Summary      List the caller's configurations
// @Tags         configs
// @Produce      json
// @Success      200  {object}  map[string]interface{}  "count, configs"
// @Router       /api/v1/configs [get]
// @Security     BearerAuth
func (h *Handler) listConfigs(c *gin.Context) {
	configs, err := h.services.Configs.List(c.Request.Context(), callerID(c))
	if err != nil {
		h.logAndJSONError(c, http.StatusInternalServerError, errListConfigs, "config_list_failed", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"count":   len(configs),
		"configs": configs,
	})
}

// @Summary      Delete a named configuration
// @Tags         configs
// @Produce      json
// @Param        name  path  string  true  "Configuration name"
// @Success      200   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /api/v1/configs/{name} [delete]
// @Security     BearerAuth
func (h *Handler) deleteConfig(c *gin.Context) {
	if err := h.services.Configs.Delete(c.Request.Context(), callerID(c), c.Param("name")); err != nil {
		status := configStatus(err)
		if status == http.StatusInternalServerError {
			h.logAndJSONError(c, status, errDeleteConfig, "config_delete_failed", err, "name", c.Param("name"))
			return
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
