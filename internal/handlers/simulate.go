package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"freeze_dryer/internal/models"
	"freeze_dryer/internal/service"

	"github.com/gin-gonic/gin"
)

const (
	errRunSimulation   = "failed to run simulation"
	errInvalidBodyPref = "invalid body: "
	errInvalidPressure = "query parameter 'pressure_mbar' must be a number > 0"
)

// Centralized error logging and response.
func (h *Handler) logAndJSONError(c *gin.Context, httpCode int, userMsg, logKey string, err error, kv ...interface{}) {
	if h.log != nil && err != nil {
		fields := append([]interface{}{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	c.JSON(httpCode, gin.H{"error": userMsg})
}

// @Summary      Run sublimation simulation
// @Description  Normalizes the settings, integrates the progress curve and returns completion verdicts. Empty steps or zero ice weight yield an empty curve.
// @Tags         simulation
// @Accept       json
// @Produce      json
// @Param        body  body   models.SettingsDocument  true  "Settings + step program"
// @Success      200   {object}  models.SimulationResult
// @Failure      400   {object}  map[string]string
// @Router       /api/v1/simulate [post]
// @Security     BearerAuth
func (h *Handler) simulate(c *gin.Context) {
	var doc models.SettingsDocument
	if err := c.ShouldBindJSON(&doc); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidBodyPref + err.Error()})
		return
	}

	res, err := h.services.Simulation.Run(doc.ToSettings())
	if err != nil {
		if errors.Is(err, service.ErrTooManySteps) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		h.logAndJSONError(c, http.StatusInternalServerError, errRunSimulation, "simulate_failed", err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary      Terpene reference table
// @Tags         terpenes
// @Produce      json
// @Param        group  query  string  false  "Filter by group"  Enums(major,minor,other)
// @Success      200  {object}  map[string]interface{}  "count, terpenes"
// @Router       /api/v1/terpenes [get]
func (h *Handler) listTerpenes(c *gin.Context) {
	table := h.services.Simulation.Terpenes(c.Query("group"))
	c.JSON(http.StatusOK, gin.H{
		"count":    len(table),
		"terpenes": table,
	})
}

// @Summary      Terpene boiling points at a chamber pressure
// @Description  Inverts the Antoine equation per terpene. Pressure must be > 0 mBar.
// @Tags         terpenes
// @Produce      json
// @Param        pressure_mbar  query  number  true  "Chamber pressure in mBar"  example(0.2)
// @Success      200  {object}  map[string]interface{}  "pressure_mbar, boiling_points"
// @Failure      400  {object}  map[string]string
// @Router       /api/v1/terpenes/boiling [get]
func (h *Handler) terpeneBoilingPoints(c *gin.Context) {
	pressure, err := strconv.ParseFloat(c.Query("pressure_mbar"), 64)
	if err != nil || pressure <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": errInvalidPressure})
		return
	}

	points, err := h.services.Simulation.BoilingPoints(pressure)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"pressure_mbar":  pressure,
		"boiling_points": points,
	})
}
