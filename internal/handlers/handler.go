package handlers

import (
	"net/http"

	"freeze_dryer/internal/logger"
	"freeze_dryer/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires the HTTP layer to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger) *Handler {
	return &Handler{services: services, log: log}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/health", h.health)

	h.registerAuthRoutes(router)
	h.registerAPIRoutes(router)

	// Live recalculation channel (HTTP upgrade), same port
	router.GET("/ws", h.wsRecalculate)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/auth")
	{
		auth.POST("/sign-up", h.signUp)
		auth.POST("/sign-in", h.signIn)
	}
}

// API routes accept anonymous callers; a valid bearer token scopes saved
// configurations to the signed-in user instead of the anonymous bucket.
func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.identityMiddleware)
	{
		api.POST("/simulate", h.simulate)

		terpenes := api.Group("/terpenes")
		{
			terpenes.GET("/", h.listTerpenes)
			terpenes.GET("/boiling", h.terpeneBoilingPoints)
		}

		configs := api.Group("/configs")
		{
			configs.GET("/", h.listConfigs)
			configs.GET("/:name", h.loadConfig)
			configs.PUT("/:name", h.saveConfig)
			configs.DELETE("/:name", h.deleteConfig)
		}

		steps := api.Group("/steps")
		{
			steps.POST("/import", h.importSteps)
			steps.POST("/export", h.exportSteps)
		}
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
