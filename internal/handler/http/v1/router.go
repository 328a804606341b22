package v1

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes регистрирует все маршруты API v1
func (h *Handler) RegisterRoutes(api *gin.RouterGroup) {
	// Маршруты для работы с сессионной партией инцидентов
	incidents := api.Group("/incidents")
	if len(h.cfg.APIKeys) > 0 {
		incidents.Use(APIKeyAuthMiddleware(h.cfg, h.logger))
	}
	{
		incidents.POST("/generate", h.generateBatch)
		incidents.GET("", h.listIncidents)
		incidents.GET("/stats", h.getStats)
		incidents.GET("/:id", h.getIncident)
		incidents.POST("/:id/security-route", h.routeToSecurity)
		incidents.GET("/:id/assets", h.getAssets)
	}

	// Маршрут Health-check
	api.GET("/system/health", h.healthCheck)
}
