package aplicativo

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	apps := r.Group("/aplicativos")
	{
		apps.GET("/globales", middleware.RateLimitByUser(2, 10), handler.GetGlobales)
		apps.POST("/globales", middleware.RateLimitByUser(0.5, 2), handler.CreateGlobal)
		apps.PUT("/globales/:id", middleware.RateLimitByUser(0.5, 2), handler.UpdateGlobal)
		apps.DELETE("/globales/:id", middleware.RateLimitByUser(0.1, 1), handler.DeleteGlobal)

		apps.GET("/empresa", middleware.RateLimitByUser(2, 10), handler.GetEmpresaApps)
		apps.POST("/empresa", middleware.RateLimitByUser(0.5, 2), handler.CreateEmpresaApp)
		apps.PUT("/empresa/:id", middleware.RateLimitByUser(0.5, 2), handler.UpdateEmpresaApp)
		apps.DELETE("/empresa/:id", middleware.RateLimitByUser(0.1, 1), handler.DeleteEmpresaApp)
	}

	asignaciones := r.Group("/asignaciones")
	{
		asignaciones.GET("", middleware.RateLimitByUser(2, 10), handler.GetAsignaciones)
		asignaciones.POST("", middleware.RateLimitByUser(0.5, 2), handler.CreateAsignacion)
		asignaciones.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.DeleteAsignacion)
	}
}
