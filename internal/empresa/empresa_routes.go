package empresa

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	empresas := r.Group("/empresas")
	{
		empresas.GET("", middleware.RateLimitByUser(2, 10), handler.GetAll)
		empresas.GET("/options", middleware.RateLimitByUser(2, 10), handler.GetOptions)
		empresas.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		empresas.GET("/:id", middleware.RateLimitByUser(2, 10), handler.GetByID)
		empresas.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		empresas.PATCH("/:id/estado", middleware.RateLimitByUser(0.5, 2), handler.SetEstado)
		empresas.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
