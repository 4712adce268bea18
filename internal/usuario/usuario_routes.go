package usuario

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	usuarios := r.Group("/usuarios")
	{
		usuarios.GET("", middleware.RateLimitByUser(2, 10), handler.GetAll)
		usuarios.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		usuarios.GET("/:id", middleware.RateLimitByUser(2, 10), handler.GetByID)
		usuarios.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		usuarios.PATCH("/:id/estado", middleware.RateLimitByUser(0.5, 2), handler.SetEstado)
		usuarios.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
