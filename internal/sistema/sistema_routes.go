package sistema

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	config := r.Group("/configuracion")
	{
		config.GET("", middleware.RateLimitByUser(2, 10), handler.GetAll)
		config.GET("/:clave", middleware.RateLimitByUser(2, 10), handler.GetByClave)
		config.PUT("/:clave", middleware.RateLimitByUser(0.5, 2), handler.Upsert)
	}
}
