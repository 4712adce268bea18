package alarma

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	alarmas := r.Group("/alarmas")
	{
		alarmas.GET("", middleware.RateLimitByUser(2, 10), handler.GetAll)
		alarmas.POST("", middleware.RateLimitByUser(0.5, 2), handler.Create)
		alarmas.PUT("/:id", middleware.RateLimitByUser(0.5, 2), handler.Update)
		alarmas.PATCH("/:id/resolver", middleware.RateLimitByUser(0.5, 2), handler.Resolver)
		alarmas.DELETE("/:id", middleware.RateLimitByUser(0.1, 1), handler.Delete)
	}
}
