package dashboard

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes expects an already admin-guarded group.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	r.GET("/dashboard/stats", middleware.RateLimitByUser(2, 10), handler.GetStats)
}
