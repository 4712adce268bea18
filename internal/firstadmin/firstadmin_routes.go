package firstadmin

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the one-time bootstrap endpoint. The path mirrors the
// public function URL the frontend already calls.
func RegisterRoutes(r *gin.Engine, h *Handler) {
	r.OPTIONS("/functions/v1/create-first-admin", h.Options)
	r.POST("/functions/v1/create-first-admin", middleware.RateLimitByIP(0.08, 3), h.Create)
}
