package portal

import (
	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes mounts the public lookup. No auth; rate limited by IP since
// codes are guessable by construction.
func RegisterRoutes(r *gin.RouterGroup, handler *Handler) {
	portal := r.Group("/portal")
	{
		portal.GET("/usuarios/:codigo", middleware.RateLimitByIP(1, 5), handler.Lookup)
	}
}
