package middleware

import (
	"context"
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/domain"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RoleResolver is a local interface; any package with a HasRole method fits.
type RoleResolver interface {
	HasRole(ctx context.Context, userID, role string) (bool, error)
}

// AdminGuard is the single capability check applied to every protected route.
// It assumes AuthMiddleware already established identity; a protected handler
// runs only on an Allowed decision, everything else redirects to sign-in.
func AdminGuard(roles RoleResolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.GetString("user_id")
		if userID == "" {
			d := domain.Redirect(domain.SignInPath, "no session")
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Authentication is required",
				gin.H{"redirect": d.Redirect})
			c.Abort()
			return
		}

		isAdmin, err := roles.HasRole(c.Request.Context(), userID, domain.RoleAdmin)
		if err != nil {
			response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Could not verify permissions", nil)
			c.Abort()
			return
		}

		if !isAdmin {
			d := domain.Redirect(domain.SignInPath, "not an admin")
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "You do not have permission to access this resource",
				gin.H{"redirect": d.Redirect})
			c.Abort()
			return
		}

		c.Next()
	}
}
