package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubRoleResolver struct {
	isAdmin bool
	err     error
}

func (s stubRoleResolver) HasRole(_ context.Context, _, _ string) (bool, error) {
	return s.isAdmin, s.err
}

func newGuardedRouter(resolver middleware.RoleResolver, userID string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		if userID != "" {
			c.Set("user_id", userID)
		}
		c.Next()
	})
	r.GET("/api/v1/admin/empresas", middleware.AdminGuard(resolver), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})
	return r
}

func TestAdminGuard_NoSession(t *testing.T) {
	r := newGuardedRouter(stubRoleResolver{}, "")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var envelope struct {
		Ok    bool `json:"ok"`
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Redirect string `json:"redirect"`
			} `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.False(t, envelope.Ok)
	assert.Equal(t, "UNAUTHORIZED", envelope.Error.Code)
	assert.Equal(t, "/auth", envelope.Error.Details.Redirect)
}

func TestAdminGuard_NonAdminRedirected(t *testing.T) {
	r := newGuardedRouter(stubRoleResolver{isAdmin: false}, "user-123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)

	var envelope struct {
		Error struct {
			Code    string `json:"code"`
			Details struct {
				Redirect string `json:"redirect"`
			} `json:"details"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "FORBIDDEN", envelope.Error.Code)
	assert.Equal(t, "/auth", envelope.Error.Details.Redirect)
}

func TestAdminGuard_AdminAllowed(t *testing.T) {
	r := newGuardedRouter(stubRoleResolver{isAdmin: true}, "user-123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGuard_ResolverFailure(t *testing.T) {
	r := newGuardedRouter(stubRoleResolver{err: errors.New("connection refused")}, "user-123")

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
