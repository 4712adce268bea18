package firstadmin

import (
	"errors"
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// The wire format here is fixed: 200 {"success":true,"message":...} and
// 400/500 {"error":...}, with CORS open to any origin. It intentionally does
// not use the shared API envelope.

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func corsHeaders(c *gin.Context) {
	c.Header("Access-Control-Allow-Origin", "*")
	c.Header("Access-Control-Allow-Headers", "authorization, x-client-info, apikey, content-type")
}

func (ctrl *Handler) Options(c *gin.Context) {
	corsHeaders(c)
	c.Status(http.StatusNoContent)
}

func (ctrl *Handler) Create(c *gin.Context) {
	corsHeaders(c)

	var req CreateFirstAdminRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email y contraseña son requeridos"})
		return
	}

	result, err := ctrl.service.CreateFirstAdmin(c.Request.Context(), req)
	if err != nil {
		var appErr *apperror.AppError
		if errors.As(err, &appErr) {
			c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error al crear el usuario"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": result.Message,
	})
}
