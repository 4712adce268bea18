package sistema

import (
	"net/http"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("sistema.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("sistema.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) GetAll(c *gin.Context) {
	configs, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, configs, &response.ListMeta{Total: int64(len(configs))})
}

func (h *Handler) GetByClave(c *gin.Context) {
	cfg, err := h.service.GetByClave(c.Request.Context(), c.Param("clave"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}

func (h *Handler) Upsert(c *gin.Context) {
	var req UpsertConfiguracionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de configuración inválidos", err.Error())
		return
	}

	cfg, err := h.service.Upsert(c.Request.Context(), c.Param("clave"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, cfg, nil)
}
