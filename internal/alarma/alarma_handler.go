package alarma

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
	l := zap.L().Named("alarma.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("alarma.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateAlarmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de alarma inválidos", err.Error())
		return
	}

	alarma, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, alarma, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	alarmas, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, alarmas, &response.ListMeta{Total: int64(len(alarmas))})
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateAlarmaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de alarma inválidos", err.Error())
		return
	}

	alarma, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, alarma, nil)
}

func (h *Handler) Resolver(c *gin.Context) {
	var req ResolverAlarmaRequest
	if err := c.ShouldBindJSON(&req); err != nil && err.Error() != "EOF" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de resolución inválidos", err.Error())
		return
	}

	alarma, err := h.service.Resolver(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, alarma, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete alarma failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
