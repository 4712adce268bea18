package empresa

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
	l := zap.L().Named("empresa.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("empresa.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de empresa inválidos", err.Error())
		return
	}

	emp, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, emp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	emps, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, emps, &response.ListMeta{Total: int64(len(emps))})
}

func (h *Handler) GetOptions(c *gin.Context) {
	opts, err := h.service.GetOptions(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, opts, nil)
}

func (h *Handler) GetByID(c *gin.Context) {
	emp, err := h.service.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, emp, nil)
}

func (h *Handler) Update(c *gin.Context) {
	var req UpdateEmpresaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de empresa inválidos", err.Error())
		return
	}

	emp, err := h.service.Update(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, emp, nil)
}

func (h *Handler) SetEstado(c *gin.Context) {
	var req SetEstadoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Estado inválido", err.Error())
		return
	}

	emp, err := h.service.SetEstado(c.Request.Context(), c.Param("id"), *req.Activa)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, emp, nil)
}

func (h *Handler) Delete(c *gin.Context) {
	if err := h.service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete empresa failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
