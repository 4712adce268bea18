package aplicativo

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
	l := zap.L().Named("aplicativo.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("aplicativo.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) CreateGlobal(c *gin.Context) {
	var req CreateGlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de aplicativo inválidos", err.Error())
		return
	}

	app, err := h.service.CreateGlobal(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, app, nil)
}

func (h *Handler) GetGlobales(c *gin.Context) {
	apps, err := h.service.GetGlobales(c.Request.Context())
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, apps, &response.ListMeta{Total: int64(len(apps))})
}

func (h *Handler) UpdateGlobal(c *gin.Context) {
	var req UpdateGlobalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de aplicativo inválidos", err.Error())
		return
	}

	app, err := h.service.UpdateGlobal(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, app, nil)
}

func (h *Handler) DeleteGlobal(c *gin.Context) {
	if err := h.service.DeleteGlobal(c.Request.Context(), c.Param("id")); err != nil {
		response.AppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateEmpresaApp(c *gin.Context) {
	var req CreateEmpresaAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de aplicativo inválidos", err.Error())
		return
	}

	app, err := h.service.CreateEmpresaApp(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, app, nil)
}

func (h *Handler) GetEmpresaApps(c *gin.Context) {
	apps, err := h.service.GetEmpresaApps(c.Request.Context(), c.Query("empresa_id"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, apps, &response.ListMeta{Total: int64(len(apps))})
}

func (h *Handler) UpdateEmpresaApp(c *gin.Context) {
	var req UpdateEmpresaAppRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de aplicativo inválidos", err.Error())
		return
	}

	app, err := h.service.UpdateEmpresaApp(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, app, nil)
}

func (h *Handler) DeleteEmpresaApp(c *gin.Context) {
	if err := h.service.DeleteEmpresaApp(c.Request.Context(), c.Param("id")); err != nil {
		response.AppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) CreateAsignacion(c *gin.Context) {
	var req CreateAsignacionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Datos de asignación inválidos", err.Error())
		return
	}

	asig, err := h.service.CreateAsignacion(c.Request.Context(), req)
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, asig, nil)
}

func (h *Handler) GetAsignaciones(c *gin.Context) {
	asigs, err := h.service.GetAsignaciones(c.Request.Context(), c.Query("usuario_id"))
	if err != nil {
		response.AppError(c, err)
		return
	}

	response.Success(c, http.StatusOK, asigs, &response.ListMeta{Total: int64(len(asigs))})
}

func (h *Handler) DeleteAsignacion(c *gin.Context) {
	if err := h.service.DeleteAsignacion(c.Request.Context(), c.Param("id")); err != nil {
		h.logger.Error("delete asignacion failed", zap.Error(err))
		response.AppError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
