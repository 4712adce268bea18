package empresa_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/empresa"
	empresaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/empresa/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newEmpresaRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := empresa.NewHandler(svc, zap.NewNop())
	admin := r.Group("/api/v1/admin")
	admin.GET("/empresas", h.GetAll)
	admin.POST("/empresas", h.Create)
	admin.DELETE("/empresas/:id", h.Delete)

	return r, svc
}

func TestEmpresaHandler_CreateValidation(t *testing.T) {
	r, _ := newEmpresaRouter(t)

	// nombre is required
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/empresas", bytes.NewBufferString(`{"nit":"1"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope["ok"])
}

func TestEmpresaHandler_GetAllEnvelope(t *testing.T) {
	r, svc := newEmpresaRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return([]empresa.EmpresaResponse{
		{ID: "1", Nombre: "Acme", Activa: true},
		{ID: "2", Nombre: "Globex", Activa: false},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool `json:"ok"`
		Data []empresa.EmpresaResponse
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Len(t, envelope.Data, 2)
	assert.Equal(t, int64(2), envelope.Meta.Total)
}

func TestEmpresaHandler_DeleteConflict(t *testing.T) {
	r, svc := newEmpresaRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "abc").Return(empresaerrors.ErrEmpresaHasUsuarios)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/empresas/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "CONFLICT", envelope.Error.Code)
}

func TestEmpresaHandler_DeleteSuccess(t *testing.T) {
	r, svc := newEmpresaRouter(t)

	svc.EXPECT().Delete(gomock.Any(), "abc").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/empresas/abc", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}
