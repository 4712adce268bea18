package sistema_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/sistema"
	sistemaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/sistema/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/sistema/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newSistemaRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := sistema.NewHandler(svc, zap.NewNop())
	admin := r.Group("/api/v1/admin")
	admin.GET("/configuracion/:clave", h.GetByClave)
	admin.PUT("/configuracion/:clave", h.Upsert)

	return r, svc
}

func TestSistemaHandler_GetByClaveNotFound(t *testing.T) {
	r, svc := newSistemaRouter(t)

	svc.EXPECT().
		GetByClave(gomock.Any(), "desconocida").
		Return(sistema.ConfiguracionResponse{}, sistemaerrors.ErrConfiguracionNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/configuracion/desconocida", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSistemaHandler_UpsertSuccess(t *testing.T) {
	r, svc := newSistemaRouter(t)

	svc.EXPECT().
		Upsert(gomock.Any(), "portal_mensaje", gomock.Any()).
		Return(sistema.ConfiguracionResponse{Clave: "portal_mensaje", Valor: json.RawMessage(`"Bienvenido"`)}, nil)

	body, _ := json.Marshal(gin.H{"valor": "Bienvenido"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/configuracion/portal_mensaje", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool `json:"ok"`
		Data struct {
			Clave string `json:"clave"`
		} `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Equal(t, "portal_mensaje", envelope.Data.Clave)
}

func TestSistemaHandler_UpsertMissingValor(t *testing.T) {
	r, _ := newSistemaRouter(t)

	body, _ := json.Marshal(gin.H{"descripcion": "sin valor"})
	req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/configuracion/portal_mensaje", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
