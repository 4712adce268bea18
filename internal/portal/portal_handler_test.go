package portal_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/portal"
	portalerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/portal/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/portal/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newPortalRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := portal.NewHandler(svc)
	r.GET("/api/v1/portal/usuarios/:codigo", h.Lookup)

	return r, svc
}

func TestPortalHandler_LookupSuccess(t *testing.T) {
	r, svc := newPortalRouter(t)

	svc.EXPECT().Lookup(gomock.Any(), "12345_juan").Return(portal.PortalUsuarioResponse{
		NombreCompleto: "Juan Perez",
		CodigoUnico:    "12345_juan",
		Activo:         true,
		EmpresaNombre:  "Acme",
		Aplicativos:    []portal.PortalAplicativo{},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/usuarios/12345_juan", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool                         `json:"ok"`
		Data portal.PortalUsuarioResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Equal(t, "Acme", envelope.Data.EmpresaNombre)
}

func TestPortalHandler_LookupNotFound(t *testing.T) {
	r, svc := newPortalRouter(t)

	svc.EXPECT().
		Lookup(gomock.Any(), "nope").
		Return(portal.PortalUsuarioResponse{}, portalerrors.ErrCodigoNotFound)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/portal/usuarios/nope", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)

	var envelope struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, "El código ingresado no existe", envelope.Error.Message)
}
