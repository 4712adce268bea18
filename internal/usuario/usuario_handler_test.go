package usuario_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario"
	usuarioerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/usuario/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newUsuarioRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := usuario.NewHandler(svc, zap.NewNop())
	admin := r.Group("/api/v1/admin")
	admin.GET("/usuarios", h.GetAll)
	admin.POST("/usuarios", h.Create)

	return r, svc
}

func TestUsuarioHandler_CreateConflict(t *testing.T) {
	r, svc := newUsuarioRouter(t)

	svc.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(usuario.UsuarioResponse{}, usuarioerrors.ErrCodigoUnicoConflict)

	body, _ := json.Marshal(gin.H{
		"empresa_id":       uuid.NewString(),
		"numero_documento": "12345",
		"nombre_completo":  "Juan Perez",
	})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/usuarios", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestUsuarioHandler_CreateValidation(t *testing.T) {
	r, _ := newUsuarioRouter(t)

	// empresa_id and numero_documento are required
	body, _ := json.Marshal(gin.H{"nombre_completo": "Juan Perez"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/usuarios", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUsuarioHandler_GetAllPassesEmpresaFilter(t *testing.T) {
	r, svc := newUsuarioRouter(t)

	empresaID := uuid.NewString()
	svc.EXPECT().GetAll(gomock.Any(), empresaID).Return([]usuario.UsuarioResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/usuarios?empresa_id="+empresaID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
