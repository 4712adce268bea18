package aplicativo_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo"
	aplicativoerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/aplicativo/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAplicativoRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := aplicativo.NewHandler(svc, zap.NewNop())
	admin := r.Group("/api/v1/admin")
	admin.POST("/asignaciones", h.CreateAsignacion)
	admin.GET("/asignaciones", h.GetAsignaciones)

	return r, svc
}

func TestAplicativoHandler_AsignacionReferenciaInvalida(t *testing.T) {
	r, svc := newAplicativoRouter(t)

	svc.EXPECT().
		CreateAsignacion(gomock.Any(), gomock.Any()).
		Return(aplicativo.AsignacionResponse{}, aplicativoerrors.ErrAsignacionReferencia)

	body, _ := json.Marshal(gin.H{"usuario_final_id": uuid.NewString()})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/asignaciones", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestAplicativoHandler_GetAsignacionesFilter(t *testing.T) {
	r, svc := newAplicativoRouter(t)

	usuarioID := uuid.NewString()
	svc.EXPECT().
		GetAsignaciones(gomock.Any(), usuarioID).
		Return([]aplicativo.AsignacionResponse{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/asignaciones?usuario_id="+usuarioID, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}
