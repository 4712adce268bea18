package alarma_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/alarma"
	alarmaerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/alarma/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/alarma/mock"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

func newAlarmaRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := alarma.NewHandler(svc, zap.NewNop())
	admin := r.Group("/api/v1/admin")
	admin.GET("/alarmas", h.GetAll)
	admin.POST("/alarmas", h.Create)
	admin.PATCH("/alarmas/:id/resolver", h.Resolver)

	return r, svc
}

func TestAlarmaHandler_CreateValidation(t *testing.T) {
	r, _ := newAlarmaRouter(t)

	body, _ := json.Marshal(gin.H{"titulo": "Sin descripción ni usuario"})
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/alarmas", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var envelope map[string]interface{}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.Equal(t, false, envelope["ok"])
}

func TestAlarmaHandler_GetAllEnvelope(t *testing.T) {
	r, svc := newAlarmaRouter(t)

	svc.EXPECT().GetAll(gomock.Any()).Return([]alarma.AlarmaResponse{
		{ID: uuid.NewString(), Titulo: "Sin acceso", Estado: "abierta"},
		{ID: uuid.NewString(), Titulo: "Clave vencida", Estado: "resuelta"},
	}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/alarmas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var envelope struct {
		Ok   bool `json:"ok"`
		Meta struct {
			Total int64 `json:"total"`
		} `json:"meta"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &envelope))
	assert.True(t, envelope.Ok)
	assert.Equal(t, int64(2), envelope.Meta.Total)
}

func TestAlarmaHandler_ResolverEmptyBody(t *testing.T) {
	r, svc := newAlarmaRouter(t)

	id := uuid.NewString()
	svc.EXPECT().
		Resolver(gomock.Any(), id, alarma.ResolverAlarmaRequest{}).
		Return(alarma.AlarmaResponse{ID: id, Estado: "resuelta"}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/alarmas/"+id+"/resolver", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAlarmaHandler_ResolverNotFound(t *testing.T) {
	r, svc := newAlarmaRouter(t)

	id := uuid.NewString()
	svc.EXPECT().
		Resolver(gomock.Any(), id, gomock.Any()).
		Return(alarma.AlarmaResponse{}, alarmaerrors.ErrAlarmaNotFound)

	body, _ := json.Marshal(gin.H{"estado": "resuelta"})
	req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/alarmas/"+id+"/resolver", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
