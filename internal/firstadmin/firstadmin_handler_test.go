package firstadmin_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin"
	firstadminerrors "github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin/errors"
	"github.com/Harols34/convertia-hub-790d3cfd/internal/firstadmin/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func newBootstrapRouter(t *testing.T) (*gin.Engine, *mock.MockService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	svc := mock.NewMockService(ctrl)

	r := gin.New()
	h := firstadmin.NewHandler(svc)
	r.OPTIONS("/functions/v1/create-first-admin", h.Options)
	r.POST("/functions/v1/create-first-admin", h.Create)

	return r, svc
}

func TestFirstAdminHandler_Success(t *testing.T) {
	r, svc := newBootstrapRouter(t)

	svc.EXPECT().
		CreateFirstAdmin(gomock.Any(), gomock.Any()).
		Return(firstadmin.CreateFirstAdminResult{
			UserID:  "b7f9c3ba-0000-4000-8000-000000000001",
			Message: "Usuario administrador creado correctamente",
		}, nil)

	body, _ := json.Marshal(gin.H{"email": "admin@convert-ia.com", "password": "supersecret"})
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-first-admin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
	assert.Equal(t, "Usuario administrador creado correctamente", resp["message"])
}

func TestFirstAdminHandler_AlreadyBootstrapped(t *testing.T) {
	r, svc := newBootstrapRouter(t)

	svc.EXPECT().
		CreateFirstAdmin(gomock.Any(), gomock.Any()).
		Return(firstadmin.CreateFirstAdminResult{}, firstadminerrors.ErrAlreadyBootstrapped)

	body, _ := json.Marshal(gin.H{"email": "admin@convert-ia.com", "password": "supersecret"})
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-first-admin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Ya existe un usuario administrador", resp["error"])
}

func TestFirstAdminHandler_MalformedBody(t *testing.T) {
	r, _ := newBootstrapRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-first-admin", bytes.NewBufferString("{"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestFirstAdminHandler_UnexpectedError(t *testing.T) {
	r, svc := newBootstrapRouter(t)

	svc.EXPECT().
		CreateFirstAdmin(gomock.Any(), gomock.Any()).
		Return(firstadmin.CreateFirstAdminResult{}, assert.AnError)

	body, _ := json.Marshal(gin.H{"email": "admin@convert-ia.com", "password": "supersecret"})
	req := httptest.NewRequest(http.MethodPost, "/functions/v1/create-first-admin", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]any
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Error al crear el usuario", resp["error"])
}

func TestFirstAdminHandler_PreflightOpenCORS(t *testing.T) {
	r, _ := newBootstrapRouter(t)

	req := httptest.NewRequest(http.MethodOptions, "/functions/v1/create-first-admin", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Headers"), "authorization")
}
