package auth_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/auth"
	autherrors "github.com/Harols34/convertia-hub-790d3cfd/internal/auth/errors"
	authMock "github.com/Harols34/convertia-hub-790d3cfd/internal/auth/mock"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestHandler_Login(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)

	t.Run("Success Sets Cookies", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "admin@convertia.com", "secret123").
			Return("access-jwt", "refresh-jwt", auth.AuthResponse{ID: "u1", Email: "admin@convertia.com", IsAdmin: true}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/login", handler.Login)

		body, _ := json.Marshal(auth.LoginRequest{Email: "admin@convertia.com", Password: "secret123"})
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		assert.Equal(t, true, res["ok"])

		cookies := w.Result().Cookies()
		names := make([]string, 0, len(cookies))
		for _, ck := range cookies {
			names = append(names, ck.Name)
		}
		assert.Contains(t, names, "access_token")
		assert.Contains(t, names, "refresh_token")
	})

	t.Run("Invalid Credentials", func(t *testing.T) {
		mockService.EXPECT().
			Login(gomock.Any(), "admin@convertia.com", "wrong1").
			Return("", "", auth.AuthResponse{}, autherrors.ErrInvalidCredentials)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/login", handler.Login)

		body, _ := json.Marshal(auth.LoginRequest{Email: "admin@convertia.com", Password: "wrong1"})
		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBuffer(body))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("Malformed Body", func(t *testing.T) {
		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.POST("/login", handler.Login)

		req, _ := http.NewRequest(http.MethodPost, "/login", bytes.NewBufferString(`{"email":"not-an-email"}`))
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockService := authMock.NewMockService(ctrl)
	handler := auth.NewHandler(mockService)

	t.Run("Reports Has Admin", func(t *testing.T) {
		mockService.EXPECT().Status(gomock.Any()).Return(auth.StatusResponse{HasAdmin: true}, nil)

		w := httptest.NewRecorder()
		_, r := gin.CreateTestContext(w)
		r.GET("/status", handler.Status)

		req, _ := http.NewRequest(http.MethodGet, "/status", nil)
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)

		var res map[string]interface{}
		json.Unmarshal(w.Body.Bytes(), &res)
		data := res["data"].(map[string]interface{})
		assert.Equal(t, true, data["has_admin"])
	})
}
