package middleware_test

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/Harols34/convertia-hub-790d3cfd/internal/middleware"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
)

const (
	idempCacheKey = "idemp:/api/v1/admin/empresas:user-1:req-abc"
	idempLockKey  = idempCacheKey + ":lock"
)

func newIdempotentRouter(rdb *redis.Client, handler gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set("user_id", "user-1")
		c.Next()
	})
	r.POST("/api/v1/admin/empresas", middleware.Idempotency(rdb), handler)
	return r
}

func postWithKey(r *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/empresas", nil)
	req.Header.Set("Idempotency-Key", "req-abc")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestIdempotency_CompletedRequestIsReplayed(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	calls := 0
	r := newIdempotentRouter(rdb, func(c *gin.Context) {
		calls++
		c.JSON(http.StatusCreated, gin.H{"data": gin.H{"id": "emp-1"}, "ok": true})
	})

	body, err := json.Marshal(gin.H{"data": gin.H{"id": "emp-1"}, "ok": true})
	assert.NoError(t, err)
	payload := fmt.Sprintf(`{"status":201,"body":%s}`, body)

	// First request runs the handler, caches the response and releases the lock.
	rmock.ExpectGet(idempCacheKey).RedisNil()
	rmock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
	rmock.ExpectSet(idempCacheKey, []byte(payload), 24*time.Hour).SetVal("OK")
	rmock.ExpectDel(idempLockKey).SetVal(1)

	w := postWithKey(r)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 1, calls)

	// The retry is answered from the cache without reaching the handler.
	rmock.ExpectGet(idempCacheKey).SetVal(payload)

	w = postWithKey(r)
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, string(body), w.Body.String())
	assert.Equal(t, 1, calls)

	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_InFlightRequestRejected(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	r := newIdempotentRouter(rdb, func(c *gin.Context) {
		t.Fatal("handler should not run while the lock is held")
	})

	rmock.ExpectGet(idempCacheKey).RedisNil()
	rmock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(false)

	w := postWithKey(r)
	assert.Equal(t, http.StatusConflict, w.Code)

	var resp struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "PROCESSING", resp.Code)
	assert.Equal(t, "La solicitud anterior sigue en proceso", resp.Message)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_FailedResponseNotCached(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	r := newIdempotentRouter(rdb, func(c *gin.Context) {
		c.JSON(http.StatusConflict, gin.H{"ok": false})
	})

	rmock.ExpectGet(idempCacheKey).RedisNil()
	rmock.ExpectSetNX(idempLockKey, "locked", 30*time.Second).SetVal(true)
	rmock.ExpectDel(idempLockKey).SetVal(1)

	w := postWithKey(r)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}

func TestIdempotency_RequestsWithoutKeyPassThrough(t *testing.T) {
	rdb, rmock := redismock.NewClientMock()

	r := newIdempotentRouter(rdb, func(c *gin.Context) {
		c.JSON(http.StatusCreated, gin.H{"ok": true})
	})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/empresas", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.NoError(t, rmock.ExpectationsWereMet())
}
