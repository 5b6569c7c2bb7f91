package transport

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/frontiertower/floorfinder-sub000/logging"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func serve(engine *gin.Engine, method, path string, headers map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

func TestNewRouter(t *testing.T) {
	logging.Log = logrus.New()
	engine := NewRouter(gin.TestMode)

	w := serve(engine, http.MethodGet, "/nowhere", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "PAGE_NOT_FOUND")

	w = serve(engine, http.MethodOptions, "/api/rooms", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Contains(t, w.Header().Get("Access-Control-Allow-Methods"), "PUT")

	w = serve(engine, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminAuthMiddleware(t *testing.T) {
	logging.Log = logrus.New()
	t.Setenv("ADMIN_TOKEN", "secret")

	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/admin", AdminAuthMiddleware(), func(c *gin.Context) { c.Status(http.StatusOK) })

	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/admin", nil).Code)
	assert.Equal(t, http.StatusUnauthorized, serve(engine, http.MethodGet, "/admin", map[string]string{"x-admin-token": "nope"}).Code)
	assert.Equal(t, http.StatusOK, serve(engine, http.MethodGet, "/admin", map[string]string{"x-admin-token": "secret"}).Code)
}
