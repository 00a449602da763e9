package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runThrough(t *testing.T, mw gin.HandlerFunc, mutate func(*http.Request)) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)

	var captured *gin.Context
	engine := gin.New()
	engine.Use(mw)
	engine.GET("/", func(c *gin.Context) {
		captured = c
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if mutate != nil {
		mutate(req)
	}
	engine.ServeHTTP(httptest.NewRecorder(), req)
	require.NotNil(t, captured)
	return captured
}

func TestRequestIDMiddleware(t *testing.T) {
	c := runThrough(t, RequestIDMiddleware(), nil)

	id := c.GetString("request_id")
	require.NotEmpty(t, id)
	_, err := uuid.Parse(id)
	assert.NoError(t, err)
}

func TestRealIP_ForwardedFor(t *testing.T) {
	c := runThrough(t, RealIP(), func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "203.0.113.7, 10.0.0.1")
	})
	assert.Equal(t, "203.0.113.7", c.GetString("real_ip"))
}

func TestRealIP_FallsBackOnBadHeader(t *testing.T) {
	c := runThrough(t, RealIP(), func(r *http.Request) {
		r.Header.Set("X-Forwarded-For", "not-an-ip")
	})
	assert.NotEmpty(t, c.GetString("real_ip"))
}
