package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRateLimitBlocksAfterMax(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", RateLimit(2), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"ok": true})
	})

	do := func() *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = "192.0.2.1:5000"
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	require.Equal(t, http.StatusOK, do().Code)
	require.Equal(t, http.StatusOK, do().Code)

	w := do()
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "THROTTLE_EXCEEDED")
}

func TestRateLimitIsPerClientAddress(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", RateLimit(1), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	do := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/submit", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w.Code
	}

	require.Equal(t, http.StatusOK, do("192.0.2.1:5000"))
	require.Equal(t, http.StatusTooManyRequests, do("192.0.2.1:5001"))
	assert.Equal(t, http.StatusOK, do("192.0.2.2:5000"))
}
