package admin_module

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"backend/database/entities"
	"backend/middlewares"
)

const testAdminKey = "sekrit"

func newAdminRouter(t *testing.T) (*gin.Engine, *Service) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	svc := NewService(db, zap.NewNop())
	r := gin.New()
	RegisterRoutes(r.Group("/api"), svc, middlewares.AdminKey(testAdminKey))
	seedLead(t, db, entities.Lead{Email: "ada@example.com", Name: "Ada"})
	return r, svc
}

func adminGet(r *gin.Engine, path, key string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if key != "" {
		req.Header.Set("x-admin-key", key)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAdminEndpointsRejectBadKey(t *testing.T) {
	r, _ := newAdminRouter(t)

	for _, path := range []string{"/api/admin/waitlist", "/api/admin/stats", "/api/admin/export"} {
		for _, key := range []string{"", "wrong"} {
			w := adminGet(r, path, key)
			require.Equal(t, http.StatusUnauthorized, w.Code, path)
			assert.Contains(t, w.Body.String(), "UNAUTHORIZED")
			// no record data may leak on a 401
			assert.NotContains(t, w.Body.String(), "ada@example.com")
		}
	}
}

func TestAdminEndpointsLockedWhenKeyUnset(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db := newTestDB(t)
	r := gin.New()
	RegisterRoutes(r.Group("/api"), NewService(db, zap.NewNop()), middlewares.AdminKey(""))

	w := adminGet(r, "/api/admin/waitlist", "")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminListEndpoint(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := adminGet(r, "/api/admin/waitlist", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var leads []entities.Lead
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &leads))
	require.Len(t, leads, 1)
	assert.Equal(t, "ada@example.com", leads[0].Email)
}

func TestAdminStatsEndpoint(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := adminGet(r, "/api/admin/stats", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)

	var stats StatsResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &stats))
	assert.EqualValues(t, 1, stats.Total)
}

func TestAdminExportEndpoint(t *testing.T) {
	r, _ := newAdminRouter(t)

	w := adminGet(r, "/api/admin/export", testAdminKey)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/csv")
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")
	assert.Contains(t, w.Body.String(), csvHeader)
}
