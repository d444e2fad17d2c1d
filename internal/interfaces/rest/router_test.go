package rest

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dietplanner/backend/internal/application/services"
	"github.com/dietplanner/backend/pkg/auth"
	"github.com/dietplanner/backend/pkg/constants"
)

func testRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(&services.ServiceManager{})
}

func TestStatusServedOnRootAndStatusPaths(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := NewRouter(&services.ServiceManager{
		Food: services.NewFoodService(nil, nil, nil),
	})

	for _, path := range []string{"/", "/status", "/api/status"} {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
		assert.Equal(t, http.StatusOK, w.Code, path)
		assert.Contains(t, w.Body.String(), "diet-planner", path)
		assert.Contains(t, w.Body.String(), `"food_search":false`, path)
	}
}

func TestProtectedRoutesRejectAnonymous(t *testing.T) {
	r := testRouter()

	for _, route := range []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/stats/usage"},
		{http.MethodPost, "/api/articles"},
		{http.MethodDelete, "/api/nutritionists/1"},
	} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(route.method, route.path, nil)
		r.ServeHTTP(w, req)
		assert.Equal(t, http.StatusUnauthorized, w.Code, "%s %s", route.method, route.path)
	}
}

func TestDeleteArticleRejectsBadID(t *testing.T) {
	token, _, err := auth.GenerateToken(auth.AdminSession{ID: "1", Username: "admin"})
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/articles/abc", nil)
	req.Header.Set(constants.HeaderAuthorization, "Bearer "+token)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "id must be a positive integer")
}

func TestLoginRejectsMissingFields(t *testing.T) {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", nil)
	testRouter().ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
