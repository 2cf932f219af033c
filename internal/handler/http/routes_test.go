package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoutes_MetricsEndpoint(t *testing.T) {
	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	recorder := env.serve(request)

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Body.String(), "go_goroutines")
}

func TestRoutes_UnsupportedMethod(t *testing.T) {
	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodOptions, "/realms/master/scim/v2/Users", nil)
	recorder := env.serve(request)

	assert.Equal(t, http.StatusMethodNotAllowed, recorder.Code)
}

func TestRoutes_UnknownPath(t *testing.T) {
	env := newTestEnv(t)

	request := httptest.NewRequest(http.MethodGet, "/realms/master/users", nil)
	recorder := env.serve(request)

	assert.Equal(t, http.StatusNotFound, recorder.Code)
}
