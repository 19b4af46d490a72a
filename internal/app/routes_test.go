package app

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoute(t *testing.T) {
	t.Setenv("APP_BASE_PATH", "")
	assert.Equal(t, "GET /v1/maze/{id}", route(http.MethodGet, "/v1/maze/{id}"))

	t.Setenv("APP_BASE_PATH", "/api/")
	assert.Equal(t, "POST /api/v1/maze", route(http.MethodPost, "/v1/maze"))
}

func TestMetricsRoute(t *testing.T) {
	t.Setenv("APP_BASE_PATH", "")
	log, _ := logtest.NewNullLogger()
	a := New(log)
	a.maxDim = 10
	a.loadRoutes()

	w := httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/maze/preview?key=3:3:v:5", nil))
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	a.router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	require.Equal(t, http.StatusOK, w.Code)
	body := w.Body.String()
	assert.True(t, strings.Contains(body, `maze_generated_total{orientation="vertical"} 1`), body)
	assert.Contains(t, body, "maze_cells_generated_total 9")
	assert.Contains(t, body, "go_goroutines")
}
