package handlers

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestReadinessProbe(t *testing.T) {
	up := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/health/live" {
			http.NotFound(w, r)
			return
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer up.Close()

	broken := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer broken.Close()

	app := fiber.New()
	app.Get("/ready", ReadinessProbe(nil, Upstream{Name: "advisor", URL: up.URL}))
	app.Get("/degraded", ReadinessProbe(nil,
		Upstream{Name: "advisor", URL: up.URL},
		Upstream{Name: "layouts", URL: broken.URL},
	))

	resp, err := app.Test(httptest.NewRequest("GET", "/ready", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/degraded", nil))
	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

	var body struct {
		Down []string `json:"down"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"layouts"}, body.Down)
}

func TestProbes(t *testing.T) {
	app := fiber.New()
	app.Get("/live", LivenessProbe)
	app.Get("/startup", StartupProbe)

	for _, path := range []string{"/live", "/startup"} {
		resp, err := app.Test(httptest.NewRequest("GET", path, nil))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode, path)
	}
}

func TestSwaggerSpecCoversRoutes(t *testing.T) {
	app := fiber.New()
	app.Get("/docs/openapi.yaml", SwaggerSpec)
	app.Get("/docs", SwaggerUI)

	resp, err := app.Test(httptest.NewRequest("GET", "/docs/openapi.yaml", nil))
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var doc struct {
		OpenAPI string         `yaml:"openapi"`
		Paths   map[string]any `yaml:"paths"`
	}
	require.NoError(t, yaml.Unmarshal(data, &doc))
	assert.Equal(t, "3.0.3", doc.OpenAPI)
	for _, path := range []string{
		"/catalog", "/catalog/{id}", "/suggest", "/suggest/batch", "/validate", "/best",
		"/arrange", "/floorplan/room", "/export", "/layouts", "/layouts/{id}",
		"/layouts/{id}/items", "/layouts/{id}/items/{itemId}", "/layouts/{id}/suggest",
		"/layouts/{id}/planner",
	} {
		assert.Contains(t, doc.Paths, path)
	}

	resp, err = app.Test(httptest.NewRequest("GET", "/docs", nil))
	require.NoError(t, err)
	assert.Contains(t, resp.Header.Get("Content-Type"), "text/html")
}
