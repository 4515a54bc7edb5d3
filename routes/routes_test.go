package routes

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"retail-intelligence/handlers"
	"retail-intelligence/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp() *fiber.App {
	app := fiber.New()
	SetupRoutes(app)
	return app
}

func TestInsightRoute(t *testing.T) {
	app := newApp()

	req := httptest.NewRequest("GET", "/api/v1/insight?question=Shoes%20Inventory", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var body models.InsightResponse
	require.NoError(t, json.Unmarshal(raw, &body))
	assert.Equal(t, "shoes inventory", body.Question)
	assert.Equal(t, handlers.InsightShoes, body.Insight)
}

func TestInsightRouteWithoutQuestion(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/insight", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	assert.JSONEq(t, `{"question":"","insight":"`+handlers.InsightDefault+`"}`, string(raw))
}

func TestHealthRoute(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body models.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, handlers.HealthMessage, body.Message)
	assert.Equal(t, handlers.Region, body.Region)
	assert.NotEmpty(t, body.Timestamp)
}

func TestUnknownRouteNotFound(t *testing.T) {
	app := newApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/api/v1/forecast", nil))
	require.NoError(t, err)
	assert.Equal(t, 404, resp.StatusCode)
}
