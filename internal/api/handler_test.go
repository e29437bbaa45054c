package api

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/court-monitor/scraper/internal/scraper"
)

func TestHealth(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, scraper.NewProgress())

	resp, err := app.Test(httptest.NewRequest("GET", "/health", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, false, body["running"])
}

func TestStatus(t *testing.T) {
	app := fiber.New()
	SetupRoutes(app, scraper.NewProgress())

	resp, err := app.Test(httptest.NewRequest("GET", "/status", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var snap scraper.Snapshot
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&snap))
	assert.False(t, snap.Running)
	assert.Zero(t, snap.DatesTotal)
	assert.Zero(t, snap.Cases)
}
