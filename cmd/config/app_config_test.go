package config

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"gcs-food-backend/entities"
	"gcs-food-backend/internal/api/presenters"
	"gcs-food-backend/internal/store"
	"gcs-food-backend/internal/utils"
)

func testConfig(t *testing.T) *utils.Config {
	t.Helper()
	cfg := utils.DefaultConfig()
	cfg.LogFile = filepath.Join(t.TempDir(), "logs", "app.log")
	cfg.RateLimitMax = 0
	return &cfg
}

func newApp(t *testing.T, cfg *utils.Config) *fiber.App {
	t.Helper()
	app, err := NewApp(cfg, NewMemoryRepositories(store.New()), nil, zap.NewNop())
	require.NoError(t, err)
	return app
}

func postJSON(t *testing.T, app *fiber.App, target string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func TestNewApp_ServesSeededStore(t *testing.T) {
	app := newApp(t, testConfig(t))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/recipes/recipe-4", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestNewApp_RateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitMax = 2
	app := newApp(t, cfg)

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
		require.NoError(t, err)
		statuses = append(statuses, resp.StatusCode)
	}
	assert.Equal(t, []int{fiber.StatusOK, fiber.StatusOK, fiber.StatusTooManyRequests}, statuses)
}

func TestNewApp_StrictReferences(t *testing.T) {
	recipe := map[string]any{
		"title":         "Pierogi",
		"description":   "Pastéis cozidos",
		"ingredients":   []string{"farinha", "batata"},
		"instructions":  []string{"recheie", "cozinhe"},
		"prepTime":      50,
		"servings":      4,
		"difficulty":    "Médio",
		"userId":        "user-1",
		"nationalityId": "polonia",
		"categoryId":    "dinner",
	}

	permissive := newApp(t, testConfig(t))
	resp := postJSON(t, permissive, "/api/recipes/create", recipe)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)

	cfg := testConfig(t)
	cfg.StrictReferences = true
	strict := newApp(t, cfg)
	resp = postJSON(t, strict, "/api/recipes/create", recipe)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body presenters.ErrorBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Contains(t, body.Fields, "nationalityId")

	recipe["nationalityId"] = "pl"
	resp = postJSON(t, strict, "/api/recipes/create", recipe)
	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
}

func TestNewApp_FormCreatesKeepTheirValues(t *testing.T) {
	app := newApp(t, testConfig(t))

	names := []string{"Peruana", "XXXXXXXXXXXX", "YYYYYYYYYYYY"}
	for _, name := range names {
		req := httptest.NewRequest(http.MethodPost, "/api/nationalities", strings.NewReader("name="+name))
		req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationForm)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	}
	for i := 0; i < 3; i++ {
		resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping?pad=ZZZZZZZZZZZZZZZZZZZZ", nil), -1)
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nationalities", nil), -1)
	require.NoError(t, err)
	var nationalities []entities.Nationality
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&nationalities))
	require.Len(t, nationalities, 13)

	added := nationalities[10:]
	for i, name := range names {
		assert.Equal(t, name, added[i].Name)
		assert.Equal(t, strings.ToLower(name), added[i].ID)
	}
}

func TestNewApp_PreflightSkipsRateLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.RateLimitMax = 1
	app := newApp(t, cfg)

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodOptions, "/api/recipes", nil)
		req.Header.Set(fiber.HeaderOrigin, "http://localhost:3000")
		req.Header.Set(fiber.HeaderAccessControlRequestMethod, fiber.MethodPost)
		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusNoContent, resp.StatusCode)
	}

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/ping", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
