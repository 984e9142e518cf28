package tab

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"speedtab/core/markup"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func setupTestApp(t *testing.T) *fiber.App {
	e := NewEngine(newMemorySource(scenarioConfig), &fakeRoster{}, markup.NewParser(), zap.NewNop())
	e.Reload(context.Background())

	app := fiber.New()
	require.NoError(t, NewFeature(e, zap.NewNop()).Load(app))
	return app
}

func TestHandleResolve(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/tab/resolve/lobby", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "lobby", body["server"])
	assert.Equal(t, true, body["configured"])
	assert.Equal(t, "&aLobby", body["raw_title"])
	assert.Equal(t, "Lobby", body["title_plain"])
	assert.Equal(t, "Bye", body["footer_plain"])

	title, ok := body["title"].(map[string]any)
	require.True(t, ok)
	extra := title["extra"].([]any)
	assert.Equal(t, "green", extra[0].(map[string]any)["color"])
}

func TestHandleResolve_Unconfigured(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/tab/resolve/survival", nil))
	require.NoError(t, err)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, false, body["configured"])
	assert.Equal(t, "Welcome", body["title_plain"])
}

func TestHandleResolve_EscapedServerName(t *testing.T) {
	src := newMemorySource(`
servers:
  "my server":
    tabTitle: "&bSpaced"
`)
	e := NewEngine(src, &fakeRoster{}, markup.NewParser(), zap.NewNop())
	e.Reload(context.Background())

	app := fiber.New()
	require.NoError(t, NewFeature(e, zap.NewNop()).Load(app))

	resp, err := app.Test(httptest.NewRequest("GET", "/tab/resolve/my%20server", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "my server", body["server"])
	assert.Equal(t, true, body["configured"])
	assert.Equal(t, "Spaced", body["title_plain"])
}

func TestHandleListServers(t *testing.T) {
	app := setupTestApp(t)

	resp, err := app.Test(httptest.NewRequest("GET", "/tab/servers", nil))
	require.NoError(t, err)
	assert.Equal(t, 200, resp.StatusCode)

	var body struct {
		Servers []string `json:"servers"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, []string{"lobby"}, body.Servers)
}

func TestFeature(t *testing.T) {
	f := NewFeature(nil, zap.NewNop())
	assert.Equal(t, "tab", f.Name())
	assert.True(t, f.IsEnabled())
}
