package api

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"os-simulator/config"
)

func testConfig() *config.SimulatorConfig {
	return &config.SimulatorConfig{
		Port:                  9095,
		LogLevel:              "info",
		RoundRobinTimeQuantum: 2,
		MemoryDefaultCapacity: 64,
		MemoryDefaultStrategy: "first-fit",
	}
}

// do sends a request through app and decodes a JSON body into out when out is non-nil.
func do(t *testing.T, app *fiber.App, method, path, body string, out interface{}) int {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	if out != nil {
		data, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(data, out), string(data))
	}
	return resp.StatusCode
}

