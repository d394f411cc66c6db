package server

import (
	"context"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pingFunc func(ctx context.Context) error

func (f pingFunc) Ping(ctx context.Context) error { return f(ctx) }

var (
	healthy   = pingFunc(func(context.Context) error { return nil })
	unhealthy = pingFunc(func(context.Context) error { return errors.New("down") })
)

func TestHealthHandler_Check(t *testing.T) {
	tests := []struct {
		name     string
		database Pinger
		cache    Pinger
		status   int
		body     string
	}{
		{name: "AllHealthy", database: healthy, cache: healthy, status: fiber.StatusOK, body: `"status":"ok"`},
		{name: "CacheDown", database: healthy, cache: unhealthy, status: fiber.StatusOK, body: `"status":"degraded"`},
		{name: "NoCache", database: healthy, status: fiber.StatusOK, body: `"status":"ok"`},
		{name: "DatabaseDown", database: unhealthy, cache: healthy, status: fiber.StatusServiceUnavailable, body: `"database":"unreachable"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/healthz", NewHealthHandler(tt.database, tt.cache).Check)

			resp, err := app.Test(httptest.NewRequest("GET", "/healthz", nil))
			require.NoError(t, err)
			assert.Equal(t, tt.status, resp.StatusCode)

			body, err := io.ReadAll(resp.Body)
			require.NoError(t, err)
			assert.Contains(t, string(body), tt.body)
		})
	}
}
