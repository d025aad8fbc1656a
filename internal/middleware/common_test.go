package middleware_test

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"github.com/izakod/asn-api/internal/middleware"
)

func newPingApp(cfg middleware.Config) *fiber.App {
	app := fiber.New()
	middleware.Register(app, cfg)
	app.Get("/ping", func(c *fiber.Ctx) error {
		return c.SendString("pong")
	})

	return app
}

func TestRegisterAppliesConfiguredCORSOrigins(t *testing.T) {
	app := newPingApp(middleware.Config{CORSOrigins: "https://izakod.go.id"})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://izakod.go.id")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "https://izakod.go.id", resp.Header.Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, resp.Header.Get("X-Correlation-ID"))
}

func TestRegisterDefaultsToAnyOrigin(t *testing.T) {
	app := newPingApp(middleware.Config{})

	req := httptest.NewRequest("GET", "/ping", nil)
	req.Header.Set("Origin", "https://elsewhere.example")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
