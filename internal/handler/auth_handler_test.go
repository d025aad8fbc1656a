package handler_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/handler"
	"github.com/izakod/asn-api/internal/service"
)

type mockAuthService struct {
	loginResp dto.LoginResponse
	loginErr  error

	deviceToken string
	loggedOut   bool
}

func (m *mockAuthService) Login(_ context.Context, payload dto.LoginRequest) (dto.LoginResponse, error) {
	return m.loginResp, m.loginErr
}

func (m *mockAuthService) RegisterDevice(_ context.Context, _ service.Session, payload dto.DeviceTokenRequest) error {
	m.deviceToken = payload.Token
	return nil
}

func (m *mockAuthService) Logout(_ context.Context, _ service.Session) error {
	m.loggedOut = true
	return nil
}

func newAuthApp(svc *mockAuthService) *fiber.App {
	app := fiber.New()
	validate := validator.New(validator.WithRequiredStructEnabled())

	h := handler.NewAuthHandler(svc, validate, zerolog.Nop())
	group := app.Group("/api/v1/auth")
	h.RegisterPublic(group)
	h.Register(group.Group("", sessionMiddleware(service.Session{PegawaiID: 1})))

	return app
}

func TestAuthHandler_LoginSuccess(t *testing.T) {
	svc := &mockAuthService{loginResp: dto.LoginResponse{Token: "jwt-token"}}
	app := newAuthApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"nip":"199001012015011001","pin":"123456"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Success bool              `json:"success"`
		Data    dto.LoginResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "jwt-token", body.Data.Token)
}

func TestAuthHandler_LoginRejected(t *testing.T) {
	svc := &mockAuthService{loginErr: service.ErrLoginGagal}
	app := newAuthApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", strings.NewReader(`{"nip":"x","pin":"salah1"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnauthorized, resp.StatusCode)
}

func TestAuthHandler_DeviceAndLogout(t *testing.T) {
	svc := &mockAuthService{}
	app := newAuthApp(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/device", strings.NewReader(`{"token":"fcm-abc"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, "fcm-abc", svc.deviceToken)

	req = httptest.NewRequest(http.MethodPost, "/api/v1/auth/logout", nil)
	resp, err = app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.True(t, svc.loggedOut)
}
