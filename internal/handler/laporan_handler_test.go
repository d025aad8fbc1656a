package handler_test

import (
	"context"
	"encoding/json"
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
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/service"
)

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(target))
}

// sessionMiddleware stands in for the JWT middleware in tests.
func sessionMiddleware(session service.Session) fiber.Handler {
	return func(c *fiber.Ctx) error {
		c.Locals("pegawai_id", session.PegawaiID)
		c.Locals("nip", session.NIP)
		c.Locals("role", session.Role)
		c.Locals("unit_id", session.UnitID)
		return c.Next()
	}
}

type mockLaporanService struct {
	createResp dto.LaporanResponse
	createErr  error
	getResp    dto.LaporanDetailResponse
	getErr     error
	listResp   []dto.LaporanResponse
	listErr    error
	updateResp dto.LaporanResponse
	updateErr  error

	lastSession service.Session
	lastID      uint
}

func (m *mockLaporanService) Create(_ context.Context, session service.Session, _ dto.LaporanCreateRequest) (dto.LaporanResponse, error) {
	m.lastSession = session
	return m.createResp, m.createErr
}

func (m *mockLaporanService) Update(_ context.Context, id uint, session service.Session, _ dto.LaporanUpdateRequest) (dto.LaporanResponse, error) {
	m.lastSession = session
	m.lastID = id
	return m.updateResp, m.updateErr
}

func (m *mockLaporanService) Get(_ context.Context, id uint, session service.Session) (dto.LaporanDetailResponse, error) {
	m.lastSession = session
	m.lastID = id
	return m.getResp, m.getErr
}

func (m *mockLaporanService) List(_ context.Context, session service.Session, _ dto.LaporanFilter) ([]dto.LaporanResponse, error) {
	m.lastSession = session
	return m.listResp, m.listErr
}

func (m *mockLaporanService) Resubmit(_ context.Context, id uint, session service.Session, _ dto.LaporanUpdateRequest) (dto.LaporanResponse, error) {
	m.lastSession = session
	m.lastID = id
	return m.updateResp, m.updateErr
}

type mockVerifikasiService struct {
	resp   dto.LaporanResponse
	err    error
	lastID uint
}

func (m *mockVerifikasiService) Verify(_ context.Context, laporanID uint, _ service.Session, _ dto.VerifikasiRequest) (dto.LaporanResponse, error) {
	m.lastID = laporanID
	return m.resp, m.err
}

func newLaporanApp(laporan *mockLaporanService, verifikasi *mockVerifikasiService) *fiber.App {
	app := fiber.New()
	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.Nop()

	session := service.Session{PegawaiID: 1, NIP: "199001012015011001", Role: models.RolePegawai, UnitID: 5}
	group := app.Group("/api/v1/laporan-kegiatan", sessionMiddleware(session))
	handler.NewLaporanHandler(laporan, verifikasi, validate, logger).Register(group)

	return app
}

func TestLaporanHandler_CreateDraft(t *testing.T) {
	svc := &mockLaporanService{createResp: dto.LaporanResponse{ID: 7, Status: string(models.StatusDraft)}}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/laporan-kegiatan", strings.NewReader(`{"judul":"Rapat"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	require.Equal(t, uint(1), svc.lastSession.PegawaiID)

	var body struct {
		Success bool                `json:"success"`
		Data    dto.LaporanResponse `json:"data"`
		Message string              `json:"message"`
	}
	decodeResponse(t, resp, &body)
	require.True(t, body.Success)
	require.Equal(t, "laporan disimpan sebagai draft", body.Message)
	require.Equal(t, uint(7), body.Data.ID)
}

func TestLaporanHandler_CreateValidationError(t *testing.T) {
	svc := &mockLaporanService{createErr: service.NewValidationError(map[string]string{"judul": "wajib diisi"})}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/laporan-kegiatan", strings.NewReader(`{"ajukan":true}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusUnprocessableEntity, resp.StatusCode)

	var body struct {
		Success bool              `json:"success"`
		Message string            `json:"message"`
		Errors  map[string]string `json:"errors"`
	}
	decodeResponse(t, resp, &body)
	require.False(t, body.Success)
	require.Equal(t, "wajib diisi", body.Errors["judul"])
}

func TestLaporanHandler_GetNotFound(t *testing.T) {
	svc := &mockLaporanService{getErr: service.ErrLaporanNotFound}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/laporan-kegiatan/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	require.Equal(t, uint(42), svc.lastID)
}

func TestLaporanHandler_GetForbidden(t *testing.T) {
	svc := &mockLaporanService{getErr: service.ErrNotAuthorized}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/laporan-kegiatan/42", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusForbidden, resp.StatusCode)
}

func TestLaporanHandler_InvalidID(t *testing.T) {
	app := newLaporanApp(&mockLaporanService{}, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/laporan-kegiatan/abc", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestLaporanHandler_UpdateConflict(t *testing.T) {
	svc := &mockLaporanService{updateErr: service.ErrInvalidState}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/laporan-kegiatan/42", strings.NewReader(`{"judul":"Terlambat"}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLaporanHandler_VerifySuccess(t *testing.T) {
	rating := 4
	verifikasi := &mockVerifikasiService{resp: dto.LaporanResponse{ID: 42, Status: string(models.StatusDiverifikasi), Rating: &rating}}
	app := newLaporanApp(&mockLaporanService{}, verifikasi)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/laporan-kegiatan/42/verifikasi", strings.NewReader(`{"aksi":"setujui","rating":4}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	require.Equal(t, uint(42), verifikasi.lastID)

	var body struct {
		Success bool                `json:"success"`
		Data    dto.LaporanResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Equal(t, string(models.StatusDiverifikasi), body.Data.Status)
}

func TestLaporanHandler_VerifyInvalidState(t *testing.T) {
	verifikasi := &mockVerifikasiService{err: service.ErrInvalidState}
	app := newLaporanApp(&mockLaporanService{}, verifikasi)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/laporan-kegiatan/42/verifikasi", strings.NewReader(`{"aksi":"setujui","rating":4}`))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusConflict, resp.StatusCode)
}

func TestLaporanHandler_List(t *testing.T) {
	svc := &mockLaporanService{listResp: []dto.LaporanResponse{{ID: 1}, {ID: 2}}}
	app := newLaporanApp(svc, &mockVerifikasiService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/laporan-kegiatan?status=Diajukan", nil)
	resp, err := app.Test(req)
	require.NoError(t, err)
	require.Equal(t, fiber.StatusOK, resp.StatusCode)

	var body struct {
		Data []dto.LaporanResponse `json:"data"`
	}
	decodeResponse(t, resp, &body)
	require.Len(t, body.Data, 2)
}
