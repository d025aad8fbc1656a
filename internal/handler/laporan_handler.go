package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// LaporanHandler wires the activity report endpoints, including the
// supervisor verification action.
type LaporanHandler struct {
	laporan    service.LaporanService
	verifikasi service.VerifikasiService
	validator  *validator.Validate
	logger     zerolog.Logger
}

// NewLaporanHandler creates a report handler instance.
func NewLaporanHandler(laporan service.LaporanService, verifikasi service.VerifikasiService, validator *validator.Validate, logger zerolog.Logger) *LaporanHandler {
	return &LaporanHandler{
		laporan:    laporan,
		verifikasi: verifikasi,
		validator:  validator,
		logger:     logger.With().Str("component", "laporan_handler").Logger(),
	}
}

// Register binds report routes under the provided router group.
func (h *LaporanHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Get("/:id", h.get)
	router.Put("/:id", h.update)
	router.Post("/:id/ajukan", h.resubmit)
	router.Put("/:id/verifikasi", h.verify)
}

func (h *LaporanHandler) list(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var filter dto.LaporanFilter
	if err := c.QueryParser(&filter); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "parameter query tidak valid")
	}

	reports, err := h.laporan.List(c.UserContext(), session, filter)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "daftar laporan", reports)
}

func (h *LaporanHandler) create(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var payload dto.LaporanCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	report, err := h.laporan.Create(c.UserContext(), session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	message := "laporan disimpan sebagai draft"
	if report.Status == string(models.StatusDiajukan) {
		message = "laporan diajukan"
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, message, report)
}

func (h *LaporanHandler) get(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	report, err := h.laporan.Get(c.UserContext(), id, session)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "detail laporan", report)
}

func (h *LaporanHandler) update(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var payload dto.LaporanUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	report, err := h.laporan.Update(c.UserContext(), id, session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "laporan diperbarui", report)
}

func (h *LaporanHandler) resubmit(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var payload dto.LaporanUpdateRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&payload); err != nil {
			return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
		}
	}

	report, err := h.laporan.Resubmit(c.UserContext(), id, session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "laporan diajukan kembali", report)
}

func (h *LaporanHandler) verify(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var payload dto.VerifikasiRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	report, err := h.verifikasi.Verify(c.UserContext(), id, session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "verifikasi diproses", report)
}
