package handler

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// sessionFromContext rebuilds the authenticated session from request locals
// populated by the JWT middleware.
func sessionFromContext(c *fiber.Ctx) service.Session {
	session := service.Session{}

	if v, ok := c.Locals("pegawai_id").(uint); ok {
		session.PegawaiID = v
	}
	if v, ok := c.Locals("nip").(string); ok {
		session.NIP = v
	}
	if v, ok := c.Locals("role").(string); ok {
		session.Role = v
	}
	if v, ok := c.Locals("unit_id").(uint); ok {
		session.UnitID = v
	}

	return session
}

func parseUintParam(c *fiber.Ctx, key string) (uint, error) {
	value := c.Params(key)
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return 0, errors.New("invalid " + key)
	}
	return uint(parsed), nil
}

func parseQueryUint(c *fiber.Ctx, key string) (*uint, error) {
	value := c.Query(key)
	if value == "" {
		return nil, nil
	}
	parsed, err := strconv.ParseUint(value, 10, 64)
	if err != nil {
		return nil, errors.New("invalid " + key)
	}
	result := uint(parsed)
	return &result, nil
}

func parseQueryInt(c *fiber.Ctx, key string, fallback int) int {
	value := strings.TrimSpace(c.Query(key))
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

// handleServiceError maps the service error taxonomy onto HTTP responses.
func handleServiceError(c *fiber.Ctx, logger zerolog.Logger, err error) error {
	var fieldErrs *service.ValidationError
	var validationErrors validator.ValidationErrors

	switch {
	case errors.As(err, &fieldErrs):
		return utils.SendValidationError(c, fieldErrs.Fields)
	case errors.As(err, &validationErrors):
		return utils.SendError(c, fiber.StatusBadRequest, validationErrors.Error())
	case errors.Is(err, service.ErrLoginGagal):
		return utils.SendError(c, fiber.StatusUnauthorized, "nip atau pin salah")
	case errors.Is(err, service.ErrNotAuthorized):
		return utils.SendError(c, fiber.StatusForbidden, "tidak memiliki akses")
	case errors.Is(err, service.ErrLaporanNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "laporan tidak ditemukan")
	case errors.Is(err, service.ErrTemplateNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "template tidak ditemukan")
	case errors.Is(err, service.ErrReminderNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "reminder tidak ditemukan")
	case errors.Is(err, service.ErrPegawaiNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "pegawai tidak ditemukan")
	case errors.Is(err, service.ErrInvalidState):
		return utils.SendError(c, fiber.StatusConflict, "status laporan tidak mengizinkan aksi ini")
	case errors.Is(err, gorm.ErrRecordNotFound):
		return utils.SendError(c, fiber.StatusNotFound, "data tidak ditemukan")
	default:
		logger.Error().Err(err).Msg("internal server error")
		return utils.SendError(c, fiber.StatusInternalServerError, "internal server error")
	}
}
