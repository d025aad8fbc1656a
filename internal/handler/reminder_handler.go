package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// ReminderHandler wires the personal reminder schedule endpoints.
type ReminderHandler struct {
	service   service.ReminderService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewReminderHandler creates a reminder handler instance.
func NewReminderHandler(service service.ReminderService, validator *validator.Validate, logger zerolog.Logger) *ReminderHandler {
	return &ReminderHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "reminder_handler").Logger(),
	}
}

// Register binds reminder routes under the provided router group.
func (h *ReminderHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Delete("/:id", h.delete)
}

func (h *ReminderHandler) list(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	reminders, err := h.service.List(c.UserContext(), session)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "daftar reminder", reminders)
}

func (h *ReminderHandler) create(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var payload dto.ReminderCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	reminder, err := h.service.Create(c.UserContext(), session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "reminder dibuat", reminder)
}

func (h *ReminderHandler) delete(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := h.service.Delete(c.UserContext(), id, session); err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "reminder dihapus", nil)
}
