package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// TemplateHandler wires the report template endpoints.
type TemplateHandler struct {
	service   service.TemplateService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewTemplateHandler creates a template handler instance.
func NewTemplateHandler(service service.TemplateService, validator *validator.Validate, logger zerolog.Logger) *TemplateHandler {
	return &TemplateHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "template_handler").Logger(),
	}
}

// Register binds template routes under the provided router group.
func (h *TemplateHandler) Register(router fiber.Router) {
	router.Get("", h.list)
	router.Post("", h.create)
	router.Put("/:id", h.update)
	router.Delete("/:id", h.delete)
}

func (h *TemplateHandler) list(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	templates, err := h.service.List(c.UserContext(), session)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "daftar template", templates)
}

func (h *TemplateHandler) create(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var payload dto.TemplateCreateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	template, err := h.service.Create(c.UserContext(), session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccessWithStatus(c, fiber.StatusCreated, "template dibuat", template)
}

func (h *TemplateHandler) update(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	var payload dto.TemplateUpdateRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	template, err := h.service.Update(c.UserContext(), id, session, payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "template diperbarui", template)
}

func (h *TemplateHandler) delete(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	if err := h.service.Delete(c.UserContext(), id, session); err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "template dihapus", nil)
}
