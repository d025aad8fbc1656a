package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// AuditHandler exposes the admin-only audit trail listing.
type AuditHandler struct {
	service service.AuditService
	logger  zerolog.Logger
}

// NewAuditHandler creates an audit handler instance.
func NewAuditHandler(service service.AuditService, logger zerolog.Logger) *AuditHandler {
	return &AuditHandler{
		service: service,
		logger:  logger.With().Str("component", "audit_handler").Logger(),
	}
}

// Register binds audit routes under the provided router group.
func (h *AuditHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *AuditHandler) list(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var req dto.AuditListRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "parameter query tidak valid")
	}

	result, err := h.service.List(c.UserContext(), session, req)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "audit log", result)
}
