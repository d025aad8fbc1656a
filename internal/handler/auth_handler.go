package handler

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/dto"
	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// AuthHandler wires the NIP and PIN login flow plus device registration.
type AuthHandler struct {
	service   service.AuthService
	validator *validator.Validate
	logger    zerolog.Logger
}

// NewAuthHandler creates an auth handler instance.
func NewAuthHandler(service service.AuthService, validator *validator.Validate, logger zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		service:   service,
		validator: validator,
		logger:    logger.With().Str("component", "auth_handler").Logger(),
	}
}

// RegisterPublic binds the unauthenticated login route.
func (h *AuthHandler) RegisterPublic(router fiber.Router) {
	router.Post("/login", h.login)
}

// Register binds routes that require an authenticated session.
func (h *AuthHandler) Register(router fiber.Router) {
	router.Post("/device", h.registerDevice)
	router.Post("/logout", h.logout)
}

func (h *AuthHandler) login(c *fiber.Ctx) error {
	var payload dto.LoginRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	result, err := h.service.Login(c.UserContext(), payload)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "login berhasil", result)
}

func (h *AuthHandler) registerDevice(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	var payload dto.DeviceTokenRequest
	if err := c.BodyParser(&payload); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "body tidak valid")
	}

	if err := h.service.RegisterDevice(c.UserContext(), session, payload); err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "perangkat terdaftar", nil)
}

func (h *AuthHandler) logout(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	if err := h.service.Logout(c.UserContext(), session); err != nil {
		return handleServiceError(c, h.logger, err)
	}

	return utils.SendSuccess(c, "logout berhasil", nil)
}
