package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// KategoriHandler serves the activity category catalogue.
type KategoriHandler struct {
	service service.KategoriService
	logger  zerolog.Logger
}

// NewKategoriHandler creates a category handler instance.
func NewKategoriHandler(service service.KategoriService, logger zerolog.Logger) *KategoriHandler {
	return &KategoriHandler{
		service: service,
		logger:  logger.With().Str("component", "kategori_handler").Logger(),
	}
}

// Register binds category routes under the provided router group.
func (h *KategoriHandler) Register(router fiber.Router) {
	router.Get("", h.list)
}

func (h *KategoriHandler) list(c *fiber.Ctx) error {
	categories, err := h.service.List(c.UserContext())
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "daftar kategori", categories)
}
