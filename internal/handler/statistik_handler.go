package handler

import (
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// StatistikHandler serves the cached monthly recap.
type StatistikHandler struct {
	service service.StatistikService
	logger  zerolog.Logger
}

// NewStatistikHandler creates a statistics handler instance.
func NewStatistikHandler(service service.StatistikService, logger zerolog.Logger) *StatistikHandler {
	return &StatistikHandler{
		service: service,
		logger:  logger.With().Str("component", "statistik_handler").Logger(),
	}
}

// Register binds statistics routes under the provided router group.
func (h *StatistikHandler) Register(router fiber.Router) {
	router.Get("/bulanan", h.bulanan)
}

func (h *StatistikHandler) bulanan(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	pegawaiID := session.PegawaiID
	if requested, err := parseQueryUint(c, "pegawai_id"); err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "pegawai_id tidak valid")
	} else if requested != nil {
		pegawaiID = *requested
	}

	recap, err := h.service.Bulanan(c.UserContext(), session, pegawaiID, c.Query("bulan"))
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "statistik bulanan", recap)
}
