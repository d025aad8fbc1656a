package handler

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

// PegawaiHandler serves employee profile lookups.
type PegawaiHandler struct {
	service service.PegawaiService
	logger  zerolog.Logger
}

// NewPegawaiHandler creates an employee handler instance.
func NewPegawaiHandler(service service.PegawaiService, logger zerolog.Logger) *PegawaiHandler {
	return &PegawaiHandler{
		service: service,
		logger:  logger.With().Str("component", "pegawai_handler").Logger(),
	}
}

// Register binds employee routes under the provided router group.
func (h *PegawaiHandler) Register(router fiber.Router) {
	router.Get("/bawahan", h.bawahan)
	router.Get("/:nip", h.getByNIP)
}

func (h *PegawaiHandler) bawahan(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	subordinates, err := h.service.ListBawahan(c.UserContext(), session)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "daftar bawahan", subordinates)
}

func (h *PegawaiHandler) getByNIP(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	nip := strings.TrimSpace(c.Params("nip"))
	if nip == "" {
		return utils.SendError(c, fiber.StatusBadRequest, "nip wajib diisi")
	}

	profile, err := h.service.GetByNIP(c.UserContext(), session, nip)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "profil pegawai", profile)
}
