package handler

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/service"
	"github.com/izakod/asn-api/internal/utils"
)

const notificationWriteTimeout = 10 * time.Second

// NotificationHandler wires the notification endpoints including the
// websocket stream.
type NotificationHandler struct {
	service service.NotificationService
	logger  zerolog.Logger
}

// NewNotificationHandler creates a notification handler instance.
func NewNotificationHandler(service service.NotificationService, logger zerolog.Logger) *NotificationHandler {
	return &NotificationHandler{
		service: service,
		logger:  logger.With().Str("component", "notification_handler").Logger(),
	}
}

// Register binds notification routes under the provided router group.
func (h *NotificationHandler) Register(router fiber.Router) {
	router.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})

	router.Get("/ws", websocket.New(h.handleConnection))
	router.Get("", h.list)
	router.Patch("/:id/baca", h.markRead)
}

func (h *NotificationHandler) handleConnection(conn *websocket.Conn) {
	pegawaiID, ok := conn.Locals("pegawai_id").(uint)
	if !ok || pegawaiID == 0 {
		_ = conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(fiber.StatusUnauthorized, "sesi tidak valid"))
		_ = conn.Close()
		return
	}

	events, cancel := h.service.Subscribe(pegawaiID)
	defer cancel()
	defer conn.Close()

	h.logger.Info().Uint("pegawai_id", pegawaiID).Msg("notification stream connected")

	// Drain reads so close frames from the client are observed.
	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for {
		select {
		case <-done:
			h.logger.Info().Uint("pegawai_id", pegawaiID).Msg("notification stream disconnected")
			return
		case event, open := <-events:
			if !open {
				return
			}
			_ = conn.SetWriteDeadline(time.Now().Add(notificationWriteTimeout))
			if err := conn.WriteJSON(event); err != nil {
				h.logger.Debug().Err(err).Uint("pegawai_id", pegawaiID).Msg("notification stream write failed")
				return
			}
		}
	}
}

func (h *NotificationHandler) list(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	limit := parseQueryInt(c, "limit", 20)
	offset := parseQueryInt(c, "offset", 0)

	notifications, err := h.service.List(c.UserContext(), session, limit, offset)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "daftar notifikasi", notifications)
}

func (h *NotificationHandler) markRead(c *fiber.Ctx) error {
	session := sessionFromContext(c)

	id, err := parseUintParam(c, "id")
	if err != nil {
		return utils.SendError(c, fiber.StatusBadRequest, "id tidak valid")
	}

	notification, err := h.service.MarkRead(c.UserContext(), id, session)
	if err != nil {
		return handleServiceError(c, h.logger, err)
	}
	return utils.SendSuccess(c, "notifikasi dibaca", notification)
}
