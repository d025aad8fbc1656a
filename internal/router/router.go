package router

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/izakod/asn-api/internal/config"
	"github.com/izakod/asn-api/internal/handler"
	"github.com/izakod/asn-api/internal/middleware"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/observability"
)

// Dependencies groups router dependencies for registration.
type Dependencies struct {
	AuthHandler         *handler.AuthHandler
	LaporanHandler      *handler.LaporanHandler
	KategoriHandler     *handler.KategoriHandler
	TemplateHandler     *handler.TemplateHandler
	ReminderHandler     *handler.ReminderHandler
	StatistikHandler    *handler.StatistikHandler
	NotificationHandler *handler.NotificationHandler
	PegawaiHandler      *handler.PegawaiHandler
	AuditHandler        *handler.AuditHandler
	JWTMiddleware       fiber.Handler
}

// Register wires the HTTP routes into the fiber application.
func Register(app *fiber.App, cfg config.Config, deps Dependencies) {
	api := app.Group("/api/v1", func(c *fiber.Ctx) error {
		c.Set("X-Application", cfg.AppName)
		return c.Next()
	})
	api.Get("/health", handler.HealthCheck(cfg))
	app.Get("/metrics", observability.MetricsHandler())

	// Use provided JWT middleware, or a no-op if nil
	jwtMiddleware := deps.JWTMiddleware
	if jwtMiddleware == nil {
		jwtMiddleware = func(c *fiber.Ctx) error { return c.Next() }
	}

	if deps.AuthHandler != nil {
		// Login is throttled per client to slow down PIN guessing.
		auth := api.Group("/auth", middleware.RateLimit("auth", 10, time.Minute))
		deps.AuthHandler.RegisterPublic(auth)
		deps.AuthHandler.Register(auth.Group("", jwtMiddleware))
	}

	if deps.LaporanHandler != nil {
		laporan := api.Group("/laporan-kegiatan", jwtMiddleware)
		deps.LaporanHandler.Register(laporan)
	}

	if deps.KategoriHandler != nil {
		kategori := api.Group("/kategori", jwtMiddleware)
		deps.KategoriHandler.Register(kategori)
	}

	if deps.TemplateHandler != nil {
		template := api.Group("/template", jwtMiddleware)
		deps.TemplateHandler.Register(template)
	}

	if deps.ReminderHandler != nil {
		reminder := api.Group("/reminder", jwtMiddleware)
		deps.ReminderHandler.Register(reminder)
	}

	if deps.StatistikHandler != nil {
		statistik := api.Group("/statistik", jwtMiddleware)
		deps.StatistikHandler.Register(statistik)
	}

	if deps.NotificationHandler != nil {
		notifikasi := api.Group("/notifikasi", jwtMiddleware)
		deps.NotificationHandler.Register(notifikasi)
	}

	if deps.PegawaiHandler != nil {
		pegawai := api.Group("/pegawai", jwtMiddleware)
		deps.PegawaiHandler.Register(pegawai)
	}

	if deps.AuditHandler != nil {
		audit := api.Group("/audit", jwtMiddleware, middleware.RequireRole(models.RoleAdmin))
		deps.AuditHandler.Register(audit)
	}
}
