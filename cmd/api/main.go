package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"

	"github.com/izakod/asn-api/internal/config"
	"github.com/izakod/asn-api/internal/database"
	"github.com/izakod/asn-api/internal/handler"
	"github.com/izakod/asn-api/internal/middleware"
	"github.com/izakod/asn-api/internal/models"
	"github.com/izakod/asn-api/internal/repository"
	"github.com/izakod/asn-api/internal/router"
	"github.com/izakod/asn-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.ConnectPostgres(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(
		&models.Pegawai{},
		&models.DelegasiVerifikasi{},
		&models.KategoriKegiatan{},
		&models.LaporanKegiatan{},
		&models.TemplateLaporan{},
		&models.Reminder{},
		&models.Notification{},
		&models.AuditLog{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	redisClient, err := database.ConnectRedis(cfg.RedisURL)
	if err != nil {
		log.Fatalf("failed to connect to redis: %v", err)
	}
	defer redisClient.Close()

	natsConn, err := database.ConnectNATS(cfg.NATSURL)
	if err != nil {
		log.Fatalf("failed to connect to nats: %v", err)
	}
	defer natsConn.Close()

	validate := validator.New(validator.WithRequiredStructEnabled())

	laporanRepo := repository.NewLaporanRepository(db)
	pegawaiRepo := repository.NewPegawaiRepository(db)
	kategoriRepo := repository.NewKategoriRepository(db)
	templateRepo := repository.NewTemplateRepository(db)
	reminderRepo := repository.NewReminderRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	auditRepo := repository.NewAuditLogRepository(db)
	statistikRepo := repository.NewStatistikRepository(db)

	auditService := service.NewAuditService(auditRepo, logger)
	notificationService := service.NewNotificationService(notificationRepo, redisClient, cfg.NotifChannelBase, natsConn, logger)
	laporanService := service.NewLaporanService(laporanRepo, pegawaiRepo, templateRepo, validate, auditService, logger)
	verifikasiService := service.NewVerifikasiService(laporanRepo, pegawaiRepo, validate, auditService, notificationService, cfg.VerifyTimeout, logger)
	authService := service.NewAuthService(pegawaiRepo, validate, cfg.JWTSecret, cfg.JWTExpiry, logger)
	statistikService := service.NewStatistikService(statistikRepo, pegawaiRepo, redisClient, cfg.StatistikCacheTTL, logger)
	templateService := service.NewTemplateService(templateRepo, validate, logger)
	reminderService := service.NewReminderService(reminderRepo, validate, logger)
	kategoriService := service.NewKategoriService(kategoriRepo, logger)
	pegawaiService := service.NewPegawaiService(pegawaiRepo, logger)

	runCtx, stopBroker := context.WithCancel(context.Background())
	defer stopBroker()
	notificationService.Start(runCtx)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger, CORSOrigins: cfg.CORSOrigins})
	router.Register(app, cfg, router.Dependencies{
		AuthHandler:         handler.NewAuthHandler(authService, validate, logger),
		LaporanHandler:      handler.NewLaporanHandler(laporanService, verifikasiService, validate, logger),
		KategoriHandler:     handler.NewKategoriHandler(kategoriService, logger),
		TemplateHandler:     handler.NewTemplateHandler(templateService, validate, logger),
		ReminderHandler:     handler.NewReminderHandler(reminderService, validate, logger),
		StatistikHandler:    handler.NewStatistikHandler(statistikService, logger),
		NotificationHandler: handler.NewNotificationHandler(notificationService, logger),
		PegawaiHandler:      handler.NewPegawaiHandler(pegawaiService, logger),
		AuditHandler:        handler.NewAuditHandler(auditService, logger),
		JWTMiddleware:       middleware.JWTProtected(cfg.JWTSecret),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
