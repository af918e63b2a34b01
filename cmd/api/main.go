package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/redis/go-redis/v9"

	"github.com/DEENUU1/Jobs-portal/internal/application/auth"
	"github.com/DEENUU1/Jobs-portal/internal/application/usecase"
	"github.com/DEENUU1/Jobs-portal/internal/infrastructure/dispatch"
	"github.com/DEENUU1/Jobs-portal/internal/infrastructure/postgres"
	httpRouter "github.com/DEENUU1/Jobs-portal/internal/interfaces/http"
	"github.com/DEENUU1/Jobs-portal/pkg/config"
	"github.com/DEENUU1/Jobs-portal/pkg/logger"
	"github.com/DEENUU1/Jobs-portal/pkg/token"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}

	log := logger.New(logger.Config{
		Env:   cfg.App.Env,
		Level: "info",
	})
	log.Info().
		Str("env", cfg.App.Env).
		Str("app", cfg.App.Name).
		Msg("iniciando aplicación")

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	accountRepo := postgres.NewAccountRepository(pool)
	offerRepo := postgres.NewOfferRepository(pool)
	applicationRepo := postgres.NewApplicationRepository(pool)
	reviewRepo := postgres.NewReviewRepository(pool)
	catalogRepo := postgres.NewCatalogRepository(pool)

	// Despachador de tareas: correos de activación y feedback, exportaciones CSV
	mailer := dispatch.NewMailer(cfg.SMTP, log)
	dispatcher := dispatch.NewManager(
		cfg.Dispatch.Workers, cfg.Dispatch.QueueSize,
		mailer, applicationRepo, cfg.Dispatch.ExportDir, log,
	)
	dispatcher.Start()

	activationTokens := token.New(cfg.JWT.Secret, time.Duration(cfg.JWT.ActivationTTL)*time.Hour)
	authUC := auth.NewAuthUseCase(accountRepo, dispatcher, activationTokens, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	}, cfg.App.BaseURL, log)

	reviewUC := usecase.NewReviewUseCase(reviewRepo, accountRepo)
	offerUC := usecase.NewOfferUseCase(offerRepo, catalogRepo, accountRepo, reviewRepo)
	applicationUC := usecase.NewApplicationUseCase(applicationRepo, offerRepo, dispatcher, log, cfg.App.StrictApplicationOwnership)
	companyUC := usecase.NewCompanyUseCase(accountRepo, offerRepo, applicationRepo, reviewUC)

	// Rate limiting opcional sobre Redis para las rutas públicas de escritura
	var limiter *httpRouter.RedisLimiter
	if cfg.Redis.Addr != "" {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		limiter = httpRouter.NewRedisLimiter(client)
		log.Info().Str("addr", cfg.Redis.Addr).Msg("rate limiting activado")
	}

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:        authUC,
		OfferUC:       offerUC,
		ApplicationUC: applicationUC,
		ReviewUC:      reviewUC,
		CompanyUC:     companyUC,
		Catalog:       catalogRepo,
		JWTSecret:     cfg.JWT.Secret,
		Limiter:       limiter,
		RateLimit:     cfg.Redis.ApplyLimit,
		RateWindow:    time.Duration(cfg.Redis.ApplyWindowMS) * time.Millisecond,
	})

	go func() {
		if err := app.Listen(cfg.HTTP.Addr()); err != nil {
			log.Error().Err(err).Msg("servidor HTTP finalizado")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("señal de apagado recibida, cerrando servidor...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del servidor")
	}
	if err := dispatcher.Stop(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("apagado del despachador")
	}

	log.Info().Msg("aplicación detenida")
}
