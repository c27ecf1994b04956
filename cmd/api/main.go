package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/swagger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"github.com/tu-usuario/mes-api/internal/application/auth"
	appdashboard "github.com/tu-usuario/mes-api/internal/application/dashboard"
	appdelivery "github.com/tu-usuario/mes-api/internal/application/delivery"
	infrapdf "github.com/tu-usuario/mes-api/internal/infrastructure/pdf"
	"github.com/tu-usuario/mes-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/mes-api/internal/interfaces/http"
	"github.com/tu-usuario/mes-api/pkg/config"
	"github.com/tu-usuario/mes-api/pkg/logger"
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

	if cfg.JWT.Secret == "" {
		log.Fatal().Msg("JWT_SECRET es obligatorio")
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	userRepo := postgres.NewUserRepository(pool)
	deliveryRepo := postgres.NewDeliveryRepository(pool)
	dashboardRepo := postgres.NewDashboardRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:   cfg.JWT.Secret,
		ExpHours: cfg.JWT.Expiration,
		Issuer:   cfg.JWT.Issuer,
		Audience: cfg.JWT.Audience,
	})
	deliveryUC := appdelivery.NewDeliveryUseCase(deliveryRepo, infrapdf.NewMarotoSheetGenerator())
	dashboardUC := appdashboard.NewDashboardUseCase(dashboardRepo)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "MES System API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:      authUC,
		DeliveryUC:  deliveryUC,
		DashboardUC: dashboardUC,
		Auth: httpRouter.AuthConfig{
			Secret:   cfg.JWT.Secret,
			Issuer:   cfg.JWT.Issuer,
			Audience: cfg.JWT.Audience,
		},
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

	log.Info().Msg("aplicación detenida")
}
