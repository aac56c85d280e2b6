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
	"github.com/zentraqms/zentra-api/internal/application/auth"
	appreps "github.com/zentraqms/zentra-api/internal/application/reps"
	"github.com/zentraqms/zentra-api/internal/application/usecase"
	infrapdf "github.com/zentraqms/zentra-api/internal/infrastructure/pdf"
	"github.com/zentraqms/zentra-api/internal/infrastructure/postgres"
	httpRouter "github.com/zentraqms/zentra-api/internal/interfaces/http"
	"github.com/zentraqms/zentra-api/pkg/config"
	"github.com/zentraqms/zentra-api/pkg/logger"
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

	orgRepo := postgres.NewOrganizationRepository(pool)
	sedeRepo := postgres.NewSedeRepository(pool)
	cargoRepo := postgres.NewCargoRepository(pool)
	userRepo := postgres.NewUserRepository(pool)
	repsRepo := postgres.NewRepsRepository(pool)
	txRunner := postgres.NewTxRunner(pool)

	organizationUC := usecase.NewOrganizationUseCase(orgRepo)
	sedeUC := usecase.NewSedeUseCase(sedeRepo, orgRepo)
	cargoUC := usecase.NewCargoUseCase(cargoRepo)
	onboardingUC := usecase.NewOnboardingUseCase(txRunner, orgRepo)
	userUC := usecase.NewUserUseCase(userRepo)

	// PDF: ficha imprimible de la organización
	pdfGenerator := infrapdf.NewMarotoPDFGenerator()
	fichaUC := usecase.NewFichaUseCase(orgRepo, sedeRepo, pdfGenerator)

	repsImportUC := appreps.NewImportUseCase(repsRepo)
	repsListUC := appreps.NewListUseCase(repsRepo)

	authUC := auth.NewAuthUseCase(userRepo, orgRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		BodyLimit:    cfg.REPS.MaxUploadMB * 1024 * 1024,
	})
	app.Use(recover.New())

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "ZentraQMS API",
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		OrganizationUC: organizationUC,
		FichaUC:        fichaUC,
		SedeUC:         sedeUC,
		CargoUC:        cargoUC,
		OnboardingUC:   onboardingUC,
		UserUC:         userUC,
		RepsImportUC:   repsImportUC,
		RepsListUC:     repsListUC,
		AuthUC:         authUC,
		JWTSecret:      cfg.JWT.Secret,
		RepsEncoding:   cfg.REPS.Encoding,
		RepsMaxMB:      cfg.REPS.MaxUploadMB,
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
