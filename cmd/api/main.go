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
	"github.com/tu-usuario/gympro-api/internal/application/auth"
	"github.com/tu-usuario/gympro-api/internal/application/usecase"
	"github.com/tu-usuario/gympro-api/internal/infrastructure/postgres"
	httpRouter "github.com/tu-usuario/gympro-api/internal/interfaces/http"
	"github.com/tu-usuario/gympro-api/pkg/config"
	"github.com/tu-usuario/gympro-api/pkg/logger"

	_ "github.com/tu-usuario/gympro-api/docs"
)

// @title           GymPro API
// @version         1.0
// @description     API de gestión de gimnasios: salas de entrenamiento, ejercicios, usuarios y direcciones.
// @BasePath        /
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
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

	if err := postgres.Bootstrap(ctx, pool); err != nil {
		log.Fatal().Err(err).Msg("bootstrap del esquema")
	}

	userRepo := postgres.NewUserRepository(pool)
	addressRepo := postgres.NewAddressRepository(pool)
	exerciseRepo := postgres.NewExerciseRepository(pool)
	descriptionRepo := postgres.NewDescriptionRepository(pool)
	roomRepo := postgres.NewTrainingRoomRepository(pool)

	authUC := auth.NewAuthUseCase(userRepo, auth.JWTConfig{
		Secret:     cfg.JWT.Secret,
		ExpMinutes: cfg.JWT.Expiration,
		Issuer:     cfg.JWT.Issuer,
	})
	addressUC := usecase.NewAddressUseCase(addressRepo)
	exerciseUC := usecase.NewExerciseUseCase(exerciseRepo)
	descriptionUC := usecase.NewDescriptionUseCase(descriptionRepo)
	roomUC := usecase.NewTrainingRoomUseCase(roomRepo, addressRepo, userRepo, exerciseRepo, descriptionRepo)
	userUC := usecase.NewUserUseCase(userRepo, addressRepo)

	translator := httpRouter.NewErrorTranslator(cfg.App.Env, log)

	app := fiber.New(fiber.Config{
		AppName:      cfg.App.Name,
		ReadTimeout:  time.Second * 10,
		WriteTimeout: time.Second * 10,
		IdleTimeout:  time.Second * 60,
		ErrorHandler: translator.FiberErrorHandler,
	})
	app.Use(recover.New())

	// Log de peticiones solo en desarrollo, para no ensuciar los logs de producción.
	if cfg.App.Env == "development" {
		app.Use(func(c *fiber.Ctx) error {
			start := time.Now()
			err := c.Next()
			log.Debug().
				Str("method", c.Method()).
				Str("path", c.Path()).
				Int("status", c.Response().StatusCode()).
				Dur("elapsed", time.Since(start)).
				Msg("petición")
			return err
		})
	}

	// Swagger UI en local: http://localhost:<port>/docs
	app.Use(swagger.New(swagger.Config{
		BasePath: "/",
		FilePath: "./docs/swagger.json",
		Path:     "docs",
		Title:    "GymPro API",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"message": "Welcome to the Gym API"})
	})

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{"status": "ok", "service": cfg.App.Name})
	})

	httpRouter.Router(app, httpRouter.RouterDeps{
		AuthUC:         authUC,
		AddressUC:      addressUC,
		DescriptionUC:  descriptionUC,
		ExerciseUC:     exerciseUC,
		TrainingRoomUC: roomUC,
		UserUC:         userUC,
		Users:          userRepo,
		JWTSecret:      cfg.JWT.Secret,
		Translator:     translator,
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
