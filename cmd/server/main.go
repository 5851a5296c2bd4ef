// @title         resume-category API
// @version       1.0
// @description   Классификация резюме по 25 категориям вакансий с помощью предобученной модели TF-IDF.
// @BasePath      /api/v1
// @schemes       http
// @host          localhost:8080
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	swagger "github.com/gofiber/swagger"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	_ "github.com/artem13815/resume-category/docs"

	// internal imports
	"github.com/artem13815/resume-category/api/http"
	"github.com/artem13815/resume-category/api/http/handlers"
	"github.com/artem13815/resume-category/api/http/middleware"
	"github.com/artem13815/resume-category/pkg/bootstrap"
	"github.com/artem13815/resume-category/pkg/category"
	"github.com/artem13815/resume-category/pkg/config"
	"github.com/artem13815/resume-category/pkg/health"
	"github.com/artem13815/resume-category/pkg/logging"
	"github.com/artem13815/resume-category/pkg/resume"
	"github.com/artem13815/resume-category/pkg/telemetry"
)

func main() {
	// Load configuration from env/.env
	cfg := config.Load()
	logging.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Model artifacts are loaded once and shared read-only by all requests.
	loadCtx, cancel := context.WithTimeout(ctx, 2*time.Minute)
	rt, err := bootstrap.LoadRuntime(loadCtx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("load classifier")
	}
	defer rt.Close()

	metrics := telemetry.NewProvider()
	classifier := category.NewService(rt.Artifacts)
	resumeSvc := resume.NewClassificationService(resume.NewParser(), classifier, metrics)

	resumeHandler := handlers.NewResumeHandler(resumeSvc, cfg.MaxUploadBytes)
	healthHandler := handlers.NewHealthHandler(health.NewService(rt.Checkers...))
	categoriesHandler := handlers.NewCategoriesHandler(rt.Artifacts)

	app := fiber.New(fiber.Config{
		AppName:      "resume-category",
		BodyLimit:    int(cfg.MaxUploadBytes) + 1<<20, // multipart overhead
		ReadTimeout:  time.Duration(cfg.ReadTimeoutSeconds) * time.Second,
		ErrorHandler: http.ErrorHandler,
	})
	app.Use(recover.New())
	app.Use(requestid.New(requestid.Config{Generator: uuid.NewString}))
	app.Use(middleware.RequestLogger())

	// Register routes
	http.Register(app, healthHandler, resumeHandler, categoriesHandler, metrics.Handler())

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	go func() {
		<-ctx.Done()
		log.Info().Msg("shutting down")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Error().Err(err).Msg("shutdown")
		}
	}()

	// Start server
	log.Info().Str("port", cfg.Port).Msg("HTTP server listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
