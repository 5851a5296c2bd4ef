package http

import (
	"errors"
	nethttp "net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"

	"github.com/artem13815/resume-category/api/http/handlers"
	"github.com/artem13815/resume-category/api/http/presenter"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, health *handlers.HealthHandler, resume *handlers.ResumeHandler, categories *handlers.CategoriesHandler, metrics nethttp.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	v1.Get("/categories", categories.List)
	v1.Get("/model", categories.Model)

	// Resume classification
	rg := v1.Group("/resume")
	rg.Post("/classify", resume.Classify)
	rg.Post("/classify/text", resume.ClassifyText)

	if metrics != nil {
		app.Get("/metrics", adaptor.HTTPHandler(metrics))
	}
}

// ErrorHandler renders errors that escape handlers (body limit, unknown
// routes, recovered panics) in the same JSON shape handlers use.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	var fe *fiber.Error
	if errors.As(err, &fe) {
		code = fe.Code
	}
	switch code {
	case fiber.StatusRequestEntityTooLarge:
		return presenter.Error(c, code, presenter.CodeTooLarge, "file too large")
	case fiber.StatusNotFound:
		return presenter.Error(c, code, presenter.CodeNotFound, "route not found")
	case fiber.StatusInternalServerError:
		return presenter.Error(c, code, presenter.CodeInternal, "internal server error")
	default:
		return presenter.Error(c, code, presenter.CodeBadRequest, err.Error())
	}
}
