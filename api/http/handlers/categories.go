package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resume-category/api/http/presenter"
	"github.com/artem13815/resume-category/pkg/category"
	"github.com/artem13815/resume-category/pkg/model"
)

// CategoriesHandler exposes the label table and the loaded model.
type CategoriesHandler struct {
	artifacts *model.Artifacts
}

func NewCategoriesHandler(a *model.Artifacts) *CategoriesHandler {
	return &CategoriesHandler{artifacts: a}
}

// List returns the fixed category table.
// @Summary List job categories
// @Tags    categories
// @Produce json
// @Success 200 {object} map[string]any
// @Router  /categories [get]
func (h *CategoriesHandler) List(c *fiber.Ctx) error {
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"categories": category.All(),
		"unknown":    category.Unknown,
	})
}

// Model describes the loaded artifacts.
// @Summary Loaded model information
// @Tags    categories
// @Produce json
// @Success 200 {object} map[string]any
// @Failure 503 {object} presenter.ErrorResponse
// @Router  /model [get]
func (h *CategoriesHandler) Model(c *fiber.Ctx) error {
	a := h.artifacts
	if a == nil || a.Vectorizer == nil || a.Classifier == nil {
		return presenter.Error(c, http.StatusServiceUnavailable, presenter.CodeUnavailable, "model not loaded")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{
		"version":  a.Manifest.Version,
		"features": a.Vectorizer.Dim(),
		"classes":  len(a.Classifier.Classes()),
	})
}
