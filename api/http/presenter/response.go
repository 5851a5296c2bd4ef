package presenter

import "github.com/gofiber/fiber/v2"

// Error codes returned alongside messages so clients need not parse text.
const (
	CodeBadRequest   = "bad_request"
	CodeEmptyContent = "empty_content"
	CodeTooLarge     = "file_too_large"
	CodeInternal     = "internal"
	CodeNotFound     = "not_found"
	CodeUnavailable  = "unavailable"
)

type ErrorResponse struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, code, message string) error {
	return JSON(c, status, ErrorResponse{Message: message, Code: code})
}
