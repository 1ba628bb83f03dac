package httpapi

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
)

// NewApp returns a Fiber app configured with the shared error handler.
func NewApp() *fiber.App {
	return fiber.New(fiber.Config{
		AppName:               "cityweather",
		DisableStartupMessage: true,
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		UnescapePath:          true,
		ErrorHandler:          ErrorHandler,
	})
}

// ErrorHandler renders every error as {"error": true, "message": "..."}.
func ErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Internal Server Error"

	var e *fiber.Error
	if errors.As(err, &e) {
		code = e.Code
		message = e.Message
	}

	return c.Status(code).JSON(fiber.Map{
		"error":   true,
		"message": message,
	})
}
