package middleware

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
	"github.com/devfolio/Backend-Dev-Folio/src/lib"
)

// ErrorHandler is the single responder every handler failure flows through.
// It normalizes apperror and fiber errors into the response envelope; nothing
// escaping a handler can crash the process (the recover middleware feeds
// panics here as 500s). Stack detail is only echoed outside production.
func ErrorHandler(sentry *lib.SentryService, production bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status := fiber.StatusInternalServerError
		message := "Internal server error"
		var violations map[string]string

		var appErr *apperror.Error
		var fiberErr *fiber.Error

		switch {
		case errors.As(err, &appErr):
			if appErr.Status > 0 {
				status = appErr.Status
			}
			message = appErr.Message
			violations = appErr.Violations
		case errors.As(err, &fiberErr):
			if fiberErr.Code > 0 {
				status = fiberErr.Code
			}
			message = fiberErr.Message
		}

		body := fiber.Map{
			"success": false,
			"message": message,
		}
		if len(violations) > 0 {
			body["errors"] = violations
		}

		if status >= fiber.StatusInternalServerError {
			log.Printf("request failed: %s %s: %v", c.Method(), c.Path(), err)
			sentry.CaptureException(err)
			if production {
				body["message"] = "Internal server error"
			} else {
				body["detail"] = err.Error()
			}
		}

		return c.Status(status).JSON(body)
	}
}
