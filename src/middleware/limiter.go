package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"

	"github.com/devfolio/Backend-Dev-Folio/src/apperror"
)

// RateLimiter answers 429 once a client exceeds max requests per minute. It
// is only mounted when RATE_LIMIT_ENABLED is set; the default deployment runs
// without it.
func RateLimiter(max int) fiber.Handler {
	return limiter.New(limiter.Config{
		Max:        max,
		Expiration: 1 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			return apperror.TooManyRequests("Too many requests, slow down")
		},
	})
}
