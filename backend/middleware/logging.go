package middleware

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"courtside/backend/utils"
)

// LoggingMiddleware writes one line per request.
func LoggingMiddleware(logger *log.Logger, colors bool) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		method := c.Method()
		reset := ""
		statusColor, methodColor := "", ""
		if colors {
			statusColor, methodColor, reset = utils.StatusColor(status), utils.MethodColor(method), "\033[0m"
		}

		errMsg := "-"
		if err != nil {
			errMsg = err.Error()
		}

		logger.Printf(
			"%s %s%s%s %s %s%d%s %v %q %s",
			c.IP(),
			methodColor, method, reset,
			c.Path(),
			statusColor, status, reset,
			time.Since(start),
			c.Get(fiber.HeaderUserAgent),
			errMsg,
		)

		return err
	}
}
