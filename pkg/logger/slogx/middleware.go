package slogx

import (
	"log/slog"
	"time"

	"github.com/gofiber/fiber/v2"
)

// FiberMiddleware logs the start and the outcome of every request.
func FiberMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		logger := Default()
		ctx := c.UserContext()

		method := slog.String("method", c.Method())
		path := slog.String("path", c.Path())
		logger.Debug(ctx, "start handling request", method, path)

		err := c.Next()

		durAttr := slog.Duration("duration", time.Since(start))
		if err != nil {
			logger.Warn(ctx, "finish with error", method, path, durAttr, Err(err))
		} else {
			logger.Info(
				ctx,
				"finish success",
				method,
				path,
				slog.Int("status", c.Response().StatusCode()),
				durAttr,
			)
		}

		return err
	}
}
