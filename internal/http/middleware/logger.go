package middleware

import (
	"io"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"

	"lcaapi/internal/logging"
)

// Logger is a middleware that logs each HTTP request as one JSON line on stdout.
func Logger(loc *time.Location) fiber.Handler {
	return LoggerWithWriter(os.Stdout, loc)
}

// LoggerWithWriter logs to w. Fields:
// - ts (RFC3339Nano in loc)
// - request_id (set by RequestID)
// - method, path, status
// - latency (milliseconds, float)
func LoggerWithWriter(w io.Writer, loc *time.Location) fiber.Handler {
	return LoggerWith(logging.New(w, loc))
}

// LoggerWith logs requests through an existing logger.
func LoggerWith(logger *logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		// Status is read after the handler so errors returned to the
		// ErrorHandler are logged with their final code.
		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			}
		}
		rid := RequestIDFromCtx(c)

		entry := map[string]any{
			"msg":        "request",
			"request_id": rid,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    float64(time.Since(start).Microseconds()) / 1000,
		}
		if status >= fiber.StatusInternalServerError {
			entry["level"] = "error"
		}
		logger.Log(entry)

		return err
	}
}
