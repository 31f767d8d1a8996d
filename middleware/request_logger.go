package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

// RequestLogger creates a middleware handler for structured request logging.
// Every request gets a uuid request id, stored in locals for handlers that
// want to tag their own log lines with it.
func RequestLogger(log *logrus.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		requestID := uuid.NewString()
		c.Locals("requestid", requestID)

		err := c.Next()

		statusCode := c.Response().StatusCode()
		entry := log.WithFields(logrus.Fields{
			"request_id":  requestID,
			"http_method": c.Method(),
			"uri":         c.OriginalURL(),
			"status_code": statusCode,
			"latency_ms":  time.Since(start).Milliseconds(),
			"client_ip":   c.IP(),
			"user_agent":  string(c.Request().Header.UserAgent()),
		})

		switch {
		case err != nil:
			// The error continues to Fiber's error handler; log it here
			// with request context as well.
			entry.WithField("error", err.Error()).Error("request processing failed")
		case statusCode >= 500:
			entry.Error("request completed with server error")
		case statusCode >= 400:
			entry.Warn("request completed with client error")
		default:
			entry.Info("request completed")
		}

		return err
	}
}
