package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"quotation-service/src/pkg/log"
)

// NewLogger tags every request with an id and logs method, path, status and
// latency once the handler chain finishes.
func NewLogger() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		requestID := ctx.Get("X-Request-ID")
		if requestID == "" {
			requestID = uuid.NewString()
		}
		ctx.Locals("request_id", requestID)
		ctx.Set("X-Request-ID", requestID)

		start := time.Now()
		err := ctx.Next()

		logger := log.GetLogger()
		logger.Info(
			"http",
			ctx.Method()+" "+ctx.Path(),
			requestID,
			time.Since(start).String(),
		)
		return err
	}
}
