package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// RequestLogger registra una línea por petición con método, ruta, estado y latencia.
func RequestLogger(log *logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()

		// Con error, el status real lo fija el ErrorHandler después; se calcula aquí igual.
		status := c.Response().StatusCode()
		if err != nil {
			status, _ = toErrorResponse(err)
		}

		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", status).
			Dur("latency", time.Since(start)).
			Interface("request_id", c.Locals("requestid")).
			Msg("request")
		return err
	}
}
