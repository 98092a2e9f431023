package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/usuarios-api/internal/application/dto"
	"github.com/jhoicas/usuarios-api/internal/domain"
	"github.com/jhoicas/usuarios-api/pkg/logger"
)

// Mensajes de error propios de la capa HTTP.
const (
	MsgInvalidBody    = "Invalid request body"
	MsgRouteNotFound  = "Route not found"
	MsgInternalServer = "Internal Server Error"
)

// ErrorHandler traduce cualquier error devuelto por un handler al sobre JSON común.
// Los 5xx se registran con el error original; al cliente solo le llega un mensaje genérico.
func ErrorHandler(log *logger.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, body := toErrorResponse(err)
		body.Status = "error"
		body.Timestamp = time.Now().UTC().Format(time.RFC3339)
		body.Path = c.OriginalURL()
		body.Method = c.Method()

		if status >= fiber.StatusInternalServerError {
			log.Error().
				Err(err).
				Str("method", body.Method).
				Str("path", body.Path).
				Interface("request_id", c.Locals("requestid")).
				Msg("error no controlado")
		}
		return c.Status(status).JSON(body)
	}
}

func toErrorResponse(err error) (int, dto.ErrorResponse) {
	var ve *domain.ValidationError
	var fe *fiber.Error
	switch {
	case errors.As(err, &ve):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: ve.Message, Required: ve.Required}
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrConflict.Error()}
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, dto.ErrorResponse{Error: domain.ErrNotFound.Error()}
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, dto.ErrorResponse{Error: domain.ErrInvalidInput.Error()}
	case errors.As(err, &fe):
		msg := fe.Message
		if fe.Code >= fiber.StatusInternalServerError {
			msg = MsgInternalServer
		}
		return fe.Code, dto.ErrorResponse{Error: msg}
	default:
		return fiber.StatusInternalServerError, dto.ErrorResponse{Error: MsgInternalServer}
	}
}

// NotFound responde 404 a cualquier ruta no registrada. Va al final de la cadena.
func NotFound(c *fiber.Ctx) error {
	return fiber.NewError(fiber.StatusNotFound, MsgRouteNotFound)
}
