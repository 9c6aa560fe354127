package http

import (
	"errors"
	"runtime/debug"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/gympro-api/internal/application/dto"
	"github.com/tu-usuario/gympro-api/internal/domain"
	"github.com/tu-usuario/gympro-api/pkg/logger"
)

// ErrorTranslator es el único punto donde los errores se convierten en
// respuestas HTTP: mapea el tipo de error al status, registra (warn para 4xx,
// error para 5xx) y serializa el envelope {code, message, stack?}.
// El stack solo se incluye fuera de production.
type ErrorTranslator struct {
	env string
	log *logger.Logger
}

// NewErrorTranslator construye el traductor de errores.
func NewErrorTranslator(env string, log *logger.Logger) *ErrorTranslator {
	return &ErrorTranslator{env: env, log: log}
}

// Respond traduce un error de dominio a la respuesta HTTP correspondiente.
func (t *ErrorTranslator) Respond(c *fiber.Ctx, err error) error {
	var vErr *domain.ValidationError
	switch {
	case errors.As(err, &vErr):
		return t.reply(c, fiber.StatusBadRequest, "VALIDATION", vErr.Message)
	case errors.Is(err, domain.ErrEmailAlreadyExists):
		return t.reply(c, fiber.StatusConflict, "EMAIL_EXISTS", "Email already exists")
	case errors.Is(err, domain.ErrDuplicate):
		return t.reply(c, fiber.StatusConflict, "CONFLICT", err.Error())
	case errors.Is(err, domain.ErrUserNotFound):
		return t.reply(c, fiber.StatusNotFound, "NOT_FOUND", "User not found")
	case errors.Is(err, domain.ErrNotFound):
		return t.reply(c, fiber.StatusNotFound, "NOT_FOUND", "Resource not found")
	case errors.Is(err, domain.ErrUnauthorized):
		return t.reply(c, fiber.StatusUnauthorized, "UNAUTHORIZED", "Invalid email or password")
	case errors.Is(err, domain.ErrForbidden):
		return t.reply(c, fiber.StatusForbidden, "FORBIDDEN", "Unauthorized")
	default:
		return t.internal(c, err)
	}
}

// BadRequest responde 400 con un mensaje de validación específico del campo.
func (t *ErrorTranslator) BadRequest(c *fiber.Ctx, msg string) error {
	return t.reply(c, fiber.StatusBadRequest, "VALIDATION", msg)
}

// NotFound responde 404 con el mensaje del recurso ("Exercise not found", etc.).
func (t *ErrorTranslator) NotFound(c *fiber.Ctx, msg string) error {
	return t.reply(c, fiber.StatusNotFound, "NOT_FOUND", msg)
}

// Unauthorized responde 401: sin credenciales o credenciales inválidas.
func (t *ErrorTranslator) Unauthorized(c *fiber.Ctx, msg string) error {
	return t.reply(c, fiber.StatusUnauthorized, "UNAUTHORIZED", msg)
}

// Forbidden responde 403: identidad válida pero rol insuficiente.
func (t *ErrorTranslator) Forbidden(c *fiber.Ctx, msg string) error {
	return t.reply(c, fiber.StatusForbidden, "FORBIDDEN", msg)
}

// Conflict responde 409 con el mensaje del recurso duplicado.
func (t *ErrorTranslator) Conflict(c *fiber.Ctx, msg string) error {
	return t.reply(c, fiber.StatusConflict, "CONFLICT", msg)
}

// FiberErrorHandler es el ErrorHandler de la app Fiber: cubre errores que
// escapan de los handlers (incluidos los convertidos por el middleware recover).
func (t *ErrorTranslator) FiberErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if errors.As(err, &fe) && fe.Code < fiber.StatusInternalServerError {
		return t.reply(c, fe.Code, "ERROR", fe.Message)
	}
	return t.internal(c, err)
}

func (t *ErrorTranslator) internal(c *fiber.Ctx, err error) error {
	if t.log != nil {
		t.log.Error().
			Err(err).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Bytes("stack", debug.Stack()).
			Msg("error interno")
	}
	resp := dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()}
	if t.env != "production" {
		resp.Stack = string(debug.Stack())
	}
	return c.Status(fiber.StatusInternalServerError).JSON(resp)
}

// isNotFound reporta si el error es un "no encontrado" de dominio, para que
// los handlers puedan responder 404 con el mensaje propio del recurso.
func isNotFound(err error) bool {
	return errors.Is(err, domain.ErrNotFound) || errors.Is(err, domain.ErrUserNotFound)
}

func (t *ErrorTranslator) reply(c *fiber.Ctx, status int, code, msg string) error {
	if t.log != nil {
		t.log.Warn().
			Int("status", status).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Str("ip", c.IP()).
			Msg(msg)
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: msg})
}
