package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
)

// ValidationError error de validación de entrada con mensaje por campo,
// p. ej. "Duration must be a number". Se traduce a HTTP 400 en un único punto.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NewValidationError construye un ValidationError con el mensaje dado.
func NewValidationError(msg string) *ValidationError {
	return &ValidationError{Message: msg}
}
