package domain

import "errors"

// Errores de dominio (sin dependencias externas). Los mensajes viajan tal cual al cliente HTTP.
var (
	ErrInvalidInput = errors.New("Invalid input")
	ErrNotFound     = errors.New("User not found")
	ErrConflict     = errors.New("Username or email already exists")
	ErrStore        = errors.New("store error")
)

// ValidationError entrada inválida con mensaje legible y, opcionalmente, los campos requeridos.
// Satisface errors.Is(err, ErrInvalidInput).
type ValidationError struct {
	Message  string
	Required []string
}

// NewValidationError construye un ValidationError.
func NewValidationError(message string, required ...string) *ValidationError {
	return &ValidationError{Message: message, Required: required}
}

func (e *ValidationError) Error() string { return e.Message }

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }
