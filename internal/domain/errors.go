package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound = errors.New("recurso no encontrado")
)

// GuardError bloquea una eliminación antes de intentar la llamada remota,
// por una regla referencial (productos asociados) o de protección (usuario admin).
type GuardError struct {
	Reason string
}

func (e *GuardError) Error() string { return e.Reason }

// NewGuardError construye el error de guard con el motivo visible para el usuario.
func NewGuardError(reason string) *GuardError {
	return &GuardError{Reason: reason}
}
