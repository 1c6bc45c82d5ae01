package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrPersistence        = errors.New("error de persistencia")
)

// FieldError describe un campo inválido de la entrada.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError agrupa los campos inválidos detectados antes de tocar el almacenamiento.
// errors.Is(err, ErrInvalidInput) es verdadero para cualquier ValidationError.
type ValidationError struct {
	Fields []FieldError
}

// NewValidationError construye el error con uno o más campos.
func NewValidationError(fields ...FieldError) *ValidationError {
	return &ValidationError{Fields: fields}
}

func (e *ValidationError) Error() string {
	if len(e.Fields) == 0 {
		return ErrInvalidInput.Error()
	}
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return ErrInvalidInput.Error() + ": " + strings.Join(parts, "; ")
}

// Is permite errors.Is(err, ErrInvalidInput).
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// PersistenceError falla del almacenamiento en lectura, escritura o append de historial.
// Op identifica la operación ("inventory.create", "movement.append", ...).
type PersistenceError struct {
	Op  string
	Err error
}

// NewPersistenceError envuelve err salvo que ya sea un error de dominio conocido
// (ErrNotFound, ValidationError, ...), que se devuelve sin cambios.
func NewPersistenceError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrNotFound) || errors.Is(err, ErrInvalidInput) || errors.Is(err, ErrPersistence) ||
		errors.Is(err, ErrEmailAlreadyExists) {
		return err
	}
	return &PersistenceError{Op: op, Err: err}
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s: %s: %v", ErrPersistence.Error(), e.Op, e.Err)
}

// Unwrap expone la causa original.
func (e *PersistenceError) Unwrap() error { return e.Err }

// Is permite errors.Is(err, ErrPersistence).
func (e *PersistenceError) Is(target error) bool {
	return target == ErrPersistence
}
