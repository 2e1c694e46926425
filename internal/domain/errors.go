package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound     = errors.New("recurso no encontrado")
	ErrInvalidInput = errors.New("entrada inválida")
)

// ValidationError indica campos obligatorios ausentes o valores fuera de rango.
// El store no se modifica cuando se devuelve este error.
type ValidationError struct {
	Entity string
	Fields []string
}

// NewValidationError construye el error con los campos en el orden recibido.
func NewValidationError(entity string, fields ...string) *ValidationError {
	return &ValidationError{Entity: entity, Fields: fields}
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s: %s", e.Entity, ErrInvalidInput.Error(), strings.Join(e.Fields, ", "))
}

// Is permite errors.Is(err, domain.ErrInvalidInput).
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// NotFoundError indica que el identificador no existe en la colección.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q: %s", e.Entity, e.ID, ErrNotFound.Error())
}

// Is permite errors.Is(err, domain.ErrNotFound).
func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// FieldErrors acumula los campos inválidos durante una validación.
type FieldErrors []string

// Require agrega field si value está vacío (solo espacios cuenta como vacío).
func (f *FieldErrors) Require(field, value string) {
	if strings.TrimSpace(value) == "" {
		*f = append(*f, field)
	}
}

// Check agrega field si ok es falso.
func (f *FieldErrors) Check(field string, ok bool) {
	if !ok {
		*f = append(*f, field)
	}
}

// Err devuelve nil si no hubo campos inválidos.
func (f FieldErrors) Err(entity string) error {
	if len(f) == 0 {
		return nil
	}
	return NewValidationError(entity, f...)
}
