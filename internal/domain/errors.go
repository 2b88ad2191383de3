package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrValidation        = errors.New("entrada inválida")
	ErrInvalidTransition = errors.New("transición de estado no permitida")
	ErrPartialFailure    = errors.New("creación parcial del pedido")
	ErrAggregation       = errors.New("no se pudo calcular el resumen")
	ErrUnauthorized      = errors.New("no autorizado")
	ErrForbidden         = errors.New("acceso denegado")
	ErrTotalInconsistent = errors.New("el total no coincide con la suma de los ítems")
)

// ValidationError describe qué campo de la entrada es inválido y por qué.
type ValidationError struct {
	Campo  string
	Motivo string
}

func (e *ValidationError) Error() string {
	if e.Campo == "" {
		return fmt.Sprintf("%s: %s", ErrValidation.Error(), e.Motivo)
	}
	return fmt.Sprintf("%s: %s: %s", ErrValidation.Error(), e.Campo, e.Motivo)
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError construye un ValidationError.
func NewValidationError(campo, motivo string) error {
	return &ValidationError{Campo: campo, Motivo: motivo}
}

// TransitionError se devuelve cuando el estado solicitado no está en la tabla de siguientes
// del estado actual.
type TransitionError struct {
	Desde string
	Hacia string
}

func (e *TransitionError) Error() string {
	return fmt.Sprintf("%s: %s -> %s", ErrInvalidTransition.Error(), e.Desde, e.Hacia)
}

func (e *TransitionError) Unwrap() error { return ErrInvalidTransition }

// PartialFailureError indica que la cabecera se insertó pero los ítems fallaron.
// La transacción se revierte antes de devolverlo.
type PartialFailureError struct {
	PedidoID string
	Err      error
}

func (e *PartialFailureError) Error() string {
	return fmt.Sprintf("%s %s: %v", ErrPartialFailure.Error(), e.PedidoID, e.Err)
}

// Unwrap permite errors.Is tanto con ErrPartialFailure como con la causa.
func (e *PartialFailureError) Unwrap() []error { return []error{ErrPartialFailure, e.Err} }

// AggregationError envuelve el fallo de la fuente de datos del dashboard.
type AggregationError struct {
	Err error
}

func (e *AggregationError) Error() string {
	return fmt.Sprintf("%s: %v", ErrAggregation.Error(), e.Err)
}

func (e *AggregationError) Unwrap() []error { return []error{ErrAggregation, e.Err} }
