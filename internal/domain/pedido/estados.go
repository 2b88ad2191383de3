// Package pedido contiene las reglas puras del ciclo de vida de un pedido:
// tabla de transiciones, coincidencia de búsqueda, notas heredadas y métricas.
package pedido

import (
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

// siguientes es la tabla de transiciones permitidas.
//
//	creado ──┬──> en_proceso ──┬──> listo ──> entregado
//	         ├─────────────────┘              ^
//	         └────────────────────────────────┘
//
// creado -> entregado cubre la entrega inmediata en mostrador.
// cancelado no es alcanzable desde esta tabla.
var siguientes = map[string][]string{
	entity.EstadoCreado:    {entity.EstadoEnProceso, entity.EstadoListo, entity.EstadoEntregado},
	entity.EstadoEnProceso: {entity.EstadoListo, entity.EstadoEntregado},
	entity.EstadoListo:     {entity.EstadoEntregado},
	entity.EstadoEntregado: {},
	entity.EstadoCancelado: {},
}

// Estados devuelve todos los estados conocidos en orden de ciclo de vida.
func Estados() []string {
	return []string{
		entity.EstadoCreado,
		entity.EstadoEnProceso,
		entity.EstadoListo,
		entity.EstadoEntregado,
		entity.EstadoCancelado,
	}
}

// EsEstadoValido informa si s es un estado conocido.
func EsEstadoValido(s string) bool {
	_, ok := siguientes[s]
	return ok
}

// EsTerminal informa si el estado no admite más transiciones.
func EsTerminal(estado string) bool {
	return len(siguientes[estado]) == 0
}

// Siguientes devuelve una copia de los estados alcanzables desde estado.
func Siguientes(estado string) []string {
	out := make([]string, len(siguientes[estado]))
	copy(out, siguientes[estado])
	return out
}

// PuedeTransicionar informa si desde -> hacia está en la tabla.
func PuedeTransicionar(desde, hacia string) bool {
	for _, s := range siguientes[desde] {
		if s == hacia {
			return true
		}
	}
	return false
}

// ValidarTransicion devuelve un *domain.TransitionError si la transición no está permitida.
func ValidarTransicion(desde, hacia string) error {
	if !EsEstadoValido(hacia) {
		return domain.NewValidationError("estado", "estado desconocido: "+hacia)
	}
	if !PuedeTransicionar(desde, hacia) {
		return &domain.TransitionError{Desde: desde, Hacia: hacia}
	}
	return nil
}

// Origenes devuelve los estados desde los que se puede llegar a hacia.
// El almacén lo usa para condicionar el UPDATE.
func Origenes(hacia string) []string {
	var out []string
	for _, desde := range Estados() {
		if PuedeTransicionar(desde, hacia) {
			out = append(out, desde)
		}
	}
	return out
}
