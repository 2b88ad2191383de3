// Package pedidos contiene los casos de uso del ciclo de vida de pedidos: creación de
// pedidos de mostrador, transiciones de estado, búsqueda y detalle.
package pedidos

import (
	"context"
	"time"

	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

// TxRunner ejecuta una función dentro de una transacción con repos de pedidos y catálogo.
// Si fn devuelve error la transacción se revierte completa.
type TxRunner interface {
	RunPedidos(ctx context.Context, fn func(
		pedidoRepo repository.PedidoRepository,
		servicioRepo repository.ServicioRepository,
	) error) error
}

// Clock devuelve la hora actual; se inyecta para poder fijarla en tests.
type Clock func() time.Time

func (c Clock) now() time.Time {
	if c == nil {
		return time.Now()
	}
	return c()
}
