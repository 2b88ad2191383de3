package repository

import (
	"context"
	"time"

	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

// Cursor posición de paginación por llave (created_at DESC, id DESC).
type Cursor struct {
	CreatedAt time.Time
	ID        string
}

// PedidoFiltro filtros que el almacén aplica en SQL.
type PedidoFiltro struct {
	LavanderiaID string
	Estado       string  // vacío = todos
	Despues      *Cursor // nil = desde el más reciente
	Limit        int
}

// PedidoRepository define el puerto de persistencia para Pedido e ítems.
// Toda operación está acotada por lavandería. No existe un Update genérico: el único camino
// de escritura del estado es TransicionarEstado, que respeta la tabla de transiciones.
type PedidoRepository interface {
	Create(ctx context.Context, pedido *entity.Pedido) error
	CreateItems(ctx context.Context, items []*entity.PedidoItem) error
	// GetByID devuelve nil, nil si el pedido no existe en la lavandería.
	GetByID(ctx context.Context, lavanderiaID, id string) (*entity.Pedido, error)
	GetItems(ctx context.Context, pedidoID string) ([]*entity.PedidoItem, error)
	// TransicionarEstado aplica hacia solo si el estado actual lo permite, en un único UPDATE
	// condicional. Devuelve domain.ErrNotFound o un *domain.TransitionError.
	TransicionarEstado(ctx context.Context, lavanderiaID, id, hacia string, at time.Time) (*entity.Pedido, error)
	Search(ctx context.Context, filtro PedidoFiltro) ([]*entity.Pedido, error)
}
