package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CrearWalkInRequest body para POST /api/pedidos/walk-in.
// ClienteNombre y ClienteTelefono son opcionales: el cliente de mostrador no tiene cuenta.
type CrearWalkInRequest struct {
	ClienteNombre   string              `json:"cliente_nombre,omitempty"`
	ClienteTelefono string              `json:"cliente_telefono,omitempty"`
	Notas           string              `json:"notas,omitempty"`
	Items           []WalkInItemRequest `json:"items"`
}

// WalkInItemRequest línea del pedido. Subtotal es opcional; si viene debe coincidir con
// cantidad × precio_unitario.
type WalkInItemRequest struct {
	ServicioID     string          `json:"servicio_id,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Notas          string          `json:"notas,omitempty"`
}

// TransicionRequest body para PATCH /api/pedidos/:id/estado.
type TransicionRequest struct {
	Estado string `json:"estado"`
}

// BuscarPedidosRequest query de GET /api/pedidos.
type BuscarPedidosRequest struct {
	Estado string `query:"estado"` // vacío o "all" = todos
	Q      string `query:"q"`
	Cursor string `query:"cursor"`
	Limit  int    `query:"limit"`
}

// PedidoResponse cabecera de un pedido en listados y respuestas de transición.
type PedidoResponse struct {
	ID              string          `json:"id"`
	LavanderiaID    string          `json:"lavanderia_id"`
	ClienteID       string          `json:"cliente_id,omitempty"`
	ClienteNombre   string          `json:"cliente_nombre,omitempty"`
	ClienteTelefono string          `json:"cliente_telefono,omitempty"`
	Estado          string          `json:"estado"`
	Siguientes      []string        `json:"siguientes"`
	Total           decimal.Decimal `json:"total"`
	Notas           string          `json:"notas,omitempty"`
	NotasDisplay    string          `json:"notas_display,omitempty"` // "Cliente: X | Tel: Y | Notas: Z"
	ReadyAt         *time.Time      `json:"ready_at,omitempty"`
	DeliveredAt     *time.Time      `json:"delivered_at,omitempty"`
	CreatedBy       string          `json:"created_by,omitempty"`
	CreatedByRole   string          `json:"created_by_role,omitempty"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// PedidoItemResponse línea de detalle con datos del catálogo cuando existen.
type PedidoItemResponse struct {
	ID             string          `json:"id"`
	ServicioID     string          `json:"servicio_id,omitempty"`
	ServicioNombre string          `json:"servicio_nombre,omitempty"`
	Unidad         string          `json:"unidad,omitempty"`
	Cantidad       int             `json:"cantidad"`
	PrecioUnitario decimal.Decimal `json:"precio_unitario"`
	Subtotal       decimal.Decimal `json:"subtotal"`
	Notas          string          `json:"notas,omitempty"`
}

// PedidoDetalleResponse pedido completo para GET /api/pedidos/:id.
type PedidoDetalleResponse struct {
	PedidoResponse
	ClienteEmail     string               `json:"cliente_email,omitempty"`
	Items            []PedidoItemResponse `json:"items"`
	TotalItems       decimal.Decimal      `json:"total_items"`
	TotalConsistente bool                 `json:"total_consistente"`
}

// PedidoListResponse página de resultados de búsqueda.
type PedidoListResponse struct {
	Items []PedidoResponse `json:"items"`
	Page  CursorPage       `json:"page"`
}
