package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Estados del ciclo de vida de un pedido.
const (
	EstadoCreado    = "creado"
	EstadoEnProceso = "en_proceso"
	EstadoListo     = "listo"
	EstadoEntregado = "entregado"
	EstadoCancelado = "cancelado"
)

// Pedido representa la cabecera de un pedido de lavandería.
type Pedido struct {
	ID              string
	LavanderiaID    string
	ClienteID       string // perfil registrado; vacío en pedidos de mostrador
	Estado          string
	Total           decimal.Decimal
	Notas           string
	ClienteNombre   string // cliente de mostrador sin cuenta
	ClienteTelefono string
	ReadyAt         *time.Time
	DeliveredAt     *time.Time
	CreatedBy       string
	CreatedByRole   string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// PedidoItem representa una línea de un pedido. Se crea junto con la cabecera y no se modifica.
type PedidoItem struct {
	ID             string
	PedidoID       string
	ServicioID     string
	Cantidad       int
	PrecioUnitario decimal.Decimal
	Subtotal       decimal.Decimal
	Notas          string
}
