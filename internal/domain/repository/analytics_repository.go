package repository

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
)

// PedidoResumenRow fila mínima para el resumen del dashboard.
type PedidoResumenRow struct {
	Estado    string
	Total     decimal.Decimal
	CreatedAt time.Time
}

// ResumenSource entrega el conjunto de pedidos no cancelados de una lavandería.
// La implementación actual recorre la tabla completa en cada llamada; un contador
// materializado puede reemplazarla sin cambiar el caso de uso.
type ResumenSource interface {
	ListResumen(ctx context.Context, lavanderiaID string) ([]PedidoResumenRow, error)
}
