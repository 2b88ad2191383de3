package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

var _ repository.ResumenSource = (*AnalyticsRepo)(nil)

// AnalyticsRepo consultas de solo lectura para el dashboard.
type AnalyticsRepo struct {
	q Querier
}

// NewAnalyticsRepository construye el adaptador de analítica.
func NewAnalyticsRepository(q Querier) *AnalyticsRepo {
	return &AnalyticsRepo{q: q}
}

// ListResumen recorre todos los pedidos no cancelados de la lavandería.
// Costo O(n) por llamada; el índice (lavanderia_id, estado) evita leer cancelados.
func (r *AnalyticsRepo) ListResumen(ctx context.Context, lavanderiaID string) ([]repository.PedidoResumenRow, error) {
	const query = `
	SELECT estado, total, created_at
	FROM pedidos
	WHERE lavanderia_id = $1
	  AND estado <> 'cancelado'`

	rows, err := r.q.Query(ctx, query, lavanderiaID)
	if err != nil {
		return nil, fmt.Errorf("analytics.ListResumen: %w", err)
	}
	defer rows.Close()

	var results []repository.PedidoResumenRow
	for rows.Next() {
		var row repository.PedidoResumenRow
		if err := rows.Scan(&row.Estado, &row.Total, &row.CreatedAt); err != nil {
			return nil, fmt.Errorf("analytics.ListResumen scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
