package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

var _ repository.PedidoRepository = (*PedidoRepo)(nil)

const pedidoColumns = `
	id, lavanderia_id, cliente_id, estado, total, notas, cliente_nombre, cliente_telefono,
	ready_at, delivered_at, created_by, created_by_role, created_at, updated_at`

// PedidoRepo implementación de PedidoRepository (usable con pool o tx).
type PedidoRepo struct {
	q Querier
}

// NewPedidoRepository construye el adaptador. Pasar pool o tx (Querier).
func NewPedidoRepository(q Querier) *PedidoRepo {
	return &PedidoRepo{q: q}
}

// Create persiste la cabecera del pedido.
func (r *PedidoRepo) Create(ctx context.Context, p *entity.Pedido) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	query := `
		INSERT INTO pedidos (` + pedidoColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`
	_, err := r.q.Exec(ctx, query,
		p.ID, p.LavanderiaID, nullIfEmpty(p.ClienteID), p.Estado, p.Total,
		nullIfEmpty(p.Notas), nullIfEmpty(p.ClienteNombre), nullIfEmpty(p.ClienteTelefono),
		p.ReadyAt, p.DeliveredAt, nullIfEmpty(p.CreatedBy), nullIfEmpty(p.CreatedByRole),
		p.CreatedAt, p.UpdatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("pedido duplicado %s: %w", p.ID, err)
		}
		return fmt.Errorf("insert pedido: %w", err)
	}
	return nil
}

// CreateItems inserta todas las líneas en un solo batch.
func (r *PedidoRepo) CreateItems(ctx context.Context, items []*entity.PedidoItem) error {
	if len(items) == 0 {
		return nil
	}
	const query = `
		INSERT INTO pedido_items (id, pedido_id, servicio_id, cantidad, precio_unitario, subtotal, notas)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	batch := &pgx.Batch{}
	for _, it := range items {
		if it.ID == "" {
			it.ID = uuid.New().String()
		}
		batch.Queue(query,
			it.ID, it.PedidoID, nullIfEmpty(it.ServicioID), it.Cantidad,
			it.PrecioUnitario, it.Subtotal, nullIfEmpty(it.Notas),
		)
	}
	br := r.q.SendBatch(ctx, batch)
	defer br.Close()
	for range items {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("insert pedido item: %w", err)
		}
	}
	return nil
}

// GetByID obtiene un pedido de la lavandería. Devuelve nil, nil si no existe.
func (r *PedidoRepo) GetByID(ctx context.Context, lavanderiaID, id string) (*entity.Pedido, error) {
	query := `SELECT ` + pedidoColumns + ` FROM pedidos WHERE id = $1 AND lavanderia_id = $2`
	p, err := scanPedido(r.q.QueryRow(ctx, query, id, lavanderiaID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get pedido: %w", err)
	}
	return p, nil
}

// GetItems obtiene las líneas de un pedido.
func (r *PedidoRepo) GetItems(ctx context.Context, pedidoID string) ([]*entity.PedidoItem, error) {
	const query = `
		SELECT id, pedido_id, servicio_id, cantidad, precio_unitario, subtotal, notas
		FROM pedido_items WHERE pedido_id = $1 ORDER BY id`
	rows, err := r.q.Query(ctx, query, pedidoID)
	if err != nil {
		return nil, fmt.Errorf("list pedido items: %w", err)
	}
	defer rows.Close()
	var list []*entity.PedidoItem
	for rows.Next() {
		var it entity.PedidoItem
		var servicioID, notas *string
		if err := rows.Scan(&it.ID, &it.PedidoID, &servicioID, &it.Cantidad, &it.PrecioUnitario, &it.Subtotal, &notas); err != nil {
			return nil, fmt.Errorf("scan pedido item: %w", err)
		}
		it.ServicioID = derefStr(servicioID)
		it.Notas = derefStr(notas)
		list = append(list, &it)
	}
	return list, rows.Err()
}

// TransicionarEstado aplica la transición con un UPDATE condicionado al estado actual.
// Dos transiciones concurrentes sobre el mismo pedido no se pisan: la segunda ya no
// encuentra su estado de origen y recibe un TransitionError.
func (r *PedidoRepo) TransicionarEstado(ctx context.Context, lavanderiaID, id, hacia string, at time.Time) (*entity.Pedido, error) {
	if !pedido.EsEstadoValido(hacia) {
		return nil, domain.NewValidationError("estado", "estado desconocido: "+hacia)
	}
	if origenes := pedido.Origenes(hacia); len(origenes) > 0 {
		query := `
			UPDATE pedidos
			SET estado       = $3::text,
			    updated_at   = $4,
			    ready_at     = CASE WHEN $3::text IN ('listo', 'entregado') THEN COALESCE(ready_at, $4) ELSE ready_at END,
			    delivered_at = CASE WHEN $3::text = 'entregado' THEN COALESCE(delivered_at, $4) ELSE delivered_at END
			WHERE id = $1 AND lavanderia_id = $2 AND estado = ANY($5)
			RETURNING ` + pedidoColumns
		p, err := scanPedido(r.q.QueryRow(ctx, query, id, lavanderiaID, hacia, at, origenes))
		switch {
		case err == nil:
			return p, nil
		case !errors.Is(err, pgx.ErrNoRows) && !isInvalidID(err) && !isTransitionViolation(err):
			return nil, fmt.Errorf("update estado pedido: %w", err)
		}
	}
	return nil, r.transicionRechazada(ctx, lavanderiaID, id, hacia)
}

// transicionRechazada distingue pedido inexistente de transición inválida leyendo el estado actual.
func (r *PedidoRepo) transicionRechazada(ctx context.Context, lavanderiaID, id, hacia string) error {
	var actual string
	err := r.q.QueryRow(ctx, `SELECT estado FROM pedidos WHERE id = $1 AND lavanderia_id = $2`, id, lavanderiaID).Scan(&actual)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) || isInvalidID(err) {
			return domain.ErrNotFound
		}
		return fmt.Errorf("get estado pedido: %w", err)
	}
	return &domain.TransitionError{Desde: actual, Hacia: hacia}
}

// Search lista pedidos de la lavandería ordenados por created_at DESC, id DESC,
// aplicando en SQL el filtro exacto de estado y el cursor.
func (r *PedidoRepo) Search(ctx context.Context, f repository.PedidoFiltro) ([]*entity.Pedido, error) {
	var sb strings.Builder
	args := []any{f.LavanderiaID}
	sb.WriteString(`SELECT ` + pedidoColumns + ` FROM pedidos WHERE lavanderia_id = $1`)
	if f.Estado != "" {
		args = append(args, f.Estado)
		fmt.Fprintf(&sb, " AND estado = $%d", len(args))
	}
	if f.Despues != nil {
		args = append(args, f.Despues.CreatedAt, f.Despues.ID)
		fmt.Fprintf(&sb, " AND (created_at, id) < ($%d, $%d::uuid)", len(args)-1, len(args))
	}
	sb.WriteString(" ORDER BY created_at DESC, id DESC")
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := r.q.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("search pedidos: %w", err)
	}
	defer rows.Close()
	var list []*entity.Pedido
	for rows.Next() {
		p, err := scanPedido(rows)
		if err != nil {
			return nil, fmt.Errorf("scan pedido: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

func scanPedido(row pgx.Row) (*entity.Pedido, error) {
	var p entity.Pedido
	var clienteID, notas, clienteNombre, clienteTel, createdBy, createdByRole *string
	err := row.Scan(
		&p.ID, &p.LavanderiaID, &clienteID, &p.Estado, &p.Total, &notas, &clienteNombre, &clienteTel,
		&p.ReadyAt, &p.DeliveredAt, &createdBy, &createdByRole, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	p.ClienteID = derefStr(clienteID)
	p.Notas = derefStr(notas)
	p.ClienteNombre = derefStr(clienteNombre)
	p.ClienteTelefono = derefStr(clienteTel)
	p.CreatedBy = derefStr(createdBy)
	p.CreatedByRole = derefStr(createdByRole)
	return &p, nil
}
