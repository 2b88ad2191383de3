package pedidos

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"
	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
	"github.com/shopspring/decimal"
)

// Límites de las columnas: cantidad INTEGER, montos NUMERIC(12,2).
const (
	decimalesMonto = 2
	cantidadMaxima = math.MaxInt32
)

var montoMaximo = decimal.New(1, 10) // 10^10, exclusivo

// WalkInUseCase crea pedidos de mostrador (clientes sin cuenta) con sus ítems.
type WalkInUseCase struct {
	tx    TxRunner
	clock Clock
	log   *logger.Logger
}

// NewWalkInUseCase construye el caso de uso. clock puede ser nil.
func NewWalkInUseCase(tx TxRunner, clock Clock, log *logger.Logger) *WalkInUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &WalkInUseCase{tx: tx, clock: clock, log: log.Component("walk_in")}
}

// Crear valida los ítems, calcula subtotales y total, y persiste cabecera e ítems en una
// sola transacción. Si falla la inserción de ítems devuelve *domain.PartialFailureError y
// no queda nada escrito.
func (uc *WalkInUseCase) Crear(ctx context.Context, a auth.Contexto, lavanderiaID string, in dto.CrearWalkInRequest) (*dto.PedidoDetalleResponse, error) {
	if err := a.Autorizar(auth.AccionCrearWalkIn, lavanderiaID); err != nil {
		return nil, err
	}
	if len(in.Items) == 0 {
		return nil, domain.NewValidationError("items", "el pedido debe tener al menos un ítem")
	}
	for i, it := range in.Items {
		if err := validarItem(i, it); err != nil {
			return nil, err
		}
	}

	now := uc.clock.now().UTC()
	p := &entity.Pedido{
		ID:              uuid.New().String(),
		LavanderiaID:    lavanderiaID,
		Estado:          entity.EstadoCreado,
		Notas:           strings.TrimSpace(in.Notas),
		ClienteNombre:   strings.TrimSpace(in.ClienteNombre),
		ClienteTelefono: strings.TrimSpace(in.ClienteTelefono),
		CreatedBy:       a.UsuarioID,
		CreatedByRole:   a.Rol,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	var (
		items     []*entity.PedidoItem
		servicios map[string]*entity.Servicio
	)
	err := uc.tx.RunPedidos(ctx, func(pedidoRepo repository.PedidoRepository, servicioRepo repository.ServicioRepository) error {
		var err error
		servicios, err = cargarServicios(ctx, servicioRepo, lavanderiaID, in.Items)
		if err != nil {
			return err
		}
		items, err = construirItems(p.ID, in.Items, servicios)
		if err != nil {
			return err
		}
		total := decimal.Zero
		for _, it := range items {
			total = total.Add(it.Subtotal)
		}
		if total.GreaterThanOrEqual(montoMaximo) {
			return domain.NewValidationError("items", "el total excede el máximo permitido")
		}
		p.Total = total

		if err := pedidoRepo.Create(ctx, p); err != nil {
			return fmt.Errorf("walk-in: crear pedido: %w", err)
		}
		if err := pedidoRepo.CreateItems(ctx, items); err != nil {
			return &domain.PartialFailureError{PedidoID: p.ID, Err: err}
		}
		return nil
	})
	if err != nil {
		var pf *domain.PartialFailureError
		if errors.As(err, &pf) {
			uc.log.Warn().Err(pf.Err).
				Str("pedido_id", pf.PedidoID).
				Str("lavanderia_id", lavanderiaID).
				Int("items", len(in.Items)).
				Msg("fallo al insertar ítems; transacción revertida")
		}
		return nil, err
	}

	uc.log.Info().
		Str("pedido_id", p.ID).
		Str("lavanderia_id", lavanderiaID).
		Str("total", p.Total.String()).
		Msg("pedido de mostrador creado")

	c := contacto{nombre: p.ClienteNombre, telefono: p.ClienteTelefono}
	return toDetalleResponse(p, c, items, servicios), nil
}

func validarItem(i int, it dto.WalkInItemRequest) error {
	campo := fmt.Sprintf("items[%d]", i)
	if it.Cantidad <= 0 {
		return domain.NewValidationError(campo+".cantidad", "debe ser mayor que cero")
	}
	if it.Cantidad > cantidadMaxima {
		return domain.NewValidationError(campo+".cantidad", "excede el máximo permitido")
	}
	if err := validarMonto(campo+".precio_unitario", it.PrecioUnitario); err != nil {
		return err
	}
	return validarMonto(campo+".subtotal", it.Subtotal)
}

// validarMonto exige que el monto quepa en NUMERIC(12,2) sin redondeo.
func validarMonto(campo string, m decimal.Decimal) error {
	if m.IsNegative() {
		return domain.NewValidationError(campo, "no puede ser negativo")
	}
	if !m.Equal(m.Truncate(decimalesMonto)) {
		return domain.NewValidationError(campo, "admite como máximo 2 decimales")
	}
	if m.GreaterThanOrEqual(montoMaximo) {
		return domain.NewValidationError(campo, "excede el máximo permitido")
	}
	return nil
}

func cargarServicios(ctx context.Context, repo repository.ServicioRepository, lavanderiaID string, in []dto.WalkInItemRequest) (map[string]*entity.Servicio, error) {
	var ids []string
	seen := make(map[string]struct{})
	for _, it := range in {
		id := strings.TrimSpace(it.ServicioID)
		if id == "" {
			continue
		}
		if _, ok := seen[id]; !ok {
			seen[id] = struct{}{}
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return map[string]*entity.Servicio{}, nil
	}
	servicios, err := repo.GetByIDs(ctx, lavanderiaID, ids)
	if err != nil {
		return nil, fmt.Errorf("walk-in: catálogo: %w", err)
	}
	return servicios, nil
}

// construirItems resuelve precios del catálogo y recalcula subtotales.
func construirItems(pedidoID string, in []dto.WalkInItemRequest, servicios map[string]*entity.Servicio) ([]*entity.PedidoItem, error) {
	items := make([]*entity.PedidoItem, 0, len(in))
	for i, it := range in {
		campo := fmt.Sprintf("items[%d]", i)
		servicioID := strings.TrimSpace(it.ServicioID)
		precio := it.PrecioUnitario
		if servicioID != "" {
			s, ok := servicios[servicioID]
			if !ok {
				return nil, domain.NewValidationError(campo+".servicio_id", "servicio no encontrado en el catálogo")
			}
			if precio.IsZero() {
				precio = s.Precio
			}
		}
		subtotal := precio.Mul(decimal.NewFromInt(int64(it.Cantidad)))
		if subtotal.GreaterThanOrEqual(montoMaximo) {
			return nil, domain.NewValidationError(campo+".subtotal", "excede el máximo permitido")
		}
		if !it.Subtotal.IsZero() && !it.Subtotal.Equal(subtotal) {
			return nil, domain.NewValidationError(campo+".subtotal",
				fmt.Sprintf("no coincide con cantidad × precio (%s)", subtotal.String()))
		}
		items = append(items, &entity.PedidoItem{
			ID:             uuid.New().String(),
			PedidoID:       pedidoID,
			ServicioID:     servicioID,
			Cantidad:       it.Cantidad,
			PrecioUnitario: precio,
			Subtotal:       subtotal,
			Notas:          strings.TrimSpace(it.Notas),
		})
	}
	return items, nil
}
