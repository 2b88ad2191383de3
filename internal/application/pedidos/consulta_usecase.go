package pedidos

import (
	"context"
	"fmt"
	"strings"

	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

// EstadoTodos valor del filtro de estado que desactiva el filtro.
const EstadoTodos = "all"

// PaginaConfig tamaños de página de la búsqueda.
type PaginaConfig struct {
	Default int
	Max     int
}

func (c PaginaConfig) limite(solicitado int) int {
	def, max := c.Default, c.Max
	if max <= 0 {
		max = 100
	}
	if def <= 0 || def > max {
		def = max
	}
	switch {
	case solicitado <= 0:
		return def
	case solicitado > max:
		return max
	default:
		return solicitado
	}
}

// ConsultaUseCase búsqueda y detalle de pedidos.
type ConsultaUseCase struct {
	pedidoRepo   repository.PedidoRepository
	servicioRepo repository.ServicioRepository
	perfilRepo   repository.PerfilRepository
	pagina       PaginaConfig
	log          *logger.Logger
}

// NewConsultaUseCase construye el caso de uso.
func NewConsultaUseCase(
	pedidoRepo repository.PedidoRepository,
	servicioRepo repository.ServicioRepository,
	perfilRepo repository.PerfilRepository,
	pagina PaginaConfig,
	log *logger.Logger,
) *ConsultaUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &ConsultaUseCase{
		pedidoRepo:   pedidoRepo,
		servicioRepo: servicioRepo,
		perfilRepo:   perfilRepo,
		pagina:       pagina,
		log:          log.Component("consulta"),
	}
}

// Buscar lista pedidos de la lavandería, más recientes primero.
//
// El filtro de estado se resuelve en SQL. El texto libre se evalúa aquí porque el nombre del
// cliente puede venir de su perfil o de notas heredadas; por eso se leen lotes por cursor
// hasta llenar la página o agotar los pedidos.
func (uc *ConsultaUseCase) Buscar(ctx context.Context, a auth.Contexto, lavanderiaID string, in dto.BuscarPedidosRequest) (*dto.PedidoListResponse, error) {
	if err := a.Autorizar(auth.AccionVerPedidos, lavanderiaID); err != nil {
		return nil, err
	}
	estado := strings.TrimSpace(in.Estado)
	if estado == EstadoTodos {
		estado = ""
	}
	if estado != "" && !pedido.EsEstadoValido(estado) {
		return nil, domain.NewValidationError("estado", fmt.Sprintf("estado desconocido %q", estado))
	}
	despues, err := DecodeCursor(in.Cursor)
	if err != nil {
		return nil, err
	}
	limit := uc.pagina.limite(in.Limit)
	q := strings.TrimSpace(in.Q)

	lote := limit + 1
	if q != "" {
		lote = uc.pagina.limite(0) * 2
		if lote <= limit {
			lote = limit + 1
		}
	}

	var (
		out      []dto.PedidoResponse
		hayMas   bool
		perfiles = map[string]*entity.Perfil{}
	)
	for {
		batch, err := uc.pedidoRepo.Search(ctx, repository.PedidoFiltro{
			LavanderiaID: lavanderiaID,
			Estado:       estado,
			Despues:      despues,
			Limit:        lote,
		})
		if err != nil {
			return nil, fmt.Errorf("buscar pedidos: %w", err)
		}
		if err := uc.cargarPerfiles(ctx, batch, perfiles); err != nil {
			return nil, err
		}
		for _, p := range batch {
			c := resolverContacto(p, perfiles)
			if !pedido.Coincide(q, pedido.Candidato{ID: p.ID, NombreCliente: c.nombre, Telefono: c.telefono, Notas: p.Notas}) {
				continue
			}
			if len(out) == limit {
				hayMas = true
				break
			}
			out = append(out, toPedidoResponse(p, c))
		}
		if hayMas || len(batch) < lote {
			break
		}
		last := batch[len(batch)-1]
		despues = &repository.Cursor{CreatedAt: last.CreatedAt, ID: last.ID}
	}

	resp := &dto.PedidoListResponse{
		Items: out,
		Page:  dto.CursorPage{Limit: limit},
	}
	if resp.Items == nil {
		resp.Items = []dto.PedidoResponse{}
	}
	if hayMas {
		last := out[len(out)-1]
		resp.Page.NextCursor = EncodeCursor(repository.Cursor{CreatedAt: last.CreatedAt, ID: last.ID})
	}
	return resp, nil
}

// Obtener devuelve el pedido con sus ítems, nombres de servicio y perfil del cliente.
// Si la suma de ítems no coincide con el total guardado se marca y se registra, sin corregir.
func (uc *ConsultaUseCase) Obtener(ctx context.Context, a auth.Contexto, lavanderiaID, id string) (*dto.PedidoDetalleResponse, error) {
	if err := a.Autorizar(auth.AccionVerPedidos, lavanderiaID); err != nil {
		return nil, err
	}
	p, err := uc.pedidoRepo.GetByID(ctx, lavanderiaID, id)
	if err != nil {
		return nil, fmt.Errorf("obtener pedido: %w", err)
	}
	if p == nil {
		return nil, domain.ErrNotFound
	}
	items, err := uc.pedidoRepo.GetItems(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("obtener items: %w", err)
	}

	servicios := map[string]*entity.Servicio{}
	if ids := servicioIDs(items); len(ids) > 0 {
		servicios, err = uc.servicioRepo.GetByIDs(ctx, lavanderiaID, ids)
		if err != nil {
			return nil, fmt.Errorf("obtener servicios: %w", err)
		}
	}
	perfiles := map[string]*entity.Perfil{}
	if err := uc.cargarPerfiles(ctx, []*entity.Pedido{p}, perfiles); err != nil {
		return nil, err
	}

	resp := toDetalleResponse(p, resolverContacto(p, perfiles), items, servicios)
	if !resp.TotalConsistente {
		uc.log.Warn().Err(domain.ErrTotalInconsistent).
			Str("pedido_id", p.ID).
			Str("lavanderia_id", lavanderiaID).
			Str("total", p.Total.String()).
			Str("total_items", resp.TotalItems.String()).
			Msg("total del pedido no coincide con la suma de ítems")
	}
	return resp, nil
}

// cargarPerfiles completa el mapa con los perfiles de clientes registrados aún no leídos.
func (uc *ConsultaUseCase) cargarPerfiles(ctx context.Context, ps []*entity.Pedido, perfiles map[string]*entity.Perfil) error {
	if uc.perfilRepo == nil {
		return nil
	}
	var faltan []string
	for _, p := range ps {
		if p.ClienteID == "" {
			continue
		}
		if _, ok := perfiles[p.ClienteID]; ok {
			continue
		}
		perfiles[p.ClienteID] = nil
		faltan = append(faltan, p.ClienteID)
	}
	if len(faltan) == 0 {
		return nil
	}
	got, err := uc.perfilRepo.GetByIDs(ctx, faltan)
	if err != nil {
		return fmt.Errorf("perfiles: %w", err)
	}
	for id, perfil := range got {
		perfiles[id] = perfil
	}
	return nil
}
