package pedidos

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lavanderia-api/internal/application/auth"
	"github.com/jhoicas/Lavanderia-api/internal/application/dto"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/pedido"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
	"github.com/jhoicas/Lavanderia-api/pkg/logger"
)

// TransicionUseCase mueve pedidos por la máquina de estados.
type TransicionUseCase struct {
	pedidoRepo repository.PedidoRepository
	perfilRepo repository.PerfilRepository
	clock      Clock
	log        *logger.Logger
}

// NewTransicionUseCase construye el caso de uso. perfilRepo y clock pueden ser nil.
func NewTransicionUseCase(pedidoRepo repository.PedidoRepository, perfilRepo repository.PerfilRepository, clock Clock, log *logger.Logger) *TransicionUseCase {
	if log == nil {
		log = logger.Nop()
	}
	return &TransicionUseCase{
		pedidoRepo: pedidoRepo,
		perfilRepo: perfilRepo,
		clock:      clock,
		log:        log.Component("transicion"),
	}
}

// Transicionar lleva el pedido al estado hacia. La validación contra el estado actual la
// hace el almacén en un único UPDATE condicional, de modo que dos peticiones concurrentes
// no pueden aplicar ambas su transición desde el mismo origen.
func (uc *TransicionUseCase) Transicionar(ctx context.Context, a auth.Contexto, lavanderiaID, pedidoID, hacia string) (*dto.PedidoResponse, error) {
	if err := a.Autorizar(auth.AccionTransicionar, lavanderiaID); err != nil {
		return nil, err
	}
	if pedidoID == "" {
		return nil, domain.NewValidationError("id", "requerido")
	}
	if !pedido.EsEstadoValido(hacia) {
		return nil, domain.NewValidationError("estado", fmt.Sprintf("estado desconocido %q", hacia))
	}
	if !a.PuedeLlevarA(hacia) {
		return nil, domain.ErrForbidden
	}

	p, err := uc.pedidoRepo.TransicionarEstado(ctx, lavanderiaID, pedidoID, hacia, uc.clock.now().UTC())
	if err != nil {
		return nil, err
	}

	uc.log.Info().
		Str("pedido_id", p.ID).
		Str("lavanderia_id", lavanderiaID).
		Str("estado", p.Estado).
		Str("usuario_id", a.UsuarioID).
		Msg("transición aplicada")

	perfiles := map[string]*entity.Perfil{}
	if p.ClienteID != "" && uc.perfilRepo != nil {
		perfiles, err = uc.perfilRepo.GetByIDs(ctx, []string{p.ClienteID})
		if err != nil {
			return nil, fmt.Errorf("transicion: perfil: %w", err)
		}
	}
	resp := toPedidoResponse(p, resolverContacto(p, perfiles))
	return &resp, nil
}
