package auth

import (
	"github.com/google/uuid"
	"github.com/jhoicas/Lavanderia-api/internal/domain"
	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

// Accion operaciones sensibles a autorización.
type Accion string

const (
	AccionVerPedidos   Accion = "ver_pedidos"
	AccionCrearWalkIn  Accion = "crear_walk_in"
	AccionTransicionar Accion = "transicionar"
	AccionVerDashboard Accion = "ver_dashboard"
)

var permisos = map[Accion][]string{
	AccionVerPedidos:   {entity.RoleSuperadmin, entity.RoleEncargado, entity.RoleRepartidor},
	AccionCrearWalkIn:  {entity.RoleSuperadmin, entity.RoleEncargado},
	AccionTransicionar: {entity.RoleSuperadmin, entity.RoleEncargado, entity.RoleRepartidor},
	AccionVerDashboard: {entity.RoleSuperadmin, entity.RoleEncargado},
}

// Contexto es el contexto de autorización explícito que acompaña cada operación.
// Reemplaza cualquier sesión global: el rol ya viene resuelto.
type Contexto struct {
	UsuarioID    string
	LavanderiaID string // vacío para superadmin
	Rol          string
}

// EsSuperadmin informa si el contexto opera con rol global.
func (c Contexto) EsSuperadmin() bool {
	return c.Rol == entity.RoleSuperadmin
}

// ResolverLavanderia decide sobre qué lavandería opera la petición.
// Superadmin debe indicarla; el resto usa la del token y no puede pedir otra.
func (c Contexto) ResolverLavanderia(solicitada string) (string, error) {
	if c.EsSuperadmin() {
		if solicitada == "" {
			return "", domain.NewValidationError("lavanderia_id", "requerido para superadmin")
		}
		if _, err := uuid.Parse(solicitada); err != nil {
			return "", domain.NewValidationError("lavanderia_id", "debe ser un UUID")
		}
		return solicitada, nil
	}
	if c.LavanderiaID == "" {
		return "", domain.ErrForbidden
	}
	if solicitada != "" && solicitada != c.LavanderiaID {
		return "", domain.ErrForbidden
	}
	return c.LavanderiaID, nil
}

// Autorizar verifica rol y alcance de lavandería para la acción.
func (c Contexto) Autorizar(accion Accion, lavanderiaID string) error {
	if c.UsuarioID == "" || c.Rol == "" {
		return domain.ErrUnauthorized
	}
	if lavanderiaID == "" {
		return domain.NewValidationError("lavanderia_id", "requerido")
	}
	if !c.tieneRol(permisos[accion]) {
		return domain.ErrForbidden
	}
	if !c.EsSuperadmin() && c.LavanderiaID != lavanderiaID {
		return domain.ErrForbidden
	}
	return nil
}

// PuedeLlevarA informa si el rol puede mover un pedido al estado indicado.
// El repartidor solo registra entregas.
func (c Contexto) PuedeLlevarA(estado string) bool {
	if c.Rol == entity.RoleRepartidor {
		return estado == entity.EstadoEntregado
	}
	return c.tieneRol(permisos[AccionTransicionar])
}

func (c Contexto) tieneRol(roles []string) bool {
	for _, r := range roles {
		if r == c.Rol {
			return true
		}
	}
	return false
}
