package repository

import (
	"context"

	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
)

// ServicioRepository consulta el catálogo de servicios (solo lectura).
type ServicioRepository interface {
	GetByIDs(ctx context.Context, lavanderiaID string, ids []string) (map[string]*entity.Servicio, error)
}

// PerfilRepository consulta perfiles de clientes registrados (solo lectura).
type PerfilRepository interface {
	GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Perfil, error)
}

// RolRepository consulta las asignaciones de rol de un usuario (solo lectura).
type RolRepository interface {
	ListByUsuario(ctx context.Context, usuarioID string) ([]entity.RolAsignado, error)
}
