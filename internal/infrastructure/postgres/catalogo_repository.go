package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/Lavanderia-api/internal/domain/entity"
	"github.com/jhoicas/Lavanderia-api/internal/domain/repository"
)

var (
	_ repository.ServicioRepository = (*ServicioRepo)(nil)
	_ repository.PerfilRepository   = (*PerfilRepo)(nil)
	_ repository.RolRepository      = (*RolRepo)(nil)
)

// ServicioRepo lectura del catálogo de servicios.
type ServicioRepo struct {
	q Querier
}

// NewServicioRepository construye el adaptador. Pasar pool o tx (Querier).
func NewServicioRepository(q Querier) *ServicioRepo {
	return &ServicioRepo{q: q}
}

// GetByIDs devuelve los servicios de la lavandería indexados por id. Los ids que no existen
// (o que son de otra lavandería) simplemente no aparecen en el mapa.
func (r *ServicioRepo) GetByIDs(ctx context.Context, lavanderiaID string, ids []string) (map[string]*entity.Servicio, error) {
	out := make(map[string]*entity.Servicio, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	const query = `
		SELECT id, lavanderia_id, nombre, precio, unidad
		FROM servicios WHERE lavanderia_id = $1 AND id::text = ANY($2)`
	rows, err := r.q.Query(ctx, query, lavanderiaID, ids)
	if err != nil {
		return nil, fmt.Errorf("list servicios: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var s entity.Servicio
		if err := rows.Scan(&s.ID, &s.LavanderiaID, &s.Nombre, &s.Precio, &s.Unidad); err != nil {
			return nil, fmt.Errorf("scan servicio: %w", err)
		}
		out[s.ID] = &s
	}
	return out, rows.Err()
}

// PerfilRepo lectura de perfiles de clientes registrados.
type PerfilRepo struct {
	q Querier
}

// NewPerfilRepository construye el adaptador.
func NewPerfilRepository(q Querier) *PerfilRepo {
	return &PerfilRepo{q: q}
}

// GetByIDs devuelve los perfiles indexados por id.
func (r *PerfilRepo) GetByIDs(ctx context.Context, ids []string) (map[string]*entity.Perfil, error) {
	out := make(map[string]*entity.Perfil, len(ids))
	if len(ids) == 0 {
		return out, nil
	}
	const query = `
		SELECT id, nombre, COALESCE(telefono, ''), COALESCE(email, '')
		FROM perfiles WHERE id::text = ANY($1)`
	rows, err := r.q.Query(ctx, query, ids)
	if err != nil {
		return nil, fmt.Errorf("list perfiles: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var p entity.Perfil
		if err := rows.Scan(&p.ID, &p.Nombre, &p.Telefono, &p.Email); err != nil {
			return nil, fmt.Errorf("scan perfil: %w", err)
		}
		out[p.ID] = &p
	}
	return out, rows.Err()
}

// RolRepo lectura de asignaciones de rol.
type RolRepo struct {
	q Querier
}

// NewRolRepository construye el adaptador.
func NewRolRepository(q Querier) *RolRepo {
	return &RolRepo{q: q}
}

// ListByUsuario devuelve todas las asignaciones (activas o no) del usuario.
func (r *RolRepo) ListByUsuario(ctx context.Context, usuarioID string) ([]entity.RolAsignado, error) {
	const query = `
		SELECT usuario_id, rol, COALESCE(lavanderia_id::text, ''), activo
		FROM usuario_roles WHERE usuario_id::text = $1
		ORDER BY rol, lavanderia_id NULLS FIRST`
	rows, err := r.q.Query(ctx, query, usuarioID)
	if err != nil {
		return nil, fmt.Errorf("list usuario_roles: %w", err)
	}
	defer rows.Close()
	var list []entity.RolAsignado
	for rows.Next() {
		var a entity.RolAsignado
		if err := rows.Scan(&a.UsuarioID, &a.Rol, &a.LavanderiaID, &a.Activo); err != nil {
			return nil, fmt.Errorf("scan usuario_rol: %w", err)
		}
		list = append(list, a)
	}
	return list, rows.Err()
}
